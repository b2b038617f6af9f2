package colors

// Default returns the default color scheme (blue, matching the brand gradient)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#3B82F6",

		// Background
		Background:     "#111827",
		CardBackground: "#1F2937",
		CardBorder:     "#374151",

		// Text
		Title:  "#60A5FA",
		Subtle: "#9CA3AF",
		Normal: "#E5E7EB",
		Link:   "#60A5FA",

		FieldError: "#F87171",

		// Notifications
		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",
	}
}
