package colors

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		// Primary accent color (oniViolet)
		Accent: "#957FB8",

		// Background colors (sumiInk1 / sumiInk3 / sumiInk6)
		Background:     "#1F1F28",
		CardBackground: "#2A2A37",
		CardBorder:     "#54546D",

		// Text colors
		Title:  "#7E9CD8", // crystalBlue
		Subtle: "#727169", // fujiGray
		Normal: "#DCD7BA", // fujiWhite
		Link:   "#7FB4CA", // springBlue

		FieldError: "#E46876", // waveRed

		// Notification colors
		InfoFg:    "#658594", // dragonBlue
		InfoBg:    "#252535", // winterBlue
		WarningFg: "#FF9E3B", // roninYellow
		WarningBg: "#49443C", // winterYellow
		ErrorFg:   "#E82424", // samuraiRed
		ErrorBg:   "#43242B", // winterRed
	}
}
