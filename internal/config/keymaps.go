package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Form
	ToggleMode     string `yaml:"toggle_mode"`
	Submit         string `yaml:"submit"`
	NextField      string `yaml:"next_field"`
	PrevField      string `yaml:"prev_field"`
	ToggleRemember string `yaml:"toggle_remember"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Close    string `yaml:"close"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Form
		ToggleMode:     "ctrl+t",
		Submit:         "enter",
		NextField:      "tab",
		PrevField:      "shift+tab",
		ToggleRemember: "space",

		// Other
		ShowHelp: "f1",
		Close:    "esc",
		Quit:     "ctrl+c",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.ToggleMode == "" {
		k.ToggleMode = defaults.ToggleMode
	}
	if k.Submit == "" {
		k.Submit = defaults.Submit
	}
	if k.NextField == "" {
		k.NextField = defaults.NextField
	}
	if k.PrevField == "" {
		k.PrevField = defaults.PrevField
	}
	if k.ToggleRemember == "" {
		k.ToggleRemember = defaults.ToggleRemember
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Close == "" {
		k.Close = defaults.Close
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
