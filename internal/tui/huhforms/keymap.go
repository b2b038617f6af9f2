package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
)

// CreateDialogKeyMap creates a keymap where closeKey backs out of a dialog
// in addition to the default ctrl+c.
func CreateDialogKeyMap(closeKey string) *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	keys := []string{"ctrl+c"}
	if closeKey != "" && closeKey != "ctrl+c" {
		keys = append(keys, closeKey)
	}

	keymap.Quit = key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[len(keys)-1], "back"),
	)

	return keymap
}
