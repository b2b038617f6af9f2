// Package forms provides the focusable widgets of the account card and the
// focus ring that moves between them.
package forms

import tea "charm.land/bubbletea/v2"

// Field is the interface that all focusable widgets must implement
type Field interface {
	// Update handles messages and updates the field
	Update(tea.Msg) (Field, tea.Cmd)

	// View renders the field
	View() string

	// Focus focuses the field
	Focus() tea.Cmd

	// Blur removes focus from the field
	Blur()

	// Focused returns whether the field is focused
	Focused() bool

	// Key returns the field's key (used to retrieve values)
	Key() string
}
