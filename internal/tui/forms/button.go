package forms

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Button is a focusable action. It does nothing on its own; the owner
// decides what activating the focused button means.
type Button struct {
	key     string
	label   string
	style   lipgloss.Style
	focus   lipgloss.Style
	focused bool
}

// NewButton creates a button rendered with style, and with focusStyle
// while focused
func NewButton(key, label string, style, focusStyle lipgloss.Style) *Button {
	return &Button{
		key:   key,
		label: label,
		style: style,
		focus: focusStyle,
	}
}

// Update handles messages
func (b *Button) Update(tea.Msg) (Field, tea.Cmd) {
	return b, nil
}

// View renders the button
func (b *Button) View() string {
	if b.focused {
		return b.focus.Render(b.label)
	}
	return b.style.Render(b.label)
}

// Focus focuses the button
func (b *Button) Focus() tea.Cmd {
	b.focused = true
	return nil
}

// Blur removes focus
func (b *Button) Blur() {
	b.focused = false
}

// Focused returns whether the button is focused
func (b *Button) Focused() bool {
	return b.focused
}

// Key returns the button key
func (b *Button) Key() string {
	return b.key
}

// Label returns the button label
func (b *Button) Label() string {
	return b.label
}

// SetLabel replaces the label
func (b *Button) SetLabel(label string) {
	b.label = label
}

// SetStyles replaces the rendering styles
func (b *Button) SetStyles(style, focusStyle lipgloss.Style) {
	b.style = style
	b.focus = focusStyle
}
