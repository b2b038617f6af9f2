package forms

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dublaj/internal/tui/theme"
)

// MaskCharacter replaces each rune of a masked input
const MaskCharacter = '•'

// TextInput is a single-line text input field
type TextInput struct {
	key         string
	placeholder string
	masked      bool
	input       textinput.Model
}

// NewTextInput creates a new text input field. Masked inputs echo
// MaskCharacter instead of the typed runes.
func NewTextInput(key, placeholder string, masked bool) *TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	if masked {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = MaskCharacter
	}

	return &TextInput{
		key:         key,
		placeholder: placeholder,
		masked:      masked,
		input:       ti,
	}
}

// Update handles messages
func (t *TextInput) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

// View renders the input inside a one-line box. The box border follows focus.
func (t *TextInput) View() string {
	border := theme.CardBorder
	if t.input.Focused() {
		border = theme.Highlight
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Foreground(lipgloss.Color(theme.Normal)).
		Padding(0, 1).
		Render(t.input.View())
}

// SetWidth sets the width of the whole box, border included
func (t *TextInput) SetWidth(width int) {
	t.input.SetWidth(max(width-4, 1))
}

// Focus focuses the text input
func (t *TextInput) Focus() tea.Cmd {
	return t.input.Focus()
}

// Blur removes focus
func (t *TextInput) Blur() {
	t.input.Blur()
}

// Focused returns whether the input is focused
func (t *TextInput) Focused() bool {
	return t.input.Focused()
}

// Key returns the field key
func (t *TextInput) Key() string {
	return t.key
}

// Masked reports whether the input hides what is typed
func (t *TextInput) Masked() bool {
	return t.masked
}

// Placeholder returns the placeholder text
func (t *TextInput) Placeholder() string {
	return t.placeholder
}

// Value returns the current value
func (t *TextInput) Value() string {
	return t.input.Value()
}

// SetValue replaces the current value
func (t *TextInput) SetValue(value string) {
	t.input.SetValue(value)
}
