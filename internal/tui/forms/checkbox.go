package forms

import (
	"slices"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dublaj/internal/tui/theme"
)

// Checkbox is a boolean field toggled with its toggle keys
type Checkbox struct {
	key        string
	label      string
	toggleKeys []string
	focused    bool
	checked    bool
}

// NewCheckbox creates a new checkbox. toggleKeys are matched against
// tea.KeyPressMsg.String(); "space" is used when none are given.
func NewCheckbox(key, label string, toggleKeys ...string) *Checkbox {
	if len(toggleKeys) == 0 {
		toggleKeys = []string{"space"}
	}

	return &Checkbox{
		key:        key,
		label:      label,
		toggleKeys: toggleKeys,
	}
}

// Update handles messages
func (c *Checkbox) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !c.focused {
		return c, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		if slices.Contains(c.toggleKeys, keyMsg.String()) {
			c.checked = !c.checked
		}
	}

	return c, nil
}

// View renders the checkbox
func (c *Checkbox) View() string {
	box := "[ ]"
	if c.checked {
		box = "[x]"
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
	if c.focused {
		style = style.Foreground(lipgloss.Color(theme.Highlight)).Bold(true)
	}

	return style.Render(box + " " + c.label)
}

// Focus focuses the checkbox
func (c *Checkbox) Focus() tea.Cmd {
	c.focused = true
	return nil
}

// Blur removes focus
func (c *Checkbox) Blur() {
	c.focused = false
}

// Focused returns whether the field is focused
func (c *Checkbox) Focused() bool {
	return c.focused
}

// Key returns the field key
func (c *Checkbox) Key() string {
	return c.key
}

// Checked returns the current state
func (c *Checkbox) Checked() bool {
	return c.checked
}

// SetChecked replaces the current state
func (c *Checkbox) SetChecked(checked bool) {
	c.checked = checked
}
