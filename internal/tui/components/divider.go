package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// RenderDivider renders a horizontal rule of the given width with label
// centered on it. Without room for the label only the rule is drawn.
func RenderDivider(label string, width int) string {
	labelWidth := lipgloss.Width(label)
	if label == "" || labelWidth+4 > width {
		return SubtleStyle.Render(strings.Repeat("─", max(width, 0)))
	}

	side := width - labelWidth - 2
	left := side / 2
	right := side - left

	return SubtleStyle.Render(strings.Repeat("─", left) + " " + label + " " + strings.Repeat("─", right))
}
