package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps configures RenderStatusBar
type StatusBarProps struct {
	Width int
	Left  string // already styled
	Right string // plain hint text
}

// RenderStatusBar renders a status line with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	rightRendered := SubtleStyle.Render(props.Right)

	leftWidth := lipgloss.Width(props.Left)
	rightWidth := lipgloss.Width(rightRendered)
	gapWidth := props.Width - leftWidth - rightWidth
	if gapWidth < 1 {
		if props.Left == "" {
			return rightRendered
		}
		// left side wins when both do not fit
		return props.Left
	}

	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, props.Left, gap, rightRendered)
}
