package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dublaj/internal/tui/state"
)

// RenderInline renders a compact single-line notification for the status line
func RenderInline(severity Severity, message string) string {
	style := severity.style()

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(style.icon + " " + message)
}

// RenderInlineFromState renders a compact inline notification from state
func RenderInlineFromState(n state.Notification) string {
	switch n.Level {
	case state.LevelWarning:
		return RenderInline(Warning, n.Message)
	case state.LevelError:
		return RenderInline(Error, n.Message)
	default:
		return RenderInline(Info, n.Message)
	}
}
