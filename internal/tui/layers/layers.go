// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// OverlayZ is the z-index given to modal layers so they draw above the card
const OverlayZ = 1

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Typically called with ui.Width() and ui.Height() as dimensions.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x, y := CenterOffset(lipgloss.Width(content), lipgloss.Height(content), screenWidth, screenHeight)

	return lipgloss.NewLayer(content).X(x).Y(y).Z(OverlayZ)
}

// CenterOffset returns the top-left position that centers a w×h box on the
// screen, clamped to the screen origin.
func CenterOffset(w, h, screenWidth, screenHeight int) (int, int) {
	x := (screenWidth - w) / 2
	y := (screenHeight - h) / 2

	return max(x, 0), max(y, 0)
}
