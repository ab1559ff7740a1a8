// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
//
// Parameters:
//   - content: the rendered content to center
//   - screenWidth: the width of the screen
//   - screenHeight: the height of the screen
//
// Returns:
//   - A layer positioned at the center of the screen, or nil if content is empty
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x, y := centerOffset(content, screenWidth, screenHeight)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

// centerOffset returns the top-left position that centers content on the
// screen, clamped to the origin.
func centerOffset(content string, screenWidth int, screenHeight int) (int, int) {
	contentWidth := lipgloss.Width(content)
	contentHeight := lipgloss.Height(content)

	x := (screenWidth - contentWidth) / 2
	y := (screenHeight - contentHeight) / 2

	return max(x, 0), max(y, 0)
}

// CreateBottomLayer creates a full-width layer pinned to the last line of the
// screen. Returns nil if content is empty.
func CreateBottomLayer(content string, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	return lipgloss.NewLayer(content).X(0).Y(bottomOffset(content, screenHeight))
}

func bottomOffset(content string, screenHeight int) int {
	return max(screenHeight-lipgloss.Height(content), 0)
}
