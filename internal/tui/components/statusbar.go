package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/opserr/internal/tui/theme"
)

// PendingMarker is shown while an error sits in the store
const PendingMarker = "● error pending"

// StatusBarProps describes what the status bar reports about the session
type StatusBarProps struct {
	Width   int
	Backend string
	Mode    string
	// Pending is true while the error slot holds an error
	Pending bool
	// Help is the rendered key help, shown on the right
	Help string
}

// RenderStatusBar renders the backend, mode and pending marker on the left
// and the key help on the right
func RenderStatusBar(props StatusBarProps) string {
	subtle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	left := subtle.Render(fmt.Sprintf("opserr · %s store · %s mode", props.Backend, props.Mode))
	if props.Pending {
		pending := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Pending)).Bold(true)
		left += "  " + pending.Render(PendingMarker)
	}
	right := subtle.Render(props.Help)

	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return left + strings.Repeat(" ", gapWidth) + right
}
