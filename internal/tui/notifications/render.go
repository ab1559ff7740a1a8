// Package notifications renders operation error toasts.
package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/opserr/internal/tui/state"
	"github.com/thenoetrevino/opserr/internal/tui/theme"
)

const icon = "✕"

// Render renders a toast: the title with an icon, an optional dimmed detail
// line and the message, inside a rounded border.
func Render(n state.Notification) string {
	title := icon + " " + n.Title

	width := max(lipgloss.Width(title), lipgloss.Width(n.Detail), lipgloss.Width(n.Message))

	base := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ToastFg)).
		Background(lipgloss.Color(theme.ToastBg)).
		Width(width)

	lines := []string{base.Bold(true).Render(title)}
	if n.Detail != "" {
		lines = append(lines, base.Faint(true).Render(n.Detail))
	}
	if n.Message != "" {
		lines = append(lines, base.Render(n.Message))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ToastBorder)).
		Background(lipgloss.Color(theme.ToastBg)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
