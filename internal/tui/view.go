package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/opserr/internal/tui/components"
	"github.com/thenoetrevino/opserr/internal/tui/layers"
	"github.com/thenoetrevino/opserr/internal/tui/notifications"
	"github.com/thenoetrevino/opserr/internal/tui/theme"
)

// View renders the demo: a summary of the store, the error component in the
// middle of the screen and toasts in the top-right corner.
// Implements tea.Model interface.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.width == 0 {
		view.Content = "Loading..."
		return view
	}

	stack := []*lipgloss.Layer{
		lipgloss.NewLayer(m.renderSummary()),
	}

	if m.display != nil {
		if layer := layers.CreateCenteredLayer(m.display.Render(), m.width, m.height); layer != nil {
			stack = append(stack, layer)
		}
	}

	stack = append(stack, m.notifications.GetLayers(notifications.Render)...)

	if layer := layers.CreateBottomLayer(m.renderStatusBar(), m.height); layer != nil {
		stack = append(stack, layer)
	}

	view.Content = lipgloss.NewCanvas(stack...).Render()
	return view
}

func (m *Model) renderSummary() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))

	row := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-10s", label)) + valueStyle.Render(value)
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Operation errors"),
		"",
		row("backend", string(m.app.Backend())),
		row("mode", string(m.mode)),
		row("failed", fmt.Sprintf("%d", m.failed)),
		row("injected", fmt.Sprintf("%d", m.injected)),
		"",
		labelStyle.Render("state"),
		valueStyle.Render(renderErrorSubstate(m.app.Store().Snapshot(), m.app.ViewModel.SubstatePath())),
	))
}

func (m *Model) renderStatusBar() string {
	return components.RenderStatusBar(components.StatusBarProps{
		Width:   m.width,
		Backend: string(m.app.Backend()),
		Mode:    string(m.mode),
		Pending: m.app.ViewModel.HasError(m.app.Store().Snapshot()),
		Help:    m.help.ShortHelpView(m.keys.ShortHelp()),
	})
}
