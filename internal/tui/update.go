package tui

import (
	"fmt"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/opserr/internal/tui/errordisplay"
)

// Update handles all messages and updates the model accordingly.
// Implements tea.Model interface.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.notifications.SetWindowSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)

	case errordisplay.StateMsg:
		if m.display == nil {
			return m, nil
		}
		_, cmd := m.display.Update(msg)
		return m, cmd

	case toastMsg:
		id := m.notifications.Add(toastFor(msg.err))
		return m, tea.Batch(m.toasts.wait(), expireToast(id, m.toastDuration()))

	case toastExpiredMsg:
		m.notifications.Remove(msg.id)
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	trigger := m.app.ViewModel.OperationErrorTrigger()

	switch {
	case key.Matches(msg, m.keys.Produce):
		m.failed++
		err := newOperationError(m.failed)
		slog.Info("operation failed", "operation", err.Operation, "id", err.ID)
		trigger(err)

	case key.Matches(msg, m.keys.Malformed):
		m.injected++
		m.app.Inject(fmt.Sprintf("malformed payload #%d", m.injected))

	case key.Matches(msg, m.keys.Clear):
		trigger(nil)

	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return tea.Quit
	}

	return nil
}

func expireToast(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}
