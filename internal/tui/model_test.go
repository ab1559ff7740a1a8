package tui

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/opserr/internal/app"
	"github.com/thenoetrevino/opserr/internal/config"
	"github.com/thenoetrevino/opserr/internal/tui/errordisplay"
	"github.com/thenoetrevino/opserr/internal/tui/notifications"
)

const (
	waitFor = time.Second
	tick    = 2 * time.Millisecond
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.ErrorDisplay.DisplayDurationMs = 100
	return cfg
}

func setupModel(t *testing.T, backend app.Backend, mode Mode) (*Model, *clock.Mock) {
	t.Helper()
	cfg := testConfig()
	mock := clock.NewMock()

	a, err := app.New(cfg.ErrorDisplay, app.WithBackend(backend), app.WithClock(mock))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	m := New(a, cfg, mode)
	t.Cleanup(m.Close)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, mock
}

func press(m *Model, k string) tea.Cmd {
	_, cmd := m.Update(tea.KeyPressMsg(tea.Key{Code: rune(k[0]), Text: k}))
	return cmd
}

func hasError(m *Model) bool {
	return m.app.ViewModel.HasError(m.app.Store().Snapshot())
}

func TestParseMode(t *testing.T) {
	got, err := ParseMode("Displayable")
	require.NoError(t, err)
	assert.Equal(t, ModeDisplayable, got)

	_, err = ParseMode("popup")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestNew_DefaultsToComponentMode(t *testing.T) {
	m, _ := setupModel(t, app.BackendDispatch, Mode("bogus"))
	assert.Equal(t, ModeComponent, m.mode)
	assert.NotNil(t, m.display)
	assert.Nil(t, m.toasts)
}

func TestView_WaitsForWindowSize(t *testing.T) {
	a, err := app.New(config.DefaultErrorDisplay())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	m := New(a, testConfig(), ModeComponent)
	t.Cleanup(m.Close)
	assert.Equal(t, "Loading...", m.View().Content)
}

func TestComponentMode(t *testing.T) {
	for _, backend := range []app.Backend{app.BackendDispatch, app.BackendReactive} {
		t.Run(string(backend), func(t *testing.T) {
			m, mock := setupModel(t, backend, ModeComponent)
			wait := m.Init()
			require.NotNil(t, wait)

			assert.Nil(t, press(m, "e"))
			require.True(t, hasError(m))

			msg := wait()
			stateMsg, ok := msg.(errordisplay.StateMsg)
			require.True(t, ok, "expected a state message, got %T", msg)
			_, wait = m.Update(stateMsg)
			require.NotNil(t, wait)

			assert.True(t, m.display.Enabled())
			assert.Contains(t, m.display.Render(), "sync failed (attempt 1")
			assert.Equal(t, 1, m.failed)

			// The error stays until the display duration has elapsed
			mock.Add(m.toastDuration())
			require.Eventually(t, func() bool { return !hasError(m) }, waitFor, tick)

			_, _ = m.Update(wait())
			assert.False(t, m.display.Enabled())
			assert.Empty(t, m.display.Render())
		})
	}
}

func TestComponentMode_ClearKey(t *testing.T) {
	m, _ := setupModel(t, app.BackendDispatch, ModeComponent)
	m.Init()

	press(m, "e")
	require.True(t, hasError(m))

	press(m, "c")
	assert.False(t, hasError(m))
}

func TestDisplayableMode(t *testing.T) {
	for _, backend := range []app.Backend{app.BackendDispatch, app.BackendReactive} {
		t.Run(string(backend), func(t *testing.T) {
			m, _ := setupModel(t, backend, ModeDisplayable)
			wait := m.Init()
			require.NotNil(t, wait)

			press(m, "e")
			// The slot is cleared as soon as the error was handed to the toaster
			assert.False(t, hasError(m))

			msg := wait()
			toast, ok := msg.(toastMsg)
			require.True(t, ok, "expected a toast message, got %T", msg)
			_, cmd := m.Update(toast)
			assert.NotNil(t, cmd)

			notes := m.notifications.All()
			require.Len(t, notes, 1)
			assert.Equal(t, "sync failed", notes[0].Title)
			assert.Contains(t, notes[0].Detail, "operation ")
			assert.Equal(t, "attempt 1", notes[0].Message)
			assert.Len(t, m.notifications.GetLayers(notifications.Render), 1)
			assert.NotEmpty(t, m.View().Content)

			m.Update(toastExpiredMsg{id: notes[0].ID})
			assert.False(t, m.notifications.HasAny())
		})
	}
}

func TestDisplayableMode_IgnoresMalformedValues(t *testing.T) {
	m, _ := setupModel(t, app.BackendReactive, ModeDisplayable)
	m.Init()

	press(m, "m")

	value, ok := m.app.Store().Snapshot().ValueAt("error.value").Get()
	require.True(t, ok)
	assert.Equal(t, "malformed payload #1", value)
	assert.False(t, hasError(m))
	assert.Empty(t, m.toasts.errors)
	assert.Equal(t, 1, m.injected)
}

func TestQuit(t *testing.T) {
	m, _ := setupModel(t, app.BackendDispatch, ModeDisplayable)
	m.Init()

	cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.toasts.subscription.Closed())

	// Errors after quitting are no longer turned into toasts
	press(m, "e")
	assert.True(t, hasError(m))
}

func TestNewOperationError(t *testing.T) {
	first := newOperationError(1)
	fifth := newOperationError(5)

	assert.Equal(t, "sync", first.Operation)
	assert.Equal(t, "sync", fifth.Operation)
	assert.Equal(t, "save", newOperationError(2).Operation)
	assert.NotEqual(t, first.ID, fifth.ID)
	assert.Contains(t, first.Error(), first.ID.String())
}
