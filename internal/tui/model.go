// Package tui is the interactive demo: it fails simulated operations, stores
// their errors and shows them through either the error display component or
// toast notifications.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/opserr/internal/app"
	"github.com/thenoetrevino/opserr/internal/config"
	"github.com/thenoetrevino/opserr/internal/opserr"
	"github.com/thenoetrevino/opserr/internal/tui/errordisplay"
	"github.com/thenoetrevino/opserr/internal/tui/state"
)

// Mode selects how errors reach the screen.
type Mode string

const (
	// ModeComponent shows errors in the display component and deletes them
	// after the configured duration.
	ModeComponent Mode = "component"
	// ModeDisplayable shows errors as toasts and deletes them at once.
	ModeDisplayable Mode = "displayable"
)

// ErrUnknownMode is returned for a mode name that is neither component nor
// displayable.
var ErrUnknownMode = errors.New("unknown mode")

// ParseMode converts a user supplied name into a Mode.
func ParseMode(name string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(name))); m {
	case ModeComponent, ModeDisplayable:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// Model is the demo's bubbletea model.
type Model struct {
	app  *app.App
	cfg  *config.Config
	mode Mode

	keys keyMap
	help help.Model

	// display is set in component mode
	display *errordisplay.Component
	// toasts is set in displayable mode
	toasts        *toaster
	notifications *state.NotificationState

	failed   int
	injected int
	width    int
	height   int
	closed   bool
}

// New creates the demo model. The model owns neither a nor cfg, but Close
// must be called to release the subscriptions it creates.
func New(a *app.App, cfg *config.Config, mode Mode) *Model {
	m := &Model{
		app:           a,
		cfg:           cfg,
		mode:          mode,
		keys:          newKeyMap(cfg.KeyMappings),
		help:          help.New(),
		notifications: state.NewNotificationState(),
	}

	switch mode {
	case ModeDisplayable:
		m.toasts = newToaster(a.ViewModel)
	default:
		m.mode = ModeComponent
		m.display = errordisplay.New(errordisplay.Props{ViewModel: a.ViewModel})
	}
	return m
}

// Init starts the error pipeline of the selected mode.
// Implements tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.mode == ModeDisplayable {
		opserr.SetupBindings(m.toasts)
		return m.toasts.wait()
	}
	m.app.ViewModel.InitializeErrorDeletionStream()
	return m.display.Init()
}

// Close unmounts the display component or detaches the toaster.
// Calling it more than once has no effect.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	if m.display != nil {
		m.display.Unmount()
	}
	if m.toasts != nil {
		m.toasts.close()
	}
}

func (m *Model) toastDuration() time.Duration {
	return m.cfg.ErrorDisplay.DisplayDuration()
}
