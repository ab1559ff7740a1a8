package app

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/opserr/internal/config"
	"github.com/thenoetrevino/opserr/internal/opserr"
	"github.com/thenoetrevino/opserr/internal/store"
)

// Backend names a state store flavor.
type Backend string

const (
	BackendDispatch Backend = "dispatch"
	BackendReactive Backend = "reactive"
)

// ErrUnknownBackend is returned for a backend name that is neither dispatch
// nor reactive.
var ErrUnknownBackend = errors.New("unknown backend")

// ParseBackend converts a user supplied name into a Backend.
func ParseBackend(name string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(name))); b {
	case BackendDispatch, BackendReactive:
		return b, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// App holds the state store, the error model for its backend and the view
// model built on top of it.
// This is the main application container that manages their lifecycles.
type App struct {
	backend Backend
	store   store.Store
	model   opserr.DisplayModel

	// ViewModel is shared by every error consumer of the application
	ViewModel *opserr.ViewModel

	inject    func(any)
	resources *store.Subscription
	logger    *slog.Logger
}

// New creates a new App with the store and models initialized.
// This is the single entry point for creating the application container.
func New(cfg config.ErrorDisplay, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ac := appConfig{backend: BackendDispatch, logger: slog.Default()}
	for _, opt := range opts {
		opt(&ac)
	}

	a := &App{
		backend:   ac.backend,
		resources: store.NewSubscription(),
		logger:    ac.logger,
	}

	switch ac.backend {
	case BackendDispatch:
		a.newDispatch(cfg)
	case BackendReactive:
		a.newReactive(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, ac.backend)
	}

	var vmOpts []opserr.Option
	if ac.clock != nil {
		vmOpts = append(vmOpts, opserr.WithClock(ac.clock))
	}
	a.ViewModel = opserr.NewViewModel(a.store, a.model, cfg, vmOpts...)
	a.resources.Add(a.ViewModel.Deinitialize)

	a.logger.Info("application initialized",
		"backend", a.backend,
		"path", cfg.FullErrorValuePath,
		"display_duration", cfg.DisplayDuration())
	return a, nil
}

func (a *App) newDispatch(cfg config.ErrorDisplay) {
	st := store.NewDispatchStore(cfg.PathSeparator, opserr.NewReducer())
	a.store = st
	a.model = opserr.NewDispatchModel(st, cfg)
	a.inject = func(v any) {
		st.Dispatch(store.Action{ID: opserr.UpdateErrorAction, Path: cfg.FullErrorValuePath, Payload: v})
	}
}

func (a *App) newReactive(cfg config.ErrorDisplay) {
	st := store.NewReactiveStore(cfg.PathSeparator)
	ch := opserr.NewErrorChannel(cfg)
	opserr.MergeReducer(st, ch)

	// Raw values skip the typed error channel. Nil is never written, clearing
	// goes through the error trigger.
	raw := store.NewSubject[any](nil)
	store.Merge(st, raw, func(s store.Snapshot, v any) store.Snapshot {
		if v == nil {
			return s
		}
		return s.Set(cfg.FullErrorValuePath, v)
	})

	a.store = st
	a.model = opserr.NewReactiveModel(st, ch, cfg)
	a.inject = raw.Next
	a.resources.Add(st.Close)
}

// Backend returns the store flavor the application runs on.
func (a *App) Backend() Backend {
	return a.backend
}

// Store returns the underlying state store.
func (a *App) Store() store.Store {
	return a.store
}

// Model returns the backend error model.
func (a *App) Model() opserr.DisplayModel {
	return a.model
}

// Inject writes v into the error slot as is, bypassing the typed trigger.
// It exists to exercise the handling of values that are not errors.
func (a *App) Inject(v any) {
	a.logger.Debug("injecting raw value", "value", v)
	a.inject(v)
}

// Close deinitializes the view model and detaches the store inputs.
// Calling it more than once has no effect.
func (a *App) Close() error {
	a.resources.Unsubscribe()
	return nil
}
