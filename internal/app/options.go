package app

import (
	"log/slog"

	"github.com/benbjohnson/clock"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	backend Backend
	clock   clock.Clock
	logger  *slog.Logger
}

// WithBackend selects the state store flavor
func WithBackend(b Backend) Option {
	return func(cfg *appConfig) {
		cfg.backend = b
	}
}

// WithClock sets the clock the view model schedules deletions on
func WithClock(c clock.Clock) Option {
	return func(cfg *appConfig) {
		cfg.clock = c
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
