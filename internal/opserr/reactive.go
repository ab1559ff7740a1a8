package opserr

import (
	"github.com/thenoetrevino/opserr/internal/attempt"
	"github.com/thenoetrevino/opserr/internal/config"
	"github.com/thenoetrevino/opserr/internal/store"
)

// ErrorChannel is the process-wide error subject for the reactive backend.
// Create it once at startup and pass it by reference to the store reducer
// and to every model that writes errors.
type ErrorChannel struct {
	fullErrorValuePath string
	subject            *store.Subject[error]
}

// NewErrorChannel creates a channel targeting the configured error slot.
// It starts out holding no error.
func NewErrorChannel(cfg config.ErrorDisplay) *ErrorChannel {
	return &ErrorChannel{
		fullErrorValuePath: cfg.FullErrorValuePath,
		subject:            store.NewSubject[error](nil),
	}
}

// Trigger publishes an error (or nil to clear) to every subscriber.
func (c *ErrorChannel) Trigger() Trigger {
	return c.subject.Next
}

// Stream observes the raw values written to the channel.
func (c *ErrorChannel) Stream() store.Observable[error] {
	return c.subject.Observable()
}

// MergeReducer folds ch into st so every write lands in the error slot.
func MergeReducer(st *store.ReactiveStore, ch *ErrorChannel) *store.Subscription {
	path := ch.fullErrorValuePath
	return store.Merge(st, ch.subject, func(state store.Snapshot, err error) store.Snapshot {
		return state.Set(path, err)
	})
}

// ReactiveModel is the error model backed by a ReactiveStore.
type ReactiveModel struct {
	Base
	channel *ErrorChannel
}

var _ DisplayModel = (*ReactiveModel)(nil)

// NewReactiveModel creates a model over st. ch must have been merged into
// st with MergeReducer.
func NewReactiveModel(st *store.ReactiveStore, ch *ErrorChannel, cfg config.ErrorDisplay) *ReactiveModel {
	return &ReactiveModel{
		Base:    NewBase(st, cfg),
		channel: ch,
	}
}

// OperationErrorTrigger returns the shared channel's trigger.
func (m *ReactiveModel) OperationErrorTrigger() Trigger {
	return m.channel.Trigger()
}

// OperationErrorStream emits the error slot on every state change.
func (m *ReactiveModel) OperationErrorStream() store.Observable[attempt.Attempt[error]] {
	return m.Base.OperationErrorStream()
}
