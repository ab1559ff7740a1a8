// Package opserr surfaces the last operation error held in a state store,
// hands it to whatever displays it, and clears it afterwards so it is not
// shown again on unrelated state changes.
//
// A Model exposes the error slot as a write Trigger and a read stream. The
// DispatchModel and ReactiveModel implement it over the two store backends
// and share path handling through Base. A ViewModel adds delayed
// auto-deletion for the dedicated display component; SetupBindings wires a
// Displayable that presents errors itself and clears them immediately.
package opserr

import (
	"fmt"
	"reflect"

	"github.com/thenoetrevino/opserr/internal/attempt"
	"github.com/thenoetrevino/opserr/internal/config"
	"github.com/thenoetrevino/opserr/internal/store"
)

// Trigger writes the current operation error. Passing nil clears it.
type Trigger func(err error)

// Model is the minimal surface for taking part in error display. Other view
// models can implement it by delegating to an error model they own.
type Model interface {
	OperationErrorTrigger() Trigger
	OperationErrorStream() store.Observable[attempt.Attempt[error]]
}

// DisplayModel is a Model that can also resolve the error from a cached
// snapshot, as needed by the dedicated display component.
type DisplayModel interface {
	Model
	SubstatePath() string
	ErrorForState(state store.Snapshot) attempt.Attempt[error]
}

// Base holds the path handling and read side shared by every backend.
// It has no write channel; only the concrete backends satisfy Model.
type Base struct {
	st                 store.Store
	fullErrorValuePath string
	substatePath       string
	errorValuePath     string
}

// NewBase derives the substate and value paths from cfg once.
func NewBase(st store.Store, cfg config.ErrorDisplay) Base {
	substate, value := store.SeparateSubstateAndValuePaths(cfg.FullErrorValuePath, cfg.PathSeparator)
	return Base{
		st:                 st,
		fullErrorValuePath: cfg.FullErrorValuePath,
		substatePath:       substate,
		errorValuePath:     value,
	}
}

// FullErrorValuePath returns the configured path of the error slot.
func (b Base) FullErrorValuePath() string {
	return b.fullErrorValuePath
}

// SubstatePath returns the path of the substate containing the error slot.
func (b Base) SubstatePath() string {
	return b.substatePath
}

// ErrorValuePath returns the key of the error slot inside its substate.
func (b Base) ErrorValuePath() string {
	return b.errorValuePath
}

// OperationErrorStream emits the error slot on every state change. Values
// that are not errors are reported as absent.
func (b Base) OperationErrorStream() store.Observable[attempt.Attempt[error]] {
	return store.Map(store.ValueStream(b.st, b.fullErrorValuePath), asError)
}

// ErrorForState resolves the error slot in state without touching the live
// store. The zero Snapshot is treated as absent state.
func (b Base) ErrorForState(state store.Snapshot) attempt.Attempt[error] {
	return asError(state.ValueAt(b.fullErrorValuePath))
}

func asError(v attempt.Attempt[any]) attempt.Attempt[error] {
	filtered := v.Filter(isError, func(x any) error {
		return fmt.Errorf("%v is not an error", x)
	})
	return attempt.Map(filtered, func(x any) error { return x.(error) })
}

// isError rejects typed nil errors such as (*MyErr)(nil), which would panic
// once their message is rendered.
func isError(v any) bool {
	if _, ok := v.(error); !ok {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return !rv.IsNil()
	default:
		return true
	}
}
