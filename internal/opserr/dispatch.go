package opserr

import (
	"github.com/thenoetrevino/opserr/internal/attempt"
	"github.com/thenoetrevino/opserr/internal/config"
	"github.com/thenoetrevino/opserr/internal/store"
)

// UpdateErrorAction identifies actions that write the error slot.
const UpdateErrorAction = "UPDATE_ERROR_ACTION"

// ActionCreator builds error actions for the dispatch store.
type ActionCreator struct {
	FullErrorValuePath string
}

// NewActionCreator returns an action creator targeting the configured slot.
func NewActionCreator(cfg config.ErrorDisplay) ActionCreator {
	return ActionCreator{FullErrorValuePath: cfg.FullErrorValuePath}
}

// CreateUpdateAction builds an action that stores err (or clears the slot
// when err is nil).
func (c ActionCreator) CreateUpdateAction(err error) store.Action {
	return store.Action{
		ID:      UpdateErrorAction,
		Path:    c.FullErrorValuePath,
		Payload: err,
	}
}

// IsErrorAction reports whether action writes the error slot.
func IsErrorAction(action store.Action) bool {
	switch action.ID {
	case UpdateErrorAction:
		return true
	default:
		return false
	}
}

// NewReducer returns the dispatch reducer for error actions.
func NewReducer() store.Reducer {
	return func(state store.Snapshot, action store.Action) store.Snapshot {
		if !IsErrorAction(action) {
			return state
		}
		return state.Set(action.Path, action.Payload)
	}
}

// DispatchModel is the error model backed by a DispatchStore.
type DispatchModel struct {
	Base
	st      *store.DispatchStore
	actions ActionCreator
}

var _ DisplayModel = (*DispatchModel)(nil)

// NewDispatchModel creates a model over st. The store must have been built
// with NewReducer among its reducers.
func NewDispatchModel(st *store.DispatchStore, cfg config.ErrorDisplay) *DispatchModel {
	return &DispatchModel{
		Base:    NewBase(st, cfg),
		st:      st,
		actions: NewActionCreator(cfg),
	}
}

// OperationErrorTrigger dispatches an update action for every error written.
func (m *DispatchModel) OperationErrorTrigger() Trigger {
	dispatch := m.st.ActionTrigger()
	return func(err error) {
		dispatch(m.actions.CreateUpdateAction(err))
	}
}

// OperationErrorStream emits the error slot on every state change.
func (m *DispatchModel) OperationErrorStream() store.Observable[attempt.Attempt[error]] {
	return m.Base.OperationErrorStream()
}
