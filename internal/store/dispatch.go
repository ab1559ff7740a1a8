package store

import "log/slog"

// Action is a discrete state change request handled by reducers.
type Action struct {
	ID      string
	Path    string
	Payload any
}

// Reducer folds an action into a snapshot. Reducers must return the input
// snapshot unchanged for actions they do not handle.
type Reducer func(Snapshot, Action) Snapshot

// DispatchStore applies dispatched actions through its reducers.
type DispatchStore struct {
	*state
	reducers []Reducer
}

// NewDispatchStore creates a store whose paths use separator and whose
// state is produced by reducers, applied in order for every action.
func NewDispatchStore(separator string, reducers ...Reducer) *DispatchStore {
	return &DispatchStore{
		state:    newState(separator),
		reducers: reducers,
	}
}

// Dispatch reduces action into the state and notifies subscribers.
func (s *DispatchStore) Dispatch(action Action) {
	slog.Debug("dispatching action",
		"action_id", action.ID,
		"path", action.Path)

	s.reduce(func(snap Snapshot) Snapshot {
		for _, r := range s.reducers {
			snap = r(snap, action)
		}
		return snap
	})
}

// ActionTrigger returns the store's action channel as a function value.
func (s *DispatchStore) ActionTrigger() func(Action) {
	return s.Dispatch
}
