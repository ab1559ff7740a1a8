// Package store provides the centralized state container that holds the
// operation error slot. Two interchangeable backends are offered: a
// DispatchStore driven by actions and reducers, and a ReactiveStore that
// merges long-lived subjects directly into its state.
package store

import "github.com/thenoetrevino/opserr/internal/attempt"

// Store is the read side shared by every backend. Writes are backend
// specific: actions for DispatchStore, subjects for ReactiveStore.
type Store interface {
	// Separator returns the separator used by state paths.
	Separator() string

	// Snapshot returns the latest state.
	Snapshot() Snapshot

	// Subscribe replays the latest state to observer, then delivers every
	// subsequent state in write order.
	Subscribe(observer func(Snapshot)) *Subscription
}

// Compile-time verification that both backends implement Store
var (
	_ Store = (*DispatchStore)(nil)
	_ Store = (*ReactiveStore)(nil)
)

// StateStream exposes a store as a lazy observable of snapshots.
func StateStream(st Store) Observable[Snapshot] {
	return st.Subscribe
}

// ValueStream observes the value at path, emitting on every state change.
// Missing values are emitted as absences.
func ValueStream(st Store, path string) Observable[attempt.Attempt[any]] {
	return Map(StateStream(st), func(s Snapshot) attempt.Attempt[any] {
		return s.ValueAt(path)
	})
}

// state is the snapshot holder embedded by both backends.
type state struct {
	separator string
	emitter   emitter[Snapshot]
}

func newState(separator string) *state {
	if separator == "" {
		separator = DefaultSeparator
	}
	s := &state{separator: separator}
	s.emitter.current = NewSnapshot(separator)
	return s
}

func (s *state) Separator() string {
	return s.separator
}

func (s *state) Snapshot() Snapshot {
	return s.emitter.value()
}

func (s *state) Subscribe(observer func(Snapshot)) *Subscription {
	return s.emitter.subscribe(observer)
}

func (s *state) reduce(fn func(Snapshot) Snapshot) {
	s.emitter.update(fn)
}
