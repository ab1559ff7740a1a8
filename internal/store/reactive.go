package store

import "log/slog"

// Subject is a multicast value holder. New subscribers receive the latest
// value first. A Subject has no completion: it is meant to be created once,
// shared by reference, and live as long as the process.
type Subject[T any] struct {
	emitter emitter[T]
}

// NewSubject creates a subject holding initial.
func NewSubject[T any](initial T) *Subject[T] {
	s := &Subject[T]{}
	s.emitter.current = initial
	return s
}

// Next publishes v to every subscriber.
func (s *Subject[T]) Next(v T) {
	s.emitter.update(func(T) T { return v })
}

// Value returns the latest published value.
func (s *Subject[T]) Value() T {
	return s.emitter.value()
}

// Subscribe replays the latest value then delivers every later one.
func (s *Subject[T]) Subscribe(observer func(T)) *Subscription {
	return s.emitter.subscribe(observer)
}

// Observable exposes the subject as a lazy observable.
func (s *Subject[T]) Observable() Observable[T] {
	return s.Subscribe
}

// ReactiveStore derives its state by merging subjects into it.
type ReactiveStore struct {
	*state
	merged *Subscription
}

// NewReactiveStore creates an empty store whose paths use separator.
func NewReactiveStore(separator string) *ReactiveStore {
	return &ReactiveStore{
		state:  newState(separator),
		merged: NewSubscription(),
	}
}

// Merge folds every value of subject into st with reduce, starting with the
// subject's current value. The returned subscription detaches the subject.
func Merge[T any](st *ReactiveStore, subject *Subject[T], reduce func(Snapshot, T) Snapshot) *Subscription {
	slog.Debug("merging subject into reactive store")

	sub := subject.Subscribe(func(v T) {
		st.reduce(func(snap Snapshot) Snapshot {
			return reduce(snap, v)
		})
	})
	st.merged.Add(sub.Unsubscribe)
	return sub
}

// Close detaches every merged subject. The state remains readable.
func (s *ReactiveStore) Close() {
	s.merged.Unsubscribe()
}
