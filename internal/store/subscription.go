package store

import "sync"

// Subscription is a set of teardown functions released together. Owners
// (view models, components, displayables) add every stream subscription they
// create and call Unsubscribe once when they are torn down.
type Subscription struct {
	mu        sync.Mutex
	closed    bool
	teardowns []func()
}

// NewSubscription creates an empty, open subscription set.
func NewSubscription() *Subscription {
	return &Subscription{}
}

// Add registers a teardown. If the set is already closed the teardown runs
// immediately.
func (s *Subscription) Add(teardown func()) {
	if teardown == nil {
		return
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		teardown()
		return
	}
	s.teardowns = append(s.teardowns, teardown)
	s.mu.Unlock()
}

// Unsubscribe runs every registered teardown in registration order.
// Calling it more than once is a no-op.
func (s *Subscription) Unsubscribe() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	teardowns := s.teardowns
	s.teardowns = nil
	s.mu.Unlock()

	for _, teardown := range teardowns {
		teardown()
	}
}

// Closed reports whether Unsubscribe has been called.
func (s *Subscription) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
