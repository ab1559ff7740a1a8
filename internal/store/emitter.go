package store

import (
	"slices"
	"sync"
	"sync/atomic"
)

type observer[T any] struct {
	fn     func(T)
	since  uint64
	active atomic.Bool
}

type pending[T any] struct {
	seq    uint64
	value  T
	target *observer[T] // replay for a single new observer
}

// emitter holds a current value and delivers every change to its observers
// on a single logical timeline. Updates are applied immediately and queued
// for delivery; an update issued while a delivery is in progress (from an
// observer callback or another goroutine) is delivered by the active pass
// once the current value has reached every observer.
type emitter[T any] struct {
	mu        sync.Mutex
	current   T
	seq       uint64
	observers []*observer[T]
	queue     []pending[T]
	draining  bool
}

func (e *emitter[T]) value() T {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// update applies fn to the current value and delivers the result.
func (e *emitter[T]) update(fn func(T) T) {
	e.mu.Lock()
	e.current = fn(e.current)
	e.seq++
	e.queue = append(e.queue, pending[T]{seq: e.seq, value: e.current})
	e.startDrain()
}

// subscribe registers fn, replays the current value to it, then delivers
// every later change until the returned subscription is released.
func (e *emitter[T]) subscribe(fn func(T)) *Subscription {
	o := &observer[T]{fn: fn}
	o.active.Store(true)

	e.mu.Lock()
	o.since = e.seq
	e.observers = append(e.observers, o)
	e.queue = append(e.queue, pending[T]{seq: e.seq, value: e.current, target: o})

	sub := NewSubscription()
	sub.Add(func() { e.remove(o) })

	e.startDrain()
	return sub
}

// startDrain must be called with e.mu held; it releases the lock.
func (e *emitter[T]) startDrain() {
	if e.draining {
		e.mu.Unlock()
		return
	}
	e.draining = true
	e.mu.Unlock()
	e.drain()
}

func (e *emitter[T]) drain() {
	for {
		e.mu.Lock()
		if len(e.queue) == 0 {
			e.draining = false
			e.mu.Unlock()
			return
		}
		item := e.queue[0]
		e.queue[0] = pending[T]{}
		e.queue = e.queue[1:]

		var targets []*observer[T]
		if item.target != nil {
			targets = []*observer[T]{item.target}
		} else {
			targets = slices.Clone(e.observers)
		}
		e.mu.Unlock()

		for _, o := range targets {
			if !o.active.Load() {
				continue
			}
			if item.target == nil && o.since >= item.seq {
				continue
			}
			o.fn(item.value)
		}
	}
}

func (e *emitter[T]) remove(o *observer[T]) {
	o.active.Store(false)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.observers = slices.DeleteFunc(e.observers, func(x *observer[T]) bool {
		return x == o
	})
}
