// Package attempt provides a result type that is either a present value or
// an absence carrying the reason it is absent. Missing data is a normal,
// representable state rather than a failure that has to be raised.
package attempt

import "errors"

// ErrAbsent is the reason used when a value is simply not there.
var ErrAbsent = errors.New("value absent")

// Attempt holds either a present value or the reason it is absent.
// The zero value is an absence with reason ErrAbsent.
type Attempt[T any] struct {
	value   T
	reason  error
	present bool
}

// Success wraps a present value.
func Success[T any](v T) Attempt[T] {
	return Attempt[T]{value: v, present: true}
}

// Failure creates an absence with the given reason.
// A nil reason is replaced by ErrAbsent.
func Failure[T any](reason error) Attempt[T] {
	if reason == nil {
		reason = ErrAbsent
	}
	return Attempt[T]{reason: reason}
}

// IsSuccess returns true if a value is present.
func (a Attempt[T]) IsSuccess() bool {
	return a.present
}

// Get returns the value and whether it is present.
func (a Attempt[T]) Get() (T, bool) {
	return a.value, a.present
}

// Err returns the reason for absence, or nil if a value is present.
func (a Attempt[T]) Err() error {
	if a.present {
		return nil
	}
	if a.reason == nil {
		return ErrAbsent
	}
	return a.reason
}

// OrElse returns the value if present, otherwise fallback.
func (a Attempt[T]) OrElse(fallback T) T {
	if a.present {
		return a.value
	}
	return fallback
}

// Filter keeps the value only if pred accepts it. Rejected values become an
// absence whose reason is produced by reason.
func (a Attempt[T]) Filter(pred func(T) bool, reason func(T) error) Attempt[T] {
	if !a.present || pred(a.value) {
		return a
	}
	return Failure[T](reason(a.value))
}

// Map transforms a present value. Absences pass through with their reason.
func Map[T, U any](a Attempt[T], fn func(T) U) Attempt[U] {
	if !a.present {
		return Failure[U](a.Err())
	}
	return Success(fn(a.value))
}

// FlatMap chains an operation that may itself be absent.
func FlatMap[T, U any](a Attempt[T], fn func(T) Attempt[U]) Attempt[U] {
	if !a.present {
		return Failure[U](a.Err())
	}
	return fn(a.value)
}
