package store

// Observable is a lazy stream of values. Nothing is observed until Subscribe
// is called, and each call creates an independent subscription.
type Observable[T any] func(observer func(T)) *Subscription

// Subscribe starts delivering values to observer.
func (o Observable[T]) Subscribe(observer func(T)) *Subscription {
	return o(observer)
}

// Map derives an observable whose values are fn applied to each value of o.
func Map[T, U any](o Observable[T], fn func(T) U) Observable[U] {
	return func(observer func(U)) *Subscription {
		return o.Subscribe(func(v T) {
			observer(fn(v))
		})
	}
}
