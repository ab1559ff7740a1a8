package opserr

import (
	"log/slog"
	"reflect"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/thenoetrevino/opserr/internal/attempt"
	"github.com/thenoetrevino/opserr/internal/config"
	"github.com/thenoetrevino/opserr/internal/store"
)

// Option configures a ViewModel.
type Option func(*ViewModel)

// WithClock sets the clock used for deletion timers.
func WithClock(c clock.Clock) Option {
	return func(vm *ViewModel) {
		vm.clock = c
	}
}

// ViewModel backs the dedicated error display component. It passes the
// error channels of its model through and deletes each displayed error
// once the display duration has elapsed.
type ViewModel struct {
	st           store.Store
	model        DisplayModel
	duration     time.Duration
	clock        clock.Clock
	subscription *store.Subscription

	mu                sync.Mutex
	deletionStarted   bool
	pendingDeletion   *clock.Timer
	pendingDeletionOf error
}

var _ DisplayModel = (*ViewModel)(nil)

// NewViewModel creates a view model over model, which must read from st.
func NewViewModel(st store.Store, model DisplayModel, cfg config.ErrorDisplay, opts ...Option) *ViewModel {
	vm := &ViewModel{
		st:           st,
		model:        model,
		duration:     cfg.DisplayDuration(),
		clock:        clock.New(),
		subscription: store.NewSubscription(),
	}
	for _, opt := range opts {
		opt(vm)
	}
	return vm
}

// Initialize is a lifecycle hook called when the owning component mounts.
func (vm *ViewModel) Initialize() {}

// Deinitialize releases every subscription owned by the view model and
// cancels a pending deletion. Writes already applied are not undone.
func (vm *ViewModel) Deinitialize() {
	vm.subscription.Unsubscribe()
}

// Subscription returns the set released by Deinitialize.
func (vm *ViewModel) Subscription() *store.Subscription {
	return vm.subscription
}

// SubstatePath returns the path of the substate holding the error slot.
func (vm *ViewModel) SubstatePath() string {
	return vm.model.SubstatePath()
}

// OperationErrorTrigger returns the model's write channel.
func (vm *ViewModel) OperationErrorTrigger() Trigger {
	return vm.model.OperationErrorTrigger()
}

// OperationErrorStream returns the model's read channel.
func (vm *ViewModel) OperationErrorStream() store.Observable[attempt.Attempt[error]] {
	return vm.model.OperationErrorStream()
}

// ErrorForState resolves the error slot from a cached snapshot.
func (vm *ViewModel) ErrorForState(state store.Snapshot) attempt.Attempt[error] {
	return vm.model.ErrorForState(state)
}

// HasError reports whether state holds a displayable error.
func (vm *ViewModel) HasError(state store.Snapshot) bool {
	return vm.ErrorForState(state).IsSuccess()
}

// StateStream emits the branch of state containing the error slot, or an
// absence when that substate does not exist.
func (vm *ViewModel) StateStream() store.Observable[attempt.Attempt[store.Snapshot]] {
	path := vm.model.SubstatePath()
	return store.Map(store.StateStream(vm.st), func(s store.Snapshot) attempt.Attempt[store.Snapshot] {
		return s.Branch(path)
	})
}

// InitializeErrorDeletionStream clears every displayed error after the
// display duration. Only call this when the dedicated display component is
// used; Displayable bindings delete errors on their own.
//
// A newer error cancels the pending deletion and restarts the timer. The
// same error re-emitted by an unrelated state change keeps its timer.
func (vm *ViewModel) InitializeErrorDeletionStream() {
	vm.mu.Lock()
	if vm.deletionStarted {
		vm.mu.Unlock()
		slog.Warn("error deletion stream already initialized",
			"path", vm.model.SubstatePath())
		return
	}
	vm.deletionStarted = true
	vm.mu.Unlock()

	trigger := vm.OperationErrorTrigger()
	sub := vm.OperationErrorStream().Subscribe(func(a attempt.Attempt[error]) {
		if err, ok := a.Get(); ok {
			vm.scheduleDeletion(err, trigger)
		}
	})

	vm.subscription.Add(sub.Unsubscribe)
	vm.subscription.Add(vm.cancelDeletion)
}

func (vm *ViewModel) scheduleDeletion(err error, trigger Trigger) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if vm.pendingDeletion != nil {
		if sameError(vm.pendingDeletionOf, err) {
			return
		}
		vm.pendingDeletion.Stop()
	}

	// The callback cannot observe the timer before it is stored below
	// because it has to take vm.mu first.
	var timer *clock.Timer
	timer = vm.clock.AfterFunc(vm.duration, func() {
		vm.mu.Lock()
		if vm.pendingDeletion != timer {
			vm.mu.Unlock()
			return
		}
		vm.pendingDeletion = nil
		vm.pendingDeletionOf = nil
		vm.mu.Unlock()

		slog.Debug("deleting displayed error", "error", err)
		trigger(nil)
	})
	vm.pendingDeletion = timer
	vm.pendingDeletionOf = err

	slog.Debug("error deletion scheduled",
		"error", err,
		"delay", vm.duration)
}

func (vm *ViewModel) cancelDeletion() {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if vm.pendingDeletion != nil {
		vm.pendingDeletion.Stop()
		vm.pendingDeletion = nil
		vm.pendingDeletionOf = nil
	}
}

// sameError compares error identity without panicking on error types that
// are not comparable.
func sameError(a, b error) bool {
	if a == nil || b == nil {
		return a == b
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
