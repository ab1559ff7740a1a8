package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/opserr/internal/opserr"
	"github.com/thenoetrevino/opserr/internal/store"
	"github.com/thenoetrevino/opserr/internal/tui/state"
)

// toastQueueSize bounds the errors waiting to become toasts. Delivery can
// happen on the bubbletea goroutine, so the toaster must never block on a
// full queue.
const toastQueueSize = 32

// toastMsg asks the model to show err as a toast notification
type toastMsg struct {
	err error
}

// toastExpiredMsg removes the toast with the given notification id
type toastExpiredMsg struct {
	id int
}

// toaster presents operation errors as toast notifications. It hands
// errors over to the bubbletea loop and leaves clearing the error slot to
// opserr.SetupBindings.
type toaster struct {
	model        opserr.Model
	subscription *store.Subscription
	errors       chan error
	done         chan struct{}
	closeOnce    sync.Once
}

var _ opserr.Displayable = (*toaster)(nil)

func newToaster(model opserr.Model) *toaster {
	return &toaster{
		model:        model,
		subscription: store.NewSubscription(),
		errors:       make(chan error, toastQueueSize),
		done:         make(chan struct{}),
	}
}

func (t *toaster) ErrorModel() opserr.Model {
	return t.model
}

func (t *toaster) Subscription() *store.Subscription {
	return t.subscription
}

func (t *toaster) DisplayErrorMessage(err error) {
	select {
	case t.errors <- err:
	case <-t.done:
	default:
		slog.Warn("toast queue full, dropping error", "error", err)
	}
}

// wait returns a command that delivers the next queued error
func (t *toaster) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case err := <-t.errors:
			return toastMsg{err: err}
		case <-t.done:
			return nil
		}
	}
}

func (t *toaster) close() {
	t.closeOnce.Do(func() {
		t.subscription.Unsubscribe()
		close(t.done)
	})
}

// toastFor describes err as a toast. Operation errors get the operation in
// the title and their id on the detail line.
func toastFor(err error) state.Notification {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return state.Notification{
			Title:   opErr.Operation + " failed",
			Detail:  "operation " + opErr.ID.String(),
			Message: fmt.Sprintf("attempt %d", opErr.Attempt),
		}
	}
	return state.Notification{
		Title:   "Operation failed",
		Message: err.Error(),
	}
}
