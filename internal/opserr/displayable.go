package opserr

import (
	"github.com/thenoetrevino/opserr/internal/attempt"
	"github.com/thenoetrevino/opserr/internal/store"
)

// Displayable is implemented by a host that presents errors itself (a
// toast or alert system) instead of using the dedicated display component.
type Displayable interface {
	ErrorModel() Model
	Subscription() *store.Subscription
	DisplayErrorMessage(err error)
}

// SetupBindings forwards every error to d.DisplayErrorMessage and then
// deletes it from state right away, otherwise it would be displayed again
// whenever the state changes. Call it once while setting up d.
func SetupBindings(d Displayable) {
	model := d.ErrorModel()
	trigger := model.OperationErrorTrigger()

	sub := model.OperationErrorStream().Subscribe(func(a attempt.Attempt[error]) {
		err, ok := a.Get()
		if !ok {
			return
		}
		d.DisplayErrorMessage(err)
		trigger(nil)
	})

	d.Subscription().Add(sub.Unsubscribe)
}
