// Package errordisplay is a bubbletea component that shows the current
// operation error of a view model. Deleting the error after it has been
// shown is the view model's job (see opserr.ViewModel).
package errordisplay

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/opserr/internal/attempt"
	"github.com/thenoetrevino/opserr/internal/opserr"
	"github.com/thenoetrevino/opserr/internal/store"
)

// ViewModel is what the component needs from its view model.
type ViewModel interface {
	Initialize()
	Deinitialize()
	StateStream() store.Observable[attempt.Attempt[store.Snapshot]]
	ErrorForState(state store.Snapshot) attempt.Attempt[error]
}

var _ ViewModel = (*opserr.ViewModel)(nil)

// DisplayFunc renders the error content. It replaces the default, which is
// the error message.
type DisplayFunc func(err attempt.Attempt[error]) string

// Props configures a Component.
type Props struct {
	ViewModel        ViewModel
	DisplayComponent DisplayFunc
	IdentityProvider *IdentityProvider
}

// StateMsg carries a state snapshot from the view model to the component
// that subscribed for it.
type StateMsg struct {
	Snapshot store.Snapshot
	target   *Component
}

// Component renders the error held in the state it caches from the view
// model's state stream.
type Component struct {
	props        Props
	state        store.Snapshot
	subscription *store.Subscription
	updates      chan store.Snapshot
	done         chan struct{}
	mounted      bool
}

// New creates an unmounted component.
func New(props Props) *Component {
	return &Component{
		props:        props,
		subscription: store.NewSubscription(),
		updates:      make(chan store.Snapshot, 1),
		done:         make(chan struct{}),
	}
}

// Init mounts the component and starts waiting for state.
// Implements tea.Model interface.
func (c *Component) Init() tea.Cmd {
	c.Mount()
	return c.waitForState()
}

// Mount initializes the view model and subscribes to its state stream.
// Calling it again has no effect.
func (c *Component) Mount() {
	if c.mounted {
		return
	}
	c.mounted = true

	c.props.ViewModel.Initialize()
	sub := c.props.ViewModel.StateStream().Subscribe(func(a attempt.Attempt[store.Snapshot]) {
		if s, ok := a.Get(); ok {
			c.push(s)
		}
	})
	c.subscription.Add(sub.Unsubscribe)
}

// Unmount deinitializes the view model and releases every subscription.
func (c *Component) Unmount() {
	if !c.mounted {
		return
	}
	c.mounted = false

	c.props.ViewModel.Deinitialize()
	c.subscription.Unsubscribe()
	close(c.done)
}

// push hands s to the bubbletea loop, replacing a snapshot that has not
// been picked up yet. Store delivery is serialized, so there is a single
// sender at a time.
func (c *Component) push(s store.Snapshot) {
	for {
		select {
		case <-c.done:
			return
		case c.updates <- s:
			return
		default:
			select {
			case <-c.updates:
			default:
			}
		}
	}
}

func (c *Component) waitForState() tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-c.updates:
			return StateMsg{Snapshot: s, target: c}
		case <-c.done:
			return nil
		}
	}
}

// Update caches state snapshots meant for this component.
// Implements tea.Model interface.
func (c *Component) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(StateMsg); ok && msg.target == c {
		c.state = msg.Snapshot
		return c, c.waitForState()
	}
	return c, nil
}

// View renders the component.
// Implements tea.Model interface.
func (c *Component) View() tea.View {
	var view tea.View
	view.Content = c.Render()
	return view
}

// Enabled reports whether the cached state holds an error.
func (c *Component) Enabled() bool {
	return c.props.ViewModel.ErrorForState(c.state).IsSuccess()
}

// Render returns the container wrapping the error content, or an empty
// string while there is nothing to show.
func (c *Component) Render() string {
	err := c.props.ViewModel.ErrorForState(c.state)
	enabled := err.IsSuccess()

	selector := c.selector()
	container := selector.ContainerIdentity(enabled).OrElse(Identity{Class: ContainerClass})
	identity := selector.Identity(enabled).OrElse(Identity{Class: HiddenClass, Hidden: true})

	if identity.Hidden || container.Hidden {
		return ""
	}

	content := identity.Style.Render(c.createDisplayContent(err))
	return container.Style.Render(content)
}

func (c *Component) createDisplayContent(err attempt.Attempt[error]) string {
	if c.props.DisplayComponent != nil {
		return c.props.DisplayComponent(err)
	}
	return attempt.Map(err, func(e error) string { return e.Error() }).OrElse("")
}

func (c *Component) selector() Selector {
	if p := c.props.IdentityProvider; p != nil && p.Error != nil {
		return p.Error
	}
	return DefaultSelector()
}
