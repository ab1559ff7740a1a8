package errordisplay

import (
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/opserr/internal/attempt"
	"github.com/thenoetrevino/opserr/internal/config"
	"github.com/thenoetrevino/opserr/internal/opserr"
	"github.com/thenoetrevino/opserr/internal/store"
)

func newViewModel(t *testing.T) *opserr.ViewModel {
	t.Helper()
	cfg := config.DefaultErrorDisplay()
	st := store.NewDispatchStore(cfg.PathSeparator, opserr.NewReducer())
	return opserr.NewViewModel(st, opserr.NewDispatchModel(st, cfg), cfg)
}

// receive runs cmd and fails the test if it does not produce a message.
func receive(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)

	msgs := make(chan tea.Msg, 1)
	go func() { msgs <- cmd() }()

	select {
	case msg := <-msgs:
		return msg
	case <-time.After(time.Second):
		t.Fatal("command did not produce a message")
		return nil
	}
}

func TestComponent_HiddenWithoutError(t *testing.T) {
	c := New(Props{ViewModel: newViewModel(t)})

	assert.Empty(t, c.Render())
	assert.False(t, c.Enabled())
}

func TestComponent_RendersErrorMessage(t *testing.T) {
	vm := newViewModel(t)
	c := New(Props{ViewModel: vm})
	cmd := c.Init()
	defer c.Unmount()

	vm.OperationErrorTrigger()(errors.New("could not save task"))

	model, next := c.Update(receive(t, cmd))
	assert.Same(t, c, model)
	assert.NotNil(t, next, "component keeps listening for state")

	assert.True(t, c.Enabled())
	assert.Contains(t, c.Render(), "could not save task")
}

func TestComponent_KeepsOnlyLatestPendingState(t *testing.T) {
	vm := newViewModel(t)
	c := New(Props{ViewModel: vm})
	cmd := c.Init()
	defer c.Unmount()

	trigger := vm.OperationErrorTrigger()
	trigger(errors.New("first"))
	trigger(errors.New("second"))

	c.Update(receive(t, cmd))

	assert.Contains(t, c.Render(), "second")
	assert.NotContains(t, c.Render(), "first")
}

func TestComponent_HidesAfterErrorIsCleared(t *testing.T) {
	vm := newViewModel(t)
	c := New(Props{ViewModel: vm})
	cmd := c.Init()
	defer c.Unmount()

	trigger := vm.OperationErrorTrigger()
	trigger(errors.New("boom"))
	_, cmd = c.Update(receive(t, cmd))
	require.True(t, c.Enabled())

	trigger(nil)
	c.Update(receive(t, cmd))

	assert.False(t, c.Enabled())
	assert.Empty(t, c.Render())
}

func TestComponent_CustomDisplayComponent(t *testing.T) {
	vm := newViewModel(t)
	var seen []attempt.Attempt[error]
	c := New(Props{
		ViewModel: vm,
		DisplayComponent: func(err attempt.Attempt[error]) string {
			seen = append(seen, err)
			return "custom content"
		},
	})
	cmd := c.Init()
	defer c.Unmount()

	vm.OperationErrorTrigger()(errors.New("boom"))
	c.Update(receive(t, cmd))

	assert.Contains(t, c.Render(), "custom content")
	require.NotEmpty(t, seen)
	assert.True(t, seen[len(seen)-1].IsSuccess())
}

// recordingSelector captures the enabled flag it was asked about.
type recordingSelector struct {
	enabled []bool
}

func (s *recordingSelector) Identity(enabled bool) attempt.Attempt[Identity] {
	s.enabled = append(s.enabled, enabled)
	return attempt.Success(Identity{Class: "custom", Style: lipgloss.NewStyle()})
}

func (s *recordingSelector) ContainerIdentity(bool) attempt.Attempt[Identity] {
	return attempt.Success(Identity{Class: "custom-container", Style: lipgloss.NewStyle()})
}

func TestComponent_CustomIdentityProvider(t *testing.T) {
	vm := newViewModel(t)
	selector := &recordingSelector{}
	c := New(Props{
		ViewModel:        vm,
		IdentityProvider: &IdentityProvider{Error: selector},
	})
	cmd := c.Init()
	defer c.Unmount()

	c.Render()
	vm.OperationErrorTrigger()(errors.New("boom"))
	c.Update(receive(t, cmd))

	assert.Equal(t, "boom", c.Render())
	assert.Equal(t, []bool{false, true}, selector.enabled)
}

func TestComponent_NilSelectorFallsBackToDefault(t *testing.T) {
	vm := newViewModel(t)
	c := New(Props{ViewModel: vm, IdentityProvider: &IdentityProvider{}})

	assert.Equal(t, DefaultSelector(), c.selector())
}

func TestComponent_IgnoresStateForOtherComponents(t *testing.T) {
	vm := newViewModel(t)
	c := New(Props{ViewModel: vm})
	other := New(Props{ViewModel: vm})

	state := store.NewSnapshot(".").Set("error.value", errors.New("boom"))
	_, cmd := c.Update(StateMsg{Snapshot: state, target: other})

	assert.Nil(t, cmd)
	assert.False(t, c.Enabled())
}

// lifecycleViewModel counts lifecycle calls.
type lifecycleViewModel struct {
	*opserr.ViewModel
	initialized   int
	deinitialized int
}

func (vm *lifecycleViewModel) Initialize()   { vm.initialized++ }
func (vm *lifecycleViewModel) Deinitialize() { vm.deinitialized++; vm.ViewModel.Deinitialize() }

func TestComponent_MountAndUnmount(t *testing.T) {
	vm := &lifecycleViewModel{ViewModel: newViewModel(t)}
	c := New(Props{ViewModel: vm})

	cmd := c.Init()
	c.Mount()
	assert.Equal(t, 1, vm.initialized)

	c.Unmount()
	c.Unmount()
	assert.Equal(t, 1, vm.deinitialized)

	// A pending wait finishes once the component is unmounted.
	assert.Nil(t, receive(t, cmd))
}

func TestDefaultSelector(t *testing.T) {
	s := DefaultSelector()

	container, ok := s.ContainerIdentity(true).Get()
	require.True(t, ok)
	assert.Equal(t, ContainerClass, container.Class)

	shown, _ := s.Identity(true).Get()
	assert.Equal(t, DisplayClass, shown.Class)
	assert.False(t, shown.Hidden)

	hidden, _ := s.Identity(false).Get()
	assert.Equal(t, HiddenClass, hidden.Class)
	assert.True(t, hidden.Hidden)
}

func TestMarkdownDisplay(t *testing.T) {
	display := MarkdownDisplay(40)

	assert.Empty(t, display(attempt.Failure[error](nil)))
	assert.Contains(t, display(attempt.Success[error](errors.New("upload **failed**"))), "failed")
}
