package errordisplay

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/opserr/internal/attempt"
	"github.com/thenoetrevino/opserr/internal/tui/theme"
)

// Class names of the default identities.
const (
	ContainerClass = "error-display-container display-container"
	DisplayClass   = "error-display"
	HiddenClass    = "error-display-hidden error-display"
)

// Identity names and styles one element of the error display.
// Hidden elements render nothing.
type Identity struct {
	Class  string
	Style  lipgloss.Style
	Hidden bool
}

// Selector chooses identities depending on whether there is an error to
// display.
type Selector interface {
	Identity(enabled bool) attempt.Attempt[Identity]
	ContainerIdentity(enabled bool) attempt.Attempt[Identity]
}

// IdentityProvider supplies a custom selector. A nil Error falls back to
// DefaultSelector.
type IdentityProvider struct {
	Error Selector
}

type defaultSelector struct{}

// DefaultSelector returns the selector used when none is provided.
func DefaultSelector() Selector {
	return defaultSelector{}
}

func (defaultSelector) ContainerIdentity(bool) attempt.Attempt[Identity] {
	return attempt.Success(Identity{
		Class: ContainerClass,
		Style: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.ErrorBorder)).
			Padding(0, 1),
	})
}

func (defaultSelector) Identity(enabled bool) attempt.Attempt[Identity] {
	if !enabled {
		return attempt.Success(Identity{Class: HiddenClass, Hidden: true})
	}
	return attempt.Success(Identity{
		Class: DisplayClass,
		Style: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ErrorText)).
			Bold(true),
	})
}
