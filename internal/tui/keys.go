package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/opserr/internal/config"
)

// keyMap holds the demo key bindings built from the configured key mappings
type keyMap struct {
	Produce   key.Binding
	Malformed key.Binding
	Clear     key.Binding
	Quit      key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Produce: key.NewBinding(
			key.WithKeys(km.ProduceError),
			key.WithHelp(km.ProduceError, "fail operation"),
		),
		Malformed: key.NewBinding(
			key.WithKeys(km.InjectMalformed),
			key.WithHelp(km.InjectMalformed, "inject non-error"),
		),
		Clear: key.NewBinding(
			key.WithKeys(km.ClearError),
			key.WithHelp(km.ClearError, "clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Produce, k.Malformed, k.Clear, k.Quit}
}

// FullHelp returns the bindings grouped in columns
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
