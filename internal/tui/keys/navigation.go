package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type navigation struct {
	TabNext key.Binding
	TabPrev key.Binding
	TabJump key.Binding
	Enter   key.Binding
}

// Navigation returns key bindings for navigation.
var Navigation = navigation{
	TabNext: key.NewBinding(
		key.WithKeys("tab", "ctrl+pgdown"),
		key.WithHelp("tab", "next tab"),
	),
	TabPrev: key.NewBinding(
		key.WithKeys("shift+tab", "ctrl+pgup"),
		key.WithHelp("shift+tab", "previous tab"),
	),
	TabJump: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "go to tab"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
}
