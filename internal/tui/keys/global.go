package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type global struct {
	Back         key.Binding
	ToggleTabBar key.Binding
	Position     key.Binding
	TogglePop    key.Binding
	Help         key.Binding
	Quit         key.Binding
}

var Global = global{
	Back: key.NewBinding(
		key.WithKeys("esc", "`"),
		key.WithHelp("esc", "back"),
	),
	ToggleTabBar: key.NewBinding(
		key.WithKeys("H"),
		key.WithHelp("H", "hide/show tabs"),
	),
	Position: key.NewBinding(
		key.WithKeys("P"),
		key.WithHelp("P", "move tabs"),
	),
	TogglePop: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "toggle swipe back"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("^c", "exit"),
	),
}
