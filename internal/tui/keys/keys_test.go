package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
)

func Test_keyMapToSlice(t *testing.T) {
	type keymap struct {
		Up   key.Binding
		Down key.Binding
		Off  key.Binding
	}
	km := keymap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Off: key.NewBinding(
			key.WithKeys("x"),
			key.WithDisabled(),
		),
	}

	got := KeyMapToSlice(km)
	assert.Equal(t, []key.Binding{km.Up, km.Down}, got)
}

func Test_keyMapToSlice_NotStruct(t *testing.T) {
	assert.Nil(t, KeyMapToSlice("tab"))
}

func TestGlobalAndNavigationBindings(t *testing.T) {
	assert.Len(t, KeyMapToSlice(Global), 6)
	assert.Len(t, KeyMapToSlice(Navigation), 4)
}
