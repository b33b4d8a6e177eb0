package tabpage

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leg100/tabpage/internal/resource"
)

// Screen is a child presented under a tab. A screen is identified by its
// pointer: the same screen may appear more than once in a controller.
type Screen struct {
	tea.Model

	ID    resource.ID
	Title string
}

func NewScreen(title string, model tea.Model) *Screen {
	return &Screen{
		Model: model,
		ID:    resource.NewID(resource.Screen),
		Title: title,
	}
}

// screenBadge is implemented by screen models that report a badge to render
// alongside their title in the tab bar.
type screenBadge interface {
	TabBadge() string
}
