package screens

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leg100/tabpage/internal/tui"
	"github.com/leg100/tabpage/internal/tui/swipeback"
	"github.com/muesli/reflow/wordwrap"
)

// Detail is a page pushed on top of the tab page. The user returns from it
// by swiping back from its left edge, unless swiping back is disabled.
type Detail struct {
	swipeback.Toggle

	title    string
	body     string
	gesture  *swipeback.Recognizer
	viewport viewport.Model
}

func NewDetail(title, body string) *Detail {
	d := &Detail{
		title:    title,
		body:     body,
		viewport: viewport.New(0, 0),
	}
	d.gesture = swipeback.New(d)
	return d
}

func (m *Detail) AddPopGesture(s swipeback.Surface) {
	m.gesture.Attach(s)
}

func (m *Detail) Init() tea.Cmd {
	return nil
}

func (m *Detail) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if handled, cmd := m.gesture.Handle(msg); handled {
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height
		m.viewport.SetContent(wordwrap.String(m.body, max(1, msg.Width-2)))
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

var detailStyle = tui.Regular.Copy().Padding(0, 1)

func (m *Detail) View() string {
	if m.viewport.Width == 0 {
		return detailStyle.Render(m.body)
	}
	return m.viewport.View()
}

func (m *Detail) Title() string {
	return m.title
}
