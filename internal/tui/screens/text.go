package screens

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/tabpage/internal/tui"
	"github.com/leg100/tabpage/internal/tui/keys"
	"github.com/leg100/tabpage/internal/tui/navigator"
	"github.com/muesli/reflow/wordwrap"
)

// Text is a screen of word-wrapped text. Pressing enter opens the text in a
// detail page.
type Text struct {
	title    string
	body     string
	viewport viewport.Model
}

func NewText(title, body string) *Text {
	return &Text{
		title:    title,
		body:     body,
		viewport: viewport.New(0, 0),
	}
}

func (m *Text) Init() tea.Cmd {
	return nil
}

func (m *Text) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Navigation.Enter) {
			return m, navigator.Go(NewDetail(m.title, m.body))
		}
	case tea.WindowSizeMsg:
		// leave a column for the scrollbar
		m.viewport.Width = max(0, msg.Width-tui.ScrollbarWidth)
		m.viewport.Height = msg.Height
		m.viewport.SetContent(wordwrap.String(m.body, max(1, m.viewport.Width-1)))
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Text) View() string {
	if m.viewport.Width == 0 {
		return m.body
	}
	scrollbar := tui.Scrollbar(
		m.viewport.Height,
		m.viewport.TotalLineCount(),
		m.viewport.Height,
		m.viewport.YOffset,
	)
	if scrollbar == "" {
		return m.viewport.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.viewport.View(), scrollbar)
}

func (m *Text) HelpBindings() []key.Binding {
	return []key.Binding{keys.Navigation.Enter}
}
