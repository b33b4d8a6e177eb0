package navigator

import tea "github.com/charmbracelet/bubbletea"

// GoMsg is an instruction to navigate to a page.
type GoMsg struct {
	Model tea.Model
}

// Go sends an instruction to navigate to a page.
func Go(m tea.Model) tea.Cmd {
	return func() tea.Msg {
		return GoMsg{Model: m}
	}
}
