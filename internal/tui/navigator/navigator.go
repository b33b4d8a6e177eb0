package navigator

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leg100/tabpage/internal/logging"
	"github.com/leg100/tabpage/internal/tui/swipeback"
)

// Navigator navigates the user from page to page. Pages are kept in a stack:
// going somewhere pushes a page, going back pops it.
type Navigator struct {
	// history tracks the pages a user has visited, in LIFO order.
	history []tea.Model
	logger  logging.Interface
	// navigator needs to know width and height to size new pages
	width  int
	height int
}

func New(first tea.Model, logger logging.Interface) *Navigator {
	if logger == nil {
		logger = logging.Discard
	}
	return &Navigator{
		history: []tea.Model{first},
		logger:  logger,
	}
}

func (n *Navigator) SetSize(w, h int) {
	n.width = w
	n.height = h
}

func (n *Navigator) Current() tea.Model {
	return n.history[len(n.history)-1]
}

// Depth returns the number of pages in the history.
func (n *Navigator) Depth() int {
	return len(n.history)
}

// Update handles navigation messages, returning true if the message was
// handled.
func (n *Navigator) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case GoMsg:
		return true, n.Push(msg.Model)
	case swipeback.PopMsg:
		n.GoBack()
		return true, nil
	}
	return false, nil
}

// Push makes a page the current page, returning its initialization command
// along with any command resulting from informing it of its size.
func (n *Navigator) Push(m tea.Model) tea.Cmd {
	if m == nil {
		return nil
	}
	n.history = append(n.history, m)
	n.logger.Debug("navigated to page", "depth", len(n.history))

	cmds := []tea.Cmd{m.Init()}
	if n.width > 0 || n.height > 0 {
		cmds = append(cmds, n.UpdateCurrent(tea.WindowSizeMsg{Width: n.width, Height: n.height}))
	}
	return tea.Batch(cmds...)
}

// GoBack pops the current page, returning false if the current page is the
// first page.
func (n *Navigator) GoBack() bool {
	if len(n.history) == 1 {
		// Silently refuse to go back further than first page.
		return false
	}
	n.history = n.history[:len(n.history)-1]
	n.logger.Debug("navigated back", "depth", len(n.history))
	return true
}

func (n *Navigator) UpdateCurrent(msg tea.Msg) tea.Cmd {
	updated, cmd := n.Current().Update(msg)
	n.history[len(n.history)-1] = updated
	return cmd
}

// UpdateAll sends a message to every page in the history.
func (n *Navigator) UpdateAll(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(n.history))
	for i, m := range n.history {
		n.history[i], cmds[i] = m.Update(msg)
	}
	return tea.Batch(cmds...)
}
