package tabbar

import (
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/tabpage/internal/tui"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const (
	// Rows is the height of a fully visible tab bar: a row of titles and a
	// rule.
	Rows = 2
	// MaxTitleWidth is the width beyond which titles are truncated.
	MaxTitleWidth = 24

	frameInterval = 50 * time.Millisecond
	ellipsis      = "…"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Item is a tab header.
type Item struct {
	Title string
	// Badge is optional text rendered alongside the title.
	Badge string
}

// FrameMsg advances a hide/show animation by one frame.
type FrameMsg struct {
	id  int
	tag int
}

// Model is a horizontal strip of selectable items. It knows nothing of what
// the items represent: the owner decides what a click on an item means.
type Model struct {
	items    []Item
	selected int
	position Position
	width    int

	// hidden is the target state; visible is the number of rows currently
	// shown, which lags behind hidden while animating.
	hidden  bool
	visible int

	// id distinguishes frames of one bar from another; tag is bumped on each
	// hide/show so frames from a superseded animation are ignored.
	id  int
	tag int
}

func New() *Model {
	return &Model{
		selected: -1,
		visible:  Rows,
		id:       nextID(),
	}
}

func (m *Model) Items() []Item {
	return m.items
}

func (m *Model) SetItems(items []Item) {
	m.items = items
	if m.selected >= len(items) {
		m.selected = -1
	}
}

// Selected returns the index of the selected item, or -1 if no item is
// selected.
func (m *Model) Selected() int {
	return m.selected
}

// SetSelected highlights the item at index. An out of range index clears the
// selection.
func (m *Model) SetSelected(index int) {
	if index < 0 || index >= len(m.items) {
		m.selected = -1
		return
	}
	m.selected = index
}

func (m *Model) Position() Position {
	return m.position
}

func (m *Model) SetPosition(p Position) {
	m.position = p
}

func (m *Model) SetWidth(w int) {
	m.width = w
}

// Hidden reports whether the bar is hidden, or is in the process of hiding.
func (m *Model) Hidden() bool {
	return m.hidden
}

// Height returns the number of rows the bar currently occupies.
func (m *Model) Height() int {
	return m.visible
}

// Animating reports whether a hide/show animation is in progress.
func (m *Model) Animating() bool {
	return m.visible != m.target()
}

// SetHidden hides or shows the bar. Without animation the change is
// immediate and nil is returned. With animation the bar gains or loses one
// row per frame and the returned command schedules the first frame.
func (m *Model) SetHidden(hidden, animated bool) tea.Cmd {
	m.hidden = hidden
	m.tag++
	if !animated {
		m.visible = m.target()
		return nil
	}
	return m.nextFrame()
}

// Update handles animation frames. Frames belonging to another bar or to a
// superseded animation are ignored.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.id != m.id || frame.tag != m.tag {
		return nil
	}
	switch target := m.target(); {
	case m.visible > target:
		m.visible--
	case m.visible < target:
		m.visible++
	}
	return m.nextFrame()
}

func (m *Model) target() int {
	if m.hidden {
		return 0
	}
	return Rows
}

func (m *Model) nextFrame() tea.Cmd {
	if !m.Animating() {
		return nil
	}
	id, tag := m.id, m.tag
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return FrameMsg{id: id, tag: tag}
	})
}

// ItemAt returns the index of the item rendered at column x, relative to the
// left edge of the bar.
func (m *Model) ItemAt(x int) (int, bool) {
	if x < 0 {
		return 0, false
	}
	var offset int
	for i, item := range m.items {
		offset += headerWidth(item)
		if x < offset {
			return i, true
		}
	}
	return 0, false
}

var (
	activeTabStyle   = tui.Bold.Copy().Foreground(tui.ActiveTabColor)
	inactiveTabStyle = tui.Regular.Copy().Foreground(tui.InactiveTabColor)
)

func title(item Item) string {
	return truncate.StringWithTail(item.Title, MaxTitleWidth, ellipsis)
}

// headerWidth is the rendered width of an item: the padded title plus any
// badge and its trailing padding.
func headerWidth(item Item) int {
	w := runewidth.StringWidth(title(item)) + 2
	if item.Badge != "" {
		w += runewidth.StringWidth(item.Badge) + 1
	}
	return w
}

func (m *Model) View() string {
	if m.visible == 0 {
		return ""
	}
	var (
		headings []string
		rules    []string
		used     int
	)
	for i, item := range m.items {
		var (
			style    lipgloss.Style
			ruleChar string
		)
		if i == m.selected {
			style = activeTabStyle
			ruleChar = "━"
		} else {
			style = inactiveTabStyle
			ruleChar = "─"
		}
		heading := style.Copy().Padding(0, 1).Render(title(item))
		if item.Badge != "" {
			heading += style.Copy().Bold(false).Padding(0, 1, 0, 0).Render(item.Badge)
		}
		headings = append(headings, heading)
		rules = append(rules, style.Render(strings.Repeat(ruleChar, headerWidth(item))))
		used += headerWidth(item)
	}

	// Populate remaining space to the right of the headers with a faint rule.
	remaining := max(0, m.width-used)
	headings = append(headings, strings.Repeat(" ", remaining))
	rules = append(rules, inactiveTabStyle.Render(strings.Repeat("─", remaining)))

	headingRow := lipgloss.JoinHorizontal(lipgloss.Top, headings...)
	if m.visible < Rows {
		// Mid-animation: only the titles remain.
		return headingRow
	}
	ruleRow := lipgloss.JoinHorizontal(lipgloss.Top, rules...)
	if m.position == Bottom {
		return lipgloss.JoinVertical(lipgloss.Left, ruleRow, headingRow)
	}
	return lipgloss.JoinVertical(lipgloss.Left, headingRow, ruleRow)
}
