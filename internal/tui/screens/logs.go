package screens

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/tabpage/internal/logging"
	"github.com/leg100/tabpage/internal/resource"
	"github.com/leg100/tabpage/internal/tui"
	"github.com/muesli/reflow/truncate"
)

const timeFormat = "15:04:05"

// Logs lists log messages, newest first, as they are emitted.
type Logs struct {
	messages []logging.Message
	viewport viewport.Model
	width    int
}

// NewLogs constructs the screen with the messages logged thus far.
func NewLogs(existing []logging.Message) *Logs {
	m := &Logs{
		messages: slices.Clone(existing),
		viewport: viewport.New(0, 0),
	}
	slices.SortFunc(m.messages, logging.BySerialDesc)
	return m
}

func (m *Logs) Init() tea.Cmd {
	return nil
}

func (m *Logs) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resource.Event[logging.Message]:
		m.messages = append([]logging.Message{msg.Payload}, m.messages...)
		m.render()
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height
		m.render()
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Logs) View() string {
	if m.viewport.Width == 0 {
		return m.lines()
	}
	return m.viewport.View()
}

// TabBadge reports the number of messages.
func (m *Logs) TabBadge() string {
	return strconv.Itoa(len(m.messages))
}

// Len returns the number of messages listed.
func (m *Logs) Len() int {
	return len(m.messages)
}

func (m *Logs) render() {
	m.viewport.SetContent(m.lines())
}

var (
	logTimeStyle = tui.Regular.Copy().Foreground(tui.LightGrey)
	logAttrStyle = tui.Regular.Copy().Foreground(tui.LogRecordAttributeKey)
)

func levelStyle(level string) lipgloss.Style {
	switch level {
	case "DEBUG":
		return tui.Bold.Copy().Foreground(tui.DebugLogLevel)
	case "WARN":
		return tui.Bold.Copy().Foreground(tui.WarnLogLevel)
	case "ERROR":
		return tui.Bold.Copy().Foreground(tui.ErrorLogLevel)
	}
	return tui.Bold.Copy().Foreground(tui.InfoLogLevel)
}

func (m *Logs) lines() string {
	lines := make([]string, len(m.messages))
	for i, msg := range m.messages {
		attrs := make([]string, len(msg.Attributes))
		for j, attr := range msg.Attributes {
			attrs[j] = logAttrStyle.Render(attr.Key+"=") + attr.Value
		}
		line := fmt.Sprintf("%s %s %s",
			logTimeStyle.Render(msg.Time.Format(timeFormat)),
			levelStyle(msg.Level).Render(fmt.Sprintf("%-5s", msg.Level)),
			msg.Message,
		)
		if len(attrs) > 0 {
			line += " " + strings.Join(attrs, " ")
		}
		if m.width > 0 {
			line = truncate.StringWithTail(line, uint(m.width), "…")
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
