package top

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"github.com/leg100/tabpage/internal/logging"
	"github.com/leg100/tabpage/internal/tui"
	"github.com/leg100/tabpage/internal/tui/keys"
	"github.com/leg100/tabpage/internal/tui/navigator"
	"github.com/leg100/tabpage/internal/tui/swipeback"
	"github.com/leg100/tabpage/internal/tui/tabpage"
	"github.com/leg100/tabpage/internal/version"
)

const (
	headerHeight         = 1
	horizontalRuleHeight = 1
	messageFooterHeight  = 1

	// bodySurface identifies the body in the pop gestures of pages.
	bodySurface = "body"
)

// popGesturer is implemented by pages the user may swipe back from.
type popGesturer interface {
	AddPopGesture(swipeback.Surface)
	InteractivePopDisabled() bool
	SetInteractivePopDisabled(bool)
}

type model struct {
	*navigator.Navigator

	logger logging.Interface

	width  int
	height int

	showHelp bool

	// Either an error or an informational message is rendered in the footer.
	err  error
	info string

	dump *os.File
}

func newModel(opts Options) (model, error) {
	var dump *os.File
	if opts.Debug {
		var err error
		dump, err = os.OpenFile("messages.log", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return model{}, fmt.Errorf("opening messages log: %w", err)
		}
	}
	logger := logging.Interface(logging.Discard)
	if opts.Logger != nil {
		logger = opts.Logger
	}
	return model{
		Navigator: navigator.New(opts.Page, logger),
		logger:    logger,
		dump:      dump,
	}, nil
}

func (m model) Init() tea.Cmd {
	return m.Current().Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.dump != nil {
		spew.Fdump(m.dump, msg)
	}

	if handled, cmd := m.Navigator.Update(msg); handled {
		m.attachPopGesture(m.Current())
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.SetSize(m.viewWidth(), m.viewHeight())

		cmd := m.UpdateAll(tea.WindowSizeMsg{
			Width:  m.viewWidth(),
			Height: m.viewHeight(),
		})
		m.attachPopGesture(m.Current())
		return m, cmd
	case tea.MouseMsg:
		// Translate to body coordinates, dropping events outside the body.
		msg.Y -= m.bodyTop()
		if msg.Y < 0 || msg.Y >= m.viewHeight() {
			return m, nil
		}
		return m, m.UpdateCurrent(msg)
	case tea.KeyMsg:
		// Pressing any key makes any info/error message in the footer disappear
		m.info = ""
		m.err = nil

		switch {
		case key.Matches(msg, keys.Global.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Global.Help):
			m.showHelp = !m.showHelp
			return m, nil
		case key.Matches(msg, keys.Global.Back):
			// <esc> closes help or goes back to last page
			if m.showHelp {
				m.showHelp = false
				return m, nil
			}
			return m, m.goBack()
		case key.Matches(msg, keys.Global.TogglePop):
			return m, m.togglePop()
		}
		if c, ok := m.Current().(*tabpage.Controller); ok {
			switch {
			case key.Matches(msg, keys.Global.ToggleTabBar):
				return m, c.SetTabBarHiddenAnimated(!c.TabBarHidden(), true)
			case key.Matches(msg, keys.Global.Position):
				c.SetTabBarPosition(c.TabBarPosition().Next())
				return m, tui.ReportInfo("moved tabs to the %s", c.TabBarPosition())
			}
		}
		// Send other keys to current page.
		return m, m.UpdateCurrent(msg)
	case tui.ErrorMsg:
		if msg.Error != nil {
			err := msg.Error
			msg := fmt.Sprintf(msg.Message, msg.Args...)

			// Both print error in footer as well as log it.
			m.err = fmt.Errorf("%s: %w", msg, err)
			m.logger.Error(msg, "error", err)
		}
		return m, nil
	case tui.InfoMsg:
		m.info = string(msg)
		return m, nil
	}
	// Send remaining msg types to all pages
	return m, m.UpdateAll(msg)
}

// goBack is the keyboard equivalent of swiping back, and likewise respects
// the page's opt-out.
func (m model) goBack() tea.Cmd {
	if g, ok := m.Current().(popGesturer); ok && g.InteractivePopDisabled() {
		return tui.ReportInfo("going back is disabled on this page")
	}
	if !m.GoBack() {
		return nil
	}
	m.attachPopGesture(m.Current())
	return nil
}

func (m model) togglePop() tea.Cmd {
	g, ok := m.Current().(popGesturer)
	if !ok {
		return nil
	}
	g.SetInteractivePopDisabled(!g.InteractivePopDisabled())
	if g.InteractivePopDisabled() {
		return tui.ReportInfo("swipe back disabled")
	}
	return tui.ReportInfo("swipe back enabled")
}

// attachPopGesture attaches the body to the page's pop gesture, if it has
// one. Attaching again merely updates the bounds.
func (m model) attachPopGesture(page tea.Model) {
	if g, ok := page.(popGesturer); ok {
		g.AddPopGesture(swipeback.Surface{
			ID:     bodySurface,
			Width:  m.viewWidth(),
			Height: m.viewHeight(),
		})
	}
}

var (
	titleStyle   = tui.TitleStyle.Copy().Padding(0, 1)
	versionStyle = tui.Regular.Copy().Foreground(tui.Pink).Padding(0, 1)
	ruleStyle    = tui.Regular.Copy().Foreground(tui.LighterGrey)
)

func (m model) View() string {
	var (
		content      string
		pageBindings []key.Binding
	)
	if bindings, ok := m.Current().(tui.ModelHelpBindings); ok {
		pageBindings = bindings.HelpBindings()
	}
	globalBindings := keys.KeyMapToSlice(keys.Global)

	if m.showHelp {
		content = lipgloss.NewStyle().
			Margin(1).
			Render(fullHelpView(pageBindings, globalBindings))
	} else {
		content = m.Current().View()
	}

	// Header: page title on the left, version on the right.
	var title string
	if titled, ok := m.Current().(tui.ModelTitle); ok {
		title = titleStyle.Render(titled.Title())
	}
	if depth := m.Depth(); depth > 1 {
		title += tui.Regular.Render(fmt.Sprintf("(%d)", depth))
	}
	ver := versionStyle.Render(version.Version)
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		title,
		tui.Regular.Copy().
			Width(max(0, m.width-tui.Width(title))).
			Align(lipgloss.Right).
			Render(ver),
	)

	// Footer: any info or error message, otherwise short help.
	var footer string
	switch {
	case m.err != nil:
		footer = tui.Padded.Copy().Foreground(tui.Red).Render("Error: " + m.err.Error())
	case m.info != "":
		footer = tui.Padded.Render(m.info)
	default:
		footer = tui.Padded.Render(shortHelpView(append(pageBindings, globalBindings...), m.width-2))
	}

	rule := ruleStyle.Render(strings.Repeat("─", max(0, m.width)))
	return lipgloss.JoinVertical(
		lipgloss.Left,
		tui.Regular.Copy().MaxHeight(headerHeight).Inline(true).Render(header),
		rule,
		lipgloss.NewStyle().
			Height(m.viewHeight()).
			MaxHeight(m.viewHeight()).
			Render(content),
		rule,
		tui.Regular.Copy().Inline(true).MaxWidth(m.width).Render(footer),
	)
}

// bodyTop is the row on which the body starts.
func (m model) bodyTop() int {
	return headerHeight + horizontalRuleHeight
}

// viewHeight retrieves the height available beneath the header and above the
// footer.
func (m model) viewHeight() int {
	return max(0, m.height-headerHeight-2*horizontalRuleHeight-messageFooterHeight)
}

// viewWidth retrieves the width available within the main view
func (m model) viewWidth() int {
	return m.width
}
