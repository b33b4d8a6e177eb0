package tabpage

import (
	"slices"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/tabpage/internal/logging"
	"github.com/leg100/tabpage/internal/tui"
	"github.com/leg100/tabpage/internal/tui/keys"
	"github.com/leg100/tabpage/internal/tui/swipeback"
	"github.com/leg100/tabpage/internal/tui/tabbar"
)

type Options struct {
	// Delegate is consulted on taps. Optional.
	Delegate Delegate
	Position tabbar.Position
	Hidden   bool
	// Title is the page title. If empty the selected screen's title is used.
	Title  string
	Logger logging.Interface
	Width  int
	Height int
}

// Controller is a page composed of a tab bar and the screens it switches
// between. Exactly one screen, the selected screen, is rendered beneath (or
// above) the bar. Selection changes either programmatically, which is never
// gated, or by the user tapping a tab, which is gated by the delegate.
type Controller struct {
	swipeback.Toggle

	delegate Delegate
	screens  []*Screen
	// selected indexes screens; -1 when there is no selection.
	selected int

	// tabBar is constructed on first access, see TabBar().
	tabBar   *tabbar.Model
	position tabbar.Position
	hidden   bool

	gesture *swipeback.Recognizer
	logger  logging.Interface
	title   string

	width  int
	height int
	// last content size relayed to the screens
	relayed tea.WindowSizeMsg
}

func New(opts Options) *Controller {
	c := &Controller{
		delegate: opts.Delegate,
		selected: -1,
		position: opts.Position,
		hidden:   opts.Hidden,
		logger:   opts.Logger,
		title:    opts.Title,
		width:    opts.Width,
		height:   opts.Height,
	}
	if c.logger == nil {
		c.logger = logging.Discard
	}
	c.gesture = swipeback.New(c)
	return c
}

func (c *Controller) Delegate() Delegate {
	return c.delegate
}

func (c *Controller) SetDelegate(d Delegate) {
	c.delegate = d
}

// Screens returns the screens in tab order.
func (c *Controller) Screens() []*Screen {
	return slices.Clone(c.screens)
}

// SetScreens replaces the screens wholesale. The selected screen stays
// selected if it is among the new screens, otherwise the first screen is
// selected. The returned command initializes screens that were not already
// present.
func (c *Controller) SetScreens(screens []*Screen) tea.Cmd {
	previous := c.Selected()
	existing := c.screens

	c.screens = slices.Clone(screens)
	c.selected = -1
	if previous != nil {
		c.selected = slices.Index(c.screens, previous)
	}
	if c.selected < 0 && len(c.screens) > 0 {
		c.selected = 0
	}
	c.syncTabBar()

	var cmds []tea.Cmd
	for i, s := range c.screens {
		if slices.Contains(existing, s) || slices.Index(c.screens, s) != i {
			continue
		}
		cmds = append(cmds, s.Init())
		if c.width > 0 || c.height > 0 {
			cmds = append(cmds, c.updateScreen(s, c.contentSize()))
		}
	}
	c.logger.Debug("set screens", "count", len(c.screens), "selected", c.Selected())
	return tea.Batch(cmds...)
}

// Selected returns the selected screen, or nil if there are no screens.
func (c *Controller) Selected() *Screen {
	if c.selected < 0 || c.selected >= len(c.screens) {
		return nil
	}
	return c.screens[c.selected]
}

// SetSelected selects a screen programmatically. The delegate is not
// consulted nor informed. Selecting a screen that is not one of the
// controller's screens is a no-op and false is returned.
func (c *Controller) SetSelected(s *Screen) bool {
	if s == nil {
		return false
	}
	i := slices.Index(c.screens, s)
	if i < 0 {
		c.logger.Warn("ignoring selection of unknown screen", "screen", s.ID)
		return false
	}
	c.selectIndex(i)
	return true
}

// Tap handles a user tap on the tab at index, consulting the delegate before
// switching and informing it afterwards. It reports whether the selection
// switched.
func (c *Controller) Tap(index int) bool {
	if index < 0 || index >= len(c.screens) {
		return false
	}
	target := c.screens[index]
	if !shouldSelect(c.delegate, c, target) {
		c.logger.Debug("tab selection declined", "screen", target.ID, "title", target.Title)
		return false
	}
	c.selectIndex(index)
	didSelect(c.delegate, c, target)
	return true
}

func (c *Controller) selectIndex(i int) {
	c.selected = i
	if c.tabBar != nil {
		c.tabBar.SetSelected(i)
	}
	c.logger.Debug("selected screen", "screen", c.screens[i].ID, "title", c.screens[i].Title)
}

// TabBar returns the tab bar, constructing it on first access.
func (c *Controller) TabBar() *tabbar.Model {
	if c.tabBar == nil {
		c.tabBar = tabbar.New()
		c.tabBar.SetPosition(c.position)
		c.tabBar.SetHidden(c.hidden, false)
		c.tabBar.SetWidth(c.width)
		c.syncTabBar()
	}
	return c.tabBar
}

func (c *Controller) TabBarPosition() tabbar.Position {
	return c.position
}

// SetTabBarPosition moves the tab bar. Unspecified lays the bar out at the
// top.
func (c *Controller) SetTabBarPosition(p tabbar.Position) {
	c.position = p
	if c.tabBar != nil {
		c.tabBar.SetPosition(p)
	}
}

func (c *Controller) TabBarHidden() bool {
	return c.hidden
}

func (c *Controller) SetTabBarHidden(hidden bool) tea.Cmd {
	return c.SetTabBarHiddenAnimated(hidden, false)
}

// SetTabBarHiddenAnimated hides or shows the tab bar, optionally animating the
// change. Screens and the selection are untouched, other than being told of
// the change in available height.
func (c *Controller) SetTabBarHiddenAnimated(hidden, animated bool) tea.Cmd {
	c.hidden = hidden
	cmd := c.TabBar().SetHidden(hidden, animated)
	c.logger.Debug("set tab bar hidden", "hidden", hidden, "animated", animated)
	return tea.Batch(cmd, c.relayResize())
}

// AddPopGesture attaches the swipe back gesture to a surface, given in the
// controller's coordinates. Attaching the same surface again only updates its
// bounds.
func (c *Controller) AddPopGesture(s swipeback.Surface) {
	c.gesture.Attach(s)
}

func (c *Controller) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(c.screens))
	for i, s := range c.screens {
		if slices.Index(c.screens, s) == i {
			cmds = append(cmds, s.Init())
		}
	}
	return tea.Batch(cmds...)
}

func (c *Controller) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := c.update(msg)
	c.syncTabBar()
	return c, cmd
}

func (c *Controller) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		// Presses on the tab bar are taps, even within the edge of a pop
		// gesture surface.
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if i, ok := c.tabAt(msg.X, msg.Y); ok {
				c.Tap(i)
				return nil
			}
		}
		if handled, cmd := c.gesture.Handle(msg); handled {
			return cmd
		}
		return c.updateSelected(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Navigation.TabNext):
			c.Tap(c.cycle(+1))
		case key.Matches(msg, keys.Navigation.TabPrev):
			c.Tap(c.cycle(-1))
		case key.Matches(msg, keys.Navigation.TabJump):
			n, _ := strconv.Atoi(msg.String())
			c.Tap(n - 1)
		default:
			return c.updateSelected(msg)
		}
		return nil
	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.height = msg.Height
		if c.tabBar != nil {
			c.tabBar.SetWidth(msg.Width)
		}
		return c.relayResize()
	case tabbar.FrameMsg:
		return tea.Batch(c.TabBar().Update(msg), c.relayResize())
	}
	return c.updateAll(msg)
}

// cycle returns the index of the tab delta places from the selected tab,
// wrapping around at either end.
func (c *Controller) cycle(delta int) int {
	n := len(c.screens)
	if n == 0 {
		return -1
	}
	return ((c.selected+delta)%n + n) % n
}

// tabAt returns the index of the tab at the given coordinates.
func (c *Controller) tabAt(x, y int) (int, bool) {
	bar := c.TabBar()
	if bar.Height() == 0 {
		return 0, false
	}
	top := 0
	if c.position == tabbar.Bottom {
		top = c.contentHeight()
	}
	if y < top || y >= top+bar.Height() {
		return 0, false
	}
	return bar.ItemAt(x)
}

// barRows is the number of rows reserved for the tab bar. While animating,
// the larger of the current and target heights is reserved so that the page
// never overflows.
func (c *Controller) barRows() int {
	rows := 0
	if !c.hidden {
		rows = tabbar.Rows
	}
	if c.tabBar != nil {
		rows = max(rows, c.tabBar.Height())
	}
	return rows
}

func (c *Controller) contentHeight() int {
	return max(0, c.height-c.barRows())
}

func (c *Controller) contentSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: c.width, Height: c.contentHeight()}
}

// relayResize informs every screen of the content area's size if it has
// changed since it was last relayed.
func (c *Controller) relayResize() tea.Cmd {
	if c.width == 0 && c.height == 0 {
		return nil
	}
	size := c.contentSize()
	if size == c.relayed {
		return nil
	}
	c.relayed = size
	return c.updateAll(size)
}

func (c *Controller) updateScreen(s *Screen, msg tea.Msg) tea.Cmd {
	updated, cmd := s.Model.Update(msg)
	s.Model = updated
	return cmd
}

func (c *Controller) updateSelected(msg tea.Msg) tea.Cmd {
	if s := c.Selected(); s != nil {
		return c.updateScreen(s, msg)
	}
	return nil
}

// updateAll updates each screen once, even if it appears under more than one
// tab.
func (c *Controller) updateAll(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(c.screens))
	for i, s := range c.screens {
		if slices.Index(c.screens, s) == i {
			cmds = append(cmds, c.updateScreen(s, msg))
		}
	}
	return tea.Batch(cmds...)
}

func (c *Controller) syncTabBar() {
	if c.tabBar == nil {
		return
	}
	items := make([]tabbar.Item, len(c.screens))
	for i, s := range c.screens {
		items[i] = tabbar.Item{Title: s.Title}
		if badge, ok := s.Model.(screenBadge); ok {
			items[i].Badge = badge.TabBadge()
		}
	}
	c.tabBar.SetItems(items)
	c.tabBar.SetSelected(c.selected)
}

func (c *Controller) View() string {
	var content string
	if s := c.Selected(); s != nil {
		content = s.View()
	}
	if c.height > 0 {
		h := c.contentHeight()
		content = lipgloss.NewStyle().Height(h).MaxHeight(h).Render(content)
	}
	bar := c.TabBar().View()
	if bar == "" {
		return content
	}
	if c.position == tabbar.Bottom {
		return lipgloss.JoinVertical(lipgloss.Left, content, bar)
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, content)
}

func (c *Controller) Title() string {
	if c.title != "" {
		return c.title
	}
	if s := c.Selected(); s != nil {
		return s.Title
	}
	return ""
}

func (c *Controller) HelpBindings() []key.Binding {
	bindings := keys.KeyMapToSlice(keys.Navigation)
	if s := c.Selected(); s != nil {
		if helper, ok := s.Model.(tui.ModelHelpBindings); ok {
			bindings = append(bindings, helper.HelpBindings()...)
		}
	}
	return bindings
}
