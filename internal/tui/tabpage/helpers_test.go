package tabpage

import (
	tea "github.com/charmbracelet/bubbletea"
)

// fakeModel records the messages it receives.
type fakeModel struct {
	name  string
	msgs  []tea.Msg
	inits int
}

func (f *fakeModel) Init() tea.Cmd {
	f.inits++
	return nil
}

func (f *fakeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	f.msgs = append(f.msgs, msg)
	return f, nil
}

func (f *fakeModel) View() string { return "content of " + f.name }

func (f *fakeModel) TabBadge() string { return "" }

func newFakeScreen(title string) (*Screen, *fakeModel) {
	m := &fakeModel{name: title}
	return NewScreen(title, m), m
}

// fakeDelegate records callbacks and gates selection with allow.
type fakeDelegate struct {
	allow  func(*Screen) bool
	should []*Screen
	did    []*Screen
}

func (d *fakeDelegate) ShouldSelect(c *Controller, s *Screen) bool {
	d.should = append(d.should, s)
	if d.allow == nil {
		return true
	}
	return d.allow(s)
}

func (d *fakeDelegate) DidSelect(c *Controller, s *Screen) {
	d.did = append(d.did, s)
}

// observerOnly implements only the optional DidSelect.
type observerOnly struct {
	did []*Screen
}

func (o *observerOnly) DidSelect(c *Controller, s *Screen) {
	o.did = append(o.did, s)
}

func setup(opts Options) (*Controller, [3]*Screen) {
	a, _ := newFakeScreen("alpha")
	b, _ := newFakeScreen("beta")
	c, _ := newFakeScreen("gamma")
	ctrl := New(opts)
	ctrl.SetScreens([]*Screen{a, b, c})
	return ctrl, [3]*Screen{a, b, c}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// execute runs a command, flattening batches, and returns the messages
// produced.
func execute(cmd tea.Cmd) (msgs []tea.Msg) {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			msgs = append(msgs, execute(sub)...)
		}
	case nil:
	default:
		msgs = append(msgs, msg)
	}
	return msgs
}
