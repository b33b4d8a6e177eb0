// Package swipeback recognizes an edge swipe on a terminal region and turns it
// into a request to navigate back.
//
// A swipe is a left-button press within the leading columns of an attached
// surface, dragged rightwards and released at least a threshold number of
// columns further along. Owners opt out per instance, in which case the
// recognizer is inert.
package swipeback

import (
	tea "github.com/charmbracelet/bubbletea"
)

const (
	DefaultEdgeWidth = 2
	DefaultThreshold = 8
)

// PopMsg is a request to navigate back.
type PopMsg struct{}

// Pop sends a request to navigate back.
func Pop() tea.Cmd {
	return func() tea.Msg { return PopMsg{} }
}

// Owner owns a recognizer and decides whether it is active.
type Owner interface {
	InteractivePopDisabled() bool
}

// Toggle is an embeddable opt-out flag satisfying Owner.
type Toggle struct {
	disabled bool
}

func (t *Toggle) InteractivePopDisabled() bool {
	return t.disabled
}

func (t *Toggle) SetInteractivePopDisabled(disabled bool) {
	t.disabled = disabled
}

// Surface is a rectangular region of the terminal, in cells.
type Surface struct {
	ID     string
	X, Y   int
	Width  int
	Height int
}

func (s Surface) contains(x, y int) bool {
	return x >= s.X && x < s.X+s.Width && y >= s.Y && y < s.Y+s.Height
}

type Option func(*Recognizer)

// WithEdgeWidth sets how many leading columns of a surface a swipe may start
// from.
func WithEdgeWidth(w int) Option {
	return func(r *Recognizer) {
		r.edgeWidth = w
	}
}

// WithThreshold sets how many columns a swipe must travel.
func WithThreshold(n int) Option {
	return func(r *Recognizer) {
		r.threshold = n
	}
}

type Recognizer struct {
	owner     Owner
	surfaces  map[string]Surface
	edgeWidth int
	threshold int

	// origin of the swipe being tracked, nil when not tracking.
	origin *tea.MouseMsg
}

func New(owner Owner, opts ...Option) *Recognizer {
	r := &Recognizer{
		owner:     owner,
		surfaces:  make(map[string]Surface),
		edgeWidth: DefaultEdgeWidth,
		threshold: DefaultThreshold,
	}
	for _, fn := range opts {
		fn(r)
	}
	return r
}

// Attach installs the recognizer on a surface. Attaching a surface whose ID
// is already attached only updates its bounds, and false is returned.
func (r *Recognizer) Attach(s Surface) bool {
	_, exists := r.surfaces[s.ID]
	r.surfaces[s.ID] = s
	return !exists
}

func (r *Recognizer) Detach(id string) {
	delete(r.surfaces, id)
}

func (r *Recognizer) Attached(id string) bool {
	_, ok := r.surfaces[id]
	return ok
}

func (r *Recognizer) disabled() bool {
	return r.owner != nil && r.owner.InteractivePopDisabled()
}

// Handle feeds a mouse event to the recognizer. It reports whether the event
// was consumed, in which case the caller should not process it further, and
// returns a command emitting PopMsg when a swipe completes.
func (r *Recognizer) Handle(msg tea.MouseMsg) (bool, tea.Cmd) {
	if r.disabled() {
		r.origin = nil
		return false, nil
	}
	if r.origin == nil {
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return false, nil
		}
		if !r.onEdge(msg.X, msg.Y) {
			return false, nil
		}
		r.origin = &msg
		return true, nil
	}
	switch msg.Action {
	case tea.MouseActionMotion:
		return true, nil
	case tea.MouseActionRelease:
		origin := r.origin
		r.origin = nil
		if msg.X-origin.X >= r.threshold {
			return true, Pop()
		}
		return true, nil
	default:
		// A fresh press abandons the swipe in progress.
		r.origin = nil
		return r.Handle(msg)
	}
}

func (r *Recognizer) onEdge(x, y int) bool {
	for _, s := range r.surfaces {
		if s.contains(x, y) && x < s.X+r.edgeWidth {
			return true
		}
	}
	return false
}
