package tabpage

// Delegate is consulted when the user taps a tab. It may implement any of
// SelectionGate and SelectionObserver; methods it lacks take their default
// behaviour. The controller does not own its delegate.
type Delegate any

// SelectionGate decides whether a tap on a tab switches to its screen. It is
// called even when the tapped screen is already selected. Without a gate every
// tap is honoured.
type SelectionGate interface {
	ShouldSelect(c *Controller, s *Screen) bool
}

// SelectionObserver is told once the controller has switched to a screen in
// response to a tap, including a tap on the already-selected screen.
type SelectionObserver interface {
	DidSelect(c *Controller, s *Screen)
}

// DelegateFuncs adapts plain functions to a delegate. Nil functions take the
// default behaviour.
type DelegateFuncs struct {
	ShouldSelectFunc func(c *Controller, s *Screen) bool
	DidSelectFunc    func(c *Controller, s *Screen)
}

func (d DelegateFuncs) ShouldSelect(c *Controller, s *Screen) bool {
	if d.ShouldSelectFunc == nil {
		return true
	}
	return d.ShouldSelectFunc(c, s)
}

func (d DelegateFuncs) DidSelect(c *Controller, s *Screen) {
	if d.DidSelectFunc != nil {
		d.DidSelectFunc(c, s)
	}
}

func shouldSelect(d Delegate, c *Controller, s *Screen) bool {
	if gate, ok := d.(SelectionGate); ok {
		return gate.ShouldSelect(c, s)
	}
	return true
}

func didSelect(d Delegate, c *Controller, s *Screen) {
	if observer, ok := d.(SelectionObserver); ok {
		observer.DidSelect(c, s)
	}
}
