package app

import (
	"github.com/leg100/tabpage/internal/logging"
	"github.com/leg100/tabpage/internal/tui/tabpage"
)

// delegate declines taps on locked tabs and logs the tabs the user switches
// to.
type delegate struct {
	locked map[string]bool
	logger logging.Interface
}

func newDelegate(locked []string, logger logging.Interface) *delegate {
	d := &delegate{
		locked: make(map[string]bool, len(locked)),
		logger: logger,
	}
	for _, title := range locked {
		d.locked[title] = true
	}
	return d
}

func (d *delegate) ShouldSelect(_ *tabpage.Controller, s *tabpage.Screen) bool {
	if d.locked[s.Title] {
		d.logger.Info("tab is locked", "title", s.Title)
		return false
	}
	return true
}

func (d *delegate) DidSelect(_ *tabpage.Controller, s *tabpage.Screen) {
	d.logger.Info("switched tab", "title", s.Title, "screen", s.ID)
}
