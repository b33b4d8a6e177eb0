package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/leg100/tabpage/internal/logging"
	"github.com/leg100/tabpage/internal/tui/screens"
	"github.com/leg100/tabpage/internal/tui/tabpage"
)

var ErrUnknownTab = errors.New("unknown tab")

const overview = `This is a page of tabs. Switch tabs with tab and shift+tab, with the
number keys, or by clicking a tab.

Press enter to open this text in a page of its own, then swipe right from
the left edge of the page, or press esc, to come back.`

const about = `The tab bar can be hidden (H) and moved between the top and the bottom
of the page (P). Swiping back can be disabled per page (D).

Tabs named with --lock cannot be selected.`

// newPage constructs the tab page and its screens according to the config.
func newPage(cfg config, logger *logging.Logger) (*tabpage.Controller, error) {
	page := tabpage.New(tabpage.Options{
		Delegate: newDelegate(cfg.Locked, logger),
		Position: cfg.Position,
		Hidden:   cfg.Hidden,
		Title:    "tabpage",
		Logger:   logger,
	})
	page.SetInteractivePopDisabled(cfg.DisablePop)
	page.SetScreens([]*tabpage.Screen{
		tabpage.NewScreen("overview", screens.NewText("overview", overview)),
		tabpage.NewScreen("about", screens.NewText("about", about)),
		tabpage.NewScreen("logs", screens.NewLogs(logger.List())),
	})

	for _, title := range cfg.Locked {
		if _, err := findScreen(page.Screens(), title); err != nil {
			logger.Warn("ignoring lock", "error", err)
		}
	}

	if cfg.FirstTab != "" {
		first, err := findScreen(page.Screens(), cfg.FirstTab)
		if err != nil {
			return nil, err
		}
		page.SetSelected(first)
	}
	return page, nil
}

// findScreen finds a screen by its title. If not found, the error suggests
// the screen with the closest title.
func findScreen(screens []*tabpage.Screen, title string) (*tabpage.Screen, error) {
	var (
		closest  string
		distance = -1
	)
	for _, s := range screens {
		if s.Title == title {
			return s, nil
		}
		d := levenshtein.ComputeDistance(strings.ToLower(title), strings.ToLower(s.Title))
		if distance < 0 || d < distance {
			closest, distance = s.Title, d
		}
	}
	if closest == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTab, title)
	}
	return nil, fmt.Errorf("%w: %s: did you mean %s?", ErrUnknownTab, title, closest)
}
