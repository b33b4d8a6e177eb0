package top

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/leg100/tabpage/internal/logging"
	"github.com/leg100/tabpage/internal/tui/screens"
	"github.com/leg100/tabpage/internal/tui/tabpage"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, delegate tabpage.Delegate) *teatest.TestModel {
	t.Helper()

	logger := logging.NewLogger(logging.Options{Level: "debug"})
	page := tabpage.New(tabpage.Options{
		Delegate: delegate,
		Logger:   logger,
	})
	page.SetScreens([]*tabpage.Screen{
		tabpage.NewScreen("overview", screens.NewText("overview", "welcome to the overview")),
		tabpage.NewScreen("about", screens.NewText("about", "all about tabs")),
		tabpage.NewScreen("logs", screens.NewLogs(logger.List())),
	})
	return StartTest(t, Options{Page: page, Logger: logger}, 100, 30)
}

func waitFor(t *testing.T, tm *teatest.TestModel, s string) {
	t.Helper()

	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte(s))
		},
		teatest.WithCheckInterval(time.Millisecond*100),
		teatest.WithDuration(time.Second*3),
	)
}

func quit(t *testing.T, tm *teatest.TestModel) model {
	t.Helper()

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	final, ok := tm.FinalModel(t, teatest.WithFinalTimeout(time.Second)).(model)
	require.True(t, ok)
	return final
}

// swipe sends a swipe from the left edge of the body.
func swipe(tm *teatest.TestModel) {
	tm.Send(tea.MouseMsg{X: 0, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	tm.Send(tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	tm.Send(tea.MouseMsg{X: 30, Y: 10, Action: tea.MouseActionRelease})
}
