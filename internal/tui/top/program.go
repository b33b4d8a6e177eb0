package top

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/leg100/tabpage/internal/logging"
	"github.com/stretchr/testify/require"
)

// Options for starting the TUI.
type Options struct {
	// Page is the first page, typically a tab page.
	Page   tea.Model
	Logger *logging.Logger
	Debug  bool
}

// Start starts the TUI and blocks until the user exits.
func Start(opts Options) error {
	p, err := newProgram(opts)
	if err != nil {
		return err
	}
	defer p.cleanup()

	tp := tea.NewProgram(p.model,
		// Use the full size of the terminal with its "alternate screen buffer"
		tea.WithAltScreen(),
		// Mouse events are needed for clicking tabs and swiping back.
		tea.WithMouseCellMotion(),
	)
	// Relay events in background
	go func() {
		for msg := range p.ch {
			tp.Send(msg)
		}
	}()
	// Blocks until user quits
	_, err = tp.Run()
	return err
}

// StartTest starts the TUI and returns a test model for testing purposes.
func StartTest(t *testing.T, opts Options, width, height int) *teatest.TestModel {
	p, err := newProgram(opts)
	require.NoError(t, err)

	tm := teatest.NewTestModel(t, p.model, teatest.WithInitialTermSize(width, height))
	t.Cleanup(func() {
		p.cleanup()
	})

	// Relay events in background
	go func() {
		for msg := range p.ch {
			tm.Send(msg)
		}
	}()
	return tm
}

type program struct {
	model   tea.Model
	ch      chan tea.Msg
	cleanup func()
}

func newProgram(opts Options) (*program, error) {
	m, err := newModel(opts)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())

	// Relay log events to TUI. Subscribe before anything else is logged to
	// ensure the TUI receives all messages.
	ch := make(chan tea.Msg)
	if opts.Logger != nil {
		logEvents := opts.Logger.Subscribe(ctx)
		go func() {
			for ev := range logEvents {
				ch <- ev
			}
			close(ch)
		}()
	} else {
		close(ch)
	}

	cleanup := func() {
		cancel()
		if m.dump != nil {
			m.dump.Close()
		}
	}
	return &program{model: m, ch: ch, cleanup: cleanup}, nil
}
