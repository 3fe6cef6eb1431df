package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/leg100/pageview/internal/catalog"
	"github.com/leg100/pageview/internal/logging"
	"github.com/leg100/pageview/internal/pageview"
	"github.com/stretchr/testify/require"
)

// Options for starting the TUI.
type Options struct {
	Catalog *catalog.Catalog
	// Config configures the tab bar and pager. Its default index and tab bar
	// height are decided by the TUI.
	Config pageview.Config
	Logger *logging.Logger
}

// Start starts the TUI and blocks until the user exits.
func Start(ctx context.Context, opts Options) error {
	p, err := newProgram(ctx, opts)
	if err != nil {
		return err
	}
	defer p.cleanup()

	tp := tea.NewProgram(p.model,
		// Use the full size of the terminal with its "alternate screen buffer"
		tea.WithAltScreen(),
		// Tabs are clickable and the pages respond to the wheel.
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
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
	t.Helper()

	p, err := newProgram(context.Background(), opts)
	require.NoError(t, err)

	tm := teatest.NewTestModel(t, p.model, teatest.WithInitialTermSize(width, height))
	t.Cleanup(func() {
		p.cleanup()
		tm.Quit()
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
	model   *model
	ch      chan tea.Msg
	cleanup func()
}

func newProgram(ctx context.Context, opts Options) (*program, error) {
	ctx, cancel := context.WithCancel(ctx)

	m, err := newModel(ctx, opts)
	if err != nil {
		cancel()
		return nil, err
	}
	// Relay log events to TUI. Deliberately set up subscriptions *before*
	// any events are triggered, to ensure the TUI receives all messages.
	ch := make(chan tea.Msg)
	wg := sync.WaitGroup{} // sync closure of subscriptions

	if opts.Logger != nil {
		sub := opts.Logger.Subscribe(ctx)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ev := range sub {
				select {
				case ch <- ev:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	// cleanup function to be invoked when program is terminated.
	cleanup := func() {
		cancel()
		// Wait for relays to finish before closing channel, to avoid sends
		// to a closed channel, which would result in a panic.
		wg.Wait()
		close(ch)
		m.close()
	}

	return &program{
		cleanup: cleanup,
		ch:      ch,
		model:   m,
	}, nil
}
