// package app is the main entrypoint into the application, responsible for
// configuring and starting the application.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/leg100/pageview/internal/catalog"
	"github.com/leg100/pageview/internal/interp"
	"github.com/leg100/pageview/internal/logging"
	"github.com/leg100/pageview/internal/pageview"
	"github.com/leg100/pageview/internal/tabbar"
	"github.com/leg100/pageview/internal/tui"
	"github.com/leg100/pageview/internal/version"
)

const (
	// highlightedFontSize is larger than the default font size so that the
	// selected tab is emboldened.
	highlightedFontSize = 18
	// maxLogMessages is the number of log messages kept in memory.
	maxLogMessages = 1000
	// journalSize is the number of page hooks kept in memory.
	journalSize = 100
)

// Start the app.
func Start(stdout, stderr io.Writer, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Parse configuration from env vars and flags
	cfg, err := Parse(stderr, args)
	if err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Version {
		fmt.Fprintln(stdout, "pageview", version.Version)
		return nil
	}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		cfg.Logging.AdditionalWriters = append(cfg.Logging.AdditionalWriters, f)
	}

	opts, err := newOptions(cfg)
	if err != nil {
		return err
	}
	opts.Logger.Info("loaded pages", "count", opts.Catalog.ItemCount(), "file", cfg.Pages)

	return tui.Start(ctx, opts)
}

// newOptions constructs the logger, the page catalog and the configuration of
// the tab bar and pager.
func newOptions(cfg Config) (tui.Options, error) {
	if cfg.Logging.MaxMessages == 0 {
		cfg.Logging.MaxMessages = maxLogMessages
	}
	logger := logging.NewLogger(cfg.Logging)

	file := catalog.Default()
	if cfg.Pages != "" {
		var err error
		file, err = catalog.Load(cfg.Pages)
		if err != nil {
			return tui.Options{}, fmt.Errorf("loading pages: %w", err)
		}
	}
	if cfg.DefaultIndex >= 0 {
		file.DefaultIndex = cfg.DefaultIndex
	}
	copts := catalog.Options{
		LoadMore:    cfg.LoadMore,
		JournalSize: journalSize,
		Logger:      logger,
	}
	if cfg.LogsPage {
		copts.Logs = logger
	}

	transition, ok := tabbar.ParseTransitionStyle(cfg.Transition)
	if !ok {
		return tui.Options{}, fmt.Errorf("invalid transition style: %q", cfg.Transition)
	}
	pcfg := pageview.DefaultConfig()
	pcfg.TabBar.Spacing = float64(cfg.Spacing)
	pcfg.TabBar.DisableRelayout = cfg.NoRelayout
	pcfg.TabBar.HideIndicator = cfg.NoIndicator
	pcfg.TabBar.Transition = transition
	pcfg.TabBar.HighlightedFont = interp.Font{
		Name: interp.DefaultFont.Name,
		Size: highlightedFontSize,
	}
	pcfg.TabBar.Color = interp.Hex(cfg.Color)
	pcfg.TabBar.HighlightedColor = interp.Hex(cfg.HighlightColor)
	// An unset indicator color follows the highlight color.
	pcfg.TabBar.IndicatorColor = interp.Hex(cfg.IndicatorColor)

	return tui.Options{
		Catalog: catalog.New(file, copts),
		Config:  pcfg,
		Logger:  logger,
	}, nil
}
