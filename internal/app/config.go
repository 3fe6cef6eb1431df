package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/leg100/pageview/internal/interp"
	"github.com/leg100/pageview/internal/logging"
	"github.com/leg100/pageview/internal/tabbar"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/ffyaml"
)

const (
	defaultColor          = "#737373"
	defaultHighlightColor = "#00A095"
)

type Config struct {
	// Pages is the path to a YAML page catalog. Empty means the built-in
	// catalog.
	Pages string
	// DefaultIndex is the page shown first. Negative means the catalog's
	// default.
	DefaultIndex   int
	Transition     string
	Spacing        int
	NoRelayout     bool
	NoIndicator    bool
	Color          string
	HighlightColor string
	IndicatorColor string
	LogsPage       bool
	LoadMore       bool
	LogFile        string
	Logging        logging.Options

	Version bool
}

// set config in order of precedence:
// 1. flags > 2. env vars > 3. config file
func Parse(stderr io.Writer, args []string) (Config, error) {
	var cfg Config

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("retrieving user's home directory: %w", err)
	}
	defaultConfigFile := filepath.Join(home, ".pageview.yaml")

	fs := ff.NewFlagSet("pageview")
	fs.StringVar(&cfg.Pages, 'p', "pages", "", "Path to a YAML file of pages. Defaults to a built-in set of pages.")
	fs.IntVar(&cfg.DefaultIndex, 'i', "default-index", -1, "Index of the page shown first. Defaults to the index set in the pages file.")
	fs.IntVar(&cfg.Spacing, 's', "spacing", 2, "Minimum number of cells between tabs.")
	fs.BoolVar(&cfg.NoRelayout, 0, "no-relayout", "Don't spread tabs across the full width of the terminal.")
	fs.BoolVar(&cfg.NoIndicator, 0, "no-indicator", "Hide the bar beneath the selected tab.")
	fs.StringVar(&cfg.Color, 0, "color", defaultColor, "Color of tabs.")
	fs.StringVar(&cfg.HighlightColor, 0, "highlight-color", defaultHighlightColor, "Color of the selected tab.")
	fs.StringVar(&cfg.IndicatorColor, 0, "indicator-color", "", "Color of the bar beneath the selected tab. Defaults to the highlight color.")
	fs.BoolVar(&cfg.LogsPage, 0, "logs-page", "Add a page listing log messages.")
	fs.BoolVar(&cfg.LoadMore, 0, "load-more", "Load more pages as the last page is approached.")
	fs.StringVar(&cfg.LogFile, 0, "log-file", "", "Append log messages to a file.")
	fs.BoolVar(&cfg.Version, 'v', "version", "Print version.")
	_ = fs.String('c', "config", defaultConfigFile, "Path to config file.")

	{
		usage := fmt.Sprintf("Tab transition style (valid: %s).", strings.Join(transitionStyles(), ","))
		fs.StringEnumVar(&cfg.Transition, 't', "transition", usage, transitionStyles()...)
	}
	{
		usage := fmt.Sprintf("Logging level (valid: %s).", strings.Join(logging.ValidLevels(), ","))
		fs.StringEnumVar(&cfg.Logging.Level, 'l', "log-level", usage, logging.ValidLevels()...)
	}

	err = ff.Parse(fs, args,
		ff.WithEnvVarPrefix("PAGEVIEW"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ffyaml.Parse),
		ff.WithConfigAllowMissingFile(),
	)
	if err != nil {
		// ff.Parse returns an error if there is an error or if -h/--help is
		// passed; in either case print flag usage in addition to error message.
		fmt.Fprintln(stderr, ffhelp.Flags(fs))
		return Config{}, err
	}

	for name, color := range map[string]string{
		"color":           cfg.Color,
		"highlight-color": cfg.HighlightColor,
		"indicator-color": cfg.IndicatorColor,
	} {
		if color != "" && interp.Hex(color).IsZero() {
			return Config{}, fmt.Errorf("invalid %s: %q: must be of the form #rrggbb", name, color)
		}
	}
	if cfg.Spacing < 0 {
		return Config{}, fmt.Errorf("invalid spacing: %d: must not be negative", cfg.Spacing)
	}
	return cfg, nil
}

// transitionStyles returns valid strings for choosing a transition style,
// the default first.
func transitionStyles() []string {
	return []string{tabbar.TransitionNone.String(), tabbar.TransitionSmooth.String()}
}
