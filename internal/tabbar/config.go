package tabbar

import (
	"github.com/leg100/go-runewidth"
	"github.com/leg100/pageview/internal/interp"
	"github.com/leg100/pageview/internal/logging"
)

// AutomaticDimension asks for a width to be measured from the item's title.
const AutomaticDimension = -1

// TransitionStyle determines how items change appearance mid-drag.
type TransitionStyle int

const (
	// TransitionNone snaps items between their normal and highlighted
	// appearance when the selection changes.
	TransitionNone TransitionStyle = iota
	// TransitionSmooth blends the fonts and colors of the two items either
	// side of a drag by its progress.
	TransitionSmooth
)

func (s TransitionStyle) String() string {
	switch s {
	case TransitionSmooth:
		return "smooth"
	default:
		return "none"
	}
}

// ParseTransitionStyle parses the name of a transition style.
func ParseTransitionStyle(s string) (TransitionStyle, bool) {
	switch s {
	case "none", "":
		return TransitionNone, true
	case "smooth":
		return TransitionSmooth, true
	default:
		return TransitionNone, false
	}
}

// MeasureFunc returns the width of a title drawn in font.
type MeasureFunc func(title string, font interp.Font) float64

// Config configures a tab bar. Zero-valued fonts, colors and measure
// function are substituted with defaults.
type Config struct {
	DefaultIndex int
	// ItemWidth returns the width of the item at index, or
	// AutomaticDimension to measure its title.
	ItemWidth func(index int) float64
	// IndicatorWidth returns the width of the indicator under the item at
	// index, or AutomaticDimension to use the item's width.
	IndicatorWidth func(index int) float64

	Font             interp.Font
	HighlightedFont  interp.Font
	Color            interp.Color
	HighlightedColor interp.Color

	// Spacing is the gap between items, and between the items and the edges
	// of the strip.
	Spacing float64
	// DisableRelayout stops the spacing from being widened to spread items
	// across a strip that is wider than they are.
	DisableRelayout bool

	HideIndicator   bool
	IndicatorColor  interp.Color
	IndicatorHeight float64
	IndicatorBottom float64

	Transition TransitionStyle
	Measure    MeasureFunc

	// DidSelect is called whenever the selection changes.
	DidSelect func(index int)
	// DidScroll is called as a drag of the observed content moves between
	// items.
	DidScroll func(from, to int, percent float64)

	Logger logging.Interface
}

// DefaultConfig returns the default tab bar configuration.
func DefaultConfig() Config {
	return Config{
		Font:             interp.DefaultFont,
		HighlightedFont:  interp.DefaultFont,
		Color:            interp.LightGray,
		HighlightedColor: interp.Black,
		Spacing:          10,
		IndicatorColor:   interp.Black,
		IndicatorHeight:  3,
		IndicatorBottom:  5,
		Measure:          MeasureCells,
	}
}

// MeasureCells measures a title in terminal cells. The font is ignored.
func MeasureCells(title string, _ interp.Font) float64 {
	return float64(runewidth.StringWidth(title))
}

func (cfg Config) withDefaults() Config {
	if cfg.Font.IsZero() {
		cfg.Font = interp.DefaultFont
	}
	if cfg.HighlightedFont.IsZero() {
		cfg.HighlightedFont = interp.DefaultFont
	}
	if cfg.Color.IsZero() {
		cfg.Color = interp.LightGray
	}
	if cfg.HighlightedColor.IsZero() {
		cfg.HighlightedColor = interp.Black
	}
	if cfg.IndicatorColor.IsZero() {
		cfg.IndicatorColor = cfg.HighlightedColor
	}
	if cfg.IndicatorHeight <= 0 {
		cfg.IndicatorHeight = 3
	}
	if cfg.Measure == nil {
		cfg.Measure = MeasureCells
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard
	}
	return cfg
}
