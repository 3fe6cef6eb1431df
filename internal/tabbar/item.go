package tabbar

import "github.com/leg100/pageview/internal/interp"

// ItemModel is the appearance of a single item in the strip.
type ItemModel struct {
	Title            string
	Font             interp.Font
	HighlightedFont  interp.Font
	Color            interp.Color
	HighlightedColor interp.Color
	Width            float64
	Selected         bool
}

// RenderFont is the font the item is drawn with.
func (m ItemModel) RenderFont() interp.Font {
	if m.Selected {
		return m.HighlightedFont
	}
	return m.Font
}

// RenderColor is the color the item is drawn with.
func (m ItemModel) RenderColor() interp.Color {
	if m.Selected {
		return m.HighlightedColor
	}
	return m.Color
}

// Indicator is the bar drawn under the selected item.
type Indicator struct {
	CenterX float64
	Width   float64
	Height  float64
	// Bottom is the distance of the indicator from the bottom of the strip.
	Bottom  float64
	Color   interp.Color
	Visible bool
}

// MinX is the left edge of the indicator.
func (i Indicator) MinX() float64 { return i.CenterX - i.Width/2 }

// MaxX is the right edge of the indicator.
func (i Indicator) MaxX() float64 { return i.CenterX + i.Width/2 }
