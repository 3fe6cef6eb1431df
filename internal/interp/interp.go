// Package interp blends numbers, fonts and colors by a progress ratio.
package interp

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Lerp blends a and b by t, clamping t to [0,1] first.
func Lerp(a, b, t float64) float64 {
	t = min(max(0, t), 1)
	return a + (b-a)*t
}

// DefaultFontSize is the point size of DefaultFont.
const DefaultFontSize = 15

// DefaultFont is a 15-point font of normal weight.
var DefaultFont = Font{Name: "system", Size: DefaultFontSize}

// Font describes how a title is drawn. Only Size takes part in
// interpolation.
type Font struct {
	Name string
	Size float64
	Bold bool
}

// IsZero reports whether f is unset.
func (f Font) IsZero() bool {
	return f == Font{}
}

// InterpolateFont blends the point size of from and to, keeping every other
// attribute of from.
func InterpolateFont(from, to Font, t float64) Font {
	from.Size = Lerp(from.Size, to.Size, t)
	return from
}

// Color is an RGBA color with channels in [0,1].
type Color struct {
	R, G, B, A float64
}

var (
	Black     = Color{A: 1}
	White     = Color{R: 1, G: 1, B: 1, A: 1}
	LightGray = Color{R: 2.0 / 3, G: 2.0 / 3, B: 2.0 / 3, A: 1}
)

// Hex parses a "#rrggbb" color. An unparseable string yields the zero Color.
func Hex(s string) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// Hex formats the color channels as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// IsZero reports whether c is unset.
func (c Color) IsZero() bool {
	return c == Color{}
}

// Over flattens c onto an opaque background, for surfaces without an alpha
// channel.
func (c Color) Over(bg Color) Color {
	fg := colorful.Color{R: c.R, G: c.G, B: c.B}
	back := colorful.Color{R: bg.R, G: bg.G, B: bg.B}
	blended := back.BlendRgb(fg, min(max(0, c.A), 1))
	return Color{R: blended.R, G: blended.G, B: blended.B, A: 1}
}

// InterpolateColor blends each channel of from and to independently.
func InterpolateColor(from, to Color, t float64) Color {
	return Color{
		R: Lerp(from.R, to.R, t),
		G: Lerp(from.G, to.G, t),
		B: Lerp(from.B, to.B, t),
		A: Lerp(from.A, to.A, t),
	}
}
