package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		t    float64
		want float64
	}{
		{"start", 10, 20, 0, 10},
		{"end", 10, 20, 1, 20},
		{"middle", 10, 20, 0.5, 15},
		{"below range clamps to start", 10, 20, -3, 10},
		{"above range clamps to end", 10, 20, 7.5, 20},
		{"descending", 20, 10, 0.25, 17.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lerp(tt.a, tt.b, tt.t))
		})
	}
}

func TestInterpolateFont(t *testing.T) {
	from := Font{Name: "mono", Size: 10, Bold: true}
	to := Font{Name: "serif", Size: 20}

	got := InterpolateFont(from, to, 0.5)

	assert.Equal(t, Font{Name: "mono", Size: 15, Bold: true}, got)
	assert.Equal(t, from, InterpolateFont(from, to, -1))
	assert.Equal(t, 20.0, InterpolateFont(from, to, 2).Size)
}

func TestInterpolateColor(t *testing.T) {
	got := InterpolateColor(Black, Color{R: 1, G: 0.5, B: 0, A: 0}, 0.5)

	assert.InDelta(t, 0.5, got.R, 1e-9)
	assert.InDelta(t, 0.25, got.G, 1e-9)
	assert.InDelta(t, 0.0, got.B, 1e-9)
	assert.InDelta(t, 0.5, got.A, 1e-9)

	assert.Equal(t, LightGray, InterpolateColor(LightGray, Black, 0))
	assert.Equal(t, Black, InterpolateColor(LightGray, Black, 1))
}

func TestHex(t *testing.T) {
	c := Hex("#ff8000")
	assert.Equal(t, "#ff8000", c.Hex())
	assert.Equal(t, 1.0, c.A)

	assert.True(t, Hex("not a color").IsZero())
}

func TestOver(t *testing.T) {
	half := Color{R: 1, G: 1, B: 1, A: 0.5}
	got := half.Over(Black)
	assert.InDelta(t, 0.5, got.R, 1e-9)
	assert.Equal(t, 1.0, got.A)

	assert.Equal(t, White.Hex(), White.Over(Black).Hex())
}
