package tabbar

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/leg100/pageview/internal/scroll"
)

const (
	// maxIndicatorFrames bounds the indicator animation to half a second.
	maxIndicatorFrames = scroll.FrameRate / 2
	indicatorSettle    = 0.05
)

// indicatorAnimation springs the indicator onto a new item.
type indicatorAnimation struct {
	spring harmonica.Spring
	target Indicator
	vx, vw float64
	frames int
}

func newIndicatorAnimation(target Indicator) *indicatorAnimation {
	return &indicatorAnimation{
		spring: harmonica.NewSpring(harmonica.FPS(scroll.FrameRate), 18.0, 1.0),
		target: target,
	}
}

// step moves ind one frame closer to the target, reporting whether it has
// arrived.
func (a *indicatorAnimation) step(ind *Indicator) bool {
	a.frames++
	ind.CenterX, a.vx = a.spring.Update(ind.CenterX, a.vx, a.target.CenterX)
	ind.Width, a.vw = a.spring.Update(ind.Width, a.vw, a.target.Width)
	if a.frames >= maxIndicatorFrames {
		return true
	}
	return math.Abs(ind.CenterX-a.target.CenterX) < indicatorSettle &&
		math.Abs(ind.Width-a.target.Width) < indicatorSettle
}
