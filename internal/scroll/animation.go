package scroll

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/leg100/pageview/internal/interp"
)

// FrameRate is the number of animation frames per second.
const FrameRate = 60

// Frame is the duration of a single animation frame.
const Frame = time.Second / FrameRate

const (
	// settleDistance is how close the decelerating offset must be to its
	// target before it snaps onto it.
	settleDistance = 0.5
	settleVelocity = 1.0
	// maxDecelerationFrames bounds a deceleration regardless of the spring.
	maxDecelerationFrames = 4 * FrameRate
)

type animation interface {
	// step advances the animation by one frame and reports whether it has
	// finished.
	step(v *View) bool
	// finish jumps to the end of the animation.
	finish(v *View)
}

// tween moves the offset to a target over a fixed duration.
type tween struct {
	from, to   float64
	duration   time.Duration
	elapsed    time.Duration
	completion func()
}

func (t *tween) step(v *View) bool {
	t.elapsed += Frame
	if t.elapsed >= t.duration {
		return true
	}
	progress := float64(t.elapsed) / float64(t.duration)
	v.setOffset(interp.Lerp(t.from, t.to, easeInOut(progress)))
	return false
}

func (t *tween) finish(v *View) {
	v.anim = nil
	v.setOffset(t.to)
	if t.completion != nil {
		t.completion()
	}
}

// deceleration carries the offset onto a page boundary after the user lifts
// their finger.
type deceleration struct {
	spring   harmonica.Spring
	target   float64
	velocity float64
	frames   int
}

func newDeceleration(target, velocity float64) *deceleration {
	return &deceleration{
		// critically damped: no overshoot past the target page
		spring:   harmonica.NewSpring(harmonica.FPS(FrameRate), 8.0, 1.0),
		target:   target,
		velocity: velocity,
	}
}

func (d *deceleration) step(v *View) bool {
	d.frames++
	pos, vel := d.spring.Update(v.offset, d.velocity, d.target)
	d.velocity = vel
	if d.frames >= maxDecelerationFrames ||
		(math.Abs(pos-d.target) < settleDistance && math.Abs(vel) < settleVelocity) {
		return true
	}
	v.setOffset(min(max(0, pos), v.MaxOffset()))
	return false
}

func (d *deceleration) finish(v *View) {
	v.anim = nil
	v.setOffset(d.target)
	v.decelerating = false
	if v.delegate != nil {
		v.delegate.DidEndDecelerating(v)
	}
}

func easeInOut(t float64) float64 {
	return t * t * (3 - 2*t)
}
