// Package scroll models a horizontally paging scroll view: an offset into a
// row of equally wide pages that the user drags, that decelerates onto page
// boundaries, and whose changes are published to observers.
package scroll

import (
	"context"
	"math"
	"time"

	"github.com/leg100/pageview/internal/logging"
	"github.com/leg100/pageview/internal/pubsub"
)

const (
	// DefaultAnimationDuration is the duration of SetContentOffset when
	// animated.
	DefaultAnimationDuration = 300 * time.Millisecond
	// flickVelocity is the release velocity, in units per second, beyond
	// which the view pages in the direction of travel rather than to the
	// nearest page.
	flickVelocity = 20.0
)

// Delegate receives the scroll callbacks of a View.
type Delegate interface {
	// DidScroll is called after every change of offset.
	DidScroll(v *View)
	// DidEndDecelerating is called once deceleration has settled onto a
	// page following a drag.
	DidEndDecelerating(v *View)
	// DidEndScrollingAnimation is called once an animated SetContentOffset
	// has completed.
	DidEndScrollingAnimation(v *View)
}

// OffsetRequestFunc handles a request to show the page at index.
type OffsetRequestFunc func(index int, animated bool)

// View is a horizontally paging scroll view. It is not safe for concurrent
// use; every method is expected to be called from the host's event loop.
type View struct {
	offset       float64
	width        float64
	height       float64
	contentWidth float64

	tracking     bool
	decelerating bool
	anim         animation

	delegate      Delegate
	offsetRequest OffsetRequestFunc
	positions     *pubsub.Broker[Position]
	logger        logging.Interface
}

func New(logger logging.Interface) *View {
	if logger == nil {
		logger = logging.Discard
	}
	return &View{
		positions: pubsub.NewBroker[Position](logger),
		logger:    logger,
	}
}

// SetDelegate sets the receiver of scroll callbacks. The view does not own
// the delegate.
func (v *View) SetDelegate(d Delegate) { v.delegate = d }

// HandleOffsetRequests routes SetContentOffset to fn instead of moving the
// view directly.
func (v *View) HandleOffsetRequests(fn OffsetRequestFunc) { v.offsetRequest = fn }

// Observe calls fn synchronously for every change of offset until ctx is done
// or the returned function is called.
func (v *View) Observe(ctx context.Context, fn func(Position)) func() {
	return v.positions.Observe(ctx, func(ev pubsub.Event[Position]) {
		fn(ev.Payload)
	})
}

// Observers returns the number of observers of the view's offset.
func (v *View) Observers() int { return v.positions.Observers() }

// Close tears down all observers.
func (v *View) Close() {
	v.positions.Close()
}

func (v *View) SetBounds(width, height float64) {
	v.width = max(0, width)
	v.height = max(0, height)
}

func (v *View) SetContentWidth(width float64) { v.contentWidth = max(0, width) }

func (v *View) Width() float64        { return v.width }
func (v *View) Height() float64       { return v.height }
func (v *View) ContentWidth() float64 { return v.contentWidth }
func (v *View) Offset() float64       { return v.offset }

// MaxOffset is the largest offset the view can be dragged to.
func (v *View) MaxOffset() float64 {
	return max(0, v.contentWidth-v.width)
}

func (v *View) IsTracking() bool     { return v.tracking }
func (v *View) IsDecelerating() bool { return v.decelerating }

// IsDragging reports whether the user is in control of the offset, either
// directly or via deceleration.
func (v *View) IsDragging() bool { return v.tracking || v.decelerating }

func (v *View) IsAnimating() bool { return v.anim != nil }

// SetOffset moves the view to offset x without animation.
func (v *View) SetOffset(x float64) {
	v.setOffset(x)
}

func (v *View) setOffset(x float64) {
	if x == v.offset {
		return
	}
	old := v.offset
	v.offset = x
	if v.delegate != nil {
		v.delegate.DidScroll(v)
	}
	v.positions.Publish(pubsub.UpdatedEvent, Position{
		Old:      old,
		New:      x,
		Dragging: v.IsDragging(),
	})
}

// SetContentOffset requests the view scroll to offset x. If a request handler
// is installed then the request is passed on to the handler as a page index.
func (v *View) SetContentOffset(x float64, animated bool) {
	if v.offsetRequest != nil {
		v.offsetRequest(v.IndexAt(x), animated)
		return
	}
	v.Settle()
	if !animated {
		v.setOffset(x)
		return
	}
	v.anim = &tween{
		from:     v.offset,
		to:       x,
		duration: DefaultAnimationDuration,
		completion: func() {
			if v.delegate != nil {
				v.delegate.DidEndScrollingAnimation(v)
			}
		},
	}
}

// AnimateOffset moves the view to offset x over duration, calling completion
// once done. Any animation in flight is first finished.
func (v *View) AnimateOffset(x float64, duration time.Duration, completion func()) {
	v.Settle()
	v.anim = &tween{
		from:       v.offset,
		to:         x,
		duration:   duration,
		completion: completion,
	}
}

// Settle finishes any in-flight animation or deceleration immediately,
// running its completion.
func (v *View) Settle() {
	if v.anim != nil {
		v.anim.finish(v)
	}
}

// Step advances animations by one frame, returning true if further frames are
// required.
func (v *View) Step() bool {
	if v.anim == nil {
		return false
	}
	if v.anim.step(v) {
		v.anim.finish(v)
	}
	return v.anim != nil
}

// BeginDragging starts a user drag. A deceleration in flight is interrupted
// and continues as the new drag; any other animation is finished first.
func (v *View) BeginDragging() {
	if _, ok := v.anim.(*deceleration); ok {
		v.anim = nil
		v.decelerating = false
	} else {
		v.Settle()
	}
	v.tracking = true
}

// DragBy moves the view by dx while the user is dragging. The offset never
// leaves the content.
func (v *View) DragBy(dx float64) {
	if !v.tracking {
		return
	}
	v.setOffset(min(max(0, v.offset+dx), v.MaxOffset()))
}

// EndDragging ends a user drag, releasing the view with the given velocity in
// units per second. The view decelerates onto a page boundary: the nearest
// one, or the next one in the direction of travel for a fast enough flick.
func (v *View) EndDragging(velocity float64) {
	if !v.tracking {
		return
	}
	v.tracking = false
	v.decelerating = true

	target := v.OffsetFor(v.targetIndex(velocity))
	v.logger.Debug("decelerating", "offset", v.offset, "target", target, "velocity", velocity)
	if target == v.offset {
		v.decelerating = false
		if v.delegate != nil {
			v.delegate.DidEndDecelerating(v)
		}
		return
	}
	v.anim = newDeceleration(target, velocity)
}

func (v *View) targetIndex(velocity float64) int {
	if v.width <= 0 {
		return 0
	}
	ratio := v.offset / v.width
	switch {
	case velocity > flickVelocity:
		return int(math.Ceil(ratio))
	case velocity < -flickVelocity:
		return int(math.Floor(ratio))
	default:
		return int(math.Round(ratio))
	}
}

// Index is the index of the page at the current offset.
func (v *View) Index() int {
	return v.IndexAt(v.offset)
}

// IndexAt is the index of the page at offset x.
func (v *View) IndexAt(x float64) int {
	if v.width <= 0 {
		return 0
	}
	return max(0, int(x/v.width))
}

// OffsetFor is the offset at which the page at index is shown, kept within the
// content.
func (v *View) OffsetFor(index int) float64 {
	x := max(0, float64(index)*v.width)
	if v.contentWidth > 0 && x > v.contentWidth-v.width {
		x = max(0, v.contentWidth-v.width)
	}
	return x
}

// PageFrame is the frame of the page at index.
func (v *View) PageFrame(index int) Rect {
	return Rect{X: float64(index) * v.width, W: v.width, H: v.height}
}
