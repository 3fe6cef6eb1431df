package scroll

// Rect is a frame in the content coordinate space of a View.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) MinX() float64 { return r.X }

func (r Rect) MidX() float64 { return r.X + r.W/2 }

func (r Rect) MaxX() float64 { return r.X + r.W }

// Position is published to observers whenever the offset of a View changes.
type Position struct {
	Old float64
	New float64
	// Dragging is true if the change was caused by the user, either directly
	// or by deceleration following the user lifting their finger.
	Dragging bool
}
