package pager

import "github.com/leg100/pageview/internal/logging"

// ReloadMode determines which cached pages are evicted by ReloadData.
type ReloadMode int

const (
	// ReloadAll evicts every cached page.
	ReloadAll ReloadMode = iota
	// ReloadExceptCurrent evicts every cached page except the current one.
	ReloadExceptCurrent
	// ReloadNone only evicts pages whose index is no longer valid.
	ReloadNone
)

func (m ReloadMode) String() string {
	switch m {
	case ReloadAll:
		return "all"
	case ReloadExceptCurrent:
		return "except-current"
	case ReloadNone:
		return "none"
	default:
		return "unknown"
	}
}

// Options configures a container. Nil listeners are not called.
type Options struct {
	// DefaultIndex is the page shown first. It is clamped to the valid range.
	DefaultIndex int

	// WillTransition is called when a transition between two pages begins.
	WillTransition func(from, to int)
	// DidFinishTransition is called when a transition is committed.
	DidFinishTransition func(from, to int)
	// DidCancelTransition is called when a transition is abandoned.
	DidCancelTransition func(from, to int)
	// Dragging is called on every scroll tick of a user drag, before the tick
	// moves any transition on. To is the potential index as it stood, or
	// NoIndex. Percent is the distance dragged as a fraction of a page.
	Dragging func(from, to int, percent float64)
	// DidSelect is called when a transition is committed, with the new
	// current index.
	DidSelect func(index int)

	Logger logging.Interface
}
