package pager

import (
	"github.com/leg100/pageview/internal/scroll"
)

// Page is a unit of swipeable content. The container calls its hooks in
// pairs: every WillAppear is followed by exactly one DidAppear, and every
// WillDisappear by exactly one DidDisappear.
type Page interface {
	WillAppear()
	DidAppear()
	WillDisappear()
	DidDisappear()
}

// DataSource supplies the pages of a container.
type DataSource interface {
	ItemCount() int
	// Page returns the page at index. A nil page aborts whatever transition
	// asked for it.
	Page(index int) Page
}

// Entry is a page cached by the container.
type Entry struct {
	Page Page
	// Frame is the last known frame of the page within the content.
	Frame scroll.Rect
	// Visible is true once the page has appeared and until it next
	// disappears.
	Visible bool

	// pending is true between the two halves of an appearance transition.
	pending   bool
	appearing bool
}

// begin opens an appearance transition. If one is already open it is first
// closed, so that hooks remain paired.
func (e *Entry) begin(appearing bool) {
	if e.pending {
		e.end()
	}
	e.pending = true
	e.appearing = appearing
	if appearing {
		e.Page.WillAppear()
	} else {
		e.Page.WillDisappear()
	}
}

// end closes the open appearance transition, if any.
func (e *Entry) end() {
	if !e.pending {
		return
	}
	e.pending = false
	if e.appearing {
		e.Visible = true
		e.Page.DidAppear()
	} else {
		e.Visible = false
		e.Page.DidDisappear()
	}
}

// InTransition reports whether the page is between the two halves of an
// appearance transition.
func (e *Entry) InTransition() bool { return e.pending }
