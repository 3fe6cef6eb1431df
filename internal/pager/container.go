// Package pager implements a container of horizontally swipeable pages. It
// maps the offset of a paging scroll view onto a current page index, caches
// pages, and drives the appearance hooks of the pages as the user drags
// between them.
package pager

import (
	"math"
	"slices"
	"time"

	"github.com/leg100/pageview/internal/logging"
	"github.com/leg100/pageview/internal/scroll"
	"golang.org/x/exp/maps"
)

// JumpDuration is the duration of an animated SetCurrentIndex.
const JumpDuration = 250 * time.Millisecond

// NoIndex is the potential index when no transition is in flight.
const NoIndex = math.MinInt32

// Transition describes the speculative transition of a drag.
type Transition struct {
	From int
	// To is the potential index, or NoIndex.
	To    int
	Began bool
}

// Container is a pager of swipeable pages. It is not safe for concurrent use.
type Container struct {
	source DataSource
	opts   Options
	logger logging.Interface
	view   *scroll.View

	loaded  bool
	current int
	cache   map[int]*Entry

	// lastOffset and lastIndex are the offset and index recorded at the last
	// settle.
	lastOffset float64
	lastIndex  int
	// began is true once a drag has begun a speculative transition.
	began     bool
	potential int
}

func New(source DataSource, opts Options) *Container {
	if opts.Logger == nil {
		opts.Logger = logging.Discard
	}
	c := &Container{
		source:    source,
		opts:      opts,
		logger:    opts.Logger,
		view:      scroll.New(opts.Logger),
		cache:     make(map[int]*Entry),
		potential: NoIndex,
	}
	c.current = c.clamp(opts.DefaultIndex)
	c.view.SetDelegate(c)
	c.view.HandleOffsetRequests(c.SetCurrentIndex)
	return c
}

// View is the scroll view whose offset the container follows.
func (c *Container) View() *scroll.View { return c.view }

// CurrentIndex is the index of the committed current page.
func (c *Container) CurrentIndex() int { return c.current }

// CurrentPage is the current page, or nil if there are no pages.
func (c *Container) CurrentPage() Page {
	if e, ok := c.cache[c.current]; ok {
		return e.Page
	}
	return nil
}

// Entry returns the cached entry for the page at index.
func (c *Container) Entry(index int) (Entry, bool) {
	e, ok := c.cache[index]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// CachedIndices returns the indices of cached pages in ascending order.
func (c *Container) CachedIndices() []int {
	indices := maps.Keys(c.cache)
	slices.Sort(indices)
	return indices
}

// Transition returns the state of the speculative transition.
func (c *Container) Transition() Transition {
	return Transition{
		From:  c.current,
		To:    c.potential,
		Began: c.began,
	}
}

// Load lays out the container for the first time and attaches the current
// page.
func (c *Container) Load(width, height float64) {
	c.loaded = true
	c.current = c.clamp(c.current)
	c.view.SetBounds(width, height)
	c.reloadPages(false)
}

// Layout lays out the container at a new size.
func (c *Container) Layout(width, height float64) {
	if !c.loaded {
		c.Load(width, height)
		return
	}
	c.view.SetBounds(width, height)
	c.relayout()
}

// ReloadData evicts cached pages according to mode, re-lays out the content
// and re-attaches the current page.
func (c *Container) ReloadData(mode ReloadMode) {
	c.logger.Debug("reloading pages", "mode", mode, "page", c.current)
	c.clearCache(mode)
	c.reloadPages(true)
}

// ReceiveMemoryWarning evicts every page except the current one.
func (c *Container) ReceiveMemoryWarning() {
	c.clearCache(ReloadExceptCurrent)
}

// SetCurrentIndex shows the page at index. Out of range indices and the
// current index are ignored. If animated, the current page is first placed
// beside the target and then scrolled onto it.
func (c *Container) SetCurrentIndex(index int, animated bool) {
	if !c.loaded {
		c.current = index
		return
	}
	if index < 0 || index >= c.count() || index == c.current {
		return
	}
	// Let any animation in flight settle first: it may change the current
	// index.
	c.view.Settle()
	if index == c.current {
		return
	}
	c.logger.Debug("setting current page", "page", index, "animated", animated)
	c.potential = index
	c.beginUpdate()
	if !animated {
		c.view.SetOffset(float64(index) * c.view.Width())
		c.endUpdate()
		return
	}
	c.scrollTo(c.current, index)
}

// Close tears down the observers of the container's scroll view.
func (c *Container) Close() {
	c.view.Close()
}

// WillAppear forwards the hook to the current page.
func (c *Container) WillAppear() {
	if e, ok := c.cache[c.current]; ok {
		e.begin(true)
	}
}

// DidAppear forwards the hook to the current page.
func (c *Container) DidAppear() {
	if e, ok := c.cache[c.current]; ok {
		e.end()
	}
}

// WillDisappear forwards the hook to the current page.
func (c *Container) WillDisappear() {
	if e, ok := c.cache[c.current]; ok {
		e.begin(false)
	}
}

// DidDisappear forwards the hook to the current page.
func (c *Container) DidDisappear() {
	if e, ok := c.cache[c.current]; ok {
		e.end()
	}
}

// DidScroll handles a scroll tick. Only drags are of interest: the first
// movement in either direction speculatively begins a transition to the
// neighbouring page in that direction; reversing past the starting point
// cancels that transition and begins one in the other direction.
func (c *Container) DidScroll(v *scroll.View) {
	if !v.IsDragging() || v.Width() <= 0 {
		return
	}
	diff := v.Offset() - c.lastOffset
	if c.opts.Dragging != nil {
		c.opts.Dragging(c.current, c.potential, math.Abs(diff/v.Width()))
	}
	switch {
	case diff > 0:
		if !c.began || c.potential != c.current+1 {
			c.began = true
			if c.potential == c.current-1 {
				// reversed after dragging back
				c.endTransition(c.current, c.potential)
			}
			c.potential = c.current + 1
			c.beginUpdate()
		}
	case diff < 0:
		if !c.began || c.potential != c.current-1 {
			c.began = true
			if c.potential == c.current+1 {
				// reversed after dragging forward
				c.endTransition(c.current, c.potential)
			}
			c.potential = c.current - 1
			c.beginUpdate()
		}
	}
}

// DidEndDecelerating commits or cancels the transition begun by a drag.
func (c *Container) DidEndDecelerating(v *scroll.View) {
	if c.began {
		c.endUpdate()
	}
}

// DidEndScrollingAnimation commits or cancels the transition begun by an
// animated scroll.
func (c *Container) DidEndScrollingAnimation(v *scroll.View) {
	c.endUpdate()
}

func (c *Container) count() int {
	return c.source.ItemCount()
}

func (c *Container) clamp(index int) int {
	return max(0, min(index, c.count()-1))
}

func (c *Container) reloadPages(forward bool) {
	if !c.loaded {
		return
	}
	c.relayout()
	c.attach(c.current, forward)
}

func (c *Container) relayout() {
	var (
		width   = c.view.Width()
		changed = false
	)
	c.view.SetContentWidth(float64(c.count()) * width)
	// Don't interfere with the user.
	if !c.view.IsDragging() {
		c.view.SetOffset(c.view.OffsetFor(c.current))
	}
	for index, e := range c.cache {
		frame := c.view.PageFrame(index)
		if e.Frame != frame {
			e.Frame = frame
			changed = true
		}
	}
	if changed {
		c.logger.Debug("relaid out pages", "width", width, "height", c.view.Height())
	}
	c.resetState()
}

func (c *Container) resetState() {
	c.began = false
	c.lastIndex = c.current
	c.lastOffset = c.view.Offset()
	if c.view.Width() > 0 {
		c.current = c.view.Index()
	}
}

// lookup returns the cached entry at index.
func (c *Container) lookup(index int) *Entry {
	if index < 0 || index >= c.count() {
		return nil
	}
	return c.cache[index]
}

// attach returns the entry at index, fetching the page from the data source
// and caching it if it isn't already cached. If forward is true, a newly
// attached page is sent an appear pair.
func (c *Container) attach(index int, forward bool) *Entry {
	if index < 0 || index >= c.count() {
		return nil
	}
	if e, ok := c.cache[index]; ok {
		return e
	}
	page := c.source.Page(index)
	if page == nil {
		c.logger.Warn("data source returned no page", "page", index)
		return nil
	}
	e := &Entry{Page: page, Frame: c.view.PageFrame(index)}
	if forward {
		e.begin(true)
		e.end()
	}
	c.cache[index] = e
	c.logger.Debug("attached page", "page", index)
	return e
}

func (c *Container) detach(index int) {
	e, ok := c.cache[index]
	if !ok {
		return
	}
	if e.Visible || e.pending {
		e.begin(false)
		e.end()
	}
	delete(c.cache, index)
	c.logger.Debug("detached page", "page", index)
}

func (c *Container) clearCache(mode ReloadMode) {
	count := c.count()
	for index := range c.cache {
		switch mode {
		case ReloadExceptCurrent:
			if index == c.current && index < count {
				continue
			}
		case ReloadNone:
			if index < count {
				continue
			}
		}
		c.detach(index)
	}
}

func (c *Container) beginUpdate() {
	if c.current == c.potential {
		return
	}
	c.beginTransition(c.current, c.potential)
}

func (c *Container) endUpdate() {
	c.resetState()
	if c.potential != NoIndex && c.current != c.lastIndex && c.current != c.potential {
		// Settled more than one page away from where the drag began: abandon
		// the speculative neighbour and transition directly.
		c.endTransition(c.lastIndex, c.potential)
		c.potential = c.current
		c.beginTransition(c.lastIndex, c.current)
	}
	c.endTransition(c.lastIndex, c.potential)
	c.potential = NoIndex
}

func (c *Container) beginTransition(from, to int) {
	newEntry := c.attach(to, false)
	oldEntry := c.lookup(from)
	if newEntry == nil || oldEntry == nil {
		return
	}
	oldEntry.begin(false)
	newEntry.begin(true)
	c.logger.Debug("began transition", "from", from, "to", to)
	if c.opts.WillTransition != nil {
		c.opts.WillTransition(from, to)
	}
}

func (c *Container) endTransition(from, to int) {
	oldEntry := c.lookup(from)
	newEntry := c.lookup(to)
	if oldEntry == nil || newEntry == nil {
		return
	}
	if c.potential == c.current {
		oldEntry.end()
		newEntry.end()
		c.logger.Debug("finished transition", "from", from, "to", to)
		if c.opts.DidFinishTransition != nil {
			c.opts.DidFinishTransition(from, to)
		}
		if c.opts.DidSelect != nil {
			c.opts.DidSelect(c.current)
		}
		return
	}
	// Restore the original page and hide the other one again.
	oldEntry.begin(true)
	oldEntry.end()
	newEntry.begin(false)
	newEntry.end()
	c.logger.Debug("cancelled transition", "from", from, "to", to)
	if c.opts.DidCancelTransition != nil {
		c.opts.DidCancelTransition(from, to)
	}
}

// scrollTo animates from the page at from to the page at to. The page at from
// is first moved next to the target so that the animation only crosses a
// single page.
func (c *Container) scrollTo(from, to int) {
	width := c.view.Width()
	e := c.lookup(from)
	if e == nil {
		c.view.SetOffset(float64(to) * width)
		c.endUpdate()
		return
	}
	original := e.Frame
	nearest := to - 1
	if from > to {
		nearest = to + 1
	}
	c.view.SetOffset(float64(nearest) * width)
	e.Frame.X = float64(nearest) * width
	c.view.AnimateOffset(float64(to)*width, JumpDuration, func() {
		e.Frame = original
		c.endUpdate()
	})
}
