// Package pageview combines a tab bar and a pager of swipeable pages, fed by
// a single data source, into one controller. The tab bar follows the pager's
// scroll view, and tapping a tab scrolls the pager.
package pageview

import (
	"context"
	"errors"

	"github.com/leg100/pageview/internal/logging"
	"github.com/leg100/pageview/internal/pager"
	"github.com/leg100/pageview/internal/tabbar"
)

// ErrNoPage is returned when looking up a page that doesn't exist.
var ErrNoPage = errors.New("no such page")

// DataSource supplies both the titles of the tabs and the pages.
type DataSource interface {
	ItemCount() int
	Title(index int) string
	Page(index int) pager.Page
}

// Controller lays out a tab bar above a pager. It is not safe for concurrent
// use.
type Controller struct {
	source DataSource
	cfg    Config
	logger logging.Interface

	pager  *pager.Container
	tabBar *tabbar.TabBar

	cancel context.CancelFunc
}

// New constructs a controller. The tab bar follows the pager until ctx is
// done or the controller is closed.
func New(ctx context.Context, source DataSource, cfg Config) *Controller {
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard
	}
	if cfg.TabBarHeight <= 0 {
		cfg.TabBarHeight = DefaultTabBarHeight
	}
	c := &Controller{
		source: source,
		cfg:    cfg,
		logger: cfg.Logger,
	}
	if enricher, ok := cfg.Logger.(logging.Enricher); ok {
		enricher.AddArgsUpdater(&logging.ReferenceUpdater[string]{
			Getter: titles{source},
			Key:    "page",
			Name:   "title",
		})
	}

	c.pager = pager.New(source, pager.Options{
		DefaultIndex:        cfg.DefaultIndex,
		WillTransition:      cfg.WillTransition,
		DidFinishTransition: cfg.DidFinishTransition,
		DidCancelTransition: cfg.DidCancelTransition,
		Dragging:            cfg.Dragging,
		DidSelect:           c.didSelect,
		Logger:              cfg.Logger,
	})

	tabCfg := cfg.TabBar
	tabCfg.DefaultIndex = cfg.DefaultIndex
	tabCfg.Logger = cfg.Logger
	c.tabBar = tabbar.New(source, tabCfg)

	ctx, c.cancel = context.WithCancel(ctx)
	c.tabBar.Observe(ctx, c.pager.View())
	return c
}

// Layout lays out the tab bar along the top of the given area and the pager
// beneath it.
func (c *Controller) Layout(width, height float64) {
	tabHeight := min(c.cfg.TabBarHeight, max(0, height))
	c.pager.Layout(width, max(0, height-tabHeight))
	c.tabBar.SetBounds(width, tabHeight)
}

// TabBarHeight is the height given to the tab bar by Layout.
func (c *Controller) TabBarHeight() float64 { return c.cfg.TabBarHeight }

// SelectedIndex is the index of the selected tab.
func (c *Controller) SelectedIndex() int {
	return c.tabBar.SelectedIndex()
}

// SetSelectedIndex selects the tab at index and shows its page, scrolling to
// it if animated.
func (c *Controller) SetSelectedIndex(index int, animated bool) {
	// finish any scroll in flight first, otherwise its completion would select
	// its own page after this one.
	c.pager.View().Settle()
	if animated {
		c.tabBar.SetSelectedIndex(index, true)
		return
	}
	c.tabBar.SetSelectedIndex(index, false)
	c.pager.SetCurrentIndex(index, false)
}

// TapItem handles the user tapping the tab at index.
func (c *Controller) TapItem(index int) {
	c.logger.Debug("tapped tab", "page", index)
	c.SetSelectedIndex(index, true)
}

// ReloadData reloads both the pager, evicting pages according to mode, and
// the tab bar.
func (c *Controller) ReloadData(mode pager.ReloadMode) {
	c.pager.ReloadData(mode)
	c.tabBar.ReloadData()
}

// ReceiveMemoryWarning evicts every page except the current one.
func (c *Controller) ReceiveMemoryWarning() {
	c.pager.ReceiveMemoryWarning()
}

// BeginDrag starts a user drag of the pages.
func (c *Controller) BeginDrag() {
	c.pager.View().BeginDragging()
}

// DragBy drags the pages by dx.
func (c *Controller) DragBy(dx float64) {
	c.pager.View().DragBy(dx)
}

// EndDrag releases the pages with the given velocity.
func (c *Controller) EndDrag(velocity float64) {
	c.pager.View().EndDragging(velocity)
}

// IsDragging reports whether the user is dragging the pages.
func (c *Controller) IsDragging() bool {
	return c.pager.View().IsTracking()
}

// Step advances every animation by one frame, returning true if further
// frames are required.
func (c *Controller) Step() bool {
	scrolling := c.pager.View().Step()
	indicating := c.tabBar.Step()
	return scrolling || indicating
}

// IsAnimating reports whether any animation is in flight.
func (c *Controller) IsAnimating() bool {
	return c.pager.View().IsAnimating() || c.tabBar.IsAnimating()
}

// Appear forwards a paired appearance to the current page.
func (c *Controller) Appear() {
	c.pager.WillAppear()
	c.pager.DidAppear()
}

// Disappear forwards a paired disappearance to the current page.
func (c *Controller) Disappear() {
	c.pager.WillDisappear()
	c.pager.DidDisappear()
}

func (c *Controller) Pager() *pager.Container { return c.pager }

func (c *Controller) TabBar() *tabbar.TabBar { return c.tabBar }

// Close stops the tab bar following the pager.
func (c *Controller) Close() {
	c.cancel()
	c.tabBar.Close()
	c.pager.Close()
}

// didSelect keeps the tab bar on the page the pager settled on, and passes the
// selection on.
func (c *Controller) didSelect(index int) {
	c.tabBar.SetSelectedIndex(index, false)
	if c.cfg.DidSelect != nil {
		c.cfg.DidSelect(index)
	}
}

// titles looks up the titles of pages for log records.
type titles struct {
	source DataSource
}

func (t titles) Get(index int) (string, error) {
	if index < 0 || index >= t.source.ItemCount() {
		return "", ErrNoPage
	}
	return t.source.Title(index), nil
}
