// Package catalog supplies the pages shown by the pageview program: pages of
// text read from a YAML file, an optional page of log messages, and more
// pages loaded on demand.
package catalog

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/leg100/pageview/internal/logging"
	"github.com/leg100/pageview/internal/pager"
)

const (
	// LogsTitle is the title of the logs page.
	LogsTitle = "Logs"

	// DefaultLoadMoreCap is the number of pages beyond which no more are
	// loaded.
	DefaultLoadMoreCap = 15
	// DefaultLoadMoreBatch is the number of pages loaded at a time.
	DefaultLoadMoreBatch = 5
	// loadMoreThreshold is how close to the last page the selection must come
	// before more pages are loaded.
	loadMoreThreshold = 3
)

// Options configures a Catalog.
type Options struct {
	// Logs, if non-nil, adds a page listing log messages in front of the
	// other pages.
	Logs LogSource
	// LoadMore enables loading more pages as the selection nears the end.
	LoadMore bool
	// LoadMoreCap and LoadMoreBatch default to DefaultLoadMoreCap and
	// DefaultLoadMoreBatch.
	LoadMoreCap   int
	LoadMoreBatch int
	// JournalSize is the number of hook records retained. Zero means
	// unlimited.
	JournalSize int
	Logger      logging.Interface
}

// Catalog supplies titles and pages. It is not safe for concurrent use.
type Catalog struct {
	specs        []PageSpec
	defaultIndex int
	opts         Options
	journal      *Journal
	logger       logging.Interface

	loading bool
}

func New(f File, opts Options) *Catalog {
	if opts.Logger == nil {
		opts.Logger = logging.Discard
	}
	if opts.LoadMoreCap <= 0 {
		opts.LoadMoreCap = DefaultLoadMoreCap
	}
	if opts.LoadMoreBatch <= 0 {
		opts.LoadMoreBatch = DefaultLoadMoreBatch
	}
	c := &Catalog{
		specs:        f.Pages,
		defaultIndex: f.DefaultIndex,
		opts:         opts,
		journal:      NewJournal(opts.JournalSize),
		logger:       opts.Logger,
	}
	if opts.Logs != nil {
		c.defaultIndex++
	}
	return c
}

// DefaultIndex is the index of the page shown first.
func (c *Catalog) DefaultIndex() int { return c.defaultIndex }

// Journal is the record of hooks received by the catalog's pages.
func (c *Catalog) Journal() *Journal { return c.journal }

func (c *Catalog) ItemCount() int {
	return len(c.specs) + c.offset()
}

func (c *Catalog) Title(index int) string {
	if c.isLogs(index) {
		return LogsTitle
	}
	if spec, ok := c.spec(index); ok {
		return spec.Title
	}
	return ""
}

// Page constructs a new page for the given index, or nil if there is no such
// page.
func (c *Catalog) Page(index int) pager.Page {
	if c.isLogs(index) {
		return &LogsPage{
			Page: c.newPage(index, PageSpec{Title: LogsTitle}),
			logs: c.opts.Logs,
		}
	}
	spec, ok := c.spec(index)
	if !ok {
		return nil
	}
	p := c.newPage(index, spec)
	c.logger.Debug("constructed page", "page", index, "id", p.ID)
	return &p
}

// ShouldLoadMore reports whether more pages should be loaded now that the
// page at selected is selected. If so, the catalog is marked as loading until
// LoadMore is called.
func (c *Catalog) ShouldLoadMore(selected int) bool {
	if !c.opts.LoadMore || c.loading {
		return false
	}
	count := c.ItemCount()
	if count-selected >= loadMoreThreshold || count >= c.opts.LoadMoreCap {
		return false
	}
	c.loading = true
	return true
}

// IsLoading reports whether more pages are being loaded.
func (c *Catalog) IsLoading() bool { return c.loading }

// LoadMore appends a batch of generated pages, returning the number added.
func (c *Catalog) LoadMore() int {
	c.loading = false
	n := min(c.opts.LoadMoreBatch, c.opts.LoadMoreCap-c.ItemCount())
	for range max(0, n) {
		number := len(c.specs) + 1
		c.specs = append(c.specs, PageSpec{
			Title: fmt.Sprintf("Page %d", number),
			Body:  fmt.Sprintf("Page %d\n\nLoaded on demand.", number),
		})
	}
	c.logger.Info("loaded more pages", "added", max(0, n), "total", c.ItemCount())
	return max(0, n)
}

func (c *Catalog) newPage(index int, spec PageSpec) Page {
	return Page{
		ID:      uuid.New(),
		Index:   index,
		Title:   spec.Title,
		Body:    spec.Body,
		journal: c.journal,
	}
}

func (c *Catalog) offset() int {
	if c.opts.Logs != nil {
		return 1
	}
	return 0
}

func (c *Catalog) isLogs(index int) bool {
	return c.opts.Logs != nil && index == 0
}

func (c *Catalog) spec(index int) (PageSpec, bool) {
	i := index - c.offset()
	if i < 0 || i >= len(c.specs) {
		return PageSpec{}, false
	}
	return c.specs[i], true
}
