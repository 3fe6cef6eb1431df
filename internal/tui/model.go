package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leg100/pageview/internal/catalog"
	"github.com/leg100/pageview/internal/logging"
	"github.com/leg100/pageview/internal/pager"
	"github.com/leg100/pageview/internal/pageview"
	"github.com/leg100/pageview/internal/pubsub"
	"github.com/leg100/pageview/internal/tabbar"
	"github.com/leg100/pageview/internal/tui/keys"
	zone "github.com/lrstanley/bubblezone"
)

const (
	// tabStripHeight is the number of rows taken by the tab strip: a row of
	// titles and a row for the indicator.
	tabStripHeight = 2
	// footerHeight is the number of rows taken by the rule and the status
	// line beneath the pages.
	footerHeight = 2

	// releaseDelay is how long a drag stays held after the last drag key.
	releaseDelay = 400 * time.Millisecond
	// loadMoreDelay simulates fetching more pages.
	loadMoreDelay = 2 * time.Second
	// flickVelocity is the release velocity of a flick, in cells per second.
	flickVelocity = 100.0
)

type model struct {
	ctrl    *pageview.Controller
	catalog *catalog.Catalog
	tabCfg  tabbar.Config
	logger  logging.Interface

	zones      *zone.Manager
	zonePrefix string

	width    int
	height   int
	appeared bool
	showHelp bool
	err      error
	info     string

	// animating is true while frame ticks are scheduled.
	animating bool
	// dragSeq numbers drag keypresses so that only the release scheduled by
	// the latest one takes effect.
	dragSeq int

	// cmds are commands queued by controller callbacks during an update.
	cmds []tea.Cmd
}

func newModel(ctx context.Context, opts Options) (*model, error) {
	if opts.Catalog == nil {
		return nil, errors.New("no page catalog")
	}
	m := &model{
		catalog: opts.Catalog,
		logger:  logging.Discard,
		zones:   zone.New(),
	}
	if opts.Logger != nil {
		m.logger = opts.Logger
	}
	m.zonePrefix = m.zones.NewPrefix()

	cfg := opts.Config
	cfg.DefaultIndex = opts.Catalog.DefaultIndex()
	cfg.TabBarHeight = tabStripHeight
	cfg.Logger = m.logger
	didSelect := cfg.DidSelect
	cfg.DidSelect = func(index int) {
		m.didSelect(index)
		if didSelect != nil {
			didSelect(index)
		}
	}
	m.tabCfg = cfg.TabBar
	m.ctrl = pageview.New(ctx, opts.Catalog, cfg)
	return m, nil
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ctrl.Layout(float64(m.width), float64(max(0, m.height-footerHeight)))
		if !m.appeared {
			m.ctrl.Appear()
			m.appeared = true
		}
	case tea.KeyMsg:
		m.err = nil
		switch {
		case key.Matches(msg, keys.Global.Quit):
			m.releaseDrag()
			m.ctrl.Disappear()
			return m, tea.Quit
		case key.Matches(msg, keys.Global.Help):
			m.showHelp = !m.showHelp
		case key.Matches(msg, keys.Global.Reload):
			m.releaseDrag()
			m.ctrl.ReloadData(pager.ReloadExceptCurrent)
			m.info = "reloaded pages"
		case key.Matches(msg, keys.Global.ReloadAll):
			m.releaseDrag()
			m.ctrl.ReloadData(pager.ReloadAll)
			m.info = "reloaded all pages"
		case key.Matches(msg, keys.Global.MemoryWarning):
			m.releaseDrag()
			m.ctrl.ReceiveMemoryWarning()
			m.info = fmt.Sprintf("evicted pages: %d cached", len(m.ctrl.Pager().CachedIndices()))
		case key.Matches(msg, keys.Navigation.DragLeft):
			cmds = append(cmds, m.drag(-1))
		case key.Matches(msg, keys.Navigation.DragRight):
			cmds = append(cmds, m.drag(1))
		case key.Matches(msg, keys.Navigation.FlickLeft):
			m.flick(-1)
		case key.Matches(msg, keys.Navigation.FlickRight):
			m.flick(1)
		case key.Matches(msg, keys.Navigation.Release):
			m.releaseDrag()
		case key.Matches(msg, keys.Navigation.NextTab):
			m.releaseDrag()
			m.ctrl.SetSelectedIndex(m.ctrl.SelectedIndex()+1, true)
		case key.Matches(msg, keys.Navigation.PrevTab):
			m.releaseDrag()
			m.ctrl.SetSelectedIndex(m.ctrl.SelectedIndex()-1, true)
		default:
			if index, ok := keys.TabNumber(msg); ok {
				m.releaseDrag()
				m.ctrl.SetSelectedIndex(index, false)
			}
		}
	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))
	case releaseMsg:
		if msg.seq == m.dragSeq {
			m.releaseDrag()
		}
	case frameMsg:
		m.ctrl.Step()
		if m.ctrl.IsAnimating() {
			cmds = append(cmds, frame())
		} else {
			m.animating = false
		}
	case loadMoreMsg:
		if n := m.catalog.LoadMore(); n > 0 {
			m.ctrl.ReloadData(pager.ReloadNone)
			m.info = fmt.Sprintf("loaded %d more pages", n)
		} else {
			cmds = append(cmds, CmdHandler(InfoMsg("no more pages")))
		}
	case pubsub.Event[logging.Message]:
		// Nothing to do other than re-render the logs page.
	case ErrorMsg:
		if msg.Error != nil {
			err := msg.Error
			msg := fmt.Sprintf(msg.Message, msg.Args...)

			// Both print error in footer as well as log it.
			m.err = fmt.Errorf("%s: %w", msg, err)
			m.logger.Error(msg, "error", err)
		}
	case InfoMsg:
		m.info = string(msg)
	}

	cmds = append(cmds, m.cmds...)
	m.cmds = nil
	cmds = append(cmds, m.animate())
	return m, tea.Batch(cmds...)
}

// drag drags the pages a quarter page in the given direction, starting a
// drag if one isn't already under way. The drag is released once the keys
// stop.
func (m *model) drag(direction float64) tea.Cmd {
	if !m.ctrl.IsDragging() {
		m.ctrl.BeginDrag()
	}
	m.ctrl.DragBy(direction * m.quarterPage())
	m.dragSeq++
	seq := m.dragSeq
	return tea.Tick(releaseDelay, func(time.Time) tea.Msg {
		return releaseMsg{seq: seq}
	})
}

// flick drags the pages a little and releases them quickly enough for them to
// carry on to the next page.
func (m *model) flick(direction float64) {
	if !m.ctrl.IsDragging() {
		m.ctrl.BeginDrag()
	}
	m.ctrl.DragBy(direction * m.quarterPage())
	m.dragSeq++
	m.ctrl.EndDrag(direction * flickVelocity)
}

func (m *model) releaseDrag() {
	if m.ctrl.IsDragging() {
		m.ctrl.EndDrag(0)
	}
}

func (m *model) quarterPage() float64 {
	return max(1, m.ctrl.Pager().View().Width()/4)
}

func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelLeft:
		return m.drag(-1)
	case tea.MouseButtonWheelRight:
		return m.drag(1)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
		for i := range m.ctrl.TabBar().Items() {
			if m.zones.Get(m.tabZoneID(i)).InBounds(msg) {
				m.releaseDrag()
				m.ctrl.TapItem(i)
				break
			}
		}
	}
	return nil
}

// animate schedules frame ticks if an animation has started.
func (m *model) animate() tea.Cmd {
	if m.animating || !m.ctrl.IsAnimating() {
		return nil
	}
	m.animating = true
	return frame()
}

// didSelect is called once the pager commits to a page.
func (m *model) didSelect(index int) {
	if m.catalog.ShouldLoadMore(index) {
		m.cmds = append(m.cmds, tea.Tick(loadMoreDelay, func(time.Time) tea.Msg {
			return loadMoreMsg{}
		}))
	}
}

func (m *model) tabZoneID(index int) string {
	return fmt.Sprintf("%stab-%d", m.zonePrefix, index)
}

func (m *model) close() {
	m.ctrl.Close()
	m.zones.Close()
}
