package pageview

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/leg100/pageview/internal/logging"
	"github.com/leg100/pageview/internal/pager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePage struct {
	hooks []string
}

func (p *fakePage) WillAppear()    { p.hooks = append(p.hooks, "willAppear") }
func (p *fakePage) DidAppear()     { p.hooks = append(p.hooks, "didAppear") }
func (p *fakePage) WillDisappear() { p.hooks = append(p.hooks, "willDisappear") }
func (p *fakePage) DidDisappear()  { p.hooks = append(p.hooks, "didDisappear") }

type fakeSource struct {
	titles []string
	pages  map[int]*fakePage
}

func newFakeSource(titles ...string) *fakeSource {
	return &fakeSource{titles: titles, pages: make(map[int]*fakePage)}
}

func (s *fakeSource) ItemCount() int         { return len(s.titles) }
func (s *fakeSource) Title(index int) string { return s.titles[index] }

func (s *fakeSource) Page(index int) pager.Page {
	p := &fakePage{}
	s.pages[index] = p
	return p
}

type events []string

func (e *events) config(defaultIndex int) Config {
	cfg := DefaultConfig()
	cfg.DefaultIndex = defaultIndex
	cfg.TabBarHeight = 2
	cfg.WillTransition = func(from, to int) {
		*e = append(*e, fmt.Sprintf("will %d->%d", from, to))
	}
	cfg.DidFinishTransition = func(from, to int) {
		*e = append(*e, fmt.Sprintf("finish %d->%d", from, to))
	}
	cfg.DidCancelTransition = func(from, to int) {
		*e = append(*e, fmt.Sprintf("cancel %d->%d", from, to))
	}
	cfg.DidSelect = func(index int) {
		*e = append(*e, fmt.Sprintf("select %d", index))
	}
	return cfg
}

func setup(t *testing.T, defaultIndex int) (*Controller, *fakeSource, *events) {
	t.Helper()

	src := newFakeSource("Recommend", "Follow", "Hot", "News", "Video")
	ev := &events{}
	c := New(context.Background(), src, ev.config(defaultIndex))
	c.Layout(100, 22)
	t.Cleanup(c.Close)
	return c, src, ev
}

func settle(t *testing.T, c *Controller) {
	t.Helper()
	for i := 0; c.Step(); i++ {
		require.Less(t, i, 1000, "animation never finished")
	}
}

func TestController_Layout(t *testing.T) {
	c, _, ev := setup(t, 2)

	assert.Equal(t, 2, c.SelectedIndex())
	assert.Equal(t, 2, c.Pager().CurrentIndex())
	assert.Equal(t, 100.0, c.TabBar().Width())
	assert.Equal(t, 2.0, c.TabBar().Height())
	assert.Equal(t, 100.0, c.Pager().View().Width())
	assert.Equal(t, 20.0, c.Pager().View().Height())
	assert.Equal(t, 200.0, c.Pager().View().Offset())
	assert.Empty(t, *ev)

	c.Layout(50, 30)

	assert.Equal(t, 2, c.SelectedIndex())
	assert.Equal(t, 2, c.Pager().CurrentIndex())
	assert.Equal(t, 100.0, c.Pager().View().Offset())
	assert.Equal(t, 28.0, c.Pager().View().Height())
}

func TestController_DefaultTabBarHeight(t *testing.T) {
	c := New(context.Background(), newFakeSource("a"), Config{})
	t.Cleanup(c.Close)

	assert.Equal(t, float64(DefaultTabBarHeight), c.TabBarHeight())
}

func TestController_Drag(t *testing.T) {
	c, _, ev := setup(t, 0)

	c.BeginDrag()
	c.DragBy(40)
	assert.Equal(t, 0, c.SelectedIndex())
	c.DragBy(60)
	assert.Equal(t, 1, c.SelectedIndex(), "tab bar commits on page boundary")
	assert.Equal(t, 0, c.Pager().CurrentIndex(), "pager commits on settle")

	c.EndDrag(0)
	settle(t, c)

	assert.Equal(t, 1, c.SelectedIndex())
	assert.Equal(t, 1, c.Pager().CurrentIndex())
	assert.Equal(t, events{"will 0->1", "finish 0->1", "select 1"}, *ev)
}

func TestController_DragReleasedEarly(t *testing.T) {
	c, _, ev := setup(t, 0)

	c.BeginDrag()
	c.DragBy(40)
	c.DragBy(40)
	c.EndDrag(0)
	settle(t, c)

	assert.Equal(t, 1, c.SelectedIndex())
	assert.Equal(t, 1, c.Pager().CurrentIndex())
	assert.Equal(t, events{"will 0->1", "finish 0->1", "select 1"}, *ev)
}

func TestController_DragCancelled(t *testing.T) {
	c, _, ev := setup(t, 1)

	c.BeginDrag()
	c.DragBy(30)
	c.EndDrag(0)
	settle(t, c)

	assert.Equal(t, 1, c.SelectedIndex())
	assert.Equal(t, 1, c.Pager().CurrentIndex())
	assert.Equal(t, events{"will 1->2", "cancel 1->2"}, *ev)
}

func TestController_TapItem(t *testing.T) {
	c, _, ev := setup(t, 0)

	c.TapItem(3)

	assert.Equal(t, 3, c.SelectedIndex())
	assert.True(t, c.IsAnimating())
	assert.Equal(t, events{"will 0->3"}, *ev)

	settle(t, c)

	assert.Equal(t, 3, c.Pager().CurrentIndex())
	assert.Equal(t, 300.0, c.Pager().View().Offset())
	assert.Equal(t, events{"will 0->3", "finish 0->3", "select 3"}, *ev)
	assert.False(t, c.IsAnimating())
}

func TestController_TapItemDuringScroll(t *testing.T) {
	c, _, ev := setup(t, 0)

	c.TapItem(3)
	c.Step()
	c.TapItem(1)
	settle(t, c)

	assert.Equal(t, 1, c.SelectedIndex())
	assert.Equal(t, 1, c.Pager().CurrentIndex())
	assert.Equal(t, events{
		"will 0->3", "finish 0->3", "select 3",
		"will 3->1", "finish 3->1", "select 1",
	}, *ev)
}

func TestController_SetSelectedIndex(t *testing.T) {
	c, _, ev := setup(t, 0)

	c.SetSelectedIndex(4, false)

	assert.False(t, c.Pager().View().IsAnimating())
	assert.Equal(t, 4, c.SelectedIndex())
	assert.Equal(t, 4, c.Pager().CurrentIndex())
	assert.Equal(t, events{"will 0->4", "finish 0->4", "select 4"}, *ev)

	c.SetSelectedIndex(4, false)
	c.SetSelectedIndex(9, true)
	assert.Len(t, *ev, 3, "duplicate and out of range ignored")
}

func TestController_ReloadData(t *testing.T) {
	c, src, _ := setup(t, 0)
	c.SetSelectedIndex(3, false)

	src.titles = src.titles[:2]
	c.ReloadData(pager.ReloadNone)

	assert.Equal(t, 1, c.SelectedIndex())
	assert.Equal(t, 1, c.Pager().CurrentIndex())
	assert.Len(t, c.TabBar().Items(), 2)
	assert.Equal(t, []int{0, 1}, c.Pager().CachedIndices())
}

func TestController_ReceiveMemoryWarning(t *testing.T) {
	c, _, _ := setup(t, 0)
	c.SetSelectedIndex(1, false)
	c.SetSelectedIndex(2, false)

	c.ReceiveMemoryWarning()

	assert.Equal(t, []int{2}, c.Pager().CachedIndices())
}

func TestController_AppearDisappear(t *testing.T) {
	c, src, _ := setup(t, 1)

	c.Appear()
	c.Disappear()

	assert.Equal(t, []string{
		"willAppear", "didAppear", "willDisappear", "didDisappear",
	}, src.pages[1].hooks)
}

func TestController_Close(t *testing.T) {
	c, _, _ := setup(t, 0)

	c.Close()
	c.BeginDrag()
	c.DragBy(100)

	assert.Equal(t, 0, c.SelectedIndex(), "tab bar no longer follows")
}

func TestController_ContextDone(t *testing.T) {
	src := newFakeSource("a", "b", "c")
	ev := &events{}
	ctx, cancel := context.WithCancel(context.Background())
	c := New(ctx, src, ev.config(0))
	c.Layout(100, 22)
	t.Cleanup(c.Close)

	cancel()
	assert.Eventually(t, func() bool {
		return c.Pager().View().Observers() == 0
	}, time.Second, 10*time.Millisecond)

	c.BeginDrag()
	c.DragBy(100)
	assert.Equal(t, 0, c.SelectedIndex())
}

func TestController_EnrichesLogs(t *testing.T) {
	logger := logging.NewLogger(logging.Options{Level: "debug"})
	cfg := DefaultConfig()
	cfg.Logger = logger
	c := New(context.Background(), newFakeSource("Home", "Away"), cfg)
	t.Cleanup(c.Close)

	c.TapItem(1)

	var found bool
	for _, msg := range logger.List() {
		if msg.Message == "tapped tab" {
			found = true
			assert.Contains(t, msg.Attributes, logging.Attr{Key: "title", Value: "Away"})
		}
	}
	assert.True(t, found)
}
