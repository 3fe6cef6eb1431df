// Package tabbar implements a horizontally scrollable strip of selectable
// titles that follows the offset of a paging scroll view: items blend between
// their normal and highlighted appearance as the view is dragged, and the
// selection is kept in step with the page the view settles on.
package tabbar

import (
	"context"
	"math"

	"github.com/leg100/pageview/internal/interp"
	"github.com/leg100/pageview/internal/logging"
	"github.com/leg100/pageview/internal/scroll"
)

// DataSource supplies the items of a tab bar.
type DataSource interface {
	ItemCount() int
	Title(index int) string
}

// TabBar is a strip of selectable items. It is not safe for concurrent use.
type TabBar struct {
	source DataSource
	cfg    Config
	logger logging.Interface

	width  float64
	height float64

	selected     int
	items        []ItemModel
	spacing      float64
	contentWidth float64
	stripOffset  float64

	indicator Indicator
	anim      *indicatorAnimation

	// view is the observed content view.
	view       *scroll.View
	unobserve  func()
	lastOffset float64
}

func New(source DataSource, cfg Config) *TabBar {
	cfg = cfg.withDefaults()
	t := &TabBar{
		source: source,
		cfg:    cfg,
		logger: cfg.Logger,
	}
	t.selected = t.clamp(cfg.DefaultIndex)
	t.refresh()
	return t
}

// SetBounds lays out the strip at a new size.
func (t *TabBar) SetBounds(width, height float64) {
	t.width = max(0, width)
	t.height = max(0, height)
	t.refresh()
}

// ReloadData rebuilds every item from the data source.
func (t *TabBar) ReloadData() {
	t.refresh()
}

// Observe follows the offset of view until ctx is done or Close is called,
// replacing any view already observed.
func (t *TabBar) Observe(ctx context.Context, view *scroll.View) {
	if t.unobserve != nil {
		t.unobserve()
	}
	t.view = view
	t.lastOffset = view.Offset()
	t.unobserve = view.Observe(ctx, func(pos scroll.Position) {
		if pos.New != pos.Old && pos.Dragging {
			t.contentDidChange(pos.New)
		}
		t.lastOffset = pos.New
	})
}

// Close stops observing the content view.
func (t *TabBar) Close() {
	if t.unobserve != nil {
		t.unobserve()
		t.unobserve = nil
	}
}

// SelectItem selects the item at index, as when the user taps it. If
// syncContent is true then the observed view is scrolled to the
// corresponding page.
func (t *TabBar) SelectItem(index int, syncContent bool) {
	t.selectItem(index, syncContent)
}

// SetSelectedIndex selects the item at index. Out of range indices and the
// selected index are ignored.
func (t *TabBar) SetSelectedIndex(index int, syncContent bool) {
	t.selectItem(index, syncContent)
}

// Step advances the indicator animation by one frame, returning true if
// further frames are required.
func (t *TabBar) Step() bool {
	if t.anim == nil {
		return false
	}
	if t.anim.step(&t.indicator) {
		t.indicator.CenterX = t.anim.target.CenterX
		t.indicator.Width = t.anim.target.Width
		t.anim = nil
	}
	return t.anim != nil
}

// IsAnimating reports whether the indicator is moving onto a new item.
func (t *TabBar) IsAnimating() bool { return t.anim != nil }

func (t *TabBar) SelectedIndex() int { return t.selected }

// Items returns the item models. The slice is owned by the tab bar.
func (t *TabBar) Items() []ItemModel { return t.items }

// Indicator is the current state of the indicator.
func (t *TabBar) Indicator() Indicator { return t.indicator }

// IndicatorTarget is where the indicator is heading, or where it is if it
// isn't moving.
func (t *TabBar) IndicatorTarget() Indicator {
	if t.anim != nil {
		return t.anim.target
	}
	return t.indicator
}

// Spacing is the gap between items after layout.
func (t *TabBar) Spacing() float64 { return t.spacing }

// ContentWidth is the width of every item and the gaps between them.
func (t *TabBar) ContentWidth() float64 { return t.contentWidth }

// StripOffset is how far the strip is scrolled to keep the selected item in
// view.
func (t *TabBar) StripOffset() float64 { return t.stripOffset }

func (t *TabBar) Width() float64  { return t.width }
func (t *TabBar) Height() float64 { return t.height }

// ItemFrame is the frame of the item at index within the strip's content.
func (t *TabBar) ItemFrame(index int) scroll.Rect {
	var (
		x     = t.spacing
		width float64
	)
	for i, m := range t.items {
		if i < index {
			x += m.Width + t.spacing
		} else if i == index {
			width = m.Width
		}
	}
	return scroll.Rect{X: x, W: width, H: t.height}
}

func (t *TabBar) count() int {
	return t.source.ItemCount()
}

func (t *TabBar) clamp(index int) int {
	return max(0, min(index, t.count()-1))
}

// refresh performs a layout pass.
func (t *TabBar) refresh() {
	count := t.count()
	t.selected = t.clamp(t.selected)

	t.spacing = t.cfg.Spacing
	var totalItemWidth float64
	for i := range count {
		totalItemWidth += t.widthFor(i, nil)
	}
	totalSpacing := t.spacing * float64(count+1)
	if !t.cfg.DisableRelayout && totalItemWidth+totalSpacing < t.width {
		t.spacing = (t.width - totalItemWidth) / float64(count+1)
	}

	t.items = make([]ItemModel, count)
	t.contentWidth = t.spacing
	for i := range count {
		t.items[i] = t.itemModel(i, 1)
		t.contentWidth += t.items[i].Width + t.spacing
	}

	t.anim = nil
	t.indicator = Indicator{
		Height: t.cfg.IndicatorHeight,
		Bottom: t.cfg.IndicatorBottom,
		Color:  t.cfg.IndicatorColor,
	}
	if count == 0 {
		t.stripOffset = 0
		return
	}
	t.indicator.CenterX = t.ItemFrame(t.selected).MidX()
	t.indicator.Width = t.indicatorWidth(t.selected)
	t.indicator.Visible = !t.cfg.HideIndicator
	t.scrollIntoView()

	if t.view != nil && t.view.Width() > 0 {
		t.view.SetContentOffset(float64(t.selected)*t.view.Width(), false)
	}
}

// scrollIntoView scrolls the strip so that the selected item is centred, as
// far as the content allows.
func (t *TabBar) scrollIntoView() {
	frame := t.ItemFrame(t.selected)
	target := frame.X - t.width/2 + frame.W/2
	t.stripOffset = max(min(t.contentWidth-t.width, target), 0)
}

// widthFor returns the width of the item at index. An explicit width takes
// precedence over measuring the title, which is measured in font, or if nil,
// the font befitting the item's selection.
func (t *TabBar) widthFor(index int, font *interp.Font) float64 {
	if t.cfg.ItemWidth != nil {
		if w := t.cfg.ItemWidth(index); w != AutomaticDimension {
			return w
		}
	}
	f := t.cfg.Font
	if font != nil {
		f = *font
	} else if index == t.selected {
		f = t.cfg.HighlightedFont
	}
	return t.cfg.Measure(t.source.Title(index), f)
}

func (t *TabBar) indicatorWidth(index int) float64 {
	if t.cfg.IndicatorWidth != nil {
		if w := t.cfg.IndicatorWidth(index); w != AutomaticDimension {
			return w
		}
	}
	return t.widthFor(index, nil)
}

// itemModel builds the model of the item at index. A percent of 1 gives the
// item's resting appearance: highlighted if selected, normal otherwise. Lower
// percentages blend it towards the opposite appearance.
func (t *TabBar) itemModel(index int, percent float64) ItemModel {
	m := ItemModel{
		Title:            t.source.Title(index),
		Font:             t.cfg.Font,
		HighlightedFont:  t.cfg.HighlightedFont,
		Color:            t.cfg.Color,
		HighlightedColor: t.cfg.HighlightedColor,
		Selected:         index == t.selected,
	}
	if m.Selected {
		m.HighlightedFont = interp.InterpolateFont(t.cfg.Font, t.cfg.HighlightedFont, percent)
		m.HighlightedColor = interp.InterpolateColor(t.cfg.Color, t.cfg.HighlightedColor, percent)
		m.Width = t.widthFor(index, &m.HighlightedFont)
	} else {
		m.Font = interp.InterpolateFont(t.cfg.HighlightedFont, t.cfg.Font, percent)
		m.Color = interp.InterpolateColor(t.cfg.HighlightedColor, t.cfg.Color, percent)
		m.Width = t.widthFor(index, &m.Font)
	}
	return m
}

// contentDidChange follows a drag of the content view to offset.
func (t *TabBar) contentDidChange(offset float64) {
	pageWidth := t.view.Width()
	if pageWidth <= 0 {
		return
	}
	count := t.count()
	ratio := offset / pageWidth
	if ratio > float64(count-1) || ratio < 0 {
		return
	}
	if offset == 0 && t.selected == 0 && t.lastOffset == 0 {
		return
	}
	maxOffset := t.view.ContentWidth() - pageWidth
	if offset == maxOffset && t.selected == count-1 && t.lastOffset == maxOffset {
		return
	}

	current := int(ratio)
	remainder := ratio - float64(current)
	ignore := t.lastOffset == offset && t.selected == current
	if remainder == 0 {
		// crossed a page boundary
		if !ignore {
			t.selectItem(current, false)
		}
	} else if math.Abs(ratio-float64(t.selected)) > 1 {
		// moved more than a page since the last commit without landing on a
		// boundary
		target := current
		if ratio < float64(t.selected) {
			target++
		}
		t.selectItem(target, false)
	}
	if ignore {
		return
	}

	from := t.selected
	to, percent := current, 1-remainder
	if t.selected == current {
		to, percent = current+1, remainder
	}
	t.refreshItemState(from, to, percent)
	if t.cfg.DidScroll != nil {
		t.cfg.DidScroll(from, to, percent)
	}
}

// refreshItemState blends the items at from and to, and moves the indicator
// between them, by percent.
func (t *TabBar) refreshItemState(from, to int, percent float64) {
	if from < 0 || from >= len(t.items) || to < 0 || to >= len(t.items) {
		return
	}
	if t.cfg.Transition == TransitionSmooth {
		fromModel := t.itemModel(from, 1-percent)
		toModel := t.itemModel(to, 1-percent)
		// Widths only change on the next layout pass.
		fromModel.Width = t.items[from].Width
		toModel.Width = t.items[to].Width
		t.items[from] = fromModel
		t.items[to] = toModel
	}
	if !t.indicator.Visible {
		return
	}
	fromFrame := t.ItemFrame(from)
	toFrame := t.ItemFrame(to)
	t.anim = nil
	t.indicator.CenterX = interp.Lerp(fromFrame.MidX(), toFrame.MidX(), percent)
	t.indicator.Width = interp.Lerp(t.indicatorWidth(from), t.indicatorWidth(to), percent)
}

func (t *TabBar) selectItem(index int, syncContent bool) {
	if index < 0 || index >= t.count() || index == t.selected {
		return
	}
	last := t.selected
	t.selected = index
	if last < len(t.items) {
		t.items[last].Selected = false
	}
	if index < len(t.items) {
		t.items[index].Selected = true
	}
	t.scrollIntoView()

	if t.indicator.Visible {
		target := t.indicator
		target.CenterX = t.ItemFrame(index).MidX()
		target.Width = t.indicatorWidth(index)
		t.anim = newIndicatorAnimation(target)
	}
	t.logger.Debug("selected tab", "page", index, "previous", last)

	if syncContent && t.view != nil && t.view.Width() > 0 {
		t.view.SetContentOffset(float64(index)*t.view.Width(), true)
	}
	if t.cfg.DidSelect != nil {
		t.cfg.DidSelect(index)
	}
}
