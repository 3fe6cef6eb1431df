package tui

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/pageview/internal/catalog"
	"github.com/leg100/pageview/internal/tabbar"
	"github.com/leg100/pageview/internal/tui/keys"
)

const indicatorRune = "━"

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	contentHeight := max(0, m.height-tabStripHeight-footerHeight)

	var content string
	if m.showHelp {
		content = lipgloss.NewStyle().
			Margin(1).
			Height(max(0, contentHeight-2)).
			Render(
				fullHelpView(
					keys.KeyMapToSlice(keys.Global),
					keys.KeyMapToSlice(keys.Navigation),
				),
			)
	} else {
		content = m.pagesView(m.width, contentHeight)
	}

	return m.zones.Scan(lipgloss.JoinVertical(
		lipgloss.Left,
		m.tabStripView(),
		content,
		lipgloss.NewStyle().Foreground(RuleColor).Render(strings.Repeat("─", m.width)),
		m.footerView(),
	))
}

// tabStripView renders the row of titles and, beneath it, the indicator.
func (m *model) tabStripView() string {
	var (
		bar    = m.ctrl.TabBar()
		offset = bar.StripOffset()
		titles strings.Builder
		col    int
	)
	for i, item := range bar.Items() {
		frame := bar.ItemFrame(i)
		start := round(frame.X - offset)
		end := start + round(frame.W)
		from, to := max(start, col), min(end, m.width)
		if to <= from {
			if start >= m.width {
				break
			}
			continue
		}
		titles.WriteString(strings.Repeat(" ", from-col))
		text := sliceCells(item.Title, from-start, to-start)
		titles.WriteString(m.zones.Mark(m.tabZoneID(i), m.itemStyle(item).Render(text)))
		col = to
	}
	titles.WriteString(strings.Repeat(" ", max(0, m.width-col)))

	// Underline the strip with a faint rule, broken by the indicator.
	rule := Regular.Foreground(RuleColor)
	indicator := rule.Render(strings.Repeat("─", m.width))
	if ind := bar.Indicator(); ind.Visible {
		from := min(m.width, max(0, round(ind.MinX()-offset)))
		to := max(from, min(m.width, round(ind.MaxX()-offset)))
		indicator = rule.Render(strings.Repeat("─", from)) +
			Regular.Foreground(lipgloss.Color(ind.Color.Hex())).Render(strings.Repeat(indicatorRune, to-from)) +
			rule.Render(strings.Repeat("─", m.width-to))
	}
	return lipgloss.JoinVertical(lipgloss.Left, titles.String(), indicator)
}

// itemStyle styles an item in its current, possibly interpolated, color. The
// terminal has only one size of text, so the item is emboldened if its font
// is closer in size to the highlighted font than to the normal font.
func (m *model) itemStyle(item tabbar.ItemModel) lipgloss.Style {
	style := Regular.Foreground(lipgloss.Color(item.RenderColor().Hex()))
	normal, highlighted := m.tabCfg.Font.Size, m.tabCfg.HighlightedFont.Size
	bold := item.Selected
	if normal != highlighted {
		size := item.RenderFont().Size
		bold = math.Abs(size-highlighted) < math.Abs(size-normal)
	}
	return style.Bold(bold)
}

// pagesView composes the visible parts of the cached pages, placing each at
// its frame relative to the offset of the scroll view.
func (m *model) pagesView(width, height int) string {
	var (
		p       = m.ctrl.Pager()
		offset  = p.View().Offset()
		rows    = make([]strings.Builder, height)
		col     int
		indices = p.CachedIndices()
	)
	slices.Sort(indices)
	for _, index := range indices {
		entry, ok := p.Entry(index)
		if !ok {
			continue
		}
		start := round(entry.Frame.X - offset)
		end := start + round(entry.Frame.W)
		from, to := max(start, col), min(end, width)
		if to <= from {
			continue
		}
		var lines []string
		if content, ok := entry.Page.(catalog.Content); ok {
			lines = content.Lines(end-start, height)
		}
		for r := range rows {
			var line string
			if r < len(lines) {
				line = lines[r]
			}
			rows[r].WriteString(strings.Repeat(" ", from-col))
			rows[r].WriteString(sliceCells(line, from-start, to-start))
		}
		col = to
	}
	lines := make([]string, height)
	for r := range rows {
		rows[r].WriteString(strings.Repeat(" ", max(0, width-col)))
		lines[r] = rows[r].String()
	}
	return strings.Join(lines, "\n")
}

func (m *model) footerView() string {
	// Page counter and loading status go in the bottom right corner.
	metadata := Padded.Render(
		fmt.Sprintf("%d/%d", m.ctrl.SelectedIndex()+1, m.catalog.ItemCount()),
	)
	if m.catalog.IsLoading() {
		metadata = Padded.Foreground(LoadingColor).Render("loading more...") + metadata
	}

	// Errors take precedence over info, which takes precedence over the
	// latest page hook.
	var footerMsg string
	if m.err != nil {
		footerMsg = Padded.
			Foreground(ErrorColor).
			Render("Error: " + m.err.Error())
	} else if m.info != "" {
		footerMsg = Padded.Render(m.info)
	} else if last, ok := m.catalog.Journal().Last(); ok {
		footerMsg = Padded.Foreground(InfoColor).Render(last.String())
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		Regular.
			Inline(true).
			MaxWidth(max(0, m.width-width(metadata))).
			Width(max(0, m.width-width(metadata))).
			Render(footerMsg),
		metadata,
	)
}

func round(f float64) int {
	return int(math.Round(f))
}

