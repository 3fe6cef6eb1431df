package tui

import (
	"strings"

	"github.com/leg100/go-runewidth"
)

// sliceCells returns the terminal cells of s from column from up to, but not
// including, column to. The result is padded with spaces to exactly to-from
// cells; a wide rune cut in two by either edge is replaced with spaces.
func sliceCells(s string, from, to int) string {
	if to <= from {
		return ""
	}
	var (
		b   strings.Builder
		col int
	)
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		switch {
		case col >= to:
		case col >= from && col+w <= to:
			b.WriteRune(r)
		case col+w > from:
			// straddles an edge
			b.WriteString(strings.Repeat(" ", min(col+w, to)-max(col, from)))
		}
		col += w
		if col >= to {
			break
		}
	}
	if col < to {
		b.WriteString(strings.Repeat(" ", to-max(col, from)))
	}
	return b.String()
}
