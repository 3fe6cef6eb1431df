package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
)

func Test_fullHelpView(t *testing.T) {
	got := fullHelpView(
		[]key.Binding{
			key.NewBinding(key.WithHelp("a", "aaa")),
			key.NewBinding(key.WithHelp("b", "bbb")),
		},
		[]key.Binding{
			key.NewBinding(key.WithHelp("c", "ccc")),
		},
	)
	lines := strings.Split(got, "\n")
	if assert.Len(t, lines, 3) {
		assert.Contains(t, lines[0], "GENERAL")
		assert.Contains(t, lines[0], "NAVIGATION")
		assert.Contains(t, lines[1], "a aaa")
		assert.Contains(t, lines[1], "c ccc")
		assert.Contains(t, lines[2], "b bbb")
	}
}
