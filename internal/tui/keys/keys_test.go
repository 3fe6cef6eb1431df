package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func Test_keyMapToSlice(t *testing.T) {
	got := KeyMapToSlice(Global)
	want := []key.Binding{
		key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload others"),
		),
		key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reload all"),
		),
		key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "memory warning"),
		),
		key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "exit"),
		),
	}
	assert.Equal(t, want, got)
}

func Test_keyMapToSlice_NotStruct(t *testing.T) {
	assert.Nil(t, KeyMapToSlice("not a key map"))
}

func TestTabNumber(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   int
		wantOK bool
	}{
		{"first", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}}, 0, true},
		{"ninth", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'9'}}, 8, true},
		{"zero", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'0'}}, 0, false},
		{"letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, 0, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TabNumber(tt.msg)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
