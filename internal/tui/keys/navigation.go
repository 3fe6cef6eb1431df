package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type navigation struct {
	DragLeft   key.Binding
	DragRight  key.Binding
	FlickLeft  key.Binding
	FlickRight key.Binding
	Release    key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	GotoTab    key.Binding
}

// Navigation returns key bindings for moving between pages.
var Navigation = navigation{
	DragLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "drag left"),
	),
	DragRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "drag right"),
	),
	FlickLeft: key.NewBinding(
		key.WithKeys("H"),
		key.WithHelp("H", "flick left"),
	),
	FlickRight: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "flick right"),
	),
	Release: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "release drag"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous tab"),
	),
	GotoTab: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "go to tab"),
	),
}
