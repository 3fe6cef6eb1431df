package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type global struct {
	Reload        key.Binding
	ReloadAll     key.Binding
	MemoryWarning key.Binding
	Help          key.Binding
	Quit          key.Binding
}

var Global = global{
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload others"),
	),
	ReloadAll: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "reload all"),
	),
	MemoryWarning: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "memory warning"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "exit"),
	),
}
