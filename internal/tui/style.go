package tui

import "github.com/charmbracelet/lipgloss"

var (
	Regular = lipgloss.NewStyle()
	Padded  = Regular.Padding(0, 1)

	width = lipgloss.Width
)
