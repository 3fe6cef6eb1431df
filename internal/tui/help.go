package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var (
	longHelpHeadingStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#909090",
		Dark:  "#626262",
	}).Bold(true).Margin(0, 3, 0, 0)

	longHelpKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#909090",
		Dark:  "#626262",
	}).Bold(true).Margin(0, 1, 0, 0)

	longHelpDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#B2B2B2",
		Dark:  "#4A4A4A",
	}).Margin(0, 3, 0, 0)
)

// fullHelpView renders a table of two columns describing the key bindings,
// categorised into general and navigation keys.
func fullHelpView(general, navigation []key.Binding) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		helpColumn("GENERAL", general),
		helpColumn("NAVIGATION", navigation),
	)
}

func helpColumn(heading string, bindings []key.Binding) string {
	keys := make([]string, len(bindings))
	descs := make([]string, len(bindings))
	for i, kb := range bindings {
		keys[i] = longHelpKeyStyle.Render(kb.Help().Key)
		descs[i] = longHelpDescStyle.Render(kb.Help().Desc)
	}
	return lipgloss.JoinVertical(lipgloss.Top,
		longHelpHeadingStyle.Render(heading),
		lipgloss.JoinHorizontal(lipgloss.Left,
			strings.Join(keys, "\n"),
			strings.Join(descs, "\n"),
		),
	)
}
