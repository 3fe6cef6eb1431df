package tui

import "github.com/charmbracelet/lipgloss"

const (
	Red       = lipgloss.Color("#FF5353")
	Yellow    = lipgloss.Color("#DBBD70")
	Grey      = lipgloss.Color("#737373")
	LightGrey = lipgloss.Color("245")
)

var (
	RuleColor = lipgloss.AdaptiveColor{
		Dark:  "244",
		Light: "250",
	}

	InfoColor = lipgloss.AdaptiveColor{
		Dark:  string(LightGrey),
		Light: string(Grey),
	}

	LoadingColor = Yellow
	ErrorColor   = Red
)
