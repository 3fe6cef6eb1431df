package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval is the time between animation frames.
const frameInterval = 16 * time.Millisecond

// frameMsg advances animations by one frame.
type frameMsg struct{}

// releaseMsg releases a drag that has been idle since the keypress numbered
// seq.
type releaseMsg struct {
	seq int
}

// loadMoreMsg tells the model the deferred loading of more pages is due.
type loadMoreMsg struct{}

type InfoMsg string

type ErrorMsg struct {
	Error   error
	Message string
	Args    []any
}

func NewErrorMsg(err error, msg string, args ...any) ErrorMsg {
	return ErrorMsg{
		Error:   err,
		Message: msg,
		Args:    args,
	}
}

func CmdHandler(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}
