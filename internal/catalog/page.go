package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-logfmt/logfmt"
	"github.com/google/uuid"
	"github.com/leg100/pageview/internal/logging"
	"github.com/muesli/reflow/wordwrap"
)

// Content is a page that can be drawn as lines of text.
type Content interface {
	// Lines returns up to height lines of text no wider than width.
	Lines(width, height int) []string
}

// Page is a page of text.
type Page struct {
	ID    uuid.UUID
	Index int
	Title string
	Body  string

	journal *Journal
}

func (p *Page) WillAppear()    { p.record(WillAppear) }
func (p *Page) DidAppear()     { p.record(DidAppear) }
func (p *Page) WillDisappear() { p.record(WillDisappear) }
func (p *Page) DidDisappear()  { p.record(DidDisappear) }

func (p *Page) record(hook Hook) {
	p.journal.record(Record{PageID: p.ID, Title: p.Title, Hook: hook})
}

// Lines word wraps the body to width.
func (p *Page) Lines(width, height int) []string {
	return clip(strings.Split(wordwrap.String(p.Body, max(1, width)), "\n"), height)
}

// LogSource lists log messages.
type LogSource interface {
	List() []logging.Message
}

// LogsPage lists the most recent log messages, newest first.
type LogsPage struct {
	Page

	logs LogSource
}

func (p *LogsPage) Lines(width, height int) []string {
	msgs := p.logs.List()
	slices.SortFunc(msgs, logging.BySerialDesc)

	var lines []string
	for _, msg := range msgs {
		if len(lines) >= height {
			break
		}
		keyvals := make([]any, 0, 2*len(msg.Attributes))
		for _, attr := range msg.Attributes {
			keyvals = append(keyvals, attr.Key, attr.Value)
		}
		attrs, err := logfmt.MarshalKeyvals(keyvals...)
		if err != nil {
			attrs = []byte(err.Error())
		}
		line := fmt.Sprintf("%s %-5s %s %s", msg.Time.Format("15:04:05"), msg.Level, msg.Message, attrs)
		lines = append(lines, strings.Split(wordwrap.String(line, max(1, width)), "\n")...)
	}
	return clip(lines, height)
}

func clip(lines []string, height int) []string {
	if height >= 0 && len(lines) > height {
		return lines[:height]
	}
	return lines
}
