package logging

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/go-logfmt/logfmt"
	"github.com/leg100/pageview/internal/pubsub"
)

// writer is a slog TextHandler writer that both keeps the log records in
// memory and emits them as events.
type writer struct {
	messages []Message
	max      int
	mu       sync.Mutex

	broker *pubsub.Broker[Message]
	serial uint
}

func (w *writer) Write(p []byte) (int, error) {
	msgs := make([]Message, 0, 1)
	d := logfmt.NewDecoder(bytes.NewReader(p))
	for d.ScanRecord() {
		msg := Message{Serial: w.nextSerial()}
		for d.ScanKeyval() {
			switch string(d.Key()) {
			case "time":
				parsed, err := time.Parse(time.RFC3339, string(d.Value()))
				if err != nil {
					return 0, fmt.Errorf("parsing time: %w", err)
				}
				msg.Time = parsed
			case "level":
				msg.Level = string(d.Value())
			case "msg":
				msg.Message = string(d.Value())
			default:
				msg.Attributes = append(msg.Attributes, Attr{
					Key:   string(d.Key()),
					Value: string(d.Value()),
				})
			}
		}
		msgs = append(msgs, msg)
	}
	if d.Err() != nil {
		return 0, d.Err()
	}
	w.append(msgs...)
	for _, msg := range msgs {
		w.broker.Publish(pubsub.CreatedEvent, msg)
	}
	return len(p), nil
}

func (w *writer) nextSerial() uint {
	w.mu.Lock()
	defer w.mu.Unlock()

	serial := w.serial
	w.serial++
	return serial
}

func (w *writer) append(msgs ...Message) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.messages = append(w.messages, msgs...)
	if w.max > 0 && len(w.messages) > w.max {
		w.messages = w.messages[len(w.messages)-w.max:]
	}
}

func (w *writer) list() []Message {
	w.mu.Lock()
	defer w.mu.Unlock()

	msgs := make([]Message, len(w.messages))
	copy(msgs, w.messages)
	return msgs
}
