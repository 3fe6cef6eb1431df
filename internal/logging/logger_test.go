package logging

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/leg100/pageview/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{
		Level:             "debug",
		AdditionalWriters: []io.Writer{&buf},
	})

	logger.Debug("selected page", "page", 3)
	logger.Info("reloaded", "mode", "all")

	msgs := logger.List()
	require.Len(t, msgs, 2)
	assert.Equal(t, "DEBUG", msgs[0].Level)
	assert.Equal(t, "selected page", msgs[0].Message)
	assert.Equal(t, []Attr{{Key: "page", Value: "3"}}, msgs[0].Attributes)
	assert.Equal(t, uint(1), msgs[1].Serial)
	assert.Contains(t, buf.String(), "msg=reloaded")
}

func TestLogger_Level(t *testing.T) {
	logger := NewLogger(Options{Level: "warn"})

	logger.Info("ignored")
	logger.Warn("kept")

	msgs := logger.List()
	require.Len(t, msgs, 1)
	assert.Equal(t, "kept", msgs[0].Message)
}

func TestLogger_MaxMessages(t *testing.T) {
	logger := NewLogger(Options{Level: "info", MaxMessages: 2})

	logger.Info("one")
	logger.Info("two")
	logger.Info("three")

	msgs := logger.List()
	require.Len(t, msgs, 2)
	assert.Equal(t, "two", msgs[0].Message)
	assert.Equal(t, "three", msgs[1].Message)
}

func TestLogger_Subscribe(t *testing.T) {
	logger := NewLogger(Options{Level: "info"})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := logger.Subscribe(ctx)
	logger.Info("published")

	ev := <-sub
	assert.Equal(t, pubsub.CreatedEvent, ev.Type)
	assert.Equal(t, "published", ev.Payload.Message)
}

func TestLogger_Enrich(t *testing.T) {
	logger := NewLogger(Options{Level: "info"})
	logger.AddArgsUpdater(&ReferenceUpdater[string]{
		Getter: fakeTitles{"Home"},
		Key:    "page",
		Name:   "title",
	})

	logger.Info("did select", "page", 0)

	msgs := logger.List()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Attributes, Attr{Key: "title", Value: "Home"})
}

func TestValidLevels(t *testing.T) {
	assert.Equal(t, []string{"info", "debug", "error", "warn"}, ValidLevels())
}
