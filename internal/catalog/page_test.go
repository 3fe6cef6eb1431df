package catalog

import (
	"testing"

	"github.com/leg100/pageview/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_Lines(t *testing.T) {
	p := &Page{Body: "the quick brown fox\n\njumps"}

	assert.Equal(t, []string{"the quick", "brown fox", "", "jumps"}, p.Lines(10, 10))
	assert.Equal(t, []string{"the quick", "brown fox"}, p.Lines(10, 2))
}

func TestLogsPage_Lines(t *testing.T) {
	logger := logging.NewLogger(logging.Options{Level: "info"})
	logger.Info("first")
	logger.Info("second", "page", 2)

	p := &LogsPage{logs: logger}
	lines := p.Lines(80, 10)

	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "INFO  second page=2")
	assert.Contains(t, lines[1], "first")
	assert.Len(t, p.Lines(80, 1), 1)
}
