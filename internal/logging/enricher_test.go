package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferenceUpdater(t *testing.T) {
	updater := &ReferenceUpdater[string]{
		Getter: fakeTitles{"Home", "News"},
		Key:    "page",
		Name:   "title",
	}

	t.Run("add referenced title", func(t *testing.T) {
		got := updater.UpdateArgs("page", 1)

		assert.Equal(t, []any{"page", 1, "title", "News"}, got)
	})

	t.Run("ignore other keys", func(t *testing.T) {
		got := updater.UpdateArgs("count", 1)

		assert.Equal(t, []any{"count", 1}, got)
	})

	t.Run("ignore non-integer values", func(t *testing.T) {
		got := updater.UpdateArgs("page", "1")

		assert.Equal(t, []any{"page", "1"}, got)
	})

	t.Run("ignore missing reference", func(t *testing.T) {
		got := updater.UpdateArgs("page", 7)

		assert.Equal(t, []any{"page", 7}, got)
	})
}

type fakeTitles []string

func (f fakeTitles) Get(index int) (string, error) {
	if index < 0 || index >= len(f) {
		return "", errors.New("no such page")
	}
	return f[index], nil
}
