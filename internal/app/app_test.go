package app

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/leg100/pageview/internal/catalog"
	"github.com/leg100/pageview/internal/interp"
	"github.com/leg100/pageview/internal/tabbar"
	"github.com/leg100/pageview/internal/testutils"
	"github.com/leg100/pageview/internal/tui"
	"github.com/leg100/pageview/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, args ...string) tui.Options {
	t.Helper()

	testutils.ResetEnv(t)
	t.Setenv("HOME", t.TempDir())

	cfg, err := Parse(io.Discard, args)
	require.NoError(t, err)

	opts, err := newOptions(cfg)
	require.NoError(t, err)
	return opts
}

func waitFor(t *testing.T, tm *teatest.TestModel, cond func(s string) bool) {
	t.Helper()

	teatest.WaitFor(
		t,
		tm.Output(),
		func(b []byte) bool {
			return cond(string(b))
		},
		teatest.WithCheckInterval(time.Millisecond*100),
		teatest.WithDuration(time.Second*10),
	)
}

func TestStart_Version(t *testing.T) {
	testutils.ResetEnv(t)
	t.Setenv("HOME", t.TempDir())

	var stdout bytes.Buffer
	err := Start(&stdout, io.Discard, []string{"--version"})
	require.NoError(t, err)

	assert.Equal(t, "pageview "+version.Version+"\n", stdout.String())
}

func TestStart_InvalidFlag(t *testing.T) {
	testutils.ResetEnv(t)
	t.Setenv("HOME", t.TempDir())

	var stderr bytes.Buffer
	err := Start(io.Discard, &stderr, []string{"--transition", "wobble"})
	require.Error(t, err)

	assert.True(t, strings.HasPrefix(err.Error(), "parsing config: "))
	assert.Contains(t, stderr.String(), "--transition")
}

func TestStart_BadPages(t *testing.T) {
	testutils.ResetEnv(t)
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing file", "./testdata/missing.yaml", os.ErrNotExist},
		{"no pages", "./testdata/empty.yaml", catalog.ErrNoPages},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logFile := filepath.Join(t.TempDir(), "pageview.log")
			err := Start(io.Discard, io.Discard, []string{"--pages", tt.path, "--log-file", logFile})
			require.Error(t, err)

			assert.ErrorIs(t, err, tt.want)
			assert.FileExists(t, logFile)
		})
	}
}

func TestNewOptions(t *testing.T) {
	opts := setup(t,
		"--pages", "./testdata/pages.yaml",
		"--logs-page",
		"--default-index", "2",
		"--transition", "smooth",
		"--indicator-color", "#ff0000",
		"--no-indicator",
	)

	assert.Equal(t, 6, opts.Catalog.ItemCount())
	assert.Equal(t, catalog.LogsTitle, opts.Catalog.Title(0))
	assert.Equal(t, "Recommend", opts.Catalog.Title(1))
	assert.Equal(t, 3, opts.Catalog.DefaultIndex(), "shifted by the logs page")

	tabs := opts.Config.TabBar
	assert.Equal(t, 2.0, tabs.Spacing)
	assert.Equal(t, tabbar.TransitionSmooth, tabs.Transition)
	assert.True(t, tabs.HideIndicator)
	assert.Equal(t, interp.Hex(defaultColor), tabs.Color)
	assert.Equal(t, interp.Hex(defaultHighlightColor), tabs.HighlightedColor)
	assert.Equal(t, interp.Hex("#ff0000"), tabs.IndicatorColor)
	assert.Greater(t, tabs.HighlightedFont.Size, tabs.Font.Size)
}

func TestNewOptions_Defaults(t *testing.T) {
	opts := setup(t)

	assert.Equal(t, catalog.Default().Pages[0].Title, opts.Catalog.Title(0))
	assert.Equal(t, len(catalog.Default().Pages), opts.Catalog.ItemCount())
	assert.Equal(t, 0, opts.Catalog.DefaultIndex())
	assert.True(t, opts.Config.TabBar.IndicatorColor.IsZero(), "follows the highlight color")
}

func TestApp(t *testing.T) {
	opts := setup(t, "--pages", "./testdata/pages.yaml")
	tm := tui.StartTest(t, opts, 100, 20)

	// Starts on the default page of the pages file
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "The latest from the people you follow.") &&
			strings.Contains(s, "Follow: did appear") &&
			strings.Contains(s, "2/5")
	})

	// Jump to the last page
	tm.Type("5")

	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "Clips and longer features.") &&
			strings.Contains(s, "5/5")
	})

	// Tab back a page
	tm.Send(tea.KeyMsg{Type: tea.KeyShiftTab})

	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "Headlines, updated through the day.") &&
			strings.Contains(s, "News: did appear")
	})
}

func TestApp_LoadMore(t *testing.T) {
	opts := setup(t, "--pages", "./testdata/pages.yaml", "--load-more")
	tm := tui.StartTest(t, opts, 100, 20)

	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "Follow: did appear")
	})

	tm.Type("4")

	// More pages arrive a couple of seconds later
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "loaded 5 more pages") &&
			strings.Contains(s, "4/10")
	})
}

func TestNewOptions_RelativePages(t *testing.T) {
	testutils.ChTempDir(t, "./testdata")

	opts := setup(t, "--pages", "pages.yaml")

	assert.Equal(t, 5, opts.Catalog.ItemCount())
	assert.Equal(t, 1, opts.Catalog.DefaultIndex())
}
