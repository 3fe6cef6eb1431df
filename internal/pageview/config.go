package pageview

import (
	"github.com/leg100/pageview/internal/logging"
	"github.com/leg100/pageview/internal/tabbar"
)

// DefaultTabBarHeight is the height of the tab bar when none is configured.
const DefaultTabBarHeight = 50

// Config configures a Controller.
type Config struct {
	DefaultIndex int
	TabBarHeight float64
	// TabBar styles the tab bar. Its DefaultIndex and Logger are overridden
	// by those of the controller.
	TabBar tabbar.Config

	WillTransition      func(from, to int)
	DidFinishTransition func(from, to int)
	DidCancelTransition func(from, to int)
	Dragging            func(from, to int, percent float64)
	DidSelect           func(index int)

	Logger logging.Interface
}

// DefaultConfig returns the default controller configuration.
func DefaultConfig() Config {
	return Config{
		TabBarHeight: DefaultTabBarHeight,
		TabBar:       tabbar.DefaultConfig(),
	}
}
