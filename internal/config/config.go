// Package config provides YAML-based configuration loading and board size
// presets for the sliding puzzle.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/puzzle"
)

// SlideConfig contains all configuration for the sliding puzzle.
type SlideConfig struct {
	Board     SlideBoard     `yaml:"board"`
	Animation SlideAnimation `yaml:"animation"`
	Theme     SlideTheme     `yaml:"theme"`
}

// SlideBoard defines the grid and its size on screen.
type SlideBoard struct {
	Dimension int `yaml:"dimension"`
	Width     int `yaml:"width"`  // Board width in cells, 0 = fit to window
	Height    int `yaml:"height"` // Board height in cells, 0 = fit to window
}

// SlideAnimation defines tile animation timing.
type SlideAnimation struct {
	SlideMillis int `yaml:"slide_millis"`
}

// SlideDuration returns the slide animation length.
func (a SlideAnimation) SlideDuration() time.Duration {
	return time.Duration(a.SlideMillis) * time.Millisecond
}

// SlideTheme names the colors used to draw the board.
type SlideTheme struct {
	Tile    string `yaml:"tile"`
	Empty   string `yaml:"empty"`
	Dragged string `yaml:"dragged"`
	Solved  string `yaml:"solved"`
}

// ThemeColors is a resolved SlideTheme.
type ThemeColors struct {
	Tile    core.Color
	Empty   core.Color
	Dragged core.Color
	Solved  core.Color
}

// Colors resolves the theme's color names. Empty names map to the
// terminal default.
func (t SlideTheme) Colors() (ThemeColors, error) {
	var out ThemeColors
	fields := []struct {
		name string
		dst  *core.Color
		key  string
	}{
		{t.Tile, &out.Tile, "tile"},
		{t.Empty, &out.Empty, "empty"},
		{t.Dragged, &out.Dragged, "dragged"},
		{t.Solved, &out.Solved, "solved"},
	}
	for _, f := range fields {
		if f.name == "" {
			continue
		}
		c, ok := core.ParseColor(f.name)
		if !ok {
			return ThemeColors{}, fmt.Errorf("config: theme.%s: unknown color %q", f.key, f.name)
		}
		*f.dst = c
	}
	return out, nil
}

// Validate checks the configuration for values the puzzle cannot use.
func (c SlideConfig) Validate() error {
	if c.Board.Dimension < puzzle.MinDimension {
		return fmt.Errorf("config: board.dimension must be >= %d, got %d", puzzle.MinDimension, c.Board.Dimension)
	}
	if c.Board.Width < 0 || c.Board.Height < 0 {
		return fmt.Errorf("config: board size must not be negative, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if c.Board.Width > 0 || c.Board.Height > 0 {
		probe := puzzle.Config{Dimension: c.Board.Dimension, Width: c.Board.Width, Height: c.Board.Height}
		if err := probe.Validate(); err != nil {
			return fmt.Errorf("config: board: %w", err)
		}
	}
	if c.Animation.SlideMillis < 0 {
		return fmt.Errorf("config: animation.slide_millis must not be negative, got %d", c.Animation.SlideMillis)
	}
	if _, err := c.Theme.Colors(); err != nil {
		return err
	}
	return nil
}
