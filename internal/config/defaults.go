package config

import (
	_ "embed"
)

//go:embed defaults/slide.yaml
var defaultSlideYAML []byte

// DefaultSlideYAML returns the embedded default configuration file.
func DefaultSlideYAML() []byte {
	return defaultSlideYAML
}

// DefaultSlideConfig returns the default sliding puzzle configuration.
func DefaultSlideConfig() SlideConfig {
	return SlideConfig{
		Board: SlideBoard{
			Dimension: 4,
		},
		Animation: SlideAnimation{
			SlideMillis: 200,
		},
		Theme: SlideTheme{
			Tile:    "cyan",
			Empty:   "gray",
			Dragged: "bright-yellow",
			Solved:  "bright-green",
		},
	}
}
