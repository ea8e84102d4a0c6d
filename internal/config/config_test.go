package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-slide/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg SlideConfig
	if err := yaml.Unmarshal(DefaultSlideYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultSlideConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultSlideConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadSlideCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slide.yaml")
	data := []byte("board:\n  dimension: 6\nanimation:\n  slide_millis: 90\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSlide(path)
	if err != nil {
		t.Fatalf("LoadSlide() failed: %v", err)
	}
	if cfg.Board.Dimension != 6 {
		t.Errorf("Dimension = %d, expected 6", cfg.Board.Dimension)
	}
	if cfg.Animation.SlideDuration() != 90*time.Millisecond {
		t.Errorf("SlideDuration() = %v, expected 90ms", cfg.Animation.SlideDuration())
	}
	// Keys missing from the file keep their defaults
	if cfg.Theme.Tile != "cyan" {
		t.Errorf("Theme.Tile = %q, expected default cyan", cfg.Theme.Tile)
	}
}

func TestLoadSlideCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSlide(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadSlide(missing) should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSlide(bad); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Errorf("LoadSlide(bad) error = %v, expected a parse error", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*SlideConfig)
		valid  bool
	}{
		{"defaults", func(*SlideConfig) {}, true},
		{"dimension too small", func(c *SlideConfig) { c.Board.Dimension = 1 }, false},
		{"negative width", func(c *SlideConfig) { c.Board.Width = -1 }, false},
		{"fixed size fits", func(c *SlideConfig) { c.Board.Width, c.Board.Height = 40, 20 }, true},
		{"fixed size too narrow", func(c *SlideConfig) { c.Board.Width, c.Board.Height = 6, 20 }, false},
		{"negative slide time", func(c *SlideConfig) { c.Animation.SlideMillis = -5 }, false},
		{"zero slide time", func(c *SlideConfig) { c.Animation.SlideMillis = 0 }, true},
		{"unknown color", func(c *SlideConfig) { c.Theme.Dragged = "chartreuse" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSlideConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && err == nil {
				t.Error("Validate() = nil, expected an error")
			}
		})
	}
}

func TestThemeColors(t *testing.T) {
	colors, err := DefaultSlideConfig().Theme.Colors()
	if err != nil {
		t.Fatalf("Colors() failed: %v", err)
	}
	if colors.Tile != core.ColorCyan || colors.Dragged != core.ColorBrightYellow {
		t.Errorf("Colors() = %+v, expected cyan tiles and bright yellow drag", colors)
	}

	colors, err = SlideTheme{}.Colors()
	if err != nil || colors != (ThemeColors{}) {
		t.Errorf("empty theme = %+v, %v; expected all default colors", colors, err)
	}
}

func TestApplySizePreset(t *testing.T) {
	tests := []struct {
		preset    SizePreset
		dimension int
		wantErr   bool
	}{
		{SizeSmall, 3, false},
		{SizeClassic, 4, false},
		{SizeLarge, 5, false},
		{"", 7, false},
		{"huge", 7, true},
	}

	for _, tc := range tests {
		cfg := DefaultSlideConfig()
		cfg.Board.Dimension = 7
		err := ApplySizePreset(&cfg, tc.preset)
		if (err != nil) != tc.wantErr {
			t.Errorf("ApplySizePreset(%q) error = %v, wantErr %v", tc.preset, err, tc.wantErr)
		}
		if cfg.Board.Dimension != tc.dimension {
			t.Errorf("ApplySizePreset(%q) dimension = %d, expected %d", tc.preset, cfg.Board.Dimension, tc.dimension)
		}
	}
}
