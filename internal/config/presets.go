package config

import "fmt"

// SizePreset represents a named board size.
type SizePreset string

const (
	SizeSmall   SizePreset = "small"   // 3x3, the 8-puzzle
	SizeClassic SizePreset = "classic" // 4x4, the 15-puzzle
	SizeLarge   SizePreset = "large"   // 5x5, the 24-puzzle
)

// SizePresets lists the presets in ascending size.
func SizePresets() []SizePreset {
	return []SizePreset{SizeSmall, SizeClassic, SizeLarge}
}

// DimensionForPreset returns the grid dimension for a preset.
func DimensionForPreset(preset SizePreset) (int, bool) {
	switch preset {
	case SizeSmall:
		return 3, true
	case SizeClassic:
		return 4, true
	case SizeLarge:
		return 5, true
	default:
		return 0, false
	}
}

// ApplySizePreset sets the board dimension from a preset name.
// An empty preset leaves the config unchanged.
func ApplySizePreset(cfg *SlideConfig, preset SizePreset) error {
	if preset == "" {
		return nil
	}
	dim, ok := DimensionForPreset(preset)
	if !ok {
		return fmt.Errorf("config: unknown size preset %q (want small, classic or large)", preset)
	}
	cfg.Board.Dimension = dim
	return nil
}
