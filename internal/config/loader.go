package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSlide loads the sliding puzzle configuration.
// Search order: customPath -> ~/.slide/configs/slide.yaml -> ./configs/slide.yaml -> embedded default
//
// Values missing from a file keep their defaults.
func LoadSlide(customPath string) (SlideConfig, error) {
	cfg := DefaultSlideConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("slide.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "slide.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSlideYAML, &cfg); err != nil {
		return DefaultSlideConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or malformed files are
// skipped so the next location in the search order is used.
func tryLoad(path string) (SlideConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SlideConfig{}, false
	}
	cfg := DefaultSlideConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SlideConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slide", "configs", filename)
}
