package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCube loads the cube configuration.
// Search order: customPath -> ~/.cube/configs/cube.yaml -> ./configs/cube.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
func LoadCube(customPath string) (CubeConfig, error) {
	cfg := DefaultCubeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("cube.yaml"), filepath.Join("configs", "cube.yaml")} {
		if path == "" {
			continue
		}
		if loaded, ok := loadFile(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCubeYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultCubeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads an optional config file. Unreadable or invalid files are
// skipped so a broken user file never blocks the game.
func loadFile(path string) (CubeConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CubeConfig{}, false
	}
	cfg := DefaultCubeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CubeConfig{}, false
	}
	if cfg.Validate() != nil {
		return CubeConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cube", "configs", filename)
}
