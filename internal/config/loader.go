package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "minesweeper.yaml"

// LoadMinesweeper loads the minesweeper configuration.
// Search order: customPath -> ~/.mines/configs/minesweeper.yaml -> ./configs/minesweeper.yaml -> embedded default
func LoadMinesweeper(customPath string) (MinesweeperConfig, error) {
	// A custom path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MinesweeperConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return MinesweeperConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", fileName)}
	if p := userConfigPath(fileName); p != "" {
		candidates = append([]string{p}, candidates...)
	}

	// Unreadable or invalid files further up the chain are skipped
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parse(defaultMinesweeperYAML); err == nil {
		return cfg, nil
	}
	return DefaultMinesweeperConfig(), nil
}

// parse decodes YAML over the hard-coded defaults, so omitted keys keep
// their default values, and validates the result.
func parse(data []byte) (MinesweeperConfig, error) {
	cfg := DefaultMinesweeperConfig()
	cfg.Presets = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MinesweeperConfig{}, err
	}
	if len(cfg.Presets) == 0 {
		cfg.Presets = DefaultMinesweeperConfig().Presets
	}
	if err := cfg.Validate(); err != nil {
		return MinesweeperConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mines", "configs", filename)
}
