package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultMinesweeperYAML []byte

// DefaultMinesweeperConfig returns the default minesweeper configuration.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{
		Presets: []Preset{
			{Name: "beginner", Height: 9, Width: 9, Mines: 10},
			{Name: "intermediate", Height: 16, Width: 16, Mines: 40},
			{Name: "expert", Height: 16, Width: 30, Mines: 99},
		},
		FirstClick:  FirstClickSafe,
		FloodReveal: true,
		Scoring: Scoring{
			TimeLimitSecs: 999,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMinesweeperYAML
}
