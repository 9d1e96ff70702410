// Package config provides YAML-based configuration for the minesweeper
// presets, first-click policy and scoring.
package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-mines/internal/games/minesweeper/board"
)

// MinesweeperConfig contains all configuration for the minesweeper game.
type MinesweeperConfig struct {
	Presets     []Preset `yaml:"presets"`
	FirstClick  string   `yaml:"first_click"`  // "safe"
	FloodReveal bool     `yaml:"flood_reveal"` // expand zero regions on reveal
	Scoring     Scoring  `yaml:"scoring"`
}

// MaxSide is the largest accepted height or width.
const MaxSide = 256

// Preset is a named board size.
type Preset struct {
	Name   string `yaml:"name"`
	Height int    `yaml:"height"`
	Width  int    `yaml:"width"`
	Mines  int    `yaml:"mines"`
}

// Scoring defines the timer cap and time bonus.
type Scoring struct {
	TimeLimitSecs int `yaml:"time_limit_secs"` // timer display stops here; bonus is limit - secs
}

// FirstClickSafe guarantees the first uncovered tile is not a mine.
const FirstClickSafe = "safe"

// Preset returns the preset with the given name (case-insensitive).
func (c MinesweeperConfig) Preset(name string) (Preset, bool) {
	for _, p := range c.Presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// ValidatePreset reports whether the engine would accept the preset.
func ValidatePreset(p Preset) error {
	if p.Height <= 0 || p.Width <= 0 || p.Height > math.MaxInt/p.Width {
		return fmt.Errorf("preset %q: %dx%d: %w", p.Name, p.Height, p.Width, board.ErrInvalidDimensions)
	}
	if p.Height > MaxSide || p.Width > MaxSide {
		return fmt.Errorf("preset %q: %dx%d exceeds %d per side: %w",
			p.Name, p.Height, p.Width, MaxSide, board.ErrInvalidDimensions)
	}
	if p.Mines < 0 || p.Mines >= p.Height*p.Width {
		return fmt.Errorf("preset %q: %d mines on %dx%d: %w", p.Name, p.Mines, p.Height, p.Width, board.ErrInvalidMineCount)
	}
	return nil
}

// Validate checks every preset and the first-click policy.
func (c MinesweeperConfig) Validate() error {
	if len(c.Presets) == 0 {
		return fmt.Errorf("config: no presets defined")
	}
	for _, p := range c.Presets {
		if err := ValidatePreset(p); err != nil {
			return err
		}
	}
	if c.FirstClick != "" && c.FirstClick != FirstClickSafe {
		return fmt.Errorf("config: unsupported first_click %q", c.FirstClick)
	}
	if c.Scoring.TimeLimitSecs < 0 {
		return fmt.Errorf("config: negative time_limit_secs %d", c.Scoring.TimeLimitSecs)
	}
	return nil
}
