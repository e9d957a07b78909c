// Package config provides YAML-based game configuration loading and
// difficulty management for bevel.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/bevel/internal/games/bevel/engine"
)

// BevelConfig contains all configuration for the game.
type BevelConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Pieces     PiecesConfig     `yaml:"pieces"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playfield size.
type BoardConfig struct {
	Columns    int `yaml:"columns"`
	Rows       int `yaml:"rows"`        // Visible rows below the spawn zone
	ActiveRows int `yaml:"active_rows"` // Spawn zone height
}

// TimingConfig defines loop and animation timing.
type TimingConfig struct {
	IntervalMs          int `yaml:"interval_ms"`
	MoveBoardMultiplier int `yaml:"move_board_multiplier"`
	EffectMs            int `yaml:"effect_ms"`
	SpreadMs            int `yaml:"spread_ms"`
	SquareMs            int `yaml:"square_ms"`
}

// PiecesConfig defines the piece preview and spawn weights.
type PiecesConfig struct {
	StandBy int   `yaml:"standby"`
	Weights []int `yaml:"weights"` // One entry per piece kind, in table order
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Fall speed gain at max difficulty
	MinIntervalMs   int     `yaml:"min_interval_ms"`
}

// Interval returns the base fall period.
func (c TimingConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

// Validate reports settings the game cannot be played with.
func (c BevelConfig) Validate() error {
	var errs []error
	if c.Board.Columns < engine.MaxShapeSize {
		errs = append(errs, fmt.Errorf("config: board.columns must be at least %d, got %d", engine.MaxShapeSize, c.Board.Columns))
	}
	if c.Board.Rows < engine.MaxShapeSize {
		errs = append(errs, fmt.Errorf("config: board.rows must be at least %d, got %d", engine.MaxShapeSize, c.Board.Rows))
	}
	if c.Board.ActiveRows < engine.MaxShapeSize {
		errs = append(errs, fmt.Errorf("config: board.active_rows must be at least %d, got %d", engine.MaxShapeSize, c.Board.ActiveRows))
	}
	if c.Timing.IntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("config: timing.interval_ms must be positive, got %d", c.Timing.IntervalMs))
	}
	if c.Timing.MoveBoardMultiplier < 1 {
		errs = append(errs, fmt.Errorf("config: timing.move_board_multiplier must be at least 1, got %d", c.Timing.MoveBoardMultiplier))
	}
	if c.Pieces.StandBy < 0 {
		errs = append(errs, fmt.Errorf("config: pieces.standby must not be negative, got %d", c.Pieces.StandBy))
	}
	if len(c.Pieces.Weights) != engine.KindCount {
		errs = append(errs, fmt.Errorf("config: pieces.weights needs %d entries, got %d", engine.KindCount, len(c.Pieces.Weights)))
	} else if _, err := c.weights(); err != nil {
		errs = append(errs, fmt.Errorf("config: pieces.weights: %w", err))
	}
	return errors.Join(errs...)
}

func (c BevelConfig) weights() (engine.Weights, error) {
	var w engine.Weights
	copy(w[:], c.Pieces.Weights)
	return w, w.Validate()
}

// EngineConfig converts the YAML settings to the engine's configuration.
// Call Validate first.
func (c BevelConfig) EngineConfig(seed int64) engine.Config {
	w, _ := c.weights()
	return engine.Config{
		Columns:             c.Board.Columns,
		Rows:                c.Board.Rows,
		ActiveRows:          c.Board.ActiveRows,
		StandBy:             c.Pieces.StandBy,
		Interval:            c.Timing.Interval(),
		MoveBoardMultiplier: c.Timing.MoveBoardMultiplier,
		Weights:             w,
		Seed:                seed,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name.
func ParsePreset(s string) (DifficultyPreset, error) {
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
