package config

import (
	_ "embed"
)

//go:embed defaults/bevel.yaml
var defaultBevelYAML []byte

// DefaultBevelConfig returns the hard-coded configuration, used when the
// embedded YAML cannot be parsed.
func DefaultBevelConfig() BevelConfig {
	return BevelConfig{
		Board: BoardConfig{
			Columns:    10,
			Rows:       20,
			ActiveRows: 4,
		},
		Timing: TimingConfig{
			IntervalMs:          500,
			MoveBoardMultiplier: 4,
			EffectMs:            300,
			SpreadMs:            400,
			SquareMs:            400,
		},
		Pieces: PiecesConfig{
			StandBy: 2,
			Weights: []int{5, 4, 4, 1, 3, 3, 5},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 2.0,
				MinIntervalMs:   120,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultBevelYAML...)
}
