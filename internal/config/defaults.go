package config

import (
	_ "embed"
)

//go:embed defaults/tetromino.yaml
var defaultTetrominoYAML []byte

// DefaultTetrominoConfig returns the default tetromino configuration.
func DefaultTetrominoConfig() TetrominoConfig {
	return TetrominoConfig{
		Gameplay: GameplayConfig{
			StartDifficulty: 1,
			LockDelayTicks:  30, // Half a second at 60 FPS
			NextPreviews:    4,
		},
		Scoring: ScoringConfig{
			SoftDropPoint: 1,
			HardDropPoint: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			LinesPerStep: 2,
			MaxLevel:     9,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTetrominoYAML
}
