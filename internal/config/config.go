// Package config provides YAML-based game configuration loading and
// difficulty management for the tetromino platform.
package config

// TetrominoConfig contains all configuration for the tetromino game.
type TetrominoConfig struct {
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GameplayConfig defines timing and layout parameters.
type GameplayConfig struct {
	StartDifficulty int `yaml:"start_difficulty"` // Gravity level at game start (1-9)
	LockDelayTicks  int `yaml:"lock_delay_ticks"` // Grace ticks after the piece touches the stack
	NextPreviews    int `yaml:"next_previews"`    // Upcoming pieces shown in the side panel
}

// ScoringConfig defines the points awarded for player actions.
type ScoringConfig struct {
	SoftDropPoint int `yaml:"soft_drop_point"` // Per row dropped with soft drop
	HardDropPoint int `yaml:"hard_drop_point"` // Per row dropped with hard drop
}

// DifficultyConfig defines the gravity progression system.
type DifficultyConfig struct {
	Enabled      bool `yaml:"enabled"`        // When false, gravity never speeds up
	LinesPerStep int  `yaml:"lines_per_step"` // Cleared lines per gravity level
	MaxLevel     int  `yaml:"max_level"`      // Gravity level cap
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyTetrominoPreset modifies the config based on a difficulty preset.
func ApplyTetrominoPreset(cfg *TetrominoConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.StartDifficulty = 1
		cfg.Gameplay.LockDelayTicks = 45
		cfg.Difficulty.LinesPerStep = 4
	case DifficultyNormal:
		cfg.Gameplay.StartDifficulty = 1
		cfg.Gameplay.LockDelayTicks = 30
		cfg.Difficulty.LinesPerStep = 2
	case DifficultyHard:
		cfg.Gameplay.StartDifficulty = 3
		cfg.Gameplay.LockDelayTicks = 15
		cfg.Difficulty.LinesPerStep = 2
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}
