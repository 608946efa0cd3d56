package tetromino

import "github.com/vovakirdan/tui-tetromino/internal/config"

// loadModeConfig resolves the effective game configuration from the config
// file and the selected difficulty preset. Falls back to defaults if the
// file cannot be loaded, so a broken config never blocks play.
func loadModeConfig(path, preset string) config.TetrominoConfig {
	cfg, err := config.LoadTetromino(path)
	if err != nil {
		cfg = config.DefaultTetrominoConfig()
	}
	normalize(&cfg)
	if preset != "" {
		config.ApplyTetrominoPreset(&cfg, config.DifficultyPreset(preset))
	}
	return cfg
}

// normalize fills in zero values so partial config files stay playable.
func normalize(cfg *config.TetrominoConfig) {
	def := config.DefaultTetrominoConfig()
	if cfg.Gameplay.StartDifficulty <= 0 {
		cfg.Gameplay.StartDifficulty = def.Gameplay.StartDifficulty
	}
	if cfg.Gameplay.LockDelayTicks <= 0 {
		cfg.Gameplay.LockDelayTicks = def.Gameplay.LockDelayTicks
	}
	if cfg.Gameplay.NextPreviews <= 0 {
		cfg.Gameplay.NextPreviews = def.Gameplay.NextPreviews
	}
	if cfg.Scoring.SoftDropPoint <= 0 {
		cfg.Scoring.SoftDropPoint = def.Scoring.SoftDropPoint
	}
	if cfg.Scoring.HardDropPoint <= 0 {
		cfg.Scoring.HardDropPoint = def.Scoring.HardDropPoint
	}
	if cfg.Difficulty.LinesPerStep <= 0 {
		cfg.Difficulty.LinesPerStep = def.Difficulty.LinesPerStep
	}
	if cfg.Difficulty.MaxLevel <= 0 {
		cfg.Difficulty.MaxLevel = def.Difficulty.MaxLevel
	}
}
