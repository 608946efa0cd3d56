package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tetromino.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadTetrominoPartialKeepsDefaults(t *testing.T) {
	// Only the gameplay section is present; everything else must keep
	// the hardcoded defaults, including difficulty progression.
	path := writeConfig(t, `
gameplay:
  start_difficulty: 3
`)

	cfg, err := LoadTetromino(path)
	if err != nil {
		t.Fatalf("LoadTetromino failed: %v", err)
	}

	if cfg.Gameplay.StartDifficulty != 3 {
		t.Errorf("StartDifficulty = %d, want 3", cfg.Gameplay.StartDifficulty)
	}

	def := DefaultTetrominoConfig()
	if !cfg.Difficulty.Enabled {
		t.Error("Difficulty.Enabled = false, want default true when section is omitted")
	}
	if cfg.Difficulty.LinesPerStep != def.Difficulty.LinesPerStep {
		t.Errorf("LinesPerStep = %d, want default %d", cfg.Difficulty.LinesPerStep, def.Difficulty.LinesPerStep)
	}
	if cfg.Gameplay.LockDelayTicks != def.Gameplay.LockDelayTicks {
		t.Errorf("LockDelayTicks = %d, want default %d", cfg.Gameplay.LockDelayTicks, def.Gameplay.LockDelayTicks)
	}
	if cfg.Scoring.SoftDropPoint != def.Scoring.SoftDropPoint {
		t.Errorf("SoftDropPoint = %d, want default %d", cfg.Scoring.SoftDropPoint, def.Scoring.SoftDropPoint)
	}
}

func TestLoadTetrominoExplicitDisableRespected(t *testing.T) {
	path := writeConfig(t, `
difficulty:
  enabled: false
`)

	cfg, err := LoadTetromino(path)
	if err != nil {
		t.Fatalf("LoadTetromino failed: %v", err)
	}

	if cfg.Difficulty.Enabled {
		t.Error("Difficulty.Enabled = true, want explicit false to stick")
	}
}

func TestLoadTetrominoMissingCustomPath(t *testing.T) {
	_, err := LoadTetromino(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Expected error for missing custom config path")
	}
}
