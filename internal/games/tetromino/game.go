// Package tetromino implements the falling-block game modes on top of the
// pure engine package. The engine owns the playfield rules; this package
// adds timing, scoring, and rendering.
package tetromino

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetromino/internal/config"
	"github.com/vovakirdan/tui-tetromino/internal/core"
	"github.com/vovakirdan/tui-tetromino/internal/engine"
	"github.com/vovakirdan/tui-tetromino/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeMarathon Mode = "marathon"
	ModeSprint   Mode = "sprint"
)

// SprintGoal is the number of lines to clear to win a sprint.
const SprintGoal = 40

// Line clear scores, indexed by lines cleared at once (1-4).
// Multiplied by the current difficulty.
var clearScores = [5]int{0, 100, 300, 500, 800}

// Game implements a tetromino game mode.
type Game struct {
	mode Mode
	cfg  config.TetrominoConfig
	rng  *rand.Rand
	eng  *engine.Game
	tick uint64

	score      int
	lines      int
	difficulty int

	tickRate      int
	gravityTicker int
	groundTicks   int
	grounded      bool

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
}

// Package-level variables for config (set from the CLI before Reset).
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new marathon mode game.
func New() *Game {
	return &Game{
		mode: ModeMarathon,
	}
}

// NewSprint creates a new sprint mode game (clear 40 lines to win).
func NewSprint() *Game {
	return &Game{
		mode: ModeSprint,
	}
}

func init() {
	registry.Register("tetromino", func() registry.Game {
		return New()
	})
	registry.Register("tetromino_sprint", func() registry.Game {
		return NewSprint()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeSprint {
		return "tetromino_sprint"
	}
	return "tetromino"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSprint {
		return "Tetromino (Sprint)"
	}
	return "Tetromino"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.eng = engine.NewGame(g.rng)
	g.tick = 0
	g.score = 0
	g.lines = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.groundTicks = 0
	g.grounded = false
	g.gravityTicker = 0

	g.cfg = loadModeConfig(configPath, difficultyPreset)
	g.updateDifficulty()
	g.checkScreenSize()
}

// checkScreenSize verifies the screen can fit the well plus side panels.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// updateDifficulty recomputes the gravity level from cleared lines.
func (g *Game) updateDifficulty() {
	d := g.cfg.Gameplay.StartDifficulty
	if g.cfg.Difficulty.Enabled {
		d += g.lines / g.cfg.Difficulty.LinesPerStep
	}
	if d > g.cfg.Difficulty.MaxLevel {
		d = g.cfg.Difficulty.MaxLevel
	}
	g.difficulty = d
}

// gravityIntervalTicks converts the current fall speed into ticks per row.
// A piece falls every 2/(difficulty+0.5) seconds.
func (g *Game) gravityIntervalTicks() int {
	seconds := 2.0 / (float64(g.difficulty) + 0.5)
	ticks := int(seconds * float64(g.tickRate))
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && (g.gameOver || g.won) {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.won || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)
	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	g.applyGravity()

	return core.StepResult{State: g.State()}
}

// processInput applies player actions to the engine.
func (g *Game) processInput(input core.InputFrame) {
	if input.Has(core.ActionLeft) {
		g.eng.MoveLeft()
	}
	if input.Has(core.ActionRight) {
		g.eng.MoveRight()
	}
	if input.Has(core.ActionRotateCW) {
		g.eng.RotateRight()
	}
	if input.Has(core.ActionRotateCCW) {
		g.eng.RotateLeft()
	}
	if input.Has(core.ActionHold) {
		g.eng.HoldPiece()
	}
	if input.Has(core.ActionSoftDrop) {
		if g.eng.MoveDown() {
			g.score += g.cfg.Scoring.SoftDropPoint
			g.gravityTicker = 0
		}
	}
	if input.Has(core.ActionHardDrop) {
		rows := g.eng.QuickDrop()
		g.score += rows * g.cfg.Scoring.HardDropPoint
		g.lockPiece()
	}
}

// applyGravity moves the active piece down on its timer and locks it
// once it has rested on the stack for the lock delay.
func (g *Game) applyGravity() {
	if g.grounded {
		// Piece is resting on the stack. A successful slide or rotation
		// may have freed it, so probe before counting down.
		if g.eng.MoveDown() {
			g.grounded = false
			g.groundTicks = 0
			g.gravityTicker = 0
			return
		}
		g.groundTicks++
		if g.groundTicks >= g.cfg.Gameplay.LockDelayTicks {
			g.lockPiece()
		}
		return
	}

	g.gravityTicker++
	if g.gravityTicker < g.gravityIntervalTicks() {
		return
	}
	g.gravityTicker = 0

	if !g.eng.MoveDown() {
		g.grounded = true
		g.groundTicks = 0
	}
}

// lockPiece settles the active piece, scores cleared lines, and spawns
// the next piece. Sets game over if the spawn overlaps the stack.
func (g *Game) lockPiece() {
	cleared, ok := g.eng.FinishPieceTurn()
	g.grounded = false
	g.groundTicks = 0
	g.gravityTicker = 0

	if cleared > 0 {
		g.lines += cleared
		g.score += clearScores[cleared] * g.difficulty
		g.updateDifficulty()
	}

	if g.mode == ModeSprint && g.lines >= SprintGoal {
		g.won = true
		return
	}
	if !ok {
		g.gameOver = true
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.difficulty,
		GameOver: g.gameOver || g.won,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Lines returns the total number of cleared lines.
func (g *Game) Lines() int {
	return g.lines
}

// Engine exposes the underlying rules engine for rendering and tests.
func (g *Game) Engine() *engine.Game {
	return g.eng
}
