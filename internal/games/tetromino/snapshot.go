package tetromino

import "github.com/vovakirdan/tui-tetromino/internal/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Mode       string // "marathon" or "sprint"
	Score      int
	Lines      int
	Difficulty int
	Active     engine.Kind
	Rotation   int
	Position   engine.Vec2
	Held       engine.Kind // KindCount when nothing is held
	Next       []engine.Kind
	Field      [engine.TrueHeight][engine.Width]bool
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	}

	snap := Snapshot{
		Tick:       g.tick,
		Mode:       string(g.mode),
		Score:      g.score,
		Lines:      g.lines,
		Difficulty: g.difficulty,
		Held:       engine.KindCount,
		State:      state,
	}

	if active := g.eng.ActivePiece(); active != nil {
		snap.Active = active.Data.Kind()
		snap.Rotation = active.Rotation
		snap.Position = active.Position
	}
	if held := g.eng.HeldPiece(); held != nil {
		snap.Held = held.Kind()
	}
	for _, p := range g.eng.NextPieces() {
		snap.Next = append(snap.Next, p.Kind())
	}

	field := g.eng.Playfield()
	for y := 0; y < engine.TrueHeight; y++ {
		for x := 0; x < engine.Width; x++ {
			snap.Field[y][x] = field.HasTile(x, y)
		}
	}

	return snap
}
