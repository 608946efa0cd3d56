package engine

import "math/rand"

// NextQueueLen is the fixed length of the upcoming-piece queue. Popping
// the front always refills the tail from the randomizer, so the queue
// never shrinks.
const NextQueueLen = 8

// ActivePiece is the falling piece: an owned copy of its kind's
// definition, a rotation index in [0, 3] and the position of its 4x4
// frame's top-left corner in field coordinates.
type ActivePiece struct {
	Data     PieceData
	Rotation int
	Position Vec2
}

// Matrix returns the occupancy grid of the piece's current rotation.
func (p *ActivePiece) Matrix() BoolMatrix {
	return p.Data.State(p.Rotation).Matrix()
}

// Game is one tetromino match: the playfield, the falling piece, the
// lookahead queue, the hold slot and the bag randomizer. It is a pure
// state machine; time enters only as the sequence of method calls issued
// by the driving layer, so play is fully reproducible from the seed.
type Game struct {
	playfield  Playfield
	active     ActivePiece
	nextPieces []PieceData
	heldPiece  *PieceData
	usedHold   bool
	rng        *RandomGenerator
}

// NewGame creates an empty game with the lookahead queue seeded and the
// first piece already spawned. The random source is injected for
// deterministic replay.
func NewGame(rng *rand.Rand) *Game {
	g := &Game{
		nextPieces: make([]PieceData, 0, NextQueueLen),
		rng:        NewRandomGenerator(rng),
	}

	first := g.rng.NextPiece()
	for i := 0; i < NextQueueLen; i++ {
		g.nextPieces = append(g.nextPieces, g.rng.NextPiece())
	}

	// Cannot fail on an empty field.
	g.spawnNewPiece(first)
	return g
}

// MoveLeft tries to move the active piece one cell left and reports
// whether it succeeded.
func (g *Game) MoveLeft() bool {
	return g.tryPlace(g.active.Position.Add(Vec2{X: -1}), g.active.Rotation)
}

// MoveRight tries to move the active piece one cell right and reports
// whether it succeeded.
func (g *Game) MoveRight() bool {
	return g.tryPlace(g.active.Position.Add(Vec2{X: 1}), g.active.Rotation)
}

// MoveDown tries to move the active piece one cell down. A failure means
// the piece has landed.
func (g *Game) MoveDown() bool {
	return g.tryPlace(g.active.Position.Add(Vec2{Y: 1}), g.active.Rotation)
}

// QuickDrop moves the piece down until it lands and returns the number of
// rows travelled. It does not lock the piece; locking stays a separate
// step so the driving layer can apply its own lock-delay policy.
func (g *Game) QuickDrop() int {
	rows := 0
	for g.MoveDown() {
		rows++
	}
	return rows
}

// RotateLeft tries to rotate the piece counter-clockwise, applying the
// SRS kick tests if the bare rotation is blocked. The kicks come from the
// target state's table with every offset negated. Reports whether any
// candidate succeeded; on total failure the pose is left untouched.
func (g *Game) RotateLeft() bool {
	target := (g.active.Rotation + 3) % 4
	kicks := g.active.Data.State(target).KickTests()
	for i := range kicks {
		kicks[i] = kicks[i].Neg()
	}
	return g.tryPlace(g.active.Position, target) || g.tryKicks(target, kicks)
}

// RotateRight tries to rotate the piece clockwise, applying the SRS kick
// tests if the bare rotation is blocked. The kicks come from the current
// state's table. Reports whether any candidate succeeded; on total
// failure the pose is left untouched.
func (g *Game) RotateRight() bool {
	target := (g.active.Rotation + 1) % 4
	kicks := g.active.Data.State(g.active.Rotation).KickTests()
	return g.tryPlace(g.active.Position, target) || g.tryKicks(target, kicks)
}

// HoldPiece stashes the active piece's kind in the hold slot, spawning
// the previously held piece if there was one and the queue's front
// otherwise. It fails without effect if hold was already used since the
// last lock; the flag resets when a piece locks down.
func (g *Game) HoldPiece() bool {
	if g.usedHold {
		return false
	}

	toHold := g.active.Data

	if g.heldPiece != nil {
		held := *g.heldPiece
		g.heldPiece = nil
		g.spawnNewPiece(held)
	} else {
		g.spawnNewPiece(g.popNextPiece())
	}

	g.usedHold = true
	g.heldPiece = &toHold
	return true
}

// FinishPieceTurn locks the active piece into the playfield, clears
// completed lines and spawns the queue's next piece. It returns the
// number of cleared lines and true, or ok=false when the new piece cannot
// be placed without overlap: the game is over.
func (g *Game) FinishPieceTurn() (cleared int, ok bool) {
	g.LockDownPiece()

	next := g.popNextPiece()
	g.usedHold = false

	cleared = g.ClearCompletedLines()
	return cleared, g.spawnNewPiece(next)
}

// LockDownPiece copies the active piece into the playfield with no
// further actions. FinishPieceTurn does this automatically.
func (g *Game) LockDownPiece() {
	g.playfield.CopyInPiece(&g.active)
}

// ClearCompletedLines clears all completed lines and returns how many
// were cleared. FinishPieceTurn does this automatically.
func (g *Game) ClearCompletedLines() int {
	return g.playfield.ClearCompletedLines()
}

// Playfield returns the settled field for display queries.
func (g *Game) Playfield() *Playfield {
	return &g.playfield
}

// ActivePiece returns the currently falling piece.
func (g *Game) ActivePiece() *ActivePiece {
	return &g.active
}

// NextPieces returns the upcoming pieces in draw order. The slice is the
// game's own; callers must not mutate it.
func (g *Game) NextPieces() []PieceData {
	return g.nextPieces
}

// HeldPiece returns the held piece, or nil if none is held yet.
func (g *Game) HeldPiece() *PieceData {
	return g.heldPiece
}

// popNextPiece takes the queue's front and refills the tail, keeping the
// queue length constant.
func (g *Game) popNextPiece() PieceData {
	if len(g.nextPieces) == 0 {
		panic("engine: next piece queue drained")
	}
	next := g.nextPieces[0]
	g.nextPieces = append(g.nextPieces[1:], g.rng.NextPiece())
	return next
}

// spawnNewPiece replaces the active piece with a fresh one centered above
// the visible area and reports whether the placement is collision-free.
// False is the game-over signal.
func (g *Game) spawnNewPiece(data PieceData) bool {
	col := int8(3)
	if data.Size() == 2 {
		col = 4
	}

	g.active = ActivePiece{
		Data:     data,
		Position: Vec2{X: col, Y: Height - 1},
	}

	// Every piece except the I spawns one row lower when there is room,
	// matching guideline spawn heights.
	if data.Size() < 4 {
		g.MoveDown()
	}

	return !g.playfield.HasOverlap(&g.active)
}

// tryPlace tests a candidate pose and commits it if it does not overlap.
// On failure the active piece is untouched.
func (g *Game) tryPlace(pos Vec2, rotation int) bool {
	candidate := g.active
	candidate.Position = pos
	candidate.Rotation = rotation

	if g.playfield.HasOverlap(&candidate) {
		return false
	}

	g.active.Position = pos
	g.active.Rotation = rotation
	return true
}

// tryKicks tries each kick offset combined with the target rotation, in
// table order, committing the first candidate that fits.
func (g *Game) tryKicks(target int, kicks [4]Vec2) bool {
	for _, kick := range kicks {
		if g.tryPlace(g.active.Position.Add(kick), target) {
			return true
		}
	}
	return false
}
