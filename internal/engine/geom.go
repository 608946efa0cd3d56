// Package engine implements a deterministic tetromino game state machine:
// a 10x40 playfield (lower half visible), SRS-style rotation with wall
// kicks, a 7-bag randomizer, a hold slot and line clearing. It contains no
// external dependencies (especially no Bubble Tea) to keep game logic pure
// and testable; the platform layer drives it one call per input event or
// gravity tick.
package engine

// Vec2 is a small signed 2D vector used for piece positions and kick
// offsets. Coordinates grow right and down.
type Vec2 struct {
	X, Y int8
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference of v and o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Neg returns the vector with both components negated.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Color is a 24-bit RGB color. Pure black marks an empty playfield cell;
// pure white is returned by tile queries for coordinates outside the
// field and is never stored.
type Color struct {
	R, G, B uint8
}

// Black is the empty-cell sentinel.
var Black = Color{}

// White is the out-of-bounds sentinel returned by Playfield.GetTile.
var White = Color{R: 0xff, G: 0xff, B: 0xff}

// IsBlack reports whether the color is the empty-cell sentinel.
func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}
