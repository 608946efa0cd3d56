package engine

// Playfield dimensions in blocks. The stored field is twice the visible
// height: rows [0, Height) are a hidden overhang above the skyline where
// pieces spawn, rows [Height, TrueHeight) are the visible well.
const (
	Width      = 10
	Height     = 20
	TrueHeight = Height * 2
)

// Playfield is the grid of settled blocks. A cell's color is Black iff
// the cell is empty.
type Playfield struct {
	cells [TrueHeight][Width]Color
}

// NewPlayfield creates an empty playfield.
func NewPlayfield() *Playfield {
	return &Playfield{}
}

// inBounds reports whether (x, y) addresses a stored cell. Collision
// treats everything outside as occupied, which is the sole mechanism
// keeping pieces inside the left, right and bottom walls.
func inBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < TrueHeight
}

// GetTile returns the stored color at (x, y), or White when the
// coordinate is outside the field. White is never stored.
func (p *Playfield) GetTile(x, y int) Color {
	if !inBounds(x, y) {
		return White
	}
	return p.cells[y][x]
}

// HasTile reports whether (x, y) is occupied. Out-of-bounds coordinates
// always count as occupied.
func (p *Playfield) HasTile(x, y int) bool {
	return !inBounds(x, y) || !p.cells[y][x].IsBlack()
}

// HasOverlap reports whether any occupied cell of the piece's current
// rotation matrix collides with a settled block or the field boundary.
func (p *Playfield) HasOverlap(piece *ActivePiece) bool {
	mat := piece.Data.State(piece.Rotation).matrix
	baseX := int(piece.Position.X)
	baseY := int(piece.Position.Y)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if mat.At(x, y) && p.HasTile(baseX+x, baseY+y) {
				return true
			}
		}
	}
	return false
}

// CopyInPiece stamps every occupied cell of the piece into the field with
// the piece's color. Cells outside the field are skipped; after a
// successful overlap check none should be.
func (p *Playfield) CopyInPiece(piece *ActivePiece) {
	mat := piece.Data.State(piece.Rotation).matrix
	color := piece.Data.Color()
	baseX := int(piece.Position.X)
	baseY := int(piece.Position.Y)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if !mat.At(x, y) {
				continue
			}
			gx, gy := baseX+x, baseY+y
			if inBounds(gx, gy) {
				p.cells[gy][gx] = color
			}
		}
	}
}

// ClearCompletedLines removes every fully occupied row, shifting all rows
// above it down by one, and returns how many rows were cleared. Scanning
// top-down means multiple full rows, adjacent or not, compact correctly
// in a single pass.
func (p *Playfield) ClearCompletedLines() int {
	cleared := 0

	for y := 0; y < TrueHeight; y++ {
		full := true
		for x := 0; x < Width; x++ {
			if !p.HasTile(x, y) {
				full = false
				break
			}
		}
		if !full {
			continue
		}

		cleared++
		for yc := y; yc >= 1; yc-- {
			p.cells[yc] = p.cells[yc-1]
		}
		p.cells[0] = [Width]Color{}
	}

	return cleared
}
