package engine

// Kind identifies one of the seven tetromino shapes.
type Kind int

// Piece kinds in table order.
const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of distinct tetromino kinds.
const KindCount = 7

// String returns the conventional one-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// BoolMatrix is the 4x4 occupancy grid of a piece state, indexed [y][x].
type BoolMatrix [4][4]bool

// PieceMatrix is a bit-packed 4x4 occupancy grid with a size tag. The size
// is the edge of the piece's bounding box (2 for O, 4 for I, 3 otherwise);
// only cells inside the size x size submatrix may be set.
type PieceMatrix struct {
	bits uint16
	size uint8
}

func newPieceMatrix(size uint8, m BoolMatrix) PieceMatrix {
	var bits uint16
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if m[y][x] {
				bits |= 1 << (y*4 + x)
			}
		}
	}
	return PieceMatrix{bits: bits, size: size}
}

// At reports whether the cell at (x, y) is occupied.
func (m PieceMatrix) At(x, y int) bool {
	return m.bits&(1<<(y*4+x)) != 0
}

// Size returns the bounding-box edge length: 2, 3 or 4.
func (m PieceMatrix) Size() int {
	return int(m.size)
}

// Matrix unpacks the bits into a full 4x4 bool grid.
func (m PieceMatrix) Matrix() BoolMatrix {
	var out BoolMatrix
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			out[y][x] = m.At(x, y)
		}
	}
	return out
}

// rotateRight returns the matrix rotated 90 degrees clockwise about its
// own bounding box. Cells outside the size x size submatrix stay clear.
func (m PieceMatrix) rotateRight() PieceMatrix {
	n := int(m.size)
	var out BoolMatrix
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out[y][x] = m.At(y, n-1-x)
		}
	}
	return newPieceMatrix(m.size, out)
}

// PieceState is one of the four rotation states of a piece: its matrix
// plus the ordered kick offsets tried, after the bare rotation, when
// rotating clockwise out of this state. Counter-clockwise rotation reuses
// the target state's offsets with every component negated.
type PieceState struct {
	matrix PieceMatrix
	kicks  [4]Vec2
}

// Matrix returns the unpacked occupancy grid of this state.
func (s PieceState) Matrix() BoolMatrix {
	return s.matrix.Matrix()
}

// KickTests returns the clockwise kick offsets. The (0, 0) test is
// implied and always tried first.
func (s PieceState) KickTests() [4]Vec2 {
	return s.kicks
}

// PieceData is the immutable definition of one tetromino kind: its four
// rotation states and display color. States 1..3 are derived from state 0
// by successive clockwise rotations.
type PieceData struct {
	kind   Kind
	states [4]PieceState
	color  Color
}

func newPieceData(kind Kind, base PieceMatrix, kicks [4][4]Vec2, color Color) PieceData {
	var states [4]PieceState
	states[0] = PieceState{matrix: base, kicks: kicks[0]}
	for i := 1; i < 4; i++ {
		states[i] = PieceState{
			matrix: states[i-1].matrix.rotateRight(),
			kicks:  kicks[i],
		}
	}
	return PieceData{kind: kind, states: states, color: color}
}

// Kind returns the piece kind this data describes.
func (d PieceData) Kind() Kind {
	return d.kind
}

// State returns the rotation state for an index in [0, 3].
func (d PieceData) State(index int) PieceState {
	return d.states[index]
}

// Color returns the fixed display color of the piece.
func (d PieceData) Color() Color {
	return d.color
}

// Size returns the bounding-box edge length of the piece.
func (d PieceData) Size() int {
	return d.states[0].matrix.Size()
}

// DefaultMatrix returns the occupancy grid of the spawn orientation,
// which is what hold and next-piece previews display.
func (d PieceData) DefaultMatrix() BoolMatrix {
	return d.states[0].Matrix()
}

// Standard SRS kick tables. Entry i holds the offsets tried when rotating
// clockwise out of state i, in test order.
var jlstzKickTests = [4][4]Vec2{
	{{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{{1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{{1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{{-1, 0}, {-1, 1}, {0, -2}, {-1, 2}},
}

var iKickTests = [4][4]Vec2{
	{{-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{{-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	{{2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{{1, 0}, {-2, 0}, {1, 1}, {-2, -1}},
}

// The O piece never kicks.
var oKickTests = [4][4]Vec2{}

var pieces = [KindCount]PieceData{
	newPieceData(KindI,
		newPieceMatrix(4, BoolMatrix{
			{false, false, false, false},
			{true, true, true, true},
		}),
		iKickTests,
		Color{R: 0x00, G: 0xf0, B: 0xf0},
	),
	newPieceData(KindJ,
		newPieceMatrix(3, BoolMatrix{
			{true, false, false},
			{true, true, true},
		}),
		jlstzKickTests,
		Color{R: 0x00, G: 0x00, B: 0xf0},
	),
	newPieceData(KindL,
		newPieceMatrix(3, BoolMatrix{
			{false, false, true},
			{true, true, true},
		}),
		jlstzKickTests,
		Color{R: 0xf0, G: 0xa0, B: 0x00},
	),
	newPieceData(KindO,
		newPieceMatrix(2, BoolMatrix{
			{true, true},
			{true, true},
		}),
		oKickTests,
		Color{R: 0xf0, G: 0xf0, B: 0x00},
	),
	newPieceData(KindS,
		newPieceMatrix(3, BoolMatrix{
			{false, true, true},
			{true, true, false},
		}),
		jlstzKickTests,
		Color{R: 0x00, G: 0xf0, B: 0x00},
	),
	newPieceData(KindT,
		newPieceMatrix(3, BoolMatrix{
			{false, true, false},
			{true, true, true},
		}),
		jlstzKickTests,
		Color{R: 0xa0, G: 0x00, B: 0xf0},
	),
	newPieceData(KindZ,
		newPieceMatrix(3, BoolMatrix{
			{true, true, false},
			{false, true, true},
		}),
		jlstzKickTests,
		Color{R: 0xf0, G: 0x00, B: 0x00},
	),
}

// PieceFor returns a copy of the immutable definition of the given kind.
func PieceFor(k Kind) PieceData {
	return pieces[k]
}
