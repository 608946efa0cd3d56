package engine

import "testing"

// cellsOf collects the occupied coordinates of a matrix for comparison.
func cellsOf(m BoolMatrix) map[Vec2]bool {
	cells := make(map[Vec2]bool)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if m[y][x] {
				cells[Vec2{X: int8(x), Y: int8(y)}] = true
			}
		}
	}
	return cells
}

func TestPieceSizes(t *testing.T) {
	tests := []struct {
		kind Kind
		size int
	}{
		{KindI, 4},
		{KindJ, 3},
		{KindL, 3},
		{KindO, 2},
		{KindS, 3},
		{KindT, 3},
		{KindZ, 3},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			if got := PieceFor(tc.kind).Size(); got != tc.size {
				t.Errorf("Size() = %d, want %d", got, tc.size)
			}
		})
	}
}

func TestPieceBlockCount(t *testing.T) {
	// Every rotation state of every piece has exactly 4 blocks, all
	// inside the size x size submatrix.
	for k := Kind(0); k < KindCount; k++ {
		data := PieceFor(k)
		n := data.Size()
		for state := 0; state < 4; state++ {
			count := 0
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					if !data.State(state).Matrix()[y][x] {
						continue
					}
					count++
					if x >= n || y >= n {
						t.Errorf("%v state %d: block (%d,%d) outside %dx%d submatrix", k, state, x, y, n, n)
					}
				}
			}
			if count != 4 {
				t.Errorf("%v state %d: %d blocks, want 4", k, state, count)
			}
		}
	}
}

func TestRotationStatesDerived(t *testing.T) {
	// State i must equal state i-1 rotated clockwise, and four rotations
	// must return to the spawn orientation.
	for k := Kind(0); k < KindCount; k++ {
		data := PieceFor(k)
		m := data.states[0].matrix
		for i := 1; i < 4; i++ {
			m = m.rotateRight()
			if m != data.states[i].matrix {
				t.Errorf("%v state %d does not match derived rotation", k, i)
			}
		}
		if m.rotateRight() != data.states[0].matrix {
			t.Errorf("%v: four clockwise rotations should return to spawn state", k)
		}
	}
}

func TestTPieceStateMatrices(t *testing.T) {
	// Golden check of the four T orientations.
	want := [4][]Vec2{
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}}, // spawn: point up
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}}, // point right
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}}, // point down
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}}, // point left
	}

	data := PieceFor(KindT)
	for state := 0; state < 4; state++ {
		got := cellsOf(data.State(state).Matrix())
		if len(got) != len(want[state]) {
			t.Fatalf("state %d: %d cells, want %d", state, len(got), len(want[state]))
		}
		for _, cell := range want[state] {
			if !got[cell] {
				t.Errorf("state %d: cell %v not set", state, cell)
			}
		}
	}
}

func TestIPieceSpawnRow(t *testing.T) {
	// The I piece occupies the second row of its 4x4 frame at spawn.
	mat := PieceFor(KindI).DefaultMatrix()
	for x := 0; x < 4; x++ {
		if !mat[1][x] {
			t.Errorf("cell (%d,1) should be set", x)
		}
		if mat[0][x] || mat[2][x] || mat[3][x] {
			t.Errorf("column %d has blocks outside row 1", x)
		}
	}
}

func TestKickTables(t *testing.T) {
	// Published SRS tables, clockwise out of each state.
	iWant := [4][4]Vec2{
		{{-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
		{{-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
		{{2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
		{{1, 0}, {-2, 0}, {1, 1}, {-2, -1}},
	}
	jlstzWant := [4][4]Vec2{
		{{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		{{1, 0}, {1, 1}, {0, -2}, {1, -2}},
		{{1, 0}, {1, -1}, {0, 2}, {1, 2}},
		{{-1, 0}, {-1, 1}, {0, -2}, {-1, 2}},
	}

	for state := 0; state < 4; state++ {
		if got := PieceFor(KindI).State(state).KickTests(); got != iWant[state] {
			t.Errorf("I state %d kicks = %v, want %v", state, got, iWant[state])
		}
		for _, k := range []Kind{KindJ, KindL, KindS, KindT, KindZ} {
			if got := PieceFor(k).State(state).KickTests(); got != jlstzWant[state] {
				t.Errorf("%v state %d kicks = %v, want %v", k, state, got, jlstzWant[state])
			}
		}
		if got := PieceFor(KindO).State(state).KickTests(); got != ([4]Vec2{}) {
			t.Errorf("O state %d kicks = %v, want all zero", state, got)
		}
	}
}

func TestPieceColorsDistinct(t *testing.T) {
	seen := make(map[Color]Kind)
	for k := Kind(0); k < KindCount; k++ {
		c := PieceFor(k).Color()
		if c.IsBlack() {
			t.Errorf("%v: piece color must not be the empty sentinel", k)
		}
		if other, dup := seen[c]; dup {
			t.Errorf("%v and %v share color %v", k, other, c)
		}
		seen[c] = k
	}
}
