package engine

import "math/rand"

// RandomGenerator supplies the game with pieces using the 7-bag rule: it
// fills a bag with every kind in random order, drains it one draw at a
// time and refills only once empty. Any 7 draws aligned to a bag boundary
// therefore contain each kind exactly once.
//
// The random source is injected so games can be replayed from a seed.
type RandomGenerator struct {
	rng     *rand.Rand
	bag     [KindCount]Kind
	bagLeft int
}

// NewRandomGenerator creates a generator with an empty bag; the first
// draw triggers a refill.
func NewRandomGenerator(rng *rand.Rand) *RandomGenerator {
	return &RandomGenerator{rng: rng}
}

// Next draws the next piece kind, refilling the bag when needed.
func (g *RandomGenerator) Next() Kind {
	if g.bagLeft == 0 {
		g.refill()
	}
	g.bagLeft--
	return g.bag[g.bagLeft]
}

// NextPiece draws the next kind and returns its piece definition.
func (g *RandomGenerator) NextPiece() PieceData {
	return PieceFor(g.Next())
}

// refill shuffles all seven kinds into the bag by drawing without
// replacement from the remaining candidates.
func (g *RandomGenerator) refill() {
	candidates := []Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}
	for i := range g.bag {
		pick := g.rng.Intn(len(candidates))
		g.bag[i] = candidates[pick]
		candidates = append(candidates[:pick], candidates[pick+1:]...)
	}
	g.bagLeft = KindCount
}
