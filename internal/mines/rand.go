package mines

import (
	"hash/maphash"
	"math/rand/v2"
)

// Source is the randomness used to place bombs. [*rand.Rand] satisfies it.
type Source interface {
	// IntN returns a uniformly distributed int in [0, n).
	IntN(n int) int
}

// NewRand returns a freshly seeded generator, one per board.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}
