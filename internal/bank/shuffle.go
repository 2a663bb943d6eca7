package bank

import (
	"math/rand/v2"
	"time"
)

// Shuffle returns a Fisher-Yates shuffled copy of qs. The input slice is
// never modified. A nil rng falls back to a time-seeded source; tests pass
// a fixed-seed source for determinism.
func Shuffle(qs []Question, rng *rand.Rand) []Question {
	if rng == nil {
		rng = NewRand()
	}

	shuffled := make([]Question, len(qs))
	copy(shuffled, qs)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// NewRand returns a time-seeded random source.
func NewRand() *rand.Rand {
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, now>>32))
}
