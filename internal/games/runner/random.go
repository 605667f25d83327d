package runner

import (
	"math/rand"
	"time"
)

// Random is the source of randomness for spawn decisions.
// *rand.Rand satisfies it.
type Random interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
}

// NewRandom returns a seeded source. Seed 0 seeds from the current time.
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
