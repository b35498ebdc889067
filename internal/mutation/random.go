package mutation

import (
	"math/rand"
	"time"
)

// Random is the source of randomness used by the randomized strategies
// and by the random-letter index pick.
type Random interface {
	// Intn returns a uniform value in [0, n). n is always positive.
	Intn(n int) int
}

// NewRandom returns a seeded generator. A zero seed draws one from the clock.
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
