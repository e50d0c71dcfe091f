// Package secret draws the number a guessing session is played against.
package secret

import (
	"math/rand"
	"time"
)

// Inclusive bounds of the secret number.
const (
	Min = 1
	Max = 100
)

// Draw returns a value in [Min, Max].
func Draw(r *rand.Rand) uint32 {
	return uint32(Min + r.Intn(Max-Min+1))
}

// New draws a secret from a source seeded with seed. A zero seed uses the clock.
func New(seed int64) uint32 {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return Draw(rand.New(rand.NewSource(seed)))
}
