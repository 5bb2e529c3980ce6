// File: game/random.go
package game

import "math/rand"

// Rand is the source of every random decision in the simulation.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded source. Equal seeds give equal matches.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
