package core

import (
	"math/rand/v2"

	"toruslife/pkg/board"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// OneIn reports true with probability 1/n. Values of n below 1 are treated as 1.
func (r *RNG) OneIn(n int) bool {
	if n <= 1 {
		return true
	}
	return r.r.IntN(n) == 0
}

// Initializer returns a board initializer that marks each cell alive with
// probability 1/odds. Cells are drawn in the board's row-major order, so the
// same seed always yields the same board.
func (r *RNG) Initializer(odds int) board.Initializer {
	return func(column, row int) bool { return r.OneIn(odds) }
}
