// Package random provides the single sequential random stream threaded
// through a map generation run.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// RNG wraps a seeded math/rand source with the dice-style helpers the map
// builders draw from. It is not safe for concurrent use.
type RNG struct {
	seed int64
	rng  *rand.Rand
}

// NewRNG creates a random stream for the given seed
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Seed returns the seed the stream was created with
func (r *RNG) Seed() int64 {
	return r.seed
}

// Range returns a value in [min, max). If max <= min, min is returned
// without consuming a draw.
func (r *RNG) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.Intn(max-min)
}

// Roll rolls count dice with the given number of sides and returns the sum.
func (r *RNG) Roll(count, sides int) int {
	if count <= 0 || sides <= 0 {
		return 0
	}
	total := 0
	for i := 0; i < count; i++ {
		total += r.rng.Intn(sides) + 1
	}
	return total
}

// Float64 returns a value in [0.0, 1.0)
func (r *RNG) Float64() float64 {
	return r.rng.Float64()
}

// RandomIndex picks an index into a slice of length n, or -1 if n is zero
func (r *RNG) RandomIndex(n int) int {
	if n <= 0 {
		return -1
	}
	if n == 1 {
		return 0
	}
	return r.Roll(1, n) - 1
}
