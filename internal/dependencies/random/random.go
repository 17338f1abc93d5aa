package random

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// SeededRandom implements Random with a deterministic PCG generator.
// A game owns exactly one instance; it is not safe for concurrent use.
type SeededRandom struct {
	seed uint64
	rng  *mrand.Rand
}

// New creates a SeededRandom. The same seed always yields the same sequence.
func New(seed uint64) *SeededRandom {
	return &SeededRandom{
		seed: seed,
		rng:  mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// NewSeed draws a fresh seed from crypto/rand
func NewSeed() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fall back to the runtime generator (should never happen with crypto/rand)
		return mrand.Uint64()
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// Seed returns the seed the generator was created with
func (r *SeededRandom) Seed() uint64 {
	return r.seed
}

// Intn returns a random int in [0, n), or 0 if n <= 0
func (r *SeededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.IntN(n)
}
