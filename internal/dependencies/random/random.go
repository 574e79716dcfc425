package random

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// Bool returns a random boolean
	Bool() bool
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a cryptographically random int in [0, n)
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	max := big.NewInt(int64(n))
	result, err := rand.Int(rand.Reader, max)
	if err != nil {
		// Fall back to 0 on error (should never happen with crypto/rand)
		return 0
	}
	return int(result.Int64())
}

// Bool returns a cryptographically random boolean
func (r *CryptoRandom) Bool() bool {
	return r.Intn(2) == 1
}

// Seeded implements Random with a deterministic PCG source, for reproducible games
type Seeded struct {
	rng *mrand.Rand
}

// NewSeeded creates a Seeded generator from seed
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{rng: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn returns a pseudo-random int in [0, n)
func (r *Seeded) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.IntN(n)
}

// Bool returns a pseudo-random boolean
func (r *Seeded) Bool() bool {
	return r.rng.IntN(2) == 1
}

// Choose returns one element of items uniformly. Panics on an empty slice.
func Choose[T any](r Random, items []T) T {
	if len(items) == 0 {
		panic("random: Choose called with no items")
	}
	return items[r.Intn(len(items))]
}

// Shuffle permutes items in place (Fisher-Yates, walking from the tail)
func Shuffle[T any](r Random, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
