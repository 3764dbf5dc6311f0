package dice

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

// cryptoSource implements Source using crypto/rand.
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by the operating system CSPRNG.
func NewCryptoSource() Source {
	return cryptoSource{}
}

// Intn returns a uniformly distributed int in [0, n).
//
// Precondition: n > 0.
func (cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn precondition violated: n must be > 0")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("dice: crypto/rand failed: " + err.Error())
	}
	return int(v.Int64())
}

// seededSource is a reproducible Source for tests and replayable sessions.
type seededSource struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewSeededSource returns a deterministic Source: two sources built from the
// same seed yield the same sequence.
func NewSeededSource(seed uint64) Source {
	return &seededSource{rng: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn returns a pseudo-random int in [0, n).
//
// Precondition: n > 0.
func (s *seededSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn precondition violated: n must be > 0")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Fixed is a Source that always returns the same offset, clamped into [0, n).
// Intended for tests that need the low, high or midpoint of a range.
type Fixed int

// Intn returns min(int(f), n-1), or 0 for a negative f.
func (f Fixed) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn precondition violated: n must be > 0")
	}
	return max(0, min(int(f), n-1))
}
