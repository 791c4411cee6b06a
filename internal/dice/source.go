package dice

import (
	"math/rand"
	"sync"
	"time"
)

// Source is the randomness provider for board generation, dice and computer choices.
//
// Implementations must be safe for concurrent use.
type Source interface {
	// Intn returns a random int in [0, n). n must be positive.
	Intn(n int) int

	// Float64 returns a random float64 in [0, 1).
	Float64() float64
}

// lockedSource wraps a seeded *rand.Rand with a mutex.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource creates a Source from a seed. Seed 0 means seed from the current time.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// IntRange returns a random int in [lo, hi], inclusive at both ends.
func IntRange(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}
