// Package random isolates every random draw of the demo behind one seedable
// source so that tests can replay a sequence exactly.
package random

import (
	"math/rand/v2"
	"sync"
	"time"
)

type Randomizer interface {
	// IntN returns a uniform integer in [0, n). n must be positive.
	IntN(n int) int
}

// Source is a mutex-guarded PCG generator.
type Source struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func New(seed uint64) *Source {
	return &Source{
		rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), //nolint:gosec // not for crypto
	}
}

func NewFromTime() *Source {
	return New(uint64(time.Now().UnixNano())) //nolint:gosec // wraps fine
}

func (s *Source) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rnd.IntN(n)
}

// Between returns a uniform integer in [lo, hi). It returns lo when the range
// is empty.
func Between(r Randomizer, lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + r.IntN(hi-lo)
}
