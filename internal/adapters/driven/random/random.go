// Package random provides the pseudo-random driven adapters used by the
// scorer and the template generators.
package random

import (
	"math/rand/v2"
	"sync"

	"github.com/custodia-labs/pitchmatch/internal/core/ports/driven"
)

// Ensure the sources implement the interface.
var (
	_ driven.RandomSource = (*Source)(nil)
	_ driven.RandomSource = (*Sequence)(nil)
)

// Source draws from math/rand/v2. It is safe for concurrent use.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a source. A zero seed draws from the runtime's random state;
// any other seed makes the sequence reproducible.
func New(seed int64) *Source {
	if seed == 0 {
		return &Source{}
	}
	return &Source{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))}
}

// IntN returns a value in [0, n).
func (s *Source) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	if s.rng == nil {
		return rand.IntN(n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Sequence replays fixed values, cycling when exhausted. Each value is
// reduced modulo n, so one sequence serves calls with different bounds.
type Sequence struct {
	mu     sync.Mutex
	values []int
	next   int
}

// NewSequence creates a source that yields values in order.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// IntN returns the next value modulo n.
func (s *Sequence) IntN(n int) int {
	if n <= 0 || len(s.values) == 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.values[s.next%len(s.values)]
	s.next++
	if v < 0 {
		v = -v
	}
	return v % n
}
