package random

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSource_Range(t *testing.T) {
	for _, s := range []*Source{New(0), New(7)} {
		for i := 0; i < 1000; i++ {
			v := s.IntN(15)
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, 15)
		}
		assert.Zero(t, s.IntN(0))
	}
}

func TestSource_SeedIsReproducible(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.IntN(100), b.IntN(100))
	}
}

func TestSource_ConcurrentUse(t *testing.T) {
	s := New(3)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.IntN(10)
		}()
	}
	wg.Wait()
}

func TestSequence(t *testing.T) {
	s := NewSequence(0, 5, 14)

	assert.Equal(t, 0, s.IntN(15))
	assert.Equal(t, 5, s.IntN(15))
	assert.Equal(t, 14, s.IntN(15))
	assert.Equal(t, 0, s.IntN(15), "cycles")
	assert.Equal(t, 1, s.IntN(4), "reduced modulo n")
	assert.Equal(t, 2, s.IntN(4))
	assert.Zero(t, NewSequence().IntN(5))
}
