package memory

import (
	"sync"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

// records is an insertion-ordered map guarded by a RWMutex.
// Saving an existing ID replaces the value in place.
type records[T any] struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]T
}

func newRecords[T any]() *records[T] {
	return &records[T]{byID: make(map[string]T)}
}

func (r *records[T]) put(id string, v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		r.order = append(r.order, id)
	}
	r.byID[id] = v
}

func (r *records[T]) get(id string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.byID[id]
	if !ok {
		var zero T
		return zero, domain.ErrNotFound
	}
	return v, nil
}

// update applies fn to a copy of the value under the write lock and stores
// the result. Nothing is stored when fn fails.
func (r *records[T]) update(id string, fn func(*T) error) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.byID[id]
	if !ok {
		var zero T
		return zero, domain.ErrNotFound
	}
	if err := fn(&v); err != nil {
		var zero T
		return zero, err
	}
	r.byID[id] = v
	return v, nil
}

// all returns values in insertion order, keeping those keep accepts.
func (r *records[T]) all(keep func(*T) bool) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]T, 0, len(r.order))
	for _, id := range r.order {
		v := r.byID[id]
		if keep == nil || keep(&v) {
			result = append(result, v)
		}
	}
	return result
}

func (r *records[T]) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
