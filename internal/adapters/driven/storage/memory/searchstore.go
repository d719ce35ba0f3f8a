package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driven"
)

// Ensure SearchStore implements the interface.
var _ driven.SearchStore = (*SearchStore)(nil)

// SearchStore holds the session's current search.
type SearchStore struct {
	mu      sync.RWMutex
	current *domain.Search
}

// NewSearchStore creates an empty search store.
func NewSearchStore() *SearchStore {
	return &SearchStore{}
}

// SetCurrent replaces the current search.
func (s *SearchStore) SetCurrent(_ context.Context, search domain.Search) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &search
	return nil
}

// Current returns the current search.
func (s *SearchStore) Current(_ context.Context) (*domain.Search, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, domain.ErrNotFound
	}
	c := *s.current
	return &c, nil
}
