package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/custodia-labs/ireum-cli/internal/core/domain"
	"github.com/custodia-labs/ireum-cli/internal/core/ports/driven"
)

// Ensure StrokeMeaningStore implements the interface.
var _ driven.StrokeMeaningStore = (*StrokeMeaningStore)(nil)

// StrokeMeaningStore is an in-memory implementation of driven.StrokeMeaningStore.
type StrokeMeaningStore struct {
	mu       sync.RWMutex
	meanings map[int]domain.StrokeMeaning
}

// NewStrokeMeaningStore creates a new in-memory stroke-meaning store.
func NewStrokeMeaningStore(meanings ...domain.StrokeMeaning) *StrokeMeaningStore {
	s := &StrokeMeaningStore{meanings: make(map[int]domain.StrokeMeaning)}
	_ = s.Save(context.Background(), meanings...)
	return s
}

// Get retrieves the meaning of n.
func (s *StrokeMeaningStore) Get(_ context.Context, n int) (*domain.StrokeMeaning, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.meanings[n]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &m, nil
}

// List returns every meaning ordered by number.
func (s *StrokeMeaningStore) List(_ context.Context) ([]domain.StrokeMeaning, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.StrokeMeaning, 0, len(s.meanings))
	for _, n := range slices.Sorted(maps.Keys(s.meanings)) {
		result = append(result, s.meanings[n])
	}
	return result, nil
}

// Save stores or replaces meanings.
func (s *StrokeMeaningStore) Save(_ context.Context, meanings ...domain.StrokeMeaning) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range meanings {
		s.meanings[m.Number] = m
	}
	return nil
}
