// Package memory provides in-memory implementations of the driven ports.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/custodia-labs/ireum-cli/internal/core/domain"
	"github.com/custodia-labs/ireum-cli/internal/core/ports/driven"
)

// Ensure CharacterStore implements the interface.
var _ driven.CharacterStore = (*CharacterStore)(nil)

// CharacterStore is an in-memory implementation of driven.CharacterStore.
// It is the default backend when a dictionary file is loaded directly.
type CharacterStore struct {
	mu      sync.RWMutex
	records map[string]domain.CharacterRecord
	byPron  map[string][]string
}

// NewCharacterStore creates a new in-memory character store.
func NewCharacterStore(records ...domain.CharacterRecord) *CharacterStore {
	s := &CharacterStore{
		records: make(map[string]domain.CharacterRecord),
		byPron:  make(map[string][]string),
	}
	_ = s.Save(context.Background(), records...)
	return s
}

// Get retrieves a record by "pronunciation/hanja" key.
func (s *CharacterStore) Get(_ context.Context, key string) (*domain.CharacterRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

// ListByPronunciation returns every record with the reading, ordered by hanja.
func (s *CharacterStore) ListByPronunciation(_ context.Context, pronunciation string) ([]domain.CharacterRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := s.byPron[pronunciation]
	result := make([]domain.CharacterRecord, 0, len(keys))
	for _, k := range keys {
		result = append(result, s.records[k])
	}
	return result, nil
}

// List returns every record ordered by key.
func (s *CharacterStore) List(_ context.Context) ([]domain.CharacterRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.CharacterRecord, 0, len(s.records))
	for _, rec := range s.records {
		result = append(result, rec)
	}
	slices.SortFunc(result, func(a, b domain.CharacterRecord) int {
		return strings.Compare(a.Key(), b.Key())
	})
	return result, nil
}

// Save stores or replaces records.
func (s *CharacterStore) Save(_ context.Context, records ...domain.CharacterRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range records {
		key := rec.Key()
		if _, exists := s.records[key]; !exists {
			keys := append(s.byPron[rec.Pronunciation], key)
			slices.Sort(keys)
			s.byPron[rec.Pronunciation] = keys
		}
		s.records[key] = rec
	}
	return nil
}

// Count returns the number of stored records.
func (s *CharacterStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}
