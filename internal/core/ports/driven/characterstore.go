package driven

import (
	"context"

	"github.com/custodia-labs/ireum-cli/internal/core/domain"
)

// CharacterStore provides dictionary records keyed by "pronunciation/hanja".
type CharacterStore interface {
	// Get retrieves one record. Returns domain.ErrNotFound on a miss.
	Get(ctx context.Context, key string) (*domain.CharacterRecord, error)

	// ListByPronunciation returns every record with the given reading,
	// ordered by hanja.
	ListByPronunciation(ctx context.Context, pronunciation string) ([]domain.CharacterRecord, error)

	// List returns every record ordered by key.
	List(ctx context.Context) ([]domain.CharacterRecord, error)

	// Save stores or replaces records.
	Save(ctx context.Context, records ...domain.CharacterRecord) error

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)
}

// StrokeMeaningStore provides the five-tier stroke-meaning table.
type StrokeMeaningStore interface {
	// Get retrieves the meaning of n. Returns domain.ErrNotFound on a miss.
	Get(ctx context.Context, n int) (*domain.StrokeMeaning, error)

	// List returns every meaning ordered by number.
	List(ctx context.Context) ([]domain.StrokeMeaning, error)

	// Save stores or replaces meanings.
	Save(ctx context.Context, meanings ...domain.StrokeMeaning) error
}
