package driving

import (
	"context"
	"iter"

	"github.com/custodia-labs/ireum-cli/internal/core/domain"
)

// CandidateService searches the space of admissible given names.
type CandidateService interface {
	// StrokePairs returns the admissible given-name stroke pairs for a
	// surname stroke total, sorted by first then second stroke.
	StrokePairs(ctx context.Context, surnameTotal int) ([]domain.StrokePair, error)

	// Generate lazily yields the combinations of lists whose strokes make
	// every pillar admissible. lists holds one candidate list per given-name
	// position.
	Generate(surnameTotal, givenLength int, lists [][]domain.CharacterRecord) (iter.Seq[domain.Candidate], error)

	// Suggest searches the dictionary for names matching the request and
	// returns the best evaluated ones.
	Suggest(ctx context.Context, req domain.SuggestRequest) ([]domain.Suggestion, error)
}
