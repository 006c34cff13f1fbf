package driving

import (
	"context"

	"github.com/custodia-labs/ireum-cli/internal/core/domain"
)

// EvaluationService evaluates names against an optional birth chart.
type EvaluationService interface {
	// Evaluate resolves the name's characters and computes the full evaluation.
	// Characters missing from the dictionary use domain.FallbackRecord.
	Evaluate(ctx context.Context, name domain.NameComposition, chart domain.BirthChart) (*domain.NameEvaluation, error)

	// EvaluateBatch evaluates many names concurrently. Results keep input
	// order; per-item failures are reported in the result, not as an error.
	EvaluateBatch(ctx context.Context, requests []domain.EvaluationRequest) ([]domain.EvaluationResult, error)

	// Fortune describes one pillar number.
	Fortune(ctx context.Context, n int) (*FortuneDetails, error)
}

// FortuneDetails describes a pillar number for display.
type FortuneDetails struct {
	domain.PillarFortune

	// Summary is the stroke-meaning text, when a meaning table is loaded.
	Summary string `json:"summary,omitempty"`

	// Element and YinYang are derived from the last digit and parity.
	Element domain.Element `json:"element"`
	YinYang domain.YinYang `json:"yin_yang"`
}
