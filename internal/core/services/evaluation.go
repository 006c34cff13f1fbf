package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/ireum-cli/internal/core/domain"
	"github.com/custodia-labs/ireum-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ireum-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ireum-cli/internal/logger"
	"github.com/custodia-labs/ireum-cli/internal/numerology"
)

// Ensure EvaluationService implements the interface.
var _ driving.EvaluationService = (*EvaluationService)(nil)

// EvaluationService resolves characters and evaluates names.
type EvaluationService struct {
	engine      *numerology.Engine
	characters  driven.CharacterStore
	parallelism int
}

// NewEvaluationService creates a new evaluation service.
// The characters store is optional (can be nil); without it every
// character uses the fallback record.
func NewEvaluationService(
	engine *numerology.Engine, characters driven.CharacterStore, parallelism int,
) *EvaluationService {
	if parallelism < 1 {
		parallelism = domain.DefaultBatchParallelism
	}
	return &EvaluationService{
		engine:      engine,
		characters:  characters,
		parallelism: parallelism,
	}
}

// Evaluate resolves the name's characters and computes the full evaluation.
func (s *EvaluationService) Evaluate(
	ctx context.Context, name domain.NameComposition, chart domain.BirthChart,
) (*domain.NameEvaluation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger.Section("Evaluate")
	logger.Debug("Name: %s, chart: %+v", name, chart)

	if err := name.Validate(); err != nil {
		return nil, err
	}
	if name.HasWildcard() {
		return nil, domain.NewInvalidInputError(name.SurnameLength, len(name.Given()),
			"wildcards are only allowed in search queries")
	}

	records, err := resolveRecords(ctx, s.characters, name.Blocks)
	if err != nil {
		return nil, err
	}

	ev, err := s.engine.Evaluate(name, records, chart)
	if err != nil {
		return nil, fmt.Errorf("evaluate %s: %w", name, err)
	}

	logger.Info("Pillars: won %d, hyeong %d, i %d, jeong %d",
		ev.Pillars.Won, ev.Pillars.Hyeong, ev.Pillars.I, ev.Pillars.Jeong)
	logger.Info("Total score: %d (base %d, pillar %d, element %d, yin-yang %d)",
		ev.Total, ev.Scores.Contributions.Base, ev.Scores.Contributions.Pillar,
		ev.Scores.Contributions.ElementBalance, ev.Scores.Contributions.YinYang)
	return ev, nil
}

// EvaluateBatch evaluates many names with bounded concurrency.
func (s *EvaluationService) EvaluateBatch(
	ctx context.Context, requests []domain.EvaluationRequest,
) ([]domain.EvaluationResult, error) {
	logger.Section("Batch Evaluate")
	logger.Debug("Requests: %d, parallelism: %d", len(requests), s.parallelism)
	defer logger.Timed("batch")()

	results := make([]domain.EvaluationResult, len(requests))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)

	for i, req := range requests {
		g.Go(func() error {
			ev, err := s.Evaluate(gctx, req.Name, req.Chart)
			results[i] = domain.EvaluationResult{Evaluation: ev, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	logger.Info("Batch done: %d ok, %d failed", len(results)-failed, failed)
	return results, nil
}

// Fortune describes one pillar number.
func (s *EvaluationService) Fortune(ctx context.Context, n int) (*driving.FortuneDetails, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n < 1 || n > domain.MaxStrokeNumber {
		return nil, fmt.Errorf("%w: pillar number must be between 1 and %d, got %d",
			domain.ErrInvalidInput, domain.MaxStrokeNumber, n)
	}

	tables := s.engine.Tables()
	details := &driving.FortuneDetails{
		PillarFortune: numerology.ClassifyFortune(tables, n),
		Element:       tables.DigitElement(n),
		YinYang:       domain.YinYangFromParity(n),
	}
	if m, ok := tables.Meaning(n); ok {
		details.Summary = m.Summary
	}
	return details, nil
}

// resolveRecords looks up one record per block. Blocks missing from the
// store, or every block when there is no store, get the fallback record.
func resolveRecords(
	ctx context.Context, store driven.CharacterStore, blocks []domain.NameBlock,
) ([]domain.CharacterRecord, error) {
	records := make([]domain.CharacterRecord, len(blocks))
	for i, b := range blocks {
		if store == nil {
			logger.Warn("No dictionary configured, %s uses fallback values", b.Key())
			records[i] = domain.FallbackRecord(b.Pronunciation, b.Hanja)
			continue
		}

		rec, err := store.Get(ctx, b.Key())
		switch {
		case errors.Is(err, domain.ErrNotFound):
			logger.Warn("Character %s not in dictionary, using fallback values", b.Key())
			records[i] = domain.FallbackRecord(b.Pronunciation, b.Hanja)
		case err != nil:
			return nil, fmt.Errorf("lookup %s: %w", b.Key(), err)
		default:
			logger.Debug("Character %s: strokes %d/%d, sound %s, resource %s",
				rec.Key(), rec.OriginalStrokes, rec.DictionaryStrokes, rec.SoundElement, rec.ResourceElement)
			records[i] = *rec
		}
	}
	return records, nil
}
