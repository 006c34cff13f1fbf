package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/custodia-labs/ireum-cli/internal/combination"
	"github.com/custodia-labs/ireum-cli/internal/core/domain"
	"github.com/custodia-labs/ireum-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ireum-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ireum-cli/internal/logger"
	"github.com/custodia-labs/ireum-cli/internal/numerology"
)

// Ensure CandidateService implements the interface.
var _ driving.CandidateService = (*CandidateService)(nil)

// CandidateService generates and ranks candidate given names.
type CandidateService struct {
	engine       *numerology.Engine
	optimizer    *numerology.Optimizer
	characters   driven.CharacterStore
	defaultLimit int
}

// NewCandidateService creates a new candidate service.
// The characters store is optional; Suggest needs it, Generate and
// StrokePairs do not.
func NewCandidateService(
	engine *numerology.Engine,
	optimizer *numerology.Optimizer,
	characters driven.CharacterStore,
	defaultLimit int,
) *CandidateService {
	if defaultLimit < 1 {
		defaultLimit = domain.DefaultSearchLimit
	}
	return &CandidateService{
		engine:       engine,
		optimizer:    optimizer,
		characters:   characters,
		defaultLimit: defaultLimit,
	}
}

// StrokePairs returns the admissible stroke pairs for a surname total.
func (s *CandidateService) StrokePairs(ctx context.Context, surnameTotal int) ([]domain.StrokePair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if surnameTotal < 1 {
		return nil, fmt.Errorf("%w: surname stroke total must be positive, got %d",
			domain.ErrInvalidInput, surnameTotal)
	}
	defer logger.Timed(fmt.Sprintf("stroke pairs for surname %d", surnameTotal))()
	return s.optimizer.PairSet(surnameTotal).Pairs(), nil
}

// Generate lazily yields the accepted combinations of lists. The returned
// sequence can be ranged over more than once; each range restarts the walk.
// A surname total of 0 is valid: it is what a surname missing from the
// dictionary resolves to.
func (s *CandidateService) Generate(
	surnameTotal, givenLength int, lists [][]domain.CharacterRecord,
) (iter.Seq[domain.Candidate], error) {
	if givenLength < 1 || givenLength > domain.MaxGivenLength {
		return nil, fmt.Errorf("%w: given name must have between 1 and %d characters, got %d",
			domain.ErrInvalidInput, domain.MaxGivenLength, givenLength)
	}
	if len(lists) != givenLength {
		return nil, fmt.Errorf("%w: %d candidate lists for %d given characters",
			domain.ErrInvalidInput, len(lists), givenLength)
	}
	if surnameTotal < 0 {
		return nil, fmt.Errorf("%w: surname stroke total must not be negative, got %d",
			domain.ErrInvalidInput, surnameTotal)
	}

	mode := s.engine.StrokeMode()
	accept := func(combo []domain.CharacterRecord) bool {
		_, ok := s.optimizer.Accepts(surnameTotal, strokesOf(combo, mode))
		return ok
	}

	return func(yield func(domain.Candidate) bool) {
		gen := combination.New(lists, accept)
		for combo := range gen.All() {
			strokes := strokesOf(combo, mode)
			pillars, _ := numerology.CalculatePillars([]int{surnameTotal}, strokes)
			if !yield(domain.Candidate{Given: combo, Strokes: strokes, Pillars: pillars}) {
				return
			}
		}
	}, nil
}

// Suggest searches the dictionary for names matching the request.
func (s *CandidateService) Suggest(ctx context.Context, req domain.SuggestRequest) ([]domain.Suggestion, error) {
	logger.Section("Suggest")
	if s.characters == nil {
		return nil, domain.ErrDictionaryUnavailable
	}
	if len(req.Given) == 0 {
		return nil, domain.NewInvalidInputError(len(req.Surname), 0, "given name pattern is required")
	}
	if _, err := domain.NewNameComposition(req.Surname, req.Given); err != nil {
		return nil, err
	}

	surname, err := s.resolveSurname(ctx, req.Surname)
	if err != nil {
		return nil, err
	}
	mode := s.engine.StrokeMode()
	surnameTotal := 0
	for _, st := range strokesOf(surname, mode) {
		surnameTotal += st
	}
	logger.Debug("Surname %s: stroke total %d", blocksKey(req.Surname), surnameTotal)

	lists := make([][]domain.CharacterRecord, len(req.Given))
	for i, b := range req.Given {
		lists[i], err = s.candidatesFor(ctx, b)
		if err != nil {
			return nil, err
		}
		logger.Debug("Position %d (%s): %d candidates", i+1, b.Key(), len(lists[i]))
	}
	logger.Debug("Search space: %d combinations", combination.Size(lists))

	limit := req.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}

	seq, err := s.Generate(surnameTotal, len(req.Given), lists)
	if err != nil {
		return nil, err
	}

	var (
		out      []domain.Suggestion
		accepted int
	)
	for cand := range seq {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		accepted++

		blocks := make([]domain.NameBlock, len(cand.Given))
		for i, r := range cand.Given {
			blocks[i] = domain.NameBlock{Pronunciation: r.Pronunciation, Hanja: r.Hanja}
		}
		name, err := domain.NewNameComposition(req.Surname, blocks)
		if err != nil {
			return nil, err
		}
		records := append(slices.Clone(surname), cand.Given...)

		ev, err := s.engine.Evaluate(name, records, req.Chart)
		if err != nil {
			return nil, fmt.Errorf("evaluate %s: %w", name, err)
		}
		if req.RequireSoundHarmony && !ev.Scores.PronunciationElement.Passed {
			continue
		}
		if ev.Total < req.MinScore {
			continue
		}
		out = append(out, domain.Suggestion{Name: name, Evaluation: ev})
		if len(out) >= limit {
			break
		}
	}

	slices.SortStableFunc(out, func(a, b domain.Suggestion) int {
		return cmp.Compare(b.Evaluation.Total, a.Evaluation.Total)
	})
	logger.Info("Accepted %d stroke combinations, returning %d suggestions", accepted, len(out))
	return out, nil
}

// resolveSurname looks up the surname records. Characters missing from the
// dictionary get the fallback record, as in evaluation.
func (s *CandidateService) resolveSurname(
	ctx context.Context, blocks []domain.NameBlock,
) ([]domain.CharacterRecord, error) {
	for _, b := range blocks {
		if b.IsWildcard() {
			return nil, domain.NewInvalidInputError(len(blocks), 0, "surname must not contain wildcards")
		}
	}
	records, err := resolveRecords(ctx, s.characters, blocks)
	if err != nil {
		return nil, fmt.Errorf("surname: %w", err)
	}
	return records, nil
}

// candidatesFor lists the dictionary records a given-name block may take.
func (s *CandidateService) candidatesFor(ctx context.Context, b domain.NameBlock) ([]domain.CharacterRecord, error) {
	pronWild := b.Pronunciation == domain.Wildcard
	hanjaWild := b.Hanja == domain.Wildcard

	switch {
	case !pronWild && !hanjaWild:
		rec, err := s.characters.Get(ctx, b.Key())
		if errors.Is(err, domain.ErrNotFound) {
			logger.Warn("Character %s not in dictionary, using fallback values", b.Key())
			return []domain.CharacterRecord{domain.FallbackRecord(b.Pronunciation, b.Hanja)}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("lookup %s: %w", b.Key(), err)
		}
		return []domain.CharacterRecord{*rec}, nil

	case !pronWild:
		recs, err := s.characters.ListByPronunciation(ctx, b.Pronunciation)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", b.Pronunciation, err)
		}
		return recs, nil

	default:
		all, err := s.characters.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list characters: %w", err)
		}
		if hanjaWild {
			return all, nil
		}
		return slices.DeleteFunc(all, func(r domain.CharacterRecord) bool {
			return r.Hanja != b.Hanja
		}), nil
	}
}

func strokesOf(records []domain.CharacterRecord, mode domain.StrokeMode) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.Strokes(mode)
	}
	return out
}

func blocksKey(blocks []domain.NameBlock) string {
	key := ""
	for _, b := range blocks {
		key += b.Key()
	}
	return key
}
