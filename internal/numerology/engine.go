package numerology

import (
	"fmt"

	"github.com/custodia-labs/ireum-cli/internal/core/domain"
)

// Engine evaluates names. It holds only immutable configuration and is safe
// for concurrent use.
type Engine struct {
	tables     *domain.Tables
	mode       domain.StrokeMode
	classifier *Classifier
	scorer     *Scorer
}

// Option configures the engine.
type Option func(*Engine)

// WithStrokeMode selects which stroke count feeds the numerology.
func WithStrokeMode(mode domain.StrokeMode) Option {
	return func(e *Engine) {
		if mode.IsValid() {
			e.mode = mode
		}
	}
}

// NewEngine creates an engine over the given tables. Nil tables use
// domain.DefaultTables.
func NewEngine(tables *domain.Tables, opts ...Option) *Engine {
	if tables == nil {
		tables = domain.DefaultTables()
	}
	e := &Engine{
		tables: tables,
		mode:   domain.StrokeModeOriginal,
		scorer: NewScorer(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.classifier = NewClassifier(tables, e.mode)
	return e
}

// Tables returns the shared lookup tables.
func (e *Engine) Tables() *domain.Tables {
	return e.tables
}

// StrokeMode returns the configured stroke mode.
func (e *Engine) StrokeMode() domain.StrokeMode {
	return e.mode
}

// Pillars computes the four pillars of resolved records.
func (e *Engine) Pillars(surname, given []domain.CharacterRecord) (domain.FourPillars, error) {
	return CalculatePillars(e.strokes(surname), e.strokes(given))
}

// Evaluate computes the full evaluation of a name. records must hold one
// resolved record per block, in block order. Use domain.FallbackRecord for
// characters missing from the dictionary.
func (e *Engine) Evaluate(
	name domain.NameComposition, records []domain.CharacterRecord, chart domain.BirthChart,
) (*domain.NameEvaluation, error) {
	if err := name.Validate(); err != nil {
		return nil, err
	}
	given := len(name.Blocks) - name.SurnameLength
	if given == 0 {
		return nil, domain.NewInvalidInputError(name.SurnameLength, given, "given name is required")
	}
	if name.HasWildcard() {
		return nil, domain.NewInvalidInputError(name.SurnameLength, given, "wildcards are only allowed in search queries")
	}
	if len(records) != len(name.Blocks) {
		return nil, fmt.Errorf("%w: %d records for %d blocks", domain.ErrInvalidInput, len(records), len(name.Blocks))
	}

	surnameRecs := records[:name.SurnameLength]
	givenRecs := records[name.SurnameLength:]

	pillars, err := e.Pillars(surnameRecs, givenRecs)
	if err != nil {
		return nil, err
	}

	ev := &domain.NameEvaluation{
		Name:           name,
		Characters:     append([]domain.CharacterRecord(nil), records...),
		Chart:          chart,
		Pillars:        pillars,
		PillarFortunes: ClassifyPillars(e.tables, pillars),
	}
	ev.BirthChartElements, ev.BirthChartYinYang = e.classifier.BirthChart(chart)
	ev.StrokeElements, ev.StrokeYinYang = e.classifier.Strokes(records)
	ev.PronunciationElements, ev.PronunciationYinYang = e.classifier.Pronunciation(records)
	ev.CombinedElements, ev.CombinedYinYang = e.classifier.Combined(chart, givenRecs)
	ev.PillarElements, ev.PillarYinYang = e.classifier.PillarDerived(pillars)

	resources := make([]domain.Element, len(givenRecs))
	for i, r := range givenRecs {
		resources[i] = r.ResourceElement
	}

	ev.Scores, ev.Total = e.scorer.Score(ScoreInput{
		Pillars:               pillars,
		Fortunes:              ev.PillarFortunes,
		BirthChartElements:    ev.BirthChartElements,
		StrokeElements:        ev.StrokeElements,
		PronunciationElements: ev.PronunciationElements,
		CombinedElements:      ev.CombinedElements,
		PillarElements:        ev.PillarElements,
		BirthChartYinYang:     ev.BirthChartYinYang,
		StrokeYinYang:         ev.StrokeYinYang,
		PronunciationYinYang:  ev.PronunciationYinYang,
		CombinedYinYang:       ev.CombinedYinYang,
		PillarYinYang:         ev.PillarYinYang,
		GivenResources:        resources,
	})

	return ev, nil
}

func (e *Engine) strokes(records []domain.CharacterRecord) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.Strokes(e.mode)
	}
	return out
}
