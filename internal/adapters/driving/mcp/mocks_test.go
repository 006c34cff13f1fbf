package mcp

import (
	"context"
	"iter"

	"github.com/custodia-labs/ireum-cli/internal/core/domain"
	"github.com/custodia-labs/ireum-cli/internal/core/ports/driving"
)

// mockEvaluationService is a mock implementation of driving.EvaluationService.
type mockEvaluationService struct {
	evaluation *domain.NameEvaluation
	err        error

	gotName  domain.NameComposition
	gotChart domain.BirthChart
}

func (m *mockEvaluationService) Evaluate(
	_ context.Context, name domain.NameComposition, chart domain.BirthChart,
) (*domain.NameEvaluation, error) {
	m.gotName, m.gotChart = name, chart
	return m.evaluation, m.err
}

func (m *mockEvaluationService) EvaluateBatch(
	_ context.Context, _ []domain.EvaluationRequest,
) ([]domain.EvaluationResult, error) {
	return nil, m.err
}

func (m *mockEvaluationService) Fortune(_ context.Context, n int) (*driving.FortuneDetails, error) {
	if m.err != nil {
		return nil, m.err
	}
	tier := domain.FortuneLuck
	if n%2 == 1 {
		tier = domain.FortuneGreatLuck
	}
	return &driving.FortuneDetails{
		PillarFortune: domain.PillarFortune{Number: n, Tier: tier},
		Element:       domain.ElementWater,
		YinYang:       domain.YinYangFromParity(n),
	}, nil
}

// mockCandidateService is a mock implementation of driving.CandidateService.
type mockCandidateService struct {
	pairs       []domain.StrokePair
	suggestions []domain.Suggestion
	err         error

	gotRequest domain.SuggestRequest
}

func (m *mockCandidateService) StrokePairs(_ context.Context, _ int) ([]domain.StrokePair, error) {
	return m.pairs, m.err
}

func (m *mockCandidateService) Generate(
	_, _ int, _ [][]domain.CharacterRecord,
) (iter.Seq[domain.Candidate], error) {
	return func(func(domain.Candidate) bool) {}, m.err
}

func (m *mockCandidateService) Suggest(_ context.Context, req domain.SuggestRequest) ([]domain.Suggestion, error) {
	m.gotRequest = req
	return m.suggestions, m.err
}

func sampleEvaluation() *domain.NameEvaluation {
	name, err := domain.ParseName([]string{"김/金", "민/敏", "준/俊"}, 1)
	if err != nil {
		panic(err)
	}
	ev := &domain.NameEvaluation{
		Name:       name,
		Characters: []domain.CharacterRecord{{}, {}, domain.FallbackRecord("준", "俊")},
		Pillars:    domain.FourPillars{Won: 20, Hyeong: 19, I: 17, Jeong: 28},
		PillarFortunes: domain.PillarFortunes{
			Won:    domain.PillarFortune{Number: 20, Tier: domain.FortuneUnlucky},
			Hyeong: domain.PillarFortune{Number: 19, Tier: domain.FortuneUnlucky},
			I:      domain.PillarFortune{Number: 17, Tier: domain.FortuneGreatLuck, Level: domain.LuckyLucky, Title: "건창격"},
			Jeong:  domain.PillarFortune{Number: 28, Tier: domain.FortuneUnlucky},
		},
		Total: 80,
	}
	ev.Scores.Contributions = domain.Contributions{Base: 50, Pillar: 20, ElementBalance: 10}
	ev.Scores.PillarFortune = domain.ScoreDetail{Score: 20, MaxScore: 40, Reason: "i 17 lucky (+20)"}
	return ev
}
