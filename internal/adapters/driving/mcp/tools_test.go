package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ireum-cli/internal/core/domain"
)

func newTestServer(t *testing.T, eval *mockEvaluationService, cand *mockCandidateService) *Server {
	t.Helper()
	ports := &Ports{Evaluation: eval}
	if cand != nil {
		ports.Candidate = cand
	}
	server, err := NewServer(ports)
	require.NoError(t, err)
	return server
}

func TestServer_handleEvaluate(t *testing.T) {
	ctx := context.Background()

	t.Run("returns evaluation summary", func(t *testing.T) {
		eval := &mockEvaluationService{evaluation: sampleEvaluation()}
		server := newTestServer(t, eval, nil)

		_, out, err := server.handleEvaluate(ctx, nil, EvaluateInput{
			Name:  []string{"김/金", "민/敏", "준/俊"},
			Chart: "甲子 丙寅 戊辰 庚午",
		})

		require.NoError(t, err)
		assert.Equal(t, "김민준(金敏俊)", out.Name)
		assert.Equal(t, 80, out.Total)
		require.Len(t, out.Pillars, 4)
		assert.Equal(t, PillarOutput{Pillar: "i", Number: 17, Tier: "great_luck", Level: "lucky", Title: "건창격"}, out.Pillars[2])
		assert.Len(t, out.Scores, 14)
		assert.Equal(t, "pillar_fortune", out.Scores[0].Name)
		assert.Equal(t, 20, out.Scores[0].Score)
		assert.Equal(t, 50, out.Contributions.Base)
		assert.Equal(t, []string{"준/俊"}, out.Missing)

		assert.Equal(t, 1, eval.gotName.SurnameLength)
		assert.Equal(t, "甲", eval.gotChart.YearStem)
		assert.Equal(t, "午", eval.gotChart.HourBranch)
	})

	t.Run("surname length is honoured", func(t *testing.T) {
		eval := &mockEvaluationService{evaluation: sampleEvaluation()}
		server := newTestServer(t, eval, nil)

		_, _, err := server.handleEvaluate(ctx, nil, EvaluateInput{
			Name:          []string{"남/南", "궁/宮", "민/敏"},
			SurnameLength: 2,
		})

		require.NoError(t, err)
		assert.Equal(t, 2, eval.gotName.SurnameLength)
		assert.True(t, eval.gotChart.IsZero())
	})

	t.Run("invalid chart", func(t *testing.T) {
		server := newTestServer(t, &mockEvaluationService{}, nil)

		_, _, err := server.handleEvaluate(ctx, nil, EvaluateInput{Name: []string{"김/金", "민/敏"}, Chart: "甲子"})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("invalid name", func(t *testing.T) {
		server := newTestServer(t, &mockEvaluationService{}, nil)

		_, _, err := server.handleEvaluate(ctx, nil, EvaluateInput{})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("service error", func(t *testing.T) {
		server := newTestServer(t, &mockEvaluationService{err: errors.New("engine down")}, nil)

		_, _, err := server.handleEvaluate(ctx, nil, EvaluateInput{Name: []string{"김/金", "민/敏"}})

		assert.ErrorContains(t, err, "engine down")
	})
}

func TestServer_handleFortune(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, &mockEvaluationService{}, nil)

	_, out, err := server.handleFortune(ctx, nil, FortuneInput{Number: 17})

	require.NoError(t, err)
	assert.Equal(t, FortuneOutput{Number: 17, Tier: "great_luck", Element: "water", YinYang: "yang"}, out)

	failing := newTestServer(t, &mockEvaluationService{err: domain.ErrInvalidInput}, nil)
	_, _, err = failing.handleFortune(ctx, nil, FortuneInput{Number: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestServer_handleStrokePairs(t *testing.T) {
	ctx := context.Background()

	t.Run("returns pairs", func(t *testing.T) {
		cand := &mockCandidateService{pairs: []domain.StrokePair{{First: 5, Second: 8}, {First: 7}}}
		server := newTestServer(t, &mockEvaluationService{}, cand)

		_, out, err := server.handleStrokePairs(ctx, nil, StrokePairsInput{SurnameStrokes: 8})

		require.NoError(t, err)
		assert.Equal(t, 8, out.SurnameStrokes)
		assert.Equal(t, 2, out.Count)
		assert.Equal(t, []StrokePairOutput{{First: 5, Second: 8}, {First: 7}}, out.Pairs)
	})

	t.Run("no pairs is an empty list", func(t *testing.T) {
		server := newTestServer(t, &mockEvaluationService{}, &mockCandidateService{})

		_, out, err := server.handleStrokePairs(ctx, nil, StrokePairsInput{SurnameStrokes: 8})

		require.NoError(t, err)
		assert.NotNil(t, out.Pairs)
		assert.Zero(t, out.Count)
	})

	t.Run("no candidate service", func(t *testing.T) {
		server := newTestServer(t, &mockEvaluationService{}, nil)

		_, _, err := server.handleStrokePairs(ctx, nil, StrokePairsInput{SurnameStrokes: 8})

		assert.ErrorIs(t, err, ErrCandidateServiceUnavailable)
	})
}

func TestServer_handleSuggest(t *testing.T) {
	ctx := context.Background()

	t.Run("builds request and returns suggestions", func(t *testing.T) {
		ev := sampleEvaluation()
		cand := &mockCandidateService{suggestions: []domain.Suggestion{{Name: ev.Name, Evaluation: ev}}}
		server := newTestServer(t, &mockEvaluationService{}, cand)

		_, out, err := server.handleSuggest(ctx, nil, SuggestInput{
			Surname:             []string{"김/金"},
			Given:               []string{"민/_", "_/_"},
			Chart:               "甲子丙寅戊辰",
			Limit:               5,
			MinScore:            60,
			RequireSoundHarmony: true,
		})

		require.NoError(t, err)
		assert.Equal(t, 1, out.Count)
		assert.Equal(t, SuggestionOutput{Name: "김민준(金敏俊)", Total: 80, Pillars: ev.Pillars}, out.Suggestions[0])

		req := cand.gotRequest
		assert.Equal(t, []domain.NameBlock{{Pronunciation: "김", Hanja: "金"}}, req.Surname)
		assert.Equal(t, []domain.NameBlock{
			{Pronunciation: "민", Hanja: domain.Wildcard},
			{Pronunciation: domain.Wildcard, Hanja: domain.Wildcard},
		}, req.Given)
		assert.Equal(t, "戊", req.Chart.DayStem)
		assert.Empty(t, req.Chart.HourStem)
		assert.Equal(t, 5, req.Limit)
		assert.Equal(t, 60, req.MinScore)
		assert.True(t, req.RequireSoundHarmony)
	})

	t.Run("service error", func(t *testing.T) {
		cand := &mockCandidateService{err: domain.ErrDictionaryUnavailable}
		server := newTestServer(t, &mockEvaluationService{}, cand)

		_, _, err := server.handleSuggest(ctx, nil, SuggestInput{Surname: []string{"김/金"}, Given: []string{"_/_"}})

		assert.ErrorIs(t, err, domain.ErrDictionaryUnavailable)
	})

	t.Run("invalid chart", func(t *testing.T) {
		server := newTestServer(t, &mockEvaluationService{}, &mockCandidateService{})

		_, _, err := server.handleSuggest(ctx, nil, SuggestInput{Chart: "x"})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("no candidate service", func(t *testing.T) {
		server := newTestServer(t, &mockEvaluationService{}, nil)

		_, _, err := server.handleSuggest(ctx, nil, SuggestInput{})

		assert.ErrorIs(t, err, ErrCandidateServiceUnavailable)
	})
}
