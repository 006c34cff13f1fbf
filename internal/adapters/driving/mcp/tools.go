package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/ireum-cli/internal/core/domain"
	"github.com/custodia-labs/ireum-cli/internal/core/ports/driving"
)

// EvaluateInput is the input schema for the evaluate_name tool.
type EvaluateInput struct {
	Name          []string `json:"name" jsonschema:"name characters as pronunciation/hanja with the surname first"`
	SurnameLength int      `json:"surname_length,omitempty" jsonschema:"number of leading characters forming the surname (default 1)"`
	Chart         string   `json:"chart,omitempty" jsonschema:"optional birth chart as six or eight stem and branch characters"`
}

// PillarOutput is one classified pillar number.
type PillarOutput struct {
	Pillar string `json:"pillar"`
	Number int    `json:"number"`
	Tier   string `json:"tier"`
	Level  string `json:"level,omitempty"`
	Title  string `json:"title,omitempty"`
}

// ScoreOutput is one sub-score.
type ScoreOutput struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	MaxScore int    `json:"max_score"`
	Passed   bool   `json:"passed"`
	Reason   string `json:"reason"`
}

// EvaluationOutput is the output schema for the evaluate_name tool.
type EvaluationOutput struct {
	Name          string               `json:"name"`
	Total         int                  `json:"total"`
	Pillars       []PillarOutput       `json:"pillars"`
	Contributions domain.Contributions `json:"contributions"`
	Scores        []ScoreOutput        `json:"scores"`
	Missing       []string             `json:"missing,omitempty"`
}

// StrokePairsInput is the input schema for the stroke_pairs tool.
type StrokePairsInput struct {
	SurnameStrokes int `json:"surname_strokes" jsonschema:"total stroke count of the surname"`
}

// StrokePairOutput is one admissible stroke pair. Second is 0 for
// single-character given names.
type StrokePairOutput struct {
	First  int `json:"first"`
	Second int `json:"second"`
}

// StrokePairsOutput is the output schema for the stroke_pairs tool.
type StrokePairsOutput struct {
	SurnameStrokes int                `json:"surname_strokes"`
	Pairs          []StrokePairOutput `json:"pairs"`
	Count          int                `json:"count"`
}

// SuggestInput is the input schema for the suggest_names tool.
type SuggestInput struct {
	Surname             []string `json:"surname" jsonschema:"surname characters as pronunciation/hanja"`
	Given               []string `json:"given" jsonschema:"given-name pattern; use _ for an unknown pronunciation or hanja such as 민/_ or _/_"`
	Chart               string   `json:"chart,omitempty" jsonschema:"optional birth chart as six or eight stem and branch characters"`
	Limit               int      `json:"limit,omitempty" jsonschema:"maximum number of suggestions"`
	MinScore            int      `json:"min_score,omitempty" jsonschema:"drop suggestions with a lower total score"`
	RequireSoundHarmony bool     `json:"require_sound_harmony,omitempty" jsonschema:"keep only names whose pronunciation elements harmonise"`
}

// SuggestionOutput is one suggested name.
type SuggestionOutput struct {
	Name    string             `json:"name"`
	Total   int                `json:"total"`
	Pillars domain.FourPillars `json:"pillars"`
}

// SuggestOutput is the output schema for the suggest_names tool.
type SuggestOutput struct {
	Suggestions []SuggestionOutput `json:"suggestions"`
	Count       int                `json:"count"`
}

// FortuneInput is the input schema for the fortune tool.
type FortuneInput struct {
	Number int `json:"number" jsonschema:"pillar number between 1 and 81"`
}

// FortuneOutput is the output schema for the fortune tool.
type FortuneOutput struct {
	Number  int    `json:"number"`
	Tier    string `json:"tier"`
	Level   string `json:"level,omitempty"`
	Title   string `json:"title,omitempty"`
	Summary string `json:"summary,omitempty"`
	Element string `json:"element"`
	YinYang string `json:"yin_yang"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "evaluate_name",
		Description: "Score a Korean name by its four pillars, five elements and yin-yang balance",
	}, s.handleEvaluate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "fortune",
		Description: "Describe the fortune of one pillar number in the 81-number table",
	}, s.handleFortune)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "stroke_pairs",
		Description: "List given-name stroke pairs that make every pillar auspicious for a surname",
	}, s.handleStrokePairs)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "suggest_names",
		Description: "Search the hanja dictionary for high-scoring given names matching a pattern",
	}, s.handleSuggest)
}

func (s *Server) handleEvaluate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EvaluateInput,
) (*mcp.CallToolResult, EvaluationOutput, error) {
	surnameLength := input.SurnameLength
	if surnameLength <= 0 {
		surnameLength = 1
	}
	name, err := domain.ParseName(input.Name, surnameLength)
	if err != nil {
		return nil, EvaluationOutput{}, err
	}
	chart, err := parseChart(input.Chart)
	if err != nil {
		return nil, EvaluationOutput{}, err
	}

	ev, err := s.Ports().Evaluation.Evaluate(ctx, name, chart)
	if err != nil {
		return nil, EvaluationOutput{}, err
	}
	return nil, toEvaluationOutput(ev), nil
}

func (s *Server) handleFortune(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FortuneInput,
) (*mcp.CallToolResult, FortuneOutput, error) {
	f, err := s.Ports().Evaluation.Fortune(ctx, input.Number)
	if err != nil {
		return nil, FortuneOutput{}, err
	}
	return nil, toFortuneOutput(f), nil
}

func (s *Server) handleStrokePairs(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input StrokePairsInput,
) (*mcp.CallToolResult, StrokePairsOutput, error) {
	candidate := s.Ports().Candidate
	if candidate == nil {
		return nil, StrokePairsOutput{}, ErrCandidateServiceUnavailable
	}
	pairs, err := candidate.StrokePairs(ctx, input.SurnameStrokes)
	if err != nil {
		return nil, StrokePairsOutput{}, err
	}

	output := StrokePairsOutput{
		SurnameStrokes: input.SurnameStrokes,
		Pairs:          make([]StrokePairOutput, len(pairs)),
		Count:          len(pairs),
	}
	for i, p := range pairs {
		output.Pairs[i] = StrokePairOutput{First: p.First, Second: p.Second}
	}
	return nil, output, nil
}

func (s *Server) handleSuggest(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SuggestInput,
) (*mcp.CallToolResult, SuggestOutput, error) {
	candidate := s.Ports().Candidate
	if candidate == nil {
		return nil, SuggestOutput{}, ErrCandidateServiceUnavailable
	}
	chart, err := parseChart(input.Chart)
	if err != nil {
		return nil, SuggestOutput{}, err
	}

	suggestions, err := candidate.Suggest(ctx, domain.SuggestRequest{
		Surname:             parseBlocks(input.Surname),
		Given:               parseBlocks(input.Given),
		Chart:               chart,
		Limit:               input.Limit,
		MinScore:            input.MinScore,
		RequireSoundHarmony: input.RequireSoundHarmony,
	})
	if err != nil {
		return nil, SuggestOutput{}, err
	}

	output := SuggestOutput{
		Suggestions: make([]SuggestionOutput, len(suggestions)),
		Count:       len(suggestions),
	}
	for i, sg := range suggestions {
		output.Suggestions[i] = SuggestionOutput{
			Name:    sg.Name.String(),
			Total:   sg.Evaluation.Total,
			Pillars: sg.Evaluation.Pillars,
		}
	}
	return nil, output, nil
}

func parseChart(s string) (domain.BirthChart, error) {
	if strings.TrimSpace(s) == "" {
		return domain.BirthChart{}, nil
	}
	return domain.ParseBirthChart(s)
}

func parseBlocks(args []string) []domain.NameBlock {
	blocks := make([]domain.NameBlock, len(args))
	for i, a := range args {
		blocks[i] = domain.ParseNameBlock(a)
	}
	return blocks
}

func toEvaluationOutput(ev *domain.NameEvaluation) EvaluationOutput {
	out := EvaluationOutput{
		Name:          ev.Name.String(),
		Total:         ev.Total,
		Contributions: ev.Scores.Contributions,
		Missing:       ev.MissingCharacters(),
	}
	for i, f := range ev.PillarFortunes.All() {
		out.Pillars = append(out.Pillars, PillarOutput{
			Pillar: domain.PillarNames[i],
			Number: f.Number,
			Tier:   f.Tier.String(),
			Level:  f.Level.String(),
			Title:  f.Title,
		})
	}
	for _, d := range ev.Scores.Details() {
		out.Scores = append(out.Scores, ScoreOutput{
			Name:     d.Name,
			Score:    d.Detail.Score,
			MaxScore: d.Detail.MaxScore,
			Passed:   d.Detail.Passed,
			Reason:   d.Detail.Reason,
		})
	}
	return out
}

func toFortuneOutput(f *driving.FortuneDetails) FortuneOutput {
	return FortuneOutput{
		Number:  f.Number,
		Tier:    f.Tier.String(),
		Level:   f.Level.String(),
		Title:   f.Title,
		Summary: f.Summary,
		Element: f.Element.String(),
		YinYang: f.YinYang.String(),
	}
}
