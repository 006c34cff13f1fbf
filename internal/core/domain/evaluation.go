package domain

// ScoreDetail is the score and verdict of one sub-dimension.
type ScoreDetail struct {
	Score    int    `json:"score"`
	MaxScore int    `json:"max_score"`
	Reason   string `json:"reason"`
	Passed   bool   `json:"passed"`

	// Ideal flags a full generating chain. Informational; it never changes
	// Score or Passed.
	Ideal bool `json:"ideal,omitempty"`
}

// Contributions are the four components of the total score.
type Contributions struct {
	Base           int `json:"base"`
	Pillar         int `json:"pillar"`
	ElementBalance int `json:"element_balance"`
	YinYang        int `json:"yin_yang"`
}

// Sum returns the unclamped total.
func (c Contributions) Sum() int {
	return c.Base + c.Pillar + c.ElementBalance + c.YinYang
}

// ScoreBreakdown holds every sub-score of an evaluation.
type ScoreBreakdown struct {
	PillarFortune        ScoreDetail `json:"pillar_fortune"`
	PillarElementHarmony ScoreDetail `json:"pillar_element_harmony"`
	PillarYinYangHarmony ScoreDetail `json:"pillar_yin_yang_harmony"`

	BirthChartElement    ScoreDetail `json:"birth_chart_element"`
	StrokeElement        ScoreDetail `json:"stroke_element"`
	PronunciationElement ScoreDetail `json:"pronunciation_element"`
	CombinedElement      ScoreDetail `json:"combined_element"`

	BirthChartYinYang    ScoreDetail `json:"birth_chart_yin_yang"`
	StrokeYinYang        ScoreDetail `json:"stroke_yin_yang"`
	PronunciationYinYang ScoreDetail `json:"pronunciation_yin_yang"`
	CombinedYinYang      ScoreDetail `json:"combined_yin_yang"`

	ZeroElementComplement ScoreDetail `json:"zero_element_complement"`

	ElementBalance ScoreDetail `json:"element_balance"`
	YinYangBalance ScoreDetail `json:"yin_yang_balance"`

	Contributions Contributions `json:"contributions"`
}

// NamedDetail pairs a sub-score with its display name.
type NamedDetail struct {
	Name   string
	Detail ScoreDetail
}

// Details returns the sub-scores in display order.
func (b ScoreBreakdown) Details() []NamedDetail {
	return []NamedDetail{
		{"pillar_fortune", b.PillarFortune},
		{"pillar_element_harmony", b.PillarElementHarmony},
		{"pillar_yin_yang_harmony", b.PillarYinYangHarmony},
		{"birth_chart_element", b.BirthChartElement},
		{"stroke_element", b.StrokeElement},
		{"pronunciation_element", b.PronunciationElement},
		{"combined_element", b.CombinedElement},
		{"birth_chart_yin_yang", b.BirthChartYinYang},
		{"stroke_yin_yang", b.StrokeYinYang},
		{"pronunciation_yin_yang", b.PronunciationYinYang},
		{"combined_yin_yang", b.CombinedYinYang},
		{"zero_element_complement", b.ZeroElementComplement},
		{"element_balance", b.ElementBalance},
		{"yin_yang_balance", b.YinYangBalance},
	}
}

// NameEvaluation is the complete, immutable result of evaluating one name
// against one birth chart.
type NameEvaluation struct {
	Name       NameComposition   `json:"name"`
	Characters []CharacterRecord `json:"characters"`
	Chart      BirthChart        `json:"chart"`

	Pillars        FourPillars    `json:"pillars"`
	PillarFortunes PillarFortunes `json:"pillar_fortunes"`

	BirthChartElements    ElementDistribution `json:"birth_chart_elements"`
	StrokeElements        ElementDistribution `json:"stroke_elements"`
	PronunciationElements ElementDistribution `json:"pronunciation_elements"`
	CombinedElements      ElementDistribution `json:"combined_elements"`
	PillarElements        ElementDistribution `json:"pillar_elements"`

	BirthChartYinYang    YinYangTally `json:"birth_chart_yin_yang"`
	StrokeYinYang        YinYangTally `json:"stroke_yin_yang"`
	PronunciationYinYang YinYangTally `json:"pronunciation_yin_yang"`
	CombinedYinYang      YinYangTally `json:"combined_yin_yang"`
	PillarYinYang        YinYangTally `json:"pillar_yin_yang"`

	Scores ScoreBreakdown `json:"scores"`
	Total  int            `json:"total"`
}

// MissingCharacters returns the keys of records that fell back to defaults.
func (e *NameEvaluation) MissingCharacters() []string {
	var keys []string
	for _, r := range e.Characters {
		if r.Missing {
			keys = append(keys, r.Key())
		}
	}
	return keys
}

// EvaluationRequest is one item of a batch evaluation.
type EvaluationRequest struct {
	Name  NameComposition `json:"name"`
	Chart BirthChart      `json:"chart"`
}

// EvaluationResult is the outcome of one batch item. Err is set instead of
// Evaluation when the item failed.
type EvaluationResult struct {
	Evaluation *NameEvaluation `json:"evaluation,omitempty"`
	Err        error           `json:"-"`
}
