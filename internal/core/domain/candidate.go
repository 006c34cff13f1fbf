package domain

// StrokePair is the stroke count of the first and second given-name
// characters. Second is 0 for single-character given names.
type StrokePair struct {
	First  int `json:"first"`
	Second int `json:"second"`
}

// Candidate is one accepted combination from the candidate generator.
type Candidate struct {
	Given   []CharacterRecord `json:"given"`
	Strokes []int             `json:"strokes"`
	Pillars FourPillars       `json:"pillars"`
}

// SuggestRequest configures name suggestion.
type SuggestRequest struct {
	// Surname blocks must be concrete.
	Surname []NameBlock

	// Given blocks may use Wildcard in either field.
	Given []NameBlock

	// Chart is optional; without it evaluations use an empty chart.
	Chart BirthChart

	// Limit is the maximum number of suggestions.
	Limit int

	// MinScore drops suggestions whose total is lower.
	MinScore int

	// RequireSoundHarmony keeps only names whose pronunciation elements pass
	// the general harmony filter.
	RequireSoundHarmony bool
}

// Suggestion is one evaluated candidate name.
type Suggestion struct {
	Name       NameComposition `json:"name"`
	Evaluation *NameEvaluation `json:"evaluation"`
}
