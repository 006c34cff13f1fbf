package numerology

import (
	"github.com/custodia-labs/ireum-cli/internal/core/domain"
)

// AdjustModulo folds v into [1, 81]: values above 81 become ((v-1) mod 81)+1.
// Values up to 81, including 0, are returned unchanged.
func AdjustModulo(v int) int {
	if v > domain.MaxStrokeNumber {
		return (v-1)%domain.MaxStrokeNumber + 1
	}
	return v
}

// PadGiven returns the given-name strokes with a virtual 0 appended when
// the given name has a single character.
func PadGiven(given []int) []int {
	if len(given) == 1 {
		return []int{given[0], 0}
	}
	return given
}

// SplitGiven sums the upper half (myeongsangja, first n/2 entries) and the
// lower half (myeonghaja, the rest) of the padded given-name strokes.
func SplitGiven(given []int) (upper, lower int) {
	padded := PadGiven(given)
	half := len(padded) / 2
	for i, s := range padded {
		if i < half {
			upper += s
		} else {
			lower += s
		}
	}
	return upper, lower
}

// CalculatePillars derives the four pillars from surname and given-name
// stroke counts. Each pillar is modulo-adjusted into [1, 81].
func CalculatePillars(surname, given []int) (domain.FourPillars, error) {
	if len(surname) < domain.MinSurnameLength || len(surname) > domain.MaxSurnameLength {
		return domain.FourPillars{}, domain.NewInvalidInputError(len(surname), len(given),
			"surname must have 1 or 2 characters")
	}
	if len(given) < 1 || len(given) > domain.MaxGivenLength {
		return domain.FourPillars{}, domain.NewInvalidInputError(len(surname), len(given),
			"given name must have between 1 and 4 characters")
	}

	s := sum(surname)
	upper, lower := SplitGiven(given)
	g := upper + lower

	return domain.FourPillars{
		Won:    AdjustModulo(g),
		Hyeong: AdjustModulo(s + upper),
		I:      AdjustModulo(s + lower),
		Jeong:  AdjustModulo(s + g),
	}, nil
}

// ClassifyFortune classifies an adjusted pillar number. The lucky level and
// title are filled only when the tables carry a stroke-meaning entry.
func ClassifyFortune(t *domain.Tables, n int) domain.PillarFortune {
	f := domain.PillarFortune{Number: n, Tier: t.Fortune(n)}
	if m, ok := t.Meaning(n); ok {
		f.Level = m.LuckyLevel
		f.Title = m.Title
	}
	return f
}

// ClassifyPillars classifies all four pillars.
func ClassifyPillars(t *domain.Tables, p domain.FourPillars) domain.PillarFortunes {
	return domain.PillarFortunes{
		Won:    ClassifyFortune(t, p.Won),
		Hyeong: ClassifyFortune(t, p.Hyeong),
		I:      ClassifyFortune(t, p.I),
		Jeong:  ClassifyFortune(t, p.Jeong),
	}
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
