package numerology

import (
	"fmt"
	"math"
	"strings"

	"github.com/custodia-labs/ireum-cli/internal/core/domain"
)

// Arrangement scoring weights.
const (
	arrangementBase       = 70
	generatingBonus       = 15
	conflictingPenalty    = 20
	identicalPenalty      = 5
	minGeneratingRatio    = 0.6
	maxIdenticalRunLength = 2
)

// IsGenerating reports whether one element generates the other (sangsaeng).
// The check is symmetric.
func IsGenerating(a, b domain.Element) bool {
	if !a.IsValid() || !b.IsValid() {
		return false
	}
	return a.Next() == b || b.Next() == a
}

// IsConflicting reports whether two elements are two cycle steps apart
// in either direction (sanggeuk).
func IsConflicting(a, b domain.Element) bool {
	ia, ib := a.Index(), b.Index()
	if ia < 0 || ib < 0 {
		return false
	}
	d := (ib - ia + len(domain.Elements)) % len(domain.Elements)
	return d == 2 || d == 3
}

// ArrangementScore rates the adjacent pairs of an arrangement: base 70,
// +15 per generating pair, -20 per conflicting pair, -5 per identical pair,
// clamped to [0, 100]. Fewer than two elements score the base.
func ArrangementScore(arrangement []domain.Element) int {
	score := arrangementBase
	for i := 1; i < len(arrangement); i++ {
		a, b := arrangement[i-1], arrangement[i]
		switch {
		case a == b:
			score -= identicalPenalty
		case IsGenerating(a, b):
			score += generatingBonus
		case IsConflicting(a, b):
			score -= conflictingPenalty
		}
	}
	return clamp(score, 0, 100)
}

// Deviation returns the sum of absolute deviations of the counts from their mean.
func Deviation(counts domain.ElementCounts) float64 {
	mean := float64(counts.Total()) / float64(len(counts))
	dev := 0.0
	for _, n := range counts {
		dev += math.Abs(float64(n) - mean)
	}
	return dev
}

// BalanceScore maps the deviation of a five-element distribution to a score.
func BalanceScore(counts domain.ElementCounts) int {
	return balanceFromDeviation(Deviation(counts))
}

func balanceFromDeviation(dev float64) int {
	switch {
	case dev <= 2:
		return 100
	case dev <= 4:
		return 85
	case dev <= 6:
		return 70
	case dev <= 8:
		return 55
	case dev <= 10:
		return 40
	default:
		return 25
	}
}

// Harmony is the verdict of a harmony filter.
type Harmony struct {
	Passed bool
	// Ideal marks a full generating chain. It is reported but never changes Passed.
	Ideal  bool
	Reason string
}

// GeneralHarmony fails an arrangement that has an adjacent conflicting pair,
// a run of three or more identical elements, conflicting ends, or fewer than
// 60% generating pairs among adjacent pairs of differing elements.
func GeneralHarmony(arrangement []domain.Element) Harmony {
	if len(arrangement) < 2 {
		return Harmony{Passed: true, Reason: "fewer than two elements"}
	}

	run := 1
	differing, generating := 0, 0
	chain := true
	for i := 1; i < len(arrangement); i++ {
		a, b := arrangement[i-1], arrangement[i]
		if IsConflicting(a, b) {
			return Harmony{Reason: fmt.Sprintf("%s and %s conflict at position %d", a, b, i)}
		}
		if a == b {
			run++
			if run > maxIdenticalRunLength {
				return Harmony{Reason: fmt.Sprintf("%s repeats %d times in a row", a, run)}
			}
		} else {
			run = 1
			differing++
			if IsGenerating(a, b) {
				generating++
			}
		}
		if a.Next() != b {
			chain = false
		}
	}

	first, last := arrangement[0], arrangement[len(arrangement)-1]
	if IsConflicting(first, last) {
		return Harmony{Reason: fmt.Sprintf("first %s and last %s conflict", first, last)}
	}

	if differing > 0 && float64(generating)/float64(differing) < minGeneratingRatio {
		return Harmony{Reason: fmt.Sprintf("only %d of %d differing pairs generate", generating, differing)}
	}

	h := Harmony{Passed: true, Ideal: chain, Reason: "no conflicts, " + pairSummary(generating, differing)}
	if chain {
		h.Reason += ", full generating chain"
	}
	return h
}

// PillarHarmony checks the pillar-derived elements ordered I, Hyeong, Won.
// Any conflicting pair, including the wrap-around Won to I, fails, as do
// three identical elements. A passing arrangement is ideal when Hyeong
// generates with both of its neighbours.
func PillarHarmony(elements []domain.Element) Harmony {
	if len(elements) != 3 {
		return Harmony{Reason: fmt.Sprintf("needs exactly 3 elements, got %d", len(elements))}
	}
	if elements[0] == elements[1] && elements[1] == elements[2] {
		return Harmony{Reason: fmt.Sprintf("all three pillars are %s", elements[0])}
	}
	names := [3]string{"i", "hyeong", "won"}
	for i := range elements {
		j := (i + 1) % len(elements)
		if IsConflicting(elements[i], elements[j]) {
			return Harmony{Reason: fmt.Sprintf("%s (%s) conflicts with %s (%s)",
				names[i], elements[i], names[j], elements[j])}
		}
	}
	ideal := IsGenerating(elements[0], elements[1]) && IsGenerating(elements[1], elements[2])
	h := Harmony{Passed: true, Ideal: ideal, Reason: "no conflicting pillars"}
	if ideal {
		h.Reason += ", hyeong generates with i and won"
	}
	return h
}

// YinYangHarmony fails when the first and last entries share a polarity or
// when only one polarity is present.
func YinYangHarmony(arrangement []domain.YinYang) Harmony {
	if len(arrangement) == 0 {
		return Harmony{Reason: "no contributors"}
	}
	t := domain.NewYinYangTally(arrangement)
	if t.Yin == 0 || t.Yang == 0 {
		return Harmony{Reason: "only one polarity present"}
	}
	if arrangement[0] == arrangement[len(arrangement)-1] {
		return Harmony{Reason: fmt.Sprintf("first and last are both %s", arrangement[0])}
	}
	return Harmony{Passed: true, Reason: "mixed polarity with differing ends"}
}

func pairSummary(generating, differing int) string {
	if differing == 0 {
		return "no differing pairs"
	}
	return fmt.Sprintf("%d of %d differing pairs generate", generating, differing)
}

func formatElements(arrangement []domain.Element) string {
	parts := make([]string, len(arrangement))
	for i, e := range arrangement {
		parts[i] = e.String()
	}
	return strings.Join(parts, "-")
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
