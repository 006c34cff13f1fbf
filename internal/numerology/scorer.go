package numerology

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/ireum-cli/internal/core/domain"
)

// Composite score constants.
const (
	BaseScore       = 50
	MaxPillarScore  = 40
	MaxBalanceScore = 30
	MaxSubScore     = 100

	minPassingBalance   = 55
	harmonyBonus        = 50
	pointsPerGoodPillar = 20
)

// ScoreInput is everything the scorer consumes. It is produced by the
// classifiers and the pillar calculator.
type ScoreInput struct {
	Pillars  domain.FourPillars
	Fortunes domain.PillarFortunes

	BirthChartElements    domain.ElementDistribution
	StrokeElements        domain.ElementDistribution
	PronunciationElements domain.ElementDistribution
	CombinedElements      domain.ElementDistribution
	PillarElements        domain.ElementDistribution

	BirthChartYinYang    domain.YinYangTally
	StrokeYinYang        domain.YinYangTally
	PronunciationYinYang domain.YinYangTally
	CombinedYinYang      domain.YinYangTally
	PillarYinYang        domain.YinYangTally

	// GivenResources are the resource elements of the given-name characters.
	GivenResources []domain.Element
}

// Scorer merges the independent classifications into one explainable total.
type Scorer struct{}

// NewScorer creates a scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score computes every sub-score and the clamped total. No sub-score failure
// is fatal; the breakdown is always complete.
func (s *Scorer) Score(in ScoreInput) (domain.ScoreBreakdown, int) {
	var b domain.ScoreBreakdown

	b.PillarFortune = s.pillarFortune(in.Fortunes)
	b.PillarElementHarmony = harmonyDetail(PillarHarmony(in.PillarElements.Arrangement))
	b.PillarYinYangHarmony = harmonyDetail(YinYangHarmony(in.PillarYinYang.Arrangement))

	b.BirthChartElement = elementDetail(in.BirthChartElements, false)
	b.StrokeElement = elementDetail(in.StrokeElements, true)
	b.PronunciationElement = elementDetail(in.PronunciationElements, true)
	b.CombinedElement = elementDetail(in.CombinedElements, false)

	b.BirthChartYinYang = yinYangDetail(in.BirthChartYinYang)
	b.StrokeYinYang = yinYangDetail(in.StrokeYinYang)
	b.PronunciationYinYang = yinYangDetail(in.PronunciationYinYang)
	b.CombinedYinYang = yinYangDetail(in.CombinedYinYang)

	b.ZeroElementComplement = zeroElementComplement(in.BirthChartElements, in.GivenResources)

	spread := in.CombinedElements.Counts.Spread()
	imbalance := in.BirthChartYinYang.Imbalance() + in.StrokeYinYang.Imbalance() +
		in.PronunciationYinYang.Imbalance()

	b.Contributions = domain.Contributions{
		Base:           BaseScore,
		Pillar:         min(b.PillarFortune.Score, MaxPillarScore),
		ElementBalance: balanceTier(spread),
		YinYang:        balanceTier(imbalance),
	}
	b.ElementBalance = domain.ScoreDetail{
		Score:    b.Contributions.ElementBalance,
		MaxScore: MaxBalanceScore,
		Reason:   fmt.Sprintf("combined element spread (max-min) is %d", spread),
		Passed:   spread <= 4,
	}
	b.YinYangBalance = domain.ScoreDetail{
		Score:    b.Contributions.YinYang,
		MaxScore: MaxBalanceScore,
		Reason:   fmt.Sprintf("total yin-yang imbalance across chart, strokes and sound is %d", imbalance),
		Passed:   imbalance <= 4,
	}

	return b, clamp(b.Contributions.Sum(), 0, MaxSubScore)
}

func (s *Scorer) pillarFortune(f domain.PillarFortunes) domain.ScoreDetail {
	points := 0
	passed := true
	parts := make([]string, 0, len(domain.PillarNames))
	for i, pf := range f.All() {
		p, bad := fortunePoints(pf)
		points += p
		if bad {
			passed = false
		}
		label := string(pf.Tier)
		if pf.Level != "" {
			label = string(pf.Level)
		}
		parts = append(parts, fmt.Sprintf("%s %d %s (+%d)", domain.PillarNames[i], pf.Number, label, p))
	}
	return domain.ScoreDetail{
		Score:    min(points, MaxPillarScore),
		MaxScore: MaxPillarScore,
		Reason:   strings.Join(parts, ", "),
		Passed:   passed,
	}
}

// fortunePoints scores one pillar. The five-tier level wins when present.
func fortunePoints(f domain.PillarFortune) (points int, unlucky bool) {
	if f.Level != "" {
		switch f.Level {
		case domain.LuckySupreme, domain.LuckyLucky:
			return pointsPerGoodPillar, false
		case domain.LuckyFair:
			return 10, false
		case domain.LuckyUnlucky:
			return 5, true
		default:
			return 0, true
		}
	}
	switch f.Tier {
	case domain.FortuneGreatLuck:
		return pointsPerGoodPillar, false
	case domain.FortuneLuck:
		return 10, false
	default:
		return 0, true
	}
}

func harmonyDetail(h Harmony) domain.ScoreDetail {
	d := domain.ScoreDetail{MaxScore: MaxSubScore, Reason: h.Reason, Passed: h.Passed, Ideal: h.Ideal}
	if h.Passed {
		d.Score = MaxSubScore
	}
	return d
}

// elementDetail averages balance and arrangement. Name-character
// arrangements pass on general harmony; chart-based ones pass on balance.
func elementDetail(dist domain.ElementDistribution, byHarmony bool) domain.ScoreDetail {
	if dist.Counts.Total() == 0 {
		return domain.ScoreDetail{MaxScore: MaxSubScore, Reason: "no contributors"}
	}
	balance := BalanceScore(dist.Counts)
	arrangement := ArrangementScore(dist.Arrangement)
	d := domain.ScoreDetail{
		Score:    balance/2 + arrangement/2,
		MaxScore: MaxSubScore,
		Reason: fmt.Sprintf("%s: balance %d (deviation %.1f), arrangement %d",
			formatElements(dist.Arrangement), balance, Deviation(dist.Counts), arrangement),
	}
	if byHarmony {
		h := GeneralHarmony(dist.Arrangement)
		d.Passed = h.Passed
		d.Ideal = h.Ideal
		d.Reason += "; " + h.Reason
	} else {
		d.Passed = balance >= minPassingBalance
	}
	return d
}

func yinYangDetail(t domain.YinYangTally) domain.ScoreDetail {
	if t.Total() == 0 {
		return domain.ScoreDetail{MaxScore: MaxSubScore, Reason: "no contributors"}
	}
	ratio := t.MinorityRatio()
	score := minorityPoints(ratio)
	h := YinYangHarmony(t.Arrangement)
	if h.Passed {
		score += harmonyBonus
	}
	return domain.ScoreDetail{
		Score:    score,
		MaxScore: MaxSubScore,
		Reason:   fmt.Sprintf("yin %d, yang %d, minority %.2f; %s", t.Yin, t.Yang, ratio, h.Reason),
		Passed:   h.Passed,
	}
}

func minorityPoints(ratio float64) int {
	switch {
	case ratio >= 0.4:
		return 50
	case ratio >= 0.3:
		return 35
	case ratio >= 0.2:
		return 20
	default:
		return 10
	}
}

// zeroElementComplement measures how many elements absent from the birth
// chart are supplied by the given-name resource elements.
func zeroElementComplement(chart domain.ElementDistribution, resources []domain.Element) domain.ScoreDetail {
	d := domain.ScoreDetail{MaxScore: MaxSubScore}
	if chart.Counts.Total() == 0 {
		d.Reason = "no birth chart"
		return d
	}
	missing := chart.Counts.Zero()
	if len(missing) == 0 {
		d.Score, d.Passed, d.Reason = MaxSubScore, true, "birth chart has every element"
		return d
	}

	supplied := make(map[domain.Element]bool, len(resources))
	for _, e := range resources {
		supplied[e] = true
	}
	var filled, unfilled []string
	for _, e := range missing {
		if supplied[e] {
			filled = append(filled, e.String())
		} else {
			unfilled = append(unfilled, e.String())
		}
	}

	d.Score = MaxSubScore * len(filled) / len(missing)
	d.Passed = len(filled) > 0
	d.Reason = fmt.Sprintf("missing %d element(s); filled [%s], still missing [%s]",
		len(missing), strings.Join(filled, ", "), strings.Join(unfilled, ", "))
	return d
}

// balanceTier maps a spread or imbalance to a total-score contribution.
func balanceTier(v int) int {
	switch {
	case v <= 2:
		return 30
	case v <= 4:
		return 20
	case v <= 6:
		return 10
	default:
		return 0
	}
}
