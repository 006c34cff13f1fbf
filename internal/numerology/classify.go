package numerology

import (
	"github.com/custodia-labs/ireum-cli/internal/core/domain"
)

// Classifier maps characters and birth charts to element distributions and
// yin-yang tallies. Each method is independent and pure.
type Classifier struct {
	tables *domain.Tables
	mode   domain.StrokeMode
}

// NewClassifier creates a classifier over the shared tables.
func NewClassifier(tables *domain.Tables, mode domain.StrokeMode) *Classifier {
	if !mode.IsValid() {
		mode = domain.StrokeModeOriginal
	}
	return &Classifier{tables: tables, mode: mode}
}

// BirthChart classifies the stem/branch characters of a chart in year,
// month, day, hour order. Empty positions are skipped; unknown characters
// count as earth and yin.
func (c *Classifier) BirthChart(chart domain.BirthChart) (domain.ElementDistribution, domain.YinYangTally) {
	var elements []domain.Element
	var polarities []domain.YinYang
	for _, p := range chart.Pillars() {
		if p.Stem != "" {
			e, y, ok := c.tables.Stem(p.Stem)
			if !ok {
				e, y = domain.DefaultElement, domain.DefaultYinYang
			}
			elements = append(elements, e)
			polarities = append(polarities, y)
		}
		if p.Branch != "" {
			e, y, ok := c.tables.Branch(p.Branch)
			if !ok {
				e, y = domain.DefaultElement, domain.DefaultYinYang
			}
			elements = append(elements, e)
			polarities = append(polarities, y)
		}
	}
	return domain.NewElementDistribution(elements), domain.NewYinYangTally(polarities)
}

// Strokes classifies characters by stroke count: element from the last
// digit, polarity from parity. Missing records count as earth and yin.
func (c *Classifier) Strokes(records []domain.CharacterRecord) (domain.ElementDistribution, domain.YinYangTally) {
	elements := make([]domain.Element, len(records))
	polarities := make([]domain.YinYang, len(records))
	for i, r := range records {
		if r.Missing {
			elements[i], polarities[i] = domain.DefaultElement, domain.DefaultYinYang
			continue
		}
		n := r.Strokes(c.mode)
		elements[i] = c.tables.DigitElement(n)
		polarities[i] = domain.YinYangFromParity(n)
	}
	return domain.NewElementDistribution(elements), domain.NewYinYangTally(polarities)
}

// Pronunciation classifies characters by reading. The element comes from the
// leading consonant; polarity from the dictionary sound yin-yang, else from
// vowel brightness. Readings that are not Hangul use the record's sound
// element (earth for missing records) and yin.
func (c *Classifier) Pronunciation(records []domain.CharacterRecord) (domain.ElementDistribution, domain.YinYangTally) {
	elements := make([]domain.Element, len(records))
	polarities := make([]domain.YinYang, len(records))
	for i, r := range records {
		elements[i], polarities[i] = c.pronunciation(r)
	}
	return domain.NewElementDistribution(elements), domain.NewYinYangTally(polarities)
}

func (c *Classifier) pronunciation(r domain.CharacterRecord) (domain.Element, domain.YinYang) {
	initial, medial, ok := decomposeSyllable(r.Pronunciation)
	if !ok {
		e := r.SoundElement
		if !e.IsValid() {
			e = domain.DefaultElement
		}
		if r.SoundYinYang.IsValid() {
			return e, r.SoundYinYang
		}
		return e, domain.DefaultYinYang
	}

	e, found := c.tables.InitialElement(initial)
	if !found {
		e = domain.DefaultElement
	}
	if r.SoundYinYang.IsValid() {
		return e, r.SoundYinYang
	}
	if c.tables.IsBrightVowel(medial) {
		return e, domain.Yang
	}
	return e, domain.Yin
}

// Combined adds each given-name character's resource element to the birth
// chart distribution, and its stroke polarity to the birth chart tally.
func (c *Classifier) Combined(
	chart domain.BirthChart, given []domain.CharacterRecord,
) (domain.ElementDistribution, domain.YinYangTally) {
	dist, tally := c.BirthChart(chart)
	resources := make([]domain.Element, len(given))
	polarities := make([]domain.YinYang, len(given))
	for i, r := range given {
		resources[i] = r.ResourceElement
		if !resources[i].IsValid() {
			resources[i] = domain.DefaultElement
		}
		polarities[i] = r.StrokeYinYang
		if !polarities[i].IsValid() {
			polarities[i] = domain.DefaultYinYang
		}
	}
	return dist.Extend(resources...), tally.Extend(polarities...)
}

// PillarDerived classifies the pillars ordered I, Hyeong, Won by last digit
// and parity. It feeds only the pillar harmony checks.
func (c *Classifier) PillarDerived(p domain.FourPillars) (domain.ElementDistribution, domain.YinYangTally) {
	ordered := []int{p.I, p.Hyeong, p.Won}
	elements := make([]domain.Element, len(ordered))
	polarities := make([]domain.YinYang, len(ordered))
	for i, n := range ordered {
		elements[i] = c.tables.DigitElement(n)
		polarities[i] = domain.YinYangFromParity(n)
	}
	return domain.NewElementDistribution(elements), domain.NewYinYangTally(polarities)
}
