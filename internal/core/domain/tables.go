package domain

import (
	"maps"
	"sync"
)

// ganji is the element and polarity of one heavenly stem or earthly branch.
type ganji struct {
	element Element
	yinYang YinYang
}

// Tables is the immutable lookup configuration shared by every engine
// component. Build it once with DefaultTables and pass it by reference;
// WithMeanings returns a new value instead of mutating the receiver.
type Tables struct {
	stems    map[string]ganji
	branches map[string]ganji
	initials map[rune]Element
	bright   map[rune]bool
	fortunes [MaxStrokeNumber + 1]FortuneTier
	meanings map[int]StrokeMeaning
}

var defaultTables = sync.OnceValue(buildDefaultTables)

// DefaultTables returns the process-wide default tables.
func DefaultTables() *Tables {
	return defaultTables()
}

// auspiciousNumbers are the great-luck numbers of the 81-number table.
var auspiciousNumbers = []int{
	1, 3, 5, 6, 7, 8, 11, 13, 15, 16, 17, 18, 21, 23, 24, 25, 29, 31, 32, 33,
	35, 37, 38, 39, 41, 45, 47, 48, 52, 57, 61, 63, 65, 67, 68, 81,
}

// inauspiciousNumbers are the unlucky numbers. Anything in neither list is plain luck.
var inauspiciousNumbers = []int{
	2, 4, 9, 10, 12, 14, 19, 20, 22, 26, 28, 30, 34, 36, 40, 42, 43, 44, 46, 49,
	50, 53, 54, 55, 56, 58, 59, 60, 62, 64, 66, 69, 70, 71, 72, 73, 74, 75, 76,
	77, 78, 79, 80,
}

func buildDefaultTables() *Tables {
	t := &Tables{
		stems:    make(map[string]ganji, 20),
		branches: make(map[string]ganji, 24),
		initials: make(map[rune]Element, 19),
		bright:   make(map[rune]bool, 9),
		meanings: map[int]StrokeMeaning{},
	}

	// Ten stems alternate yang/yin, two per element in cycle order.
	stemHanja := []string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
	stemHangul := []string{"갑", "을", "병", "정", "무", "기", "경", "신", "임", "계"}
	for i := range stemHanja {
		g := ganji{element: Elements[i/2], yinYang: YinYangFromParity(i + 1)}
		t.stems[stemHanja[i]] = g
		t.stems[stemHangul[i]] = g
	}

	branchHanja := []string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}
	branchHangul := []string{"자", "축", "인", "묘", "진", "사", "오", "미", "신", "유", "술", "해"}
	branchElements := []Element{
		ElementWater, ElementEarth, ElementWood, ElementWood, ElementEarth, ElementFire,
		ElementFire, ElementEarth, ElementMetal, ElementMetal, ElementEarth, ElementWater,
	}
	for i := range branchHanja {
		// 子寅辰午申戌 are yang, 丑卯巳未酉亥 are yin.
		g := ganji{element: branchElements[i], yinYang: YinYangFromParity(i + 1)}
		t.branches[branchHanja[i]] = g
		t.branches[branchHangul[i]] = g
	}

	// Leading consonants as conjoining choseong jamo (U+1100..U+1112).
	initials := map[Element][]rune{
		ElementWood:  {'\u1100', '\u1101', '\u110F'},                     // ㄱ ㄲ ㅋ
		ElementFire:  {'\u1102', '\u1103', '\u1104', '\u1105', '\u1110'}, // ㄴ ㄷ ㄸ ㄹ ㅌ
		ElementEarth: {'\u110B', '\u1112'},                               // ㅇ ㅎ
		ElementMetal: {'\u1109', '\u110A', '\u110C', '\u110D', '\u110E'}, // ㅅ ㅆ ㅈ ㅉ ㅊ
		ElementWater: {'\u1106', '\u1107', '\u1108', '\u1111'},           // ㅁ ㅂ ㅃ ㅍ
	}
	for e, runes := range initials {
		for _, r := range runes {
			t.initials[r] = e
		}
	}

	// Bright vowels ㅏ ㅐ ㅑ ㅒ ㅗ ㅘ ㅙ ㅚ ㅛ as jungseong jamo.
	bright := []rune{
		'\u1161', '\u1162', '\u1163', '\u1164', '\u1169',
		'\u116A', '\u116B', '\u116C', '\u116D',
	}
	for _, r := range bright {
		t.bright[r] = true
	}

	for n := 1; n <= MaxStrokeNumber; n++ {
		t.fortunes[n] = FortuneLuck
	}
	for _, n := range auspiciousNumbers {
		t.fortunes[n] = FortuneGreatLuck
	}
	for _, n := range inauspiciousNumbers {
		t.fortunes[n] = FortuneUnlucky
	}

	return t
}

// WithMeanings returns a copy of t that also carries a stroke-meaning table.
// Invalid entries are skipped.
func (t *Tables) WithMeanings(meanings []StrokeMeaning) *Tables {
	clone := *t
	clone.meanings = maps.Clone(t.meanings)
	for _, m := range meanings {
		if m.Validate() != nil {
			continue
		}
		clone.meanings[m.Number] = m
	}
	return &clone
}

// Stem returns the element and polarity of a heavenly stem.
func (t *Tables) Stem(ch string) (Element, YinYang, bool) {
	g, ok := t.stems[ch]
	return g.element, g.yinYang, ok
}

// Branch returns the element and polarity of an earthly branch.
func (t *Tables) Branch(ch string) (Element, YinYang, bool) {
	g, ok := t.branches[ch]
	return g.element, g.yinYang, ok
}

// DigitElement maps a number to an element by its last digit:
// 1,2 wood; 3,4 fire; 5,6 earth; 7,8 metal; 9,0 water.
func (t *Tables) DigitElement(n int) Element {
	d := n % 10
	if d < 0 {
		d = -d
	}
	if d == 0 {
		return ElementWater
	}
	return Elements[(d-1)/2]
}

// InitialElement maps a leading consonant (choseong jamo) to an element.
func (t *Tables) InitialElement(r rune) (Element, bool) {
	e, ok := t.initials[r]
	return e, ok
}

// IsBrightVowel reports whether a medial vowel (jungseong jamo) is bright.
func (t *Tables) IsBrightVowel(r rune) bool {
	return t.bright[r]
}

// Fortune returns the three-tier classification of n. Numbers outside
// [1, 81] are unlucky.
func (t *Tables) Fortune(n int) FortuneTier {
	if n < 1 || n > MaxStrokeNumber {
		return FortuneUnlucky
	}
	return t.fortunes[n]
}

// Meaning returns the stroke-meaning entry for n, if the table has one.
func (t *Tables) Meaning(n int) (StrokeMeaning, bool) {
	m, ok := t.meanings[n]
	return m, ok
}

// HasMeanings reports whether a stroke-meaning table is attached.
func (t *Tables) HasMeanings() bool {
	return len(t.meanings) > 0
}

// NumbersWithTier lists the numbers 1..81 classified as tier.
func (t *Tables) NumbersWithTier(tier FortuneTier) []int {
	var out []int
	for n := 1; n <= MaxStrokeNumber; n++ {
		if t.fortunes[n] == tier {
			out = append(out, n)
		}
	}
	return out
}
