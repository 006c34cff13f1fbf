package domain

import (
	"fmt"
	"strings"
)

// YinYang is the binary polarity tag (eum/yang).
type YinYang string

// Polarities.
const (
	Yin  YinYang = "yin"
	Yang YinYang = "yang"
)

// IsValid returns true if the polarity is recognised.
func (y YinYang) IsValid() bool {
	return y == Yin || y == Yang
}

// String returns the string representation.
func (y YinYang) String() string {
	return string(y)
}

// Label returns the Korean label (음 or 양).
func (y YinYang) Label() string {
	switch y {
	case Yin:
		return "음"
	case Yang:
		return "양"
	default:
		return unknownDescription
	}
}

// YinYangFromParity maps even numbers to yin and odd numbers to yang.
func YinYangFromParity(n int) YinYang {
	if n%2 == 0 {
		return Yin
	}
	return Yang
}

// ParseYinYang converts an English, Hangul or hanja label to a YinYang.
func ParseYinYang(s string) (YinYang, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yin", "eum", "음", "陰":
		return Yin, nil
	case "yang", "양", "陽":
		return Yang, nil
	default:
		return "", fmt.Errorf("%w: unknown yin-yang %q", ErrInvalidInput, s)
	}
}

// YinYangTally counts polarities and keeps the ordered arrangement.
type YinYangTally struct {
	Yin         int       `json:"yin"`
	Yang        int       `json:"yang"`
	Arrangement []YinYang `json:"arrangement"`
}

// NewYinYangTally counts the given arrangement.
func NewYinYangTally(arrangement []YinYang) YinYangTally {
	t := YinYangTally{Arrangement: append([]YinYang(nil), arrangement...)}
	for _, y := range arrangement {
		switch y {
		case Yin:
			t.Yin++
		case Yang:
			t.Yang++
		}
	}
	return t
}

// Extend returns a new tally with extra appended to the arrangement.
func (t YinYangTally) Extend(extra ...YinYang) YinYangTally {
	arrangement := make([]YinYang, 0, len(t.Arrangement)+len(extra))
	arrangement = append(arrangement, t.Arrangement...)
	arrangement = append(arrangement, extra...)
	return NewYinYangTally(arrangement)
}

// Total returns the number of contributors.
func (t YinYangTally) Total() int {
	return t.Yin + t.Yang
}

// Imbalance returns |yin - yang|.
func (t YinYangTally) Imbalance() int {
	if t.Yin > t.Yang {
		return t.Yin - t.Yang
	}
	return t.Yang - t.Yin
}

// MinorityRatio returns the share of the less frequent polarity, or 0 when empty.
func (t YinYangTally) MinorityRatio() float64 {
	total := t.Total()
	if total == 0 {
		return 0
	}
	return float64(min(t.Yin, t.Yang)) / float64(total)
}
