package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// BirthChart holds the eight stem/branch characters (saju) of a birth moment.
// Characters may be hanja (甲, 子) or Hangul (갑, 자). An empty hour pair means
// the birth hour is unknown.
type BirthChart struct {
	YearStem    string `json:"year_stem"`
	YearBranch  string `json:"year_branch"`
	MonthStem   string `json:"month_stem"`
	MonthBranch string `json:"month_branch"`
	DayStem     string `json:"day_stem"`
	DayBranch   string `json:"day_branch"`
	HourStem    string `json:"hour_stem,omitempty"`
	HourBranch  string `json:"hour_branch,omitempty"`
}

// Pillar is one stem/branch pair of a birth chart.
type Pillar struct {
	Stem   string
	Branch string
}

// Pillars returns the year, month, day and hour pairs in order.
func (c BirthChart) Pillars() [4]Pillar {
	return [4]Pillar{
		{c.YearStem, c.YearBranch},
		{c.MonthStem, c.MonthBranch},
		{c.DayStem, c.DayBranch},
		{c.HourStem, c.HourBranch},
	}
}

// IsZero returns true if no character is set.
func (c BirthChart) IsZero() bool {
	return c == BirthChart{}
}

// ParseBirthChart reads a chart from a compact string of stem/branch pairs,
// e.g. "甲子 丙寅 戊辰 庚午" or "갑자병인무진경오". Three pairs leave the hour unknown.
func ParseBirthChart(s string) (BirthChart, error) {
	s = strings.Join(strings.Fields(s), "")
	n := utf8.RuneCountInString(s)
	if n != 6 && n != 8 {
		return BirthChart{}, fmt.Errorf("%w: birth chart needs 6 or 8 characters, got %d", ErrInvalidInput, n)
	}
	r := make([]string, 0, 8)
	for _, ch := range s {
		r = append(r, string(ch))
	}
	for len(r) < 8 {
		r = append(r, "")
	}
	return BirthChart{
		YearStem: r[0], YearBranch: r[1],
		MonthStem: r[2], MonthBranch: r[3],
		DayStem: r[4], DayBranch: r[5],
		HourStem: r[6], HourBranch: r[7],
	}, nil
}
