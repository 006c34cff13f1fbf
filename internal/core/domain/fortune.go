package domain

import (
	"fmt"
	"strings"
)

// MaxStrokeNumber is the size of the fortune table; pillars wrap into [1, 81].
const MaxStrokeNumber = 81

// FourPillars holds the four numbers derived from stroke counts (sageok suri).
type FourPillars struct {
	Won    int `json:"won"`
	Hyeong int `json:"hyeong"`
	I      int `json:"i"`
	Jeong  int `json:"jeong"`
}

// Values returns the pillars in Won, Hyeong, I, Jeong order.
func (p FourPillars) Values() [4]int {
	return [4]int{p.Won, p.Hyeong, p.I, p.Jeong}
}

// PillarNames labels the entries of FourPillars.Values.
var PillarNames = [4]string{"won", "hyeong", "i", "jeong"}

// FortuneTier is the three-tier classification of an 81-table number.
type FortuneTier string

// Fortune tiers.
const (
	FortuneGreatLuck FortuneTier = "great_luck"
	FortuneLuck      FortuneTier = "luck"
	FortuneUnlucky   FortuneTier = "unlucky"
)

// String returns the string representation.
func (t FortuneTier) String() string {
	return string(t)
}

// LuckyLevel is the five-tier classification from a stroke-meaning table.
type LuckyLevel string

// Lucky levels, best first.
const (
	LuckySupreme     LuckyLevel = "supreme"
	LuckyLucky       LuckyLevel = "lucky"
	LuckyFair        LuckyLevel = "fair"
	LuckyUnlucky     LuckyLevel = "unlucky"
	LuckyMostUnlucky LuckyLevel = "most_unlucky"
)

// IsValid returns true if the level is recognised.
func (l LuckyLevel) IsValid() bool {
	switch l {
	case LuckySupreme, LuckyLucky, LuckyFair, LuckyUnlucky, LuckyMostUnlucky:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l LuckyLevel) String() string {
	return string(l)
}

// ParseLuckyLevel converts an English or Korean label to a LuckyLevel.
func ParseLuckyLevel(s string) (LuckyLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "supreme", "최상운수", "최상":
		return LuckySupreme, nil
	case "lucky", "상운수", "상":
		return LuckyLucky, nil
	case "fair", "양운수", "양":
		return LuckyFair, nil
	case "unlucky", "흉운수", "흉":
		return LuckyUnlucky, nil
	case "most_unlucky", "most-unlucky", "최흉운수", "최흉":
		return LuckyMostUnlucky, nil
	default:
		return "", fmt.Errorf("%w: unknown lucky level %q", ErrInvalidInput, s)
	}
}

// StrokeMeaning is one entry of an external stroke-meaning table.
type StrokeMeaning struct {
	Number     int        `json:"number" yaml:"number"`
	LuckyLevel LuckyLevel `json:"lucky_level" yaml:"lucky_level"`
	Title      string     `json:"title,omitempty" yaml:"title"`
	Summary    string     `json:"summary,omitempty" yaml:"summary"`
}

// Validate checks the entry.
func (m StrokeMeaning) Validate() error {
	if m.Number < 1 || m.Number > MaxStrokeNumber {
		return fmt.Errorf("%w: stroke meaning number %d out of range", ErrInvalidInput, m.Number)
	}
	if !m.LuckyLevel.IsValid() {
		return fmt.Errorf("%w: stroke meaning %d has lucky level %q", ErrInvalidInput, m.Number, m.LuckyLevel)
	}
	return nil
}

// PillarFortune is the classification of one adjusted pillar number.
type PillarFortune struct {
	Number int         `json:"number"`
	Tier   FortuneTier `json:"tier"`

	// Level and Title are set only when a stroke-meaning table covers Number.
	Level LuckyLevel `json:"level,omitempty"`
	Title string     `json:"title,omitempty"`
}

// PillarFortunes classifies each of the four pillars.
type PillarFortunes struct {
	Won    PillarFortune `json:"won"`
	Hyeong PillarFortune `json:"hyeong"`
	I      PillarFortune `json:"i"`
	Jeong  PillarFortune `json:"jeong"`
}

// All returns the fortunes in Won, Hyeong, I, Jeong order.
func (f PillarFortunes) All() [4]PillarFortune {
	return [4]PillarFortune{f.Won, f.Hyeong, f.I, f.Jeong}
}
