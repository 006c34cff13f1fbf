package dictionary

import (
	"cmp"
	"fmt"
	"os"
	"slices"

	"github.com/custodia-labs/ireum-cli/internal/core/domain"
)

type rawMeaning struct {
	Number     int    `json:"number" yaml:"number"`
	LuckyLevel string `json:"lucky_level" yaml:"lucky_level"`
	Title      string `json:"title" yaml:"title"`
	Summary    string `json:"summary" yaml:"summary"`
}

// LoadMeanings reads a stroke-meaning table. The format follows the extension.
func LoadMeanings(path string) ([]domain.StrokeMeaning, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read meanings: %w", err)
	}
	meanings, err := ParseMeanings(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return meanings, nil
}

// ParseMeanings decodes a list of meanings ordered by number. Lucky levels
// accept English or Korean labels. Duplicate numbers are rejected.
func ParseMeanings(data []byte, format Format) ([]domain.StrokeMeaning, error) {
	var raw []rawMeaning
	if err := decode(data, format, &raw); err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(raw))
	meanings := make([]domain.StrokeMeaning, 0, len(raw))
	for i, r := range raw {
		level, err := domain.ParseLuckyLevel(r.LuckyLevel)
		if err != nil {
			return nil, fmt.Errorf("meaning #%d: %w", i+1, err)
		}
		m := domain.StrokeMeaning{Number: r.Number, LuckyLevel: level, Title: r.Title, Summary: r.Summary}
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("meaning #%d: %w", i+1, err)
		}
		if seen[m.Number] {
			return nil, fmt.Errorf("%w: stroke meaning %d is listed twice", domain.ErrInvalidInput, m.Number)
		}
		seen[m.Number] = true
		meanings = append(meanings, m)
	}
	slices.SortFunc(meanings, func(a, b domain.StrokeMeaning) int {
		return cmp.Compare(a.Number, b.Number)
	})
	return meanings, nil
}
