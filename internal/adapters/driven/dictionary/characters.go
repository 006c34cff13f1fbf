package dictionary

import (
	"fmt"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/custodia-labs/ireum-cli/internal/core/domain"
)

// LoadCharacters reads and validates a character dictionary file.
func LoadCharacters(path string) ([]domain.CharacterRecord, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	records, err := ParseCharacters(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// ParseCharacters decodes a dictionary object and returns its records
// ordered by key. The first invalid entry fails the whole file.
func ParseCharacters(data []byte, format Format) ([]domain.CharacterRecord, error) {
	var raw map[string]map[string]any
	if err := decode(data, format, &raw); err != nil {
		return nil, err
	}

	records := make([]domain.CharacterRecord, 0, len(raw))
	for key, fields := range raw {
		rec, err := parseCharacter(key, fields)
		if err != nil {
			return nil, fmt.Errorf("character %q: %w", key, err)
		}
		records = append(records, rec)
	}
	slices.SortFunc(records, func(a, b domain.CharacterRecord) int {
		return strings.Compare(a.Key(), b.Key())
	})
	return records, nil
}

func parseCharacter(key string, fields map[string]any) (domain.CharacterRecord, error) {
	pron, hanja, ok := strings.Cut(key, "/")
	pron, hanja = strings.TrimSpace(pron), strings.TrimSpace(hanja)
	if !ok || pron == "" || hanja == "" {
		return domain.CharacterRecord{}, fmt.Errorf("%w: key must be \"pronunciation/hanja\"", domain.ErrInvalidInput)
	}
	rec := domain.CharacterRecord{Pronunciation: pron, Hanja: hanja}

	var err error
	if rec.OriginalStrokes, err = intField(fields, "original_strokes", "strokes"); err != nil {
		return rec, err
	}
	if _, present := lookup(fields, "dictionary_strokes"); present {
		if rec.DictionaryStrokes, err = intField(fields, "dictionary_strokes"); err != nil {
			return rec, err
		}
	} else {
		rec.DictionaryStrokes = rec.OriginalStrokes
	}

	if rec.SoundElement, err = elementField(fields, "", "sound_element", "sound"); err != nil {
		return rec, err
	}
	if rec.ResourceElement, err = elementField(fields, domain.DefaultElement, "resource_element", "resource"); err != nil {
		return rec, err
	}
	if rec.SoundYinYang, err = yinYangField(fields, "", "sound_yin_yang"); err != nil {
		return rec, err
	}
	if rec.StrokeYinYang, err = yinYangField(fields, domain.YinYangFromParity(rec.OriginalStrokes), "stroke_yin_yang"); err != nil {
		return rec, err
	}

	return rec, rec.Validate()
}

// lookup returns the first present, non-empty field among names.
func lookup(fields map[string]any, names ...string) (any, bool) {
	for _, name := range names {
		if v, ok := fields[name]; ok && v != nil && v != "" {
			return v, true
		}
	}
	return nil, false
}

func intField(fields map[string]any, names ...string) (int, error) {
	v, ok := lookup(fields, names...)
	if !ok {
		return 0, fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, names[0])
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%w: %s must be a whole number, got %v", domain.ErrInvalidInput, names[0], n)
		}
		return int(n), nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q is not a number", domain.ErrInvalidInput, names[0], n)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("%w: %s has unsupported type %T", domain.ErrInvalidInput, names[0], v)
	}
}

// elementField parses an element label. A zero fallback makes the field required.
func elementField(fields map[string]any, fallback domain.Element, names ...string) (domain.Element, error) {
	v, ok := lookup(fields, names...)
	if !ok {
		if fallback == "" {
			return "", fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, names[0])
		}
		return fallback, nil
	}
	return domain.ParseElement(fmt.Sprint(v))
}

func yinYangField(fields map[string]any, fallback domain.YinYang, names ...string) (domain.YinYang, error) {
	v, ok := lookup(fields, names...)
	if !ok {
		return fallback, nil
	}
	return domain.ParseYinYang(fmt.Sprint(v))
}
