package domain

import (
	"fmt"
	"strings"
)

// StrokeMode selects which stroke count feeds the numerology.
type StrokeMode string

// Available stroke modes.
const (
	// StrokeModeOriginal uses the original (radical-restored) stroke count.
	StrokeModeOriginal StrokeMode = "original"

	// StrokeModeDictionary uses the stroke count printed in the dictionary.
	StrokeModeDictionary StrokeMode = "dictionary"
)

// IsValid returns true if the stroke mode is recognised.
func (m StrokeMode) IsValid() bool {
	return m == StrokeModeOriginal || m == StrokeModeDictionary
}

// String returns the string representation.
func (m StrokeMode) String() string {
	return string(m)
}

// CharacterRecord describes one dictionary character: its reading, hanja,
// stroke counts and classification attributes. Records are immutable once loaded.
type CharacterRecord struct {
	// Pronunciation is the Hangul reading, e.g. "김".
	Pronunciation string `json:"pronunciation"`

	// Hanja is the Chinese character, e.g. "金".
	Hanja string `json:"hanja"`

	// OriginalStrokes is the stroke count with radicals restored to their full form.
	OriginalStrokes int `json:"original_strokes"`

	// DictionaryStrokes is the stroke count as printed in the dictionary.
	DictionaryStrokes int `json:"dictionary_strokes"`

	// SoundElement is the element assigned to the reading by the dictionary.
	SoundElement Element `json:"sound_element"`

	// SoundYinYang is the dictionary polarity of the reading.
	// Empty means unknown; classifiers fall back to vowel brightness.
	SoundYinYang YinYang `json:"sound_yin_yang,omitempty"`

	// StrokeYinYang is the dictionary polarity of the stroke count.
	StrokeYinYang YinYang `json:"stroke_yin_yang"`

	// ResourceElement is the element of the character's radical (jawon).
	ResourceElement Element `json:"resource_element"`

	// Missing marks a fallback record for a character absent from the dictionary.
	Missing bool `json:"missing,omitempty"`
}

// CharacterKey builds the dictionary key "pronunciation/hanja".
func CharacterKey(pronunciation, hanja string) string {
	return pronunciation + "/" + hanja
}

// Key returns the dictionary key of the record.
func (r CharacterRecord) Key() string {
	return CharacterKey(r.Pronunciation, r.Hanja)
}

// Strokes returns the stroke count selected by mode.
func (r CharacterRecord) Strokes(mode StrokeMode) int {
	if mode == StrokeModeDictionary {
		return r.DictionaryStrokes
	}
	return r.OriginalStrokes
}

// Validate checks that the record is usable by the engine.
func (r CharacterRecord) Validate() error {
	if strings.TrimSpace(r.Pronunciation) == "" || strings.TrimSpace(r.Hanja) == "" {
		return fmt.Errorf("%w: character %q needs pronunciation and hanja", ErrInvalidInput, r.Key())
	}
	if r.OriginalStrokes < 0 || r.DictionaryStrokes < 0 {
		return fmt.Errorf("%w: character %q has negative strokes", ErrInvalidInput, r.Key())
	}
	if !r.SoundElement.IsValid() || !r.ResourceElement.IsValid() {
		return fmt.Errorf("%w: character %q has an invalid element", ErrInvalidInput, r.Key())
	}
	if !r.StrokeYinYang.IsValid() {
		return fmt.Errorf("%w: character %q has an invalid stroke yin-yang", ErrInvalidInput, r.Key())
	}
	if r.SoundYinYang != "" && !r.SoundYinYang.IsValid() {
		return fmt.Errorf("%w: character %q has an invalid sound yin-yang", ErrInvalidInput, r.Key())
	}
	return nil
}

// Default attributes used when a character is not in the dictionary.
const (
	DefaultElement = ElementEarth
	DefaultYinYang = Yin
)

// FallbackRecord returns the explicit default record for a character the
// dictionary does not know: zero strokes, earth elements and yin polarity.
func FallbackRecord(pronunciation, hanja string) CharacterRecord {
	return CharacterRecord{
		Pronunciation:   pronunciation,
		Hanja:           hanja,
		SoundElement:    DefaultElement,
		StrokeYinYang:   DefaultYinYang,
		ResourceElement: DefaultElement,
		Missing:         true,
	}
}
