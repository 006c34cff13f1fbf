package domain

import "fmt"

const unknownDescription = "Unknown"

// Description returns a human-readable description of the stroke mode.
func (m StrokeMode) Description() string {
	switch m {
	case StrokeModeOriginal:
		return "Original (wonhoek, radicals counted in their full form)"
	case StrokeModeDictionary:
		return "Dictionary (strokes as written)"
	default:
		return unknownDescription
	}
}

// AllStrokeModes returns all available stroke modes.
func AllStrokeModes() []StrokeMode {
	return []StrokeMode{StrokeModeOriginal, StrokeModeDictionary}
}

// EngineSettings holds engine and search configuration.
type EngineSettings struct {
	// StrokeMode selects which stroke count feeds the numerology.
	StrokeMode StrokeMode

	// IncludeNeutral admits plain-luck pillar numbers during candidate search.
	IncludeNeutral bool

	// SearchLimit caps the number of suggestions returned.
	SearchLimit int

	// BatchParallelism bounds concurrent evaluations in a batch.
	BatchParallelism int

	// DictionaryPath is the character dictionary file. Empty uses the data directory store.
	DictionaryPath string

	// MeaningsPath is the stroke-meaning file (YAML or JSON). Optional.
	MeaningsPath string
}

// Default setting values.
const (
	DefaultSearchLimit      = 20
	DefaultBatchParallelism = 4
	MaxSearchLimit          = 500
)

// DefaultEngineSettings returns settings with sensible defaults.
func DefaultEngineSettings() EngineSettings {
	return EngineSettings{
		StrokeMode:       StrokeModeOriginal,
		SearchLimit:      DefaultSearchLimit,
		BatchParallelism: DefaultBatchParallelism,
	}
}

// Validate checks the settings for out-of-range values.
func (s EngineSettings) Validate() error {
	if !s.StrokeMode.IsValid() {
		return fmt.Errorf("%w: unknown stroke mode %q", ErrInvalidInput, s.StrokeMode)
	}
	if s.SearchLimit < 1 || s.SearchLimit > MaxSearchLimit {
		return fmt.Errorf("%w: search limit must be between 1 and %d", ErrInvalidInput, MaxSearchLimit)
	}
	if s.BatchParallelism < 1 {
		return fmt.Errorf("%w: batch parallelism must be positive", ErrInvalidInput)
	}
	return nil
}
