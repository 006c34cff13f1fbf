package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/ireum-cli/internal/core/domain"
	"github.com/custodia-labs/ireum-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ireum-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyStrokeMode       = "engine.stroke_mode"
	KeyIncludeNeutral   = "search.include_neutral"
	KeySearchLimit      = "search.limit"
	KeyBatchParallelism = "batch.parallelism"
	KeyDictionaryPath   = "data.dictionary"
	KeyMeaningsPath     = "data.meanings"
)

var settingKeys = []string{
	KeyStrokeMode,
	KeyIncludeNeutral,
	KeySearchLimit,
	KeyBatchParallelism,
	KeyDictionaryPath,
	KeyMeaningsPath,
}

// SettingsService manages engine settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Unset or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.EngineSettings, error) {
	defaults := domain.DefaultEngineSettings()

	settings := &domain.EngineSettings{
		StrokeMode:       s.getStrokeMode(defaults.StrokeMode),
		IncludeNeutral:   s.getBool(KeyIncludeNeutral, defaults.IncludeNeutral),
		SearchLimit:      s.getInt(KeySearchLimit, defaults.SearchLimit),
		BatchParallelism: s.getInt(KeyBatchParallelism, defaults.BatchParallelism),
		DictionaryPath:   s.configStore.GetString(KeyDictionaryPath),
		MeaningsPath:     s.configStore.GetString(KeyMeaningsPath),
	}
	if settings.SearchLimit > domain.MaxSearchLimit {
		settings.SearchLimit = domain.MaxSearchLimit
	}

	return settings, nil
}

// Save validates and persists settings.
func (s *SettingsService) Save(settings *domain.EngineSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := map[string]any{
		KeyStrokeMode:       settings.StrokeMode.String(),
		KeyIncludeNeutral:   settings.IncludeNeutral,
		KeySearchLimit:      settings.SearchLimit,
		KeyBatchParallelism: settings.BatchParallelism,
		KeyDictionaryPath:   settings.DictionaryPath,
		KeyMeaningsPath:     settings.MeaningsPath,
	}
	for _, key := range settingKeys {
		if err := s.configStore.Set(key, values[key]); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}
	return nil
}

// Set parses and stores one setting by config key.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	switch key {
	case KeyStrokeMode:
		settings.StrokeMode = domain.StrokeMode(strings.ToLower(value))
	case KeyIncludeNeutral:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		settings.IncludeNeutral = b
	case KeySearchLimit, KeyBatchParallelism:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
		}
		if key == KeySearchLimit {
			settings.SearchLimit = n
		} else {
			settings.BatchParallelism = n
		}
	case KeyDictionaryPath:
		settings.DictionaryPath = value
	case KeyMeaningsPath:
		settings.MeaningsPath = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.Save(settings)
}

// Keys returns the recognised config keys in display order.
func (s *SettingsService) Keys() []string {
	return append([]string(nil), settingKeys...)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.EngineSettings {
	return domain.DefaultEngineSettings()
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getStrokeMode(defaultVal domain.StrokeMode) domain.StrokeMode {
	val := s.configStore.GetString(KeyStrokeMode)
	if val == "" {
		return defaultVal
	}
	mode := domain.StrokeMode(val)
	if !mode.IsValid() {
		return defaultVal
	}
	return mode
}
