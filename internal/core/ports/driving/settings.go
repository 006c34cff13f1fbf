package driving

import "github.com/custodia-labs/ireum-cli/internal/core/domain"

// SettingsService manages engine settings.
type SettingsService interface {
	// Get retrieves current settings, with defaults for unset keys.
	Get() (*domain.EngineSettings, error)

	// Save validates and persists settings.
	Save(settings *domain.EngineSettings) error

	// Set parses and stores one setting by config key.
	Set(key, value string) error

	// Keys returns the recognised config keys.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.EngineSettings
}
