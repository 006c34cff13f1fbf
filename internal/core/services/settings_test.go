package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ireum-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/ireum-cli/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultEngineSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		KeyStrokeMode:       "dictionary",
		KeyIncludeNeutral:   true,
		KeySearchLimit:      50,
		KeyBatchParallelism: "8",
		KeyDictionaryPath:   "/data/hanja.json",
		KeyMeaningsPath:     "/data/meanings.yaml",
	})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.StrokeModeDictionary, settings.StrokeMode)
	assert.True(t, settings.IncludeNeutral)
	assert.Equal(t, 50, settings.SearchLimit)
	assert.Equal(t, 8, settings.BatchParallelism)
	assert.Equal(t, "/data/hanja.json", settings.DictionaryPath)
	assert.Equal(t, "/data/meanings.yaml", settings.MeaningsPath)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		KeyStrokeMode:       "phonetic",
		KeySearchLimit:      -3,
		KeyBatchParallelism: "many",
	})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.StrokeModeOriginal, settings.StrokeMode)
	assert.Equal(t, domain.DefaultSearchLimit, settings.SearchLimit)
	assert.Equal(t, domain.DefaultBatchParallelism, settings.BatchParallelism)
}

func TestSettingsService_Get_CapsSearchLimit(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{KeySearchLimit: 10000})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.MaxSearchLimit, settings.SearchLimit)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultEngineSettings()
	settings.StrokeMode = domain.StrokeModeDictionary
	settings.SearchLimit = 7
	settings.MeaningsPath = "meanings.json"

	require.NoError(t, service.Save(&settings))

	assert.Equal(t, "dictionary", store.GetString(KeyStrokeMode))
	assert.Equal(t, 7, store.GetInt(KeySearchLimit))
	assert.Equal(t, "meanings.json", store.GetString(KeyMeaningsPath))

	got, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, *got)
}

func TestSettingsService_Save_Invalid(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultEngineSettings()
	settings.SearchLimit = 0

	err := service.Save(&settings)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.All())
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T, s *domain.EngineSettings)
	}{
		{
			name:  "stroke mode is case-insensitive",
			key:   KeyStrokeMode,
			value: "Dictionary",
			check: func(t *testing.T, s *domain.EngineSettings) {
				assert.Equal(t, domain.StrokeModeDictionary, s.StrokeMode)
			},
		},
		{
			name:  "include neutral",
			key:   KeyIncludeNeutral,
			value: "true",
			check: func(t *testing.T, s *domain.EngineSettings) {
				assert.True(t, s.IncludeNeutral)
			},
		},
		{
			name:  "search limit",
			key:   KeySearchLimit,
			value: " 42 ",
			check: func(t *testing.T, s *domain.EngineSettings) {
				assert.Equal(t, 42, s.SearchLimit)
			},
		},
		{
			name:  "batch parallelism",
			key:   KeyBatchParallelism,
			value: "2",
			check: func(t *testing.T, s *domain.EngineSettings) {
				assert.Equal(t, 2, s.BatchParallelism)
			},
		},
		{
			name:  "dictionary path",
			key:   KeyDictionaryPath,
			value: "/tmp/hanja.csv",
			check: func(t *testing.T, s *domain.EngineSettings) {
				assert.Equal(t, "/tmp/hanja.csv", s.DictionaryPath)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())

			require.NoError(t, service.Set(tt.key, tt.value))

			settings, err := service.Get()
			require.NoError(t, err)
			tt.check(t, settings)
		})
	}
}

func TestSettingsService_Set_Errors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "engine.color", "red"},
		{"bad bool", KeyIncludeNeutral, "maybe"},
		{"bad int", KeySearchLimit, "ten"},
		{"limit out of range", KeySearchLimit, "501"},
		{"zero parallelism", KeyBatchParallelism, "0"},
		{"unknown mode", KeyStrokeMode, "phonetic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())

			err := service.Set(tt.key, tt.value)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSettingsService_Set_StoreError(t *testing.T) {
	service := NewSettingsService(failingConfigStore{memory.NewConfigStore()})

	err := service.Set(KeySearchLimit, "10")

	assert.True(t, errors.Is(err, errStoreDown))
	assert.Contains(t, err.Error(), "save engine.stroke_mode")
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	keys := service.Keys()
	keys[0] = "mutated"

	assert.Len(t, service.Keys(), 6)
	assert.Equal(t, KeyStrokeMode, service.Keys()[0])
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, domain.DefaultEngineSettings(), service.GetDefaults())
}

// failingConfigStore reads from the embedded store and fails on Set.
type failingConfigStore struct {
	*memory.ConfigStore
}

func (failingConfigStore) Set(string, any) error {
	return errStoreDown
}
