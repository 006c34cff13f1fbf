package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ireum-cli/internal/core/domain"
	"github.com/custodia-labs/ireum-cli/internal/core/services"
)

func TestSettingsCmd_Subcommands(t *testing.T) {
	names := make([]string, 0, len(settingsCmd.Commands()))
	for _, c := range settingsCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"show", "set"}, names)
}

func TestSettingsCmd_LongListsKeys(t *testing.T) {
	for _, key := range services.NewSettingsService(nil).Keys() {
		assert.Contains(t, settingsCmd.Long, key)
	}
}

func TestSettingsShow_Defaults(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Stroke mode: Original")
	assert.Contains(t, out, "Include neutral numbers: false")
	assert.Contains(t, out, "Limit: 20")
	assert.Contains(t, out, "Parallelism: 4")
	assert.Contains(t, out, "Dictionary: (database)")
}

func TestSettingsCmd_DefaultsToShow(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
}

func TestSettingsSet(t *testing.T) {
	config := setupTestServices(t)

	out, err := execute(t, "settings", "set", services.KeySearchLimit, "50")
	require.NoError(t, err)
	assert.Contains(t, out, "Set search.limit = 50")
	assert.Equal(t, 50, config.GetInt(services.KeySearchLimit))

	_, err = execute(t, "settings", "set", services.KeyStrokeMode, "dictionary")
	require.NoError(t, err)

	out, err = execute(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Stroke mode: Dictionary")
	assert.Contains(t, out, "Limit: 50")
}

func TestSettingsSet_Errors(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "settings", "set", "unknown.key", "1")
	assert.Error(t, err)

	_, err = execute(t, "settings", "set", services.KeySearchLimit, "0")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = execute(t, "settings", "set", services.KeySearchLimit)
	assert.ErrorContains(t, err, "accepts 2 arg(s)")
}

func TestSettingsCmd_ServiceNotConfigured(t *testing.T) {
	SetServices(&Services{})
	t.Cleanup(func() { SetServices(nil) })

	_, err := execute(t, "settings", "show")
	assert.ErrorContains(t, err, "settings service not configured")

	_, err = execute(t, "settings", "set", services.KeySearchLimit, "5")
	assert.ErrorContains(t, err, "settings service not configured")
}
