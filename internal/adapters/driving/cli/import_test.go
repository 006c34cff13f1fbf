package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ireum-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/ireum-cli/internal/core/domain"
)

const testCharactersJSON = `{
  "김/金": {"original_strokes": 8, "sound_element": "wood", "resource_element": "metal"},
  "민/敏": {"strokes": 11, "sound": "수", "resource": "金"}
}`

const testMeaningsYAML = `
- number: 19
  lucky_level: 흉운수
  title: 고난격
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestImportCmd_Characters(t *testing.T) {
	dir := t.TempDir()
	chars := writeFile(t, dir, "hanja.json", testCharactersJSON)
	meanings := writeFile(t, dir, "meanings.yaml", testMeaningsYAML)
	data := filepath.Join(dir, "data")

	out, err := execute(t, "import", "--characters", chars, "--meanings", meanings, "--data-dir", data)

	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 characters")
	assert.Contains(t, out, "Imported 1 stroke meanings")
	assert.Contains(t, out, "now holds 2 characters")
	assert.Nil(t, store, "import closes the database")

	s, err := sqlite.NewStore(data)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	rec, err := s.CharacterStore().Get(ctx, "민/敏")
	require.NoError(t, err)
	assert.Equal(t, 11, rec.OriginalStrokes)
	assert.Equal(t, domain.ElementWater, rec.SoundElement)

	m, err := s.StrokeMeaningStore().Get(ctx, 19)
	require.NoError(t, err)
	assert.Equal(t, domain.LuckyUnlucky, m.LuckyLevel)
}

func TestImportCmd_Reimport(t *testing.T) {
	dir := t.TempDir()
	chars := writeFile(t, dir, "hanja.json", testCharactersJSON)
	data := filepath.Join(dir, "data")

	_, err := execute(t, "import", "--characters", chars, "--data-dir", data)
	require.NoError(t, err)
	out, err := execute(t, "import", "--characters", chars, "--data-dir", data)
	require.NoError(t, err)

	assert.Contains(t, out, "now holds 2 characters")
}

func TestImportCmd_Errors(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data")

	_, err := execute(t, "import", "--data-dir", data)
	assert.ErrorContains(t, err, "nothing to import")

	_, err = execute(t, "import", "--characters", filepath.Join(dir, "missing.json"), "--data-dir", data)
	assert.ErrorContains(t, err, "read dictionary")

	bad := writeFile(t, dir, "bad.json", `{"김/金": {"original_strokes": 8}}`)
	_, err = execute(t, "import", "--characters", bad, "--data-dir", data)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	txt := writeFile(t, dir, "meanings.txt", "17")
	_, err = execute(t, "import", "--meanings", txt, "--data-dir", data)
	assert.Error(t, err)
}
