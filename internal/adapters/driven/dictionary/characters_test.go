package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ireum-cli/internal/core/domain"
)

const charactersJSON = `{
  "김/金": {"original_strokes": 8, "dictionary_strokes": 8, "sound_element": "목", "stroke_yin_yang": "음", "resource_element": "金"},
  "민/敏": {"strokes": "11", "sound": "water", "resource": "metal", "sound_yin_yang": "yang"},
  "준/俊": {"original_strokes": 9, "dictionary_strokes": "", "sound_element": "金"}
}`

func TestParseCharacters_JSON(t *testing.T) {
	records, err := ParseCharacters([]byte(charactersJSON), FormatJSON)

	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, domain.CharacterRecord{
		Pronunciation:     "김",
		Hanja:             "金",
		OriginalStrokes:   8,
		DictionaryStrokes: 8,
		SoundElement:      domain.ElementWood,
		StrokeYinYang:     domain.Yin,
		ResourceElement:   domain.ElementMetal,
	}, records[0])

	minRec := records[1]
	assert.Equal(t, "민/敏", minRec.Key())
	assert.Equal(t, 11, minRec.OriginalStrokes)
	assert.Equal(t, 11, minRec.DictionaryStrokes)
	assert.Equal(t, domain.ElementWater, minRec.SoundElement)
	assert.Equal(t, domain.Yang, minRec.SoundYinYang)
	assert.Equal(t, domain.Yang, minRec.StrokeYinYang)

	junRec := records[2]
	assert.Equal(t, 9, junRec.DictionaryStrokes)
	assert.Equal(t, domain.DefaultElement, junRec.ResourceElement)
	assert.Empty(t, junRec.SoundYinYang)
	assert.Equal(t, domain.Yang, junRec.StrokeYinYang)
}

func TestParseCharacters_YAML(t *testing.T) {
	data := `
"이/李":
  strokes: 7
  sound: 土
  resource: 木
  stroke_yin_yang: 陽
`
	records, err := ParseCharacters([]byte(data), FormatYAML)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 7, records[0].OriginalStrokes)
	assert.Equal(t, domain.ElementEarth, records[0].SoundElement)
	assert.Equal(t, domain.ElementWood, records[0].ResourceElement)
	assert.Equal(t, domain.Yang, records[0].StrokeYinYang)
}

func TestParseCharacters_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad key", `{"김金": {"strokes": 8, "sound": "wood"}}`},
		{"missing strokes", `{"김/金": {"sound": "wood"}}`},
		{"fractional strokes", `{"김/金": {"strokes": 8.5, "sound": "wood"}}`},
		{"non-numeric strokes", `{"김/金": {"strokes": "eight", "sound": "wood"}}`},
		{"boolean strokes", `{"김/金": {"strokes": true, "sound": "wood"}}`},
		{"negative strokes", `{"김/金": {"strokes": -1, "sound": "wood"}}`},
		{"missing sound", `{"김/金": {"strokes": 8}}`},
		{"unknown element", `{"김/金": {"strokes": 8, "sound": "plasma"}}`},
		{"unknown yin-yang", `{"김/金": {"strokes": 8, "sound": "wood", "sound_yin_yang": "both"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCharacters([]byte(tt.data), FormatJSON)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.ErrorContains(t, err, "character")
		})
	}
}

func TestParseCharacters_Malformed(t *testing.T) {
	_, err := ParseCharacters([]byte(`{"김/金": [`), FormatJSON)
	assert.ErrorContains(t, err, "parse json")

	_, err = ParseCharacters([]byte(`{}`), Format("xml"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestParseCharacters_Empty(t *testing.T) {
	records, err := ParseCharacters([]byte(`{}`), FormatJSON)

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadCharacters(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hanja.json")
	require.NoError(t, os.WriteFile(path, []byte(charactersJSON), 0600))

	records, err := LoadCharacters(path)

	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestLoadCharacters_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadCharacters(filepath.Join(dir, "hanja.csv"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)

	_, err = LoadCharacters(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"김/金": {"strokes": 8}}`), 0600))
	_, err = LoadCharacters(bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorContains(t, err, bad)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.json", FormatJSON},
		{"a.JSON", FormatJSON},
		{"dir/a.yaml", FormatYAML},
		{"a.yml", FormatYAML},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}

	_, err := FormatFromPath("a.toml")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}
