package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ireum-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/ireum-cli/internal/core/domain"
	"github.com/custodia-labs/ireum-cli/internal/core/services"
)

func rec(pron, hanja string, strokes int, sound, resource domain.Element) domain.CharacterRecord {
	return domain.CharacterRecord{
		Pronunciation:     pron,
		Hanja:             hanja,
		OriginalStrokes:   strokes,
		DictionaryStrokes: strokes,
		SoundElement:      sound,
		StrokeYinYang:     domain.YinYangFromParity(strokes),
		ResourceElement:   resource,
	}
}

// setupTestServices installs services backed by in-memory stores.
func setupTestServices(t *testing.T) *memory.ConfigStore {
	t.Helper()
	ctx := context.Background()

	characters := memory.NewCharacterStore(
		rec("김", "金", 8, domain.ElementWood, domain.ElementMetal),
		rec("이", "李", 7, domain.ElementEarth, domain.ElementWood),
		rec("민", "敏", 11, domain.ElementWater, domain.ElementMetal),
		rec("민", "珉", 10, domain.ElementWater, domain.ElementMetal),
		rec("준", "俊", 9, domain.ElementMetal, domain.ElementFire),
		rec("서", "瑞", 13, domain.ElementMetal, domain.ElementMetal),
	)
	meanings := memory.NewStrokeMeaningStore(
		domain.StrokeMeaning{Number: 17, LuckyLevel: domain.LuckyLucky, Title: "건창격", Summary: "뜻을 이루는 수"},
	)
	config := memory.NewConfigStore()
	settings := services.NewSettingsService(config)

	engine, optimizer, err := services.NewEngine(ctx, meanings, domain.DefaultEngineSettings())
	require.NoError(t, err)

	SetServices(&Services{
		Evaluation: services.NewEvaluationService(engine, characters, 2),
		Candidate:  services.NewCandidateService(engine, optimizer, characters, 0),
		Settings:   settings,
		Characters: characters,
	})
	t.Cleanup(func() { SetServices(nil) })
	return config
}

func resetFlags() {
	verbose = false
	configDir, dataDir, dictionaryPath, meaningsPath = "", "", "", ""
	evalSurnameLength, evalChart, evalJSON, evalDetail, evalBatchFile = 1, "", false, false, ""
	candidatesJSON = false
	suggestSurnameLength, suggestChart, suggestLimit, suggestMinScore = 1, "", 0, 0
	suggestSoundHarmony, suggestJSON = false, false
	fortuneJSON = false
	importCharacters, importMeanings = "", ""
}

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		resetFlags()
	})

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}
