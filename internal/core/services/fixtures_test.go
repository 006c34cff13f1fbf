package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/ireum-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/ireum-cli/internal/core/domain"
	"github.com/custodia-labs/ireum-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ireum-cli/internal/numerology"
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

func testDictionary() *memory.CharacterStore {
	return memory.NewCharacterStore(
		rec("김", "金", 8, domain.ElementWood, domain.ElementMetal),
		rec("이", "李", 7, domain.ElementEarth, domain.ElementWood),
		rec("민", "敏", 11, domain.ElementWater, domain.ElementMetal),
		rec("민", "珉", 10, domain.ElementWater, domain.ElementMetal),
		rec("준", "俊", 9, domain.ElementMetal, domain.ElementFire),
		rec("서", "瑞", 13, domain.ElementMetal, domain.ElementMetal),
		rec("윤", "允", 4, domain.ElementEarth, domain.ElementEarth),
	)
}

func block(s string) domain.NameBlock {
	return domain.ParseNameBlock(s)
}

func mustName(surname string, given ...string) domain.NameComposition {
	g := make([]domain.NameBlock, len(given))
	for i, s := range given {
		g[i] = block(s)
	}
	name, err := domain.NewNameComposition([]domain.NameBlock{block(surname)}, g)
	if err != nil {
		panic(err)
	}
	return name
}

func newTestEngine() (*numerology.Engine, *numerology.Optimizer) {
	engine, optimizer, err := NewEngine(context.Background(), nil, domain.DefaultEngineSettings())
	if err != nil {
		panic(err)
	}
	return engine, optimizer
}

var errStoreDown = errors.New("store down")

// failingCharacterStore fails every call.
type failingCharacterStore struct{}

var _ driven.CharacterStore = failingCharacterStore{}

func (failingCharacterStore) Get(context.Context, string) (*domain.CharacterRecord, error) {
	return nil, errStoreDown
}

func (failingCharacterStore) ListByPronunciation(context.Context, string) ([]domain.CharacterRecord, error) {
	return nil, errStoreDown
}

func (failingCharacterStore) List(context.Context) ([]domain.CharacterRecord, error) {
	return nil, errStoreDown
}

func (failingCharacterStore) Save(context.Context, ...domain.CharacterRecord) error {
	return errStoreDown
}

func (failingCharacterStore) Count(context.Context) (int, error) {
	return 0, errStoreDown
}

// failingMeaningStore fails List.
type failingMeaningStore struct{}

func (failingMeaningStore) Get(context.Context, int) (*domain.StrokeMeaning, error) {
	return nil, errStoreDown
}

func (failingMeaningStore) List(context.Context) ([]domain.StrokeMeaning, error) {
	return nil, errStoreDown
}

func (failingMeaningStore) Save(context.Context, ...domain.StrokeMeaning) error {
	return errStoreDown
}
