package numerology

import (
	"github.com/custodia-labs/ireum-cli/internal/core/domain"
)

func record(pron, hanja string, strokes int, sound, resource domain.Element) domain.CharacterRecord {
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

// kimMinjun is 김민준(金敏俊) with original strokes 8, 11, 9.
func kimMinjun() (domain.NameComposition, []domain.CharacterRecord) {
	name, err := domain.NewNameComposition(
		[]domain.NameBlock{{Pronunciation: "김", Hanja: "金"}},
		[]domain.NameBlock{{Pronunciation: "민", Hanja: "敏"}, {Pronunciation: "준", Hanja: "俊"}},
	)
	if err != nil {
		panic(err)
	}
	return name, []domain.CharacterRecord{
		record("김", "金", 8, domain.ElementWood, domain.ElementMetal),
		record("민", "敏", 11, domain.ElementWater, domain.ElementMetal),
		record("준", "俊", 9, domain.ElementMetal, domain.ElementFire),
	}
}
