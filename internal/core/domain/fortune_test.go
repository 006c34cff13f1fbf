package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLuckyLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LuckyLevel
	}{
		{"supreme", LuckySupreme},
		{"최상운수", LuckySupreme},
		{"상운수", LuckyLucky},
		{"양운수", LuckyFair},
		{"흉운수", LuckyUnlucky},
		{"최흉운수", LuckyMostUnlucky},
		{"Most_Unlucky", LuckyMostUnlucky},
	}
	for _, tt := range tests {
		got, err := ParseLuckyLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseLuckyLevel("so-so")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStrokeMeaning_Validate(t *testing.T) {
	assert.NoError(t, StrokeMeaning{Number: 1, LuckyLevel: LuckySupreme}.Validate())
	assert.ErrorIs(t, StrokeMeaning{Number: 0, LuckyLevel: LuckySupreme}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, StrokeMeaning{Number: 82, LuckyLevel: LuckySupreme}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, StrokeMeaning{Number: 5, LuckyLevel: "meh"}.Validate(), ErrInvalidInput)
}

func TestFourPillars_Values(t *testing.T) {
	p := FourPillars{Won: 1, Hyeong: 2, I: 3, Jeong: 4}
	assert.Equal(t, [4]int{1, 2, 3, 4}, p.Values())
	assert.Equal(t, "won", PillarNames[0])
	assert.Equal(t, "jeong", PillarNames[3])
}
