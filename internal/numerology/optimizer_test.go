package numerology

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ireum-cli/internal/core/domain"
)

func TestOptimizer_AdmissibleNumbers(t *testing.T) {
	tables := domain.DefaultTables()

	strict := NewOptimizer(tables)
	assert.Equal(t, tables.NumbersWithTier(domain.FortuneGreatLuck), strict.AdmissibleNumbers())
	assert.False(t, strict.Admissible(27))
	assert.False(t, strict.Admissible(0))
	assert.False(t, strict.Admissible(82))
	assert.True(t, strict.Admissible(81))

	neutral := NewOptimizer(tables, WithNeutral(true))
	assert.True(t, neutral.Admissible(27))
	assert.True(t, neutral.Admissible(51))
	assert.Len(t, neutral.AdmissibleNumbers(), 38)
}

func TestOptimizer_PairSetMatchesDirectEvaluation(t *testing.T) {
	o := NewOptimizer(nil)

	for _, s := range []int{1, 7, 8, 16, 25} {
		ps := o.PairSet(s)
		assert.Equal(t, s, ps.SurnameTotal())
		for a := 1; a <= MaxPairStrokes; a++ {
			for b := 0; b <= MaxPairStrokes; b++ {
				given := []int{a, b}
				if b == 0 {
					given = []int{a}
				}
				p, err := CalculatePillars([]int{s}, given)
				require.NoError(t, err)
				assert.Equal(t, o.PillarsAdmissible(p), ps.Contains(a, b), "surname %d pair (%d,%d)", s, a, b)
			}
		}
	}
}

func TestOptimizer_PairsAreSortedAndAdmissible(t *testing.T) {
	o := NewOptimizer(nil)
	ps := o.PairSet(8)

	pairs := ps.Pairs()
	require.NotEmpty(t, pairs)
	assert.Equal(t, len(pairs), ps.Len())
	for i, pair := range pairs {
		if i > 0 {
			prev := pairs[i-1]
			assert.True(t, prev.First < pair.First || (prev.First == pair.First && prev.Second < pair.Second))
		}
		p, ok := o.Accepts(8, []int{pair.First, pair.Second})
		if pair.Second == 0 {
			p, ok = o.Accepts(8, []int{pair.First})
		}
		assert.True(t, ok)
		for _, n := range p.Values() {
			assert.Equal(t, domain.FortuneGreatLuck, domain.DefaultTables().Fortune(n))
		}
	}

	pairs[0] = domain.StrokePair{First: -1}
	assert.NotEqual(t, pairs[0], ps.Pairs()[0])
}

func TestOptimizer_KnownPair(t *testing.T) {
	o := NewOptimizer(nil)

	// 8 + (5, 8): won 13, hyeong 13, i 16, jeong 21
	p, ok := o.Accepts(8, []int{5, 8})
	assert.True(t, ok)
	assert.Equal(t, domain.FourPillars{Won: 13, Hyeong: 13, I: 16, Jeong: 21}, p)
	assert.True(t, o.PairSet(8).Contains(5, 8))

	// 8 + (11, 9): won 20 is unlucky
	_, ok = o.Accepts(8, []int{11, 9})
	assert.False(t, ok)
}

func TestOptimizer_AcceptsOutsideCache(t *testing.T) {
	o := NewOptimizer(nil)

	tests := []struct {
		name  string
		given []int
	}{
		{"three characters", []int{5, 6, 7}},
		{"four characters", []int{1, 2, 3, 4}},
		{"large strokes", []int{31, 2}},
		{"large single", []int{40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := o.Accepts(10, tt.given)
			direct, err := CalculatePillars([]int{10}, tt.given)
			require.NoError(t, err)
			assert.Equal(t, direct, p)
			assert.Equal(t, o.PillarsAdmissible(direct), ok)
		})
	}
}

func TestOptimizer_AcceptsInvalidLength(t *testing.T) {
	o := NewOptimizer(nil)

	_, ok := o.Accepts(8, nil)
	assert.False(t, ok)
	_, ok = o.Accepts(8, []int{1, 2, 3, 4, 5})
	assert.False(t, ok)
}

func TestOptimizer_ConcurrentPairSets(t *testing.T) {
	o := NewOptimizer(nil)

	var wg sync.WaitGroup
	results := make([]*PairSet, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = o.PairSet(12)
		}()
	}
	wg.Wait()

	for _, ps := range results {
		assert.Same(t, results[0], ps)
	}
	assert.Equal(t, []int{12}, o.CachedSurnames())

	fresh := NewOptimizer(nil)
	assert.Equal(t, fresh.PairSet(12).Pairs(), results[0].Pairs())
}
