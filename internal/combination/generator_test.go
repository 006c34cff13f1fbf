package combination

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[T any](g *Generator[T]) [][]T {
	var out [][]T
	for combo := range g.All() {
		out = append(out, combo)
	}
	return out
}

func TestGenerator_OdometerOrder(t *testing.T) {
	g := New([][]int{{1, 2}, {10, 20, 30}}, nil)

	got := collect(g)

	assert.Equal(t, [][]int{
		{1, 10}, {1, 20}, {1, 30},
		{2, 10}, {2, 20}, {2, 30},
	}, got)
	assert.True(t, g.Done())
}

func TestGenerator_AcceptFilters(t *testing.T) {
	even := func(c []int) bool { return (c[0]+c[1])%2 == 0 }
	g := New([][]int{{1, 2, 3}, {1, 2, 3}}, even)

	got := collect(g)

	require.Len(t, got, 5)
	for _, c := range got {
		assert.Zero(t, (c[0]+c[1])%2)
	}
}

func TestGenerator_EmptyInputsYieldNothing(t *testing.T) {
	tests := []struct {
		name  string
		lists [][]string
	}{
		{"no lists", nil},
		{"first empty", [][]string{{}, {"a"}}},
		{"last empty", [][]string{{"a", "b"}, {}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.lists, nil)
			_, ok := g.Next()
			assert.False(t, ok)
			assert.True(t, g.Done())
		})
	}
}

func TestGenerator_SingleList(t *testing.T) {
	g := New([][]string{{"a", "b", "c"}}, nil)
	assert.Equal(t, [][]string{{"a"}, {"b"}, {"c"}}, collect(g))
}

func TestGenerator_NextAfterExhaustion(t *testing.T) {
	g := New([][]int{{1}}, nil)

	first, ok := g.Next()
	require.True(t, ok)
	assert.Equal(t, []int{1}, first)

	for range 3 {
		_, ok = g.Next()
		assert.False(t, ok)
	}
}

func TestGenerator_YieldedSlicesAreIndependent(t *testing.T) {
	g := New([][]int{{1, 2}, {3}}, nil)

	a, _ := g.Next()
	b, _ := g.Next()
	a[0] = 99

	assert.Equal(t, []int{2, 3}, b)
}

func TestGenerator_EarlyStopAndResume(t *testing.T) {
	g := New([][]int{{1, 2, 3}, {1, 2}}, nil)

	var seen [][]int
	for combo := range g.All() {
		seen = append(seen, combo)
		if len(seen) == 2 {
			break
		}
	}
	require.Len(t, seen, 2)
	assert.False(t, g.Done())

	next, ok := g.Next()
	require.True(t, ok)
	assert.Equal(t, []int{2, 1}, next)
}

func TestGenerator_AcceptIsCalledLazily(t *testing.T) {
	calls := 0
	g := New([][]int{{1, 2, 3, 4}, {1, 2, 3, 4}}, func([]int) bool {
		calls++
		return true
	})

	_, ok := g.Next()
	require.True(t, ok)
	assert.Equal(t, 1, calls)
}

func TestGenerator_VisitsWholeProduct(t *testing.T) {
	lists := [][]int{{1, 2, 3}, {4, 5}, {6, 7, 8, 9}}
	visited := 0
	g := New(lists, func([]int) bool {
		visited++
		return false
	})

	assert.Empty(t, collect(g))
	assert.Equal(t, Size(lists), visited)
	assert.Equal(t, 24, visited)
}

func TestGenerator_NoDuplicates(t *testing.T) {
	g := New([][]int{{1, 2, 3}, {1, 2, 3}, {1, 2}}, nil)

	got := collect(g)
	for i := range got {
		for j := i + 1; j < len(got); j++ {
			assert.False(t, slices.Equal(got[i], got[j]), "duplicate %v", got[i])
		}
	}
	assert.Len(t, got, 18)
}

func TestSize(t *testing.T) {
	assert.Equal(t, 0, Size[int](nil))
	assert.Equal(t, 0, Size([][]int{{1}, {}}))
	assert.Equal(t, 6, Size([][]int{{1, 2}, {1, 2, 3}}))
}
