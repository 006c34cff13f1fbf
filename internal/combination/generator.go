package combination

import (
	"iter"
)

// Accept decides whether a combination is yielded. It must not retain the
// slice it is given; the generator reuses it.
type Accept[T any] func(combo []T) bool

// Generator is a pull-driven cartesian product over lists. It is not safe
// for concurrent use.
type Generator[T any] struct {
	lists   [][]T
	accept  Accept[T]
	indices []int
	scratch []T
	started bool
	done    bool
}

// New creates a generator over lists. A nil accept yields every combination.
// An empty lists slice, or an empty list at any position, yields nothing.
func New[T any](lists [][]T, accept Accept[T]) *Generator[T] {
	g := &Generator[T]{
		lists:   lists,
		accept:  accept,
		indices: make([]int, len(lists)),
		scratch: make([]T, len(lists)),
	}
	if len(lists) == 0 {
		g.done = true
	}
	for _, l := range lists {
		if len(l) == 0 {
			g.done = true
		}
	}
	return g
}

// Next returns the next accepted combination as a fresh slice. ok is false
// once the product is exhausted.
func (g *Generator[T]) Next() ([]T, bool) {
	for !g.done {
		if g.started {
			if !g.advance() {
				g.done = true
				return nil, false
			}
		}
		g.started = true

		for i, idx := range g.indices {
			g.scratch[i] = g.lists[i][idx]
		}
		if g.accept == nil || g.accept(g.scratch) {
			return append([]T(nil), g.scratch...), true
		}
	}
	return nil, false
}

// advance moves the odometer one step. It reports false after the last
// combination.
func (g *Generator[T]) advance() bool {
	for i := len(g.indices) - 1; i >= 0; i-- {
		g.indices[i]++
		if g.indices[i] < len(g.lists[i]) {
			return true
		}
		g.indices[i] = 0
	}
	return false
}

// Done reports whether the generator is exhausted.
func (g *Generator[T]) Done() bool {
	return g.done
}

// All returns an iterator over the remaining accepted combinations.
// Breaking out of the range loop stops the walk; a later Next resumes
// after the last yielded combination.
func (g *Generator[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for {
			combo, ok := g.Next()
			if !ok || !yield(combo) {
				return
			}
		}
	}
}

// Size returns the number of combinations in the full product, accepted or
// not.
func Size[T any](lists [][]T) int {
	if len(lists) == 0 {
		return 0
	}
	n := 1
	for _, l := range lists {
		n *= len(l)
	}
	return n
}
