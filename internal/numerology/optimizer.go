package numerology

import (
	"sort"
	"sync"

	"github.com/custodia-labs/ireum-cli/internal/core/domain"
)

// Stroke ranges covered by the per-surname pair cache.
const (
	MaxPairStrokes  = 30
	minFirstStroke  = 1
	minSecondStroke = 0
)

// PairSet is the memoized set of admissible given-name stroke pairs for one
// surname stroke total. It is immutable once built.
type PairSet struct {
	surnameTotal int
	pairs        []domain.StrokePair
	index        map[domain.StrokePair]struct{}
}

// SurnameTotal returns the surname stroke total the set was built for.
func (ps *PairSet) SurnameTotal() int {
	return ps.surnameTotal
}

// Contains reports whether (first, second) is admissible.
func (ps *PairSet) Contains(first, second int) bool {
	_, ok := ps.index[domain.StrokePair{First: first, Second: second}]
	return ok
}

// Pairs returns a copy of the admissible pairs sorted by first, then second.
func (ps *PairSet) Pairs() []domain.StrokePair {
	return append([]domain.StrokePair(nil), ps.pairs...)
}

// Len returns the number of admissible pairs.
func (ps *PairSet) Len() int {
	return len(ps.pairs)
}

// Optimizer prunes candidate search with precomputed admissible stroke
// numbers and per-surname stroke pairs. Both caches are append-only and
// filled compute-if-absent; concurrent callers may build the same entry
// twice, which is harmless because the result is identical.
type Optimizer struct {
	tables         *domain.Tables
	includeNeutral bool
	admissible     func() [domain.MaxStrokeNumber + 1]bool
	pairs          sync.Map // int -> *PairSet
}

// OptimizerOption configures the optimizer.
type OptimizerOption func(*Optimizer)

// WithNeutral also admits numbers of the plain luck tier.
func WithNeutral(include bool) OptimizerOption {
	return func(o *Optimizer) {
		o.includeNeutral = include
	}
}

// NewOptimizer creates an optimizer. Nil tables use domain.DefaultTables.
func NewOptimizer(tables *domain.Tables, opts ...OptimizerOption) *Optimizer {
	if tables == nil {
		tables = domain.DefaultTables()
	}
	o := &Optimizer{tables: tables}
	for _, opt := range opts {
		opt(o)
	}
	o.admissible = sync.OnceValue(o.buildAdmissible)
	return o
}

func (o *Optimizer) buildAdmissible() [domain.MaxStrokeNumber + 1]bool {
	var set [domain.MaxStrokeNumber + 1]bool
	for n := 1; n <= domain.MaxStrokeNumber; n++ {
		switch o.tables.Fortune(n) {
		case domain.FortuneGreatLuck:
			set[n] = true
		case domain.FortuneLuck:
			set[n] = o.includeNeutral
		}
	}
	return set
}

// Admissible reports whether an adjusted pillar number is admissible.
func (o *Optimizer) Admissible(n int) bool {
	if n < 1 || n > domain.MaxStrokeNumber {
		return false
	}
	return o.admissible()[n]
}

// AdmissibleNumbers lists the admissible numbers in 1..81.
func (o *Optimizer) AdmissibleNumbers() []int {
	set := o.admissible()
	var out []int
	for n := 1; n <= domain.MaxStrokeNumber; n++ {
		if set[n] {
			out = append(out, n)
		}
	}
	return out
}

// PillarsAdmissible reports whether all four pillars are admissible.
func (o *Optimizer) PillarsAdmissible(p domain.FourPillars) bool {
	for _, n := range p.Values() {
		if !o.Admissible(n) {
			return false
		}
	}
	return true
}

// PairSet returns the admissible stroke pairs for a surname stroke total,
// computing and caching them on first use.
func (o *Optimizer) PairSet(surnameTotal int) *PairSet {
	if cached, ok := o.pairs.Load(surnameTotal); ok {
		return cached.(*PairSet)
	}
	actual, _ := o.pairs.LoadOrStore(surnameTotal, o.buildPairSet(surnameTotal))
	return actual.(*PairSet)
}

// CachedSurnames returns the surname totals with a cached pair set.
func (o *Optimizer) CachedSurnames() []int {
	var out []int
	o.pairs.Range(func(key, _ any) bool {
		out = append(out, key.(int))
		return true
	})
	sort.Ints(out)
	return out
}

func (o *Optimizer) buildPairSet(surnameTotal int) *PairSet {
	ps := &PairSet{
		surnameTotal: surnameTotal,
		index:        make(map[domain.StrokePair]struct{}),
	}
	surname := []int{surnameTotal}
	for first := minFirstStroke; first <= MaxPairStrokes; first++ {
		for second := minSecondStroke; second <= MaxPairStrokes; second++ {
			given := []int{first, second}
			if second == 0 {
				given = []int{first}
			}
			p, err := CalculatePillars(surname, given)
			if err != nil || !o.PillarsAdmissible(p) {
				continue
			}
			pair := domain.StrokePair{First: first, Second: second}
			ps.pairs = append(ps.pairs, pair)
			ps.index[pair] = struct{}{}
		}
	}
	return ps
}

// Accepts reports whether a given name with these stroke counts yields all
// admissible pillars under the surname total. One- and two-character given
// names within the cached range are answered from the pair set; longer names
// or larger strokes are evaluated directly.
func (o *Optimizer) Accepts(surnameTotal int, given []int) (domain.FourPillars, bool) {
	p, err := CalculatePillars([]int{surnameTotal}, given)
	if err != nil {
		return domain.FourPillars{}, false
	}
	if pair, ok := cacheablePair(given); ok {
		return p, o.PairSet(surnameTotal).Contains(pair.First, pair.Second)
	}
	return p, o.PillarsAdmissible(p)
}

func cacheablePair(given []int) (domain.StrokePair, bool) {
	var pair domain.StrokePair
	switch len(given) {
	case 1:
		pair = domain.StrokePair{First: given[0]}
	case 2:
		pair = domain.StrokePair{First: given[0], Second: given[1]}
	default:
		return pair, false
	}
	if pair.First < minFirstStroke || pair.First > MaxPairStrokes ||
		pair.Second < minSecondStroke || pair.Second > MaxPairStrokes {
		return pair, false
	}
	return pair, true
}
