// Package numerology implements the name-evaluation engine.
//
// Everything here is pure computation over the shared, immutable
// domain.Tables: no I/O and no blocking. The pieces are:
//
//   - pillars.go: four-pillar stroke numerology (won, hyeong, i, jeong)
//   - relation.go: five-element relations, arrangement and balance scores,
//     harmony filters
//   - classify.go, hangul.go: element and yin-yang distributions for the
//     birth chart, strokes, pronunciation and the combined view
//   - scorer.go: the composite score and its rationale
//   - optimizer.go: admissible stroke numbers and memoized stroke pairs
//   - engine.go: Evaluate, tying the above together
//
// # Import Rules
//
//   - Can Import: domain package, golang.org/x/text
//   - Cannot Import: ports, services or adapters
package numerology
