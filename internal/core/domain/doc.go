// Package domain defines the core entities of the name-numerology engine.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CharacterRecord: dictionary data for one pronunciation/hanja pair
//   - NameComposition: surname and given-name blocks, possibly with wildcards
//   - BirthChart: the eight stem/branch characters of a birth moment
//   - FourPillars, PillarFortune: stroke numerology results
//   - NameEvaluation, ScoreBreakdown: the explainable evaluation of a name
//   - Tables: the immutable lookup tables shared by every evaluation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
