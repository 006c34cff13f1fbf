// Package combination provides a lazy cartesian-product iterator.
//
// A Generator walks one element from each input list in odometer order
// (the last position varies fastest) and hands every combination to an
// accept function. Only accepted combinations are yielded. The product is
// never materialized, so the caller controls how much of a large space is
// visited by how many times it pulls.
//
// # Import Rules
//
//   - Can Import: standard library only
//   - Cannot Import: anything else in this module
package combination
