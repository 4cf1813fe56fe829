// Package combinatorics counts and enumerates arrangements and combinations
// of small index sets.
//
// Counting functions work on uint64 and report ErrOverflow instead of
// wrapping. Enumerators are driven by backtrack.Flexible: indices are
// states, a virtual root precedes index 0, and the traversal backtracks once
// a candidate holds r indices.
//
// Example:
//
//	_ = combinatorics.Subsets(4, 2, func(idx []int) bool {
//		fmt.Println(idx) // [0 1] [0 2] [0 3] [1 2] [1 3] [2 3]
//		return true
//	})
package combinatorics
