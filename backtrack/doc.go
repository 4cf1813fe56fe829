// Package backtrack implements memory-lean depth-first searches that keep no
// frontier and no explored set: only the current path is held in memory.
//
// What
//
//   - Searcher: plain backtracking. FindNode returns the first node (depth
//     first, in generator order) satisfying a predicate.
//   - Flexible: an open-ended traversal where a Decider chooses, for every
//     visited node including the start, one of:
//
//	Stop      abort the whole traversal and return this node
//	Continue  descend into the node's children
//	Backtrack skip the node's subtree and resume with its next sibling
//
// Why
//
//	Memory is O(depth) instead of O(reachable states). The price is that the
//	same state may be expanded many times via different paths, which suits
//	tree- or DAG-shaped spaces such as combinatorial enumeration.
//
// Cycles
//
//	A child already on the current path is skipped (PathNode.PathContains),
//	so cycles never recurse forever. When the caller can prove no path ever
//	repeats a state (e.g. strictly increasing indices) the O(depth) check can
//	be turned off with core.WithAssumeNoDuplicates().
//
// Termination
//
//	Plain and flexible backtracking terminate only if every path of the graph
//	is finite, or a finite core.WithMaxPathLength is given.
//
// Errors
//
//   - core.ErrNilChildGenerator from New and NewFlexible.
//   - core.ErrNilPredicate / core.ErrNilDecider, core.ErrNilState and
//     core.ErrOptionViolation at call entry.
//   - ErrUnknownOption when a Decider returns a value outside the three options.
package backtrack
