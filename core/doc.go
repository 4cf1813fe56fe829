// Package core defines the shared building blocks of every search in lvlath:
// the PathNode type, the graph contracts callers implement, and the search
// Options understood by all algorithms.
//
// What
//
//   - PathNode[S] wraps a caller state with a link to its parent node and the
//     cumulative path length (root = 1) and weight (root = initial weight).
//   - ChildGenerator, EdgeWeigher, Predicate and Heuristic are the only way an
//     algorithm observes the graph. No adjacency list is ever stored.
//   - Options carries the per-call knobs: context, maximum path length,
//     logger, and the backtracking duplicate-check opt-out.
//
// Equality
//
//	Two PathNodes are equal when their states are equal (Go ==), regardless
//	of the path that produced them. Explored sets and frontiers are keyed by
//	state, so the same state reached by two different paths collapses into
//	one entry. States must therefore be comparable and a ChildGenerator must
//	hand back equal values for the same graph position.
//
// Path trees
//
//	Children point at their parents, parents never track their children.
//	Every search builds a tree rooted at its start state; many nodes may share
//	a parent. Nodes are never mutated after construction.
//
// Path length bound
//
//	WithMaxPathLength(n) bounds the number of states in any path a search will
//	consider: a node with Length() > n is never tested, a node with
//	Length() >= n is never expanded. The start state is always tested, so
//	n == 0 (like n == 1) returns the start node if it satisfies the predicate
//	and never calls the ChildGenerator. The default is Unbounded.
//
// Errors
//
//   - ErrNilChildGenerator, ErrNilPredicate, ErrNilWeigher, ErrNilHeuristic,
//     ErrNilDecider: a required callback is missing.
//   - ErrNilState, ErrNilParent: PathNode construction with missing input.
//   - ErrOptionViolation: an invalid Option (e.g. negative path length).
//
// Not finding a path is not an error: searches return a nil node or an empty
// path.
package core
