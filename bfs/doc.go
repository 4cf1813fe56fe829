// Package bfs provides breadth-first search over an implicit state space,
// returning the first node, in order of increasing path length, that
// satisfies a predicate.
//
// What
//
//   - The graph is described by a core.ChildGenerator; nothing is stored
//     beyond the frontier (FIFO) and the explored set, both keyed by state.
//   - FindNode(start, predicate, opts...) returns the terminal *core.PathNode
//     or nil when no node satisfies the predicate.
//   - FindPath(start, end, opts...) is sugar for FindNode with core.Equals(end)
//     and returns the root-to-end states, or an empty path.
//   - WithEdgeWeigher fills PathNode weights; BFS ignores them for ordering.
//
// Why
//
//   - A returned path is a fewest-edges path from start.
//   - Each state is expanded at most once, so cyclic graphs terminate when the
//     reachable space is finite, and always under core.WithMaxPathLength.
//
// Algorithm
//
//  1. Test the start node; return it if it satisfies the predicate.
//  2. Dequeue the oldest frontier node and mark its state explored.
//  3. For each child neither explored nor queued: build its node, return it if
//     it satisfies the predicate, otherwise enqueue it if it may be expanded.
//  4. An empty frontier means not found.
//
// Complexity (V = reachable states, E = generated edges)
//
//   - Time:   O(V + E) generator output, plus predicate cost
//   - Memory: O(V)
//
// Errors
//
//   - core.ErrNilChildGenerator from New.
//   - core.ErrNilPredicate, core.ErrNilState, core.ErrOptionViolation at call entry.
//   - Wrapped context errors when core.WithContext is cancelled.
//
// Usage
//
//	s, err := bfs.New(func(n int) []int { return []int{2 * n, 2*n + 1} })
//	if err != nil {
//		// handle core.ErrNilChildGenerator
//	}
//	path, err := s.FindPath(1, 7, core.WithMaxPathLength(5))
//	// path == [1 3 7]
package bfs
