// Package lvlath is a toolkit for searching implicit state spaces: graphs
// that are never stored, only described by a function from a state to its
// successors.
//
// 🚀 What is in the box?
//
//	• core/          : PathNode, the graph callbacks, per-call Options & sentinel errors
//	• bfs/, dfs/     : uninformed traversal with a FIFO / LIFO frontier
//	• backtrack/     : memory-light backtracking and Decider-driven flexible traversal
//	• leastweight/   : uniform-cost (goal-directed Dijkstra) search
//	• astar/         : A* with caller heuristics (Manhattan helper included)
//	• bidirectional/ : layered bidirectional BFS with immutable path stitching
//	• pqueue/        : generic min-priority queue with FIFO ties
//	• combinatorics/ : nPr, nCr and enumerators built on flexible backtracking
//	• gridgraph/     : 2D grids as state spaces: islands, causeways, routes
//
// ✨ Shared contract
//
//   - Every search takes a start state and a Predicate, and returns the
//     *core.PathNode that satisfied it, or nil when none is reachable.
//   - FindPath(start, end) is sugar returning []S; not found is an empty path.
//   - core.WithMaxPathLength bounds every path, core.WithContext cancels,
//     core.WithLogger receives one Debug entry per finished search.
//   - Invalid input is reported at call entry with sentinel errors.
//
// Quick example:
//
//	s, _ := bfs.New(func(n int) []int { return []int{n * 2, n + 1} })
//	path, _ := s.FindPath(3, 7) // [3 6 7]
//
//	go get github.com/katalvlaran/lvlath
package lvlath
