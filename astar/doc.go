// Package astar implements A* search over an implicit weighted state space.
//
// A* is least-weight-path search whose frontier is ordered by
//
//	f(n) = g(n) + h(n)
//
// where g is the cumulative path weight of node n and h a caller-supplied
// estimate of the weight remaining from n's state to the goal.
//
// Optimality
//
//	The returned path has least weight when edge weights are non-negative and
//	h is admissible (never overestimates) and consistent
//	(h(u) <= w(u,v) + h(v) for every edge). With a consistent h every state is
//	expanded at most once, and the result equals leastweight's.
//	A zero heuristic turns A* into least-weight search.
//
// Errors
//
//   - core.ErrNilChildGenerator, core.ErrNilWeigher, core.ErrNilHeuristic from New.
//   - core.ErrNilPredicate, core.ErrNilState, core.ErrOptionViolation at call entry.
package astar
