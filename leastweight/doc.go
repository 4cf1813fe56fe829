// Package leastweight implements least-weight-path search (uniform-cost
// search, the goal-directed form of Dijkstra's algorithm) over an implicit
// weighted state space.
//
// Nodes are explored in order of increasing cumulative path weight using a
// min-priority frontier. The first popped node that satisfies the predicate
// ends a least-weight path, provided no negative edge weight is reachable
// from the start. Negative weights are a documented precondition and are not
// checked.
//
// Complexity (V = reachable states, E = generated edges):
//
//   - Time:  O((V + E) log E); each state is expanded at most once, each
//     improving edge pushes one frontier entry (lazy decrease-key).
//   - Space: O(V + E) for the explored set and frontier.
//
// Equal priorities are popped in insertion order.
//
// Errors:
//
//   - core.ErrNilChildGenerator, core.ErrNilWeigher from New.
//   - core.ErrNilPredicate, core.ErrNilState, core.ErrOptionViolation at call entry.
//
// Example:
//
//	s, _ := leastweight.New(roads.Children, roads.Minutes)
//	node, _ := s.FindNode("Depot", core.Equals("Station"))
//	fmt.Println(node.Path(), node.Weight())
package leastweight
