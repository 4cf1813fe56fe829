// Package bidirectional implements bidirectional breadth-first search between
// two known states of an implicit graph.
//
// Two breadth-first trees grow at once: a forward tree from the start using
// the forward ChildGenerator, and a reverse tree from the end using a reverse
// ChildGenerator that yields the predecessors of a state. For undirected
// graphs both generators are the same function (see NewUndirected).
//
// Growth is layered. Each round expands the whole forward layer and then the
// whole reverse layer. Every newly discovered state is checked against the
// states discovered by the opposite tree; among the meetings found while
// expanding one layer the one with the fewest combined states wins, so the
// returned path has the fewest edges.
//
// Stitching
//
//	The reverse tree is never modified. The result is a fresh chain that
//	extends the forward meeting node with the reverse chain's states from the
//	meeting state to the end. Edge weights are taken from the cumulative
//	weights stored in the reverse chain; reverse edges are weighed in the
//	forward direction, weigh(predecessor, successor).
//
//	WithRepair installs a callback that sees the reversed segment before it
//	is appended, for domains whose states carry direction-dependent data.
//
// Complexity: O(b^(d/2)) time and space for branching factor b and
// shortest-path depth d.
//
// Errors:
//
//   - core.ErrNilChildGenerator from New and NewUndirected.
//   - core.ErrNilState, core.ErrOptionViolation at call entry.
//   - ErrRepairLength when a repair callback changes the segment length.
package bidirectional
