// Package gridgraph treats a 2D grid of integer cells as an implicit state
// space, enabling component analysis, minimal-cost “island” expansions and
// point-to-point routing with the search packages of lvlath.
//
// What:
//
//   - Grid wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - Point is the state type; Children yields land neighbors, Neighbors all
//     in-bounds neighbors.
//   - Components finds connected “islands” of land cells (bfs).
//   - ExpandIsland finds the fewest water conversions joining two islands
//     (leastweight with a virtual multi-source root).
//   - Route finds a shortest land route between two cells (astar with a
//     Manhattan or Chebyshev estimate).
//
// Complexity:
//
//   - Components:   O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ExpandIsland: O(W×H×d × log(W×H×d)), Memory: O(W×H×d).
//   - Route:        O(W×H×d × log(W×H×d)) worst case.
//
// Options:
//
//   - Options.LandThreshold: minimum value considered "land".
//   - Options.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNotLand: a route endpoint is outside the grid or not land.
//   - ErrNoPath: no path exists between the requested cells or components.
package gridgraph
