package gridgraph

import (
	"github.com/katalvlaran/lvlath/astar"
	"github.com/katalvlaran/lvlath/core"
)

// virtual is the off-grid root used for multi-source searches.
var virtual = Point{X: -1, Y: -1}

var (
	offsets4 = []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(values [][]int, opts Options) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([][]int, h)
	for y, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells[y] = append([]int(nil), row...)
	}

	g := &Grid{Width: w, Height: h, opts: opts, cells: cells, offsets: offsets4}
	if opts.Conn == Conn8 {
		g.offsets = offsets8
	}

	return g, nil
}

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Value returns the cell value at p. p must be in bounds.
func (g *Grid) Value(p Point) int { return g.cells[p.Y][p.X] }

// Land reports whether p is in bounds and at least LandThreshold.
func (g *Grid) Land(p Point) bool {
	return g.InBounds(p) && g.cells[p.Y][p.X] >= g.opts.LandThreshold
}

// Neighbors returns the in-bounds neighbors of p in offset order
// (clockwise from north).
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(g.offsets))
	for _, d := range g.offsets {
		n := Point{X: p.X + d.X, Y: p.Y + d.Y}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Children returns the land neighbors of p. It is the ChildGenerator of
// land-only searches.
func (g *Grid) Children(p Point) []Point {
	out := make([]Point, 0, len(g.offsets))
	for _, n := range g.Neighbors(p) {
		if g.Land(n) {
			out = append(out, n)
		}
	}
	return out
}

// Estimate returns an admissible unit-step heuristic towards goal:
// Manhattan distance for Conn4 and Chebyshev distance for Conn8.
func (g *Grid) Estimate(goal Point) core.Heuristic[Point] {
	if g.opts.Conn == Conn8 {
		return func(p Point) float64 {
			return float64(max(abs(p.X-goal.X), abs(p.Y-goal.Y)))
		}
	}
	return astar.Manhattan(goal, xy, 1)
}

func xy(p Point) (int, int) { return p.X, p.Y }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
