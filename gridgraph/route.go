package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvlath/astar"
	"github.com/katalvlaran/lvlath/core"
)

// Route returns a fewest-steps path over land cells from one cell to
// another, found by A* with the grid's Estimate.
// Errors: ErrNotLand for a bad endpoint, ErrNoPath when the cells are not
// connected within the options' bounds, or a wrapped search error.
func (g *Grid) Route(from, to Point, opts ...core.Option) ([]Point, error) {
	if !g.Land(from) || !g.Land(to) {
		return nil, fmt.Errorf("%w: %v → %v", ErrNotLand, from, to)
	}
	search, err := astar.New(g.Children, core.UnitWeight[Point], g.Estimate(to))
	if err != nil {
		return nil, err
	}
	path, err := search.FindPath(from, to, opts...)
	if err != nil {
		return nil, fmt.Errorf("gridgraph: route %v → %v: %w", from, to, err)
	}
	if len(path) == 0 {
		return nil, ErrNoPath
	}

	return path, nil
}
