package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/leastweight"
)

// ExpandIsland finds a minimum-conversion path of water cells joining any
// cell of component src to any cell of component dst, as numbered by
// Components. Entering a water cell costs 1, entering land costs 0.
// Returns the path including the start and end land cells and the number of
// water cells on it.
//
// Behavior:
//  1. Validate component indices.
//  2. Least-weight search from a virtual root whose children are all src cells.
//  3. Stop at the first popped cell of dst.
//
// Errors: ErrComponentIndex, ErrNoPath, or a wrapped search error.
func (g *Grid) ExpandIsland(src, dst int, opts ...core.Option) (path []Point, cost int, err error) {
	comps, err := g.Components(opts...)
	if err != nil {
		return nil, 0, err
	}
	if src < 0 || src >= len(comps) || dst < 0 || dst >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	targets := make(map[Point]struct{}, len(comps[dst]))
	for _, p := range comps[dst] {
		targets[p] = struct{}{}
	}

	children := func(p Point) []Point {
		if p == virtual {
			return comps[src]
		}
		return g.Neighbors(p)
	}
	search, err := leastweight.New(children, g.conversionCost)
	if err != nil {
		return nil, 0, err
	}
	node, err := search.FindNode(virtual, func(n *core.PathNode[Point]) bool {
		_, ok := targets[n.State()]
		return ok
	}, opts...)
	if err != nil {
		return nil, 0, fmt.Errorf("gridgraph: expand island %d→%d: %w", src, dst, err)
	}
	if node == nil {
		return nil, 0, ErrNoPath
	}

	return node.Path()[1:], int(node.Weight()), nil
}

// conversionCost is the EdgeWeigher of ExpandIsland.
func (g *Grid) conversionCost(from, to Point) float64 {
	if from == virtual || g.Land(to) {
		return 0
	}
	return 1
}
