package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"
)

// Components finds all contiguous regions (“islands”) of land cells
// according to the grid connectivity. Components are ordered by their first
// cell in row-major order; cells within a component are in breadth-first
// order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
//
// opts reach every underlying bfs call; a cancelled core.WithContext stops
// the labelling with a wrapped context error.
func (g *Grid) Components(opts ...core.Option) ([][]Point, error) {
	search, err := bfs.New(g.Children)
	if err != nil {
		return nil, fmt.Errorf("gridgraph: components: %w", err)
	}
	seen := make(map[Point]bool)
	var comps [][]Point

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := Point{X: x, Y: y}
			if seen[p] || !g.Land(p) {
				continue
			}
			var comp []Point
			// the predicate sees every reachable state exactly once
			_, err := search.FindNode(p, func(n *core.PathNode[Point]) bool {
				seen[n.State()] = true
				comp = append(comp, n.State())
				return false
			}, opts...)
			if err != nil {
				return nil, fmt.Errorf("gridgraph: components: %w", err)
			}
			comps = append(comps, comp)
		}
	}
	return comps, nil
}
