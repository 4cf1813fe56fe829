package astar_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath/astar"
	"github.com/katalvlaran/lvlath/core"
)

// ExampleManhattan walks a 4-connected open grid.
func ExampleManhattan() {
	type pos struct{ x, y int }
	children := func(p pos) []pos {
		return []pos{{p.x + 1, p.y}, {p.x, p.y + 1}, {p.x - 1, p.y}, {p.x, p.y - 1}}
	}
	goal := pos{3, 2}
	h := astar.Manhattan(goal, func(p pos) (int, int) { return p.x, p.y }, 1)

	s, err := astar.New(children, core.UnitWeight[pos], h)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	node, _ := s.FindNode(pos{0, 0}, core.Equals(goal))
	fmt.Println(node.Weight(), node.Length())
	// Output:
	// 5 6
}
