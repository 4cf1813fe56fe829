// Package testgraph provides the implicit graphs shared by the search tests:
// small closed-form generators (chains, trees, cycles) and adjacency fixtures
// decoded from YAML files under testdata/.
package testgraph

import (
	"github.com/katalvlaran/lvlath/core"
)

// Edgeless has no edges at all.
func Edgeless[S comparable]() core.ChildGenerator[S] {
	return func(S) []S { return nil }
}

// OnePath is the infinite chain 1 → 2 → 3 → …
func OnePath() core.ChildGenerator[int] {
	return func(s int) []int { return []int{s + 1} }
}

// Finite is the chain … → max-1 → max; max has no children.
func Finite(max int) core.ChildGenerator[int] {
	return func(s int) []int {
		if s < max {
			return []int{s + 1}
		}
		return nil
	}
}

// Undirected is the chain lo – … – hi walked in both directions.
func Undirected(lo, hi int) core.ChildGenerator[int] {
	return func(s int) []int {
		out := make([]int, 0, 2)
		if s > lo {
			out = append(out, s-1)
		}
		if s < hi {
			out = append(out, s+1)
		}
		return out
	}
}

// BinaryTree gives n the children 2n and 2n+1.
//
//	    1
//	  2   3
//	 4 5 6 7
func BinaryTree() core.ChildGenerator[int] {
	return func(s int) []int { return []int{2 * s, 2*s + 1} }
}

// Cycle is n → (n+1) mod k.
func Cycle(k int) core.ChildGenerator[int] {
	return func(s int) []int { return []int{(s + 1) % k} }
}

// TwoPaths is a DAG with a short odd route and a long even route from 1 to 7.
// Children of 1 are listed odd-first so DFS takes the short route.
//
//	  2 -- 4 -- 6
//	 /           \
//	1             7
//	 \           /
//	  3 ------- 5
func TwoPaths() core.ChildGenerator[int] {
	return func(s int) []int {
		switch s {
		case 1:
			return []int{3, 2}
		case 2:
			return []int{4}
		case 3:
			return []int{5}
		case 4:
			return []int{6}
		case 5, 6:
			return []int{7}
		default:
			return nil
		}
	}
}

// ReverseTwoPaths is the reverse generator of TwoPaths.
func ReverseTwoPaths() core.ChildGenerator[int] {
	return func(s int) []int {
		switch s {
		case 7:
			return []int{5, 6}
		case 6:
			return []int{4}
		case 5:
			return []int{3}
		case 4:
			return []int{2}
		case 3, 2:
			return []int{1}
		default:
			return nil
		}
	}
}

// Counter wraps a ChildGenerator and counts its invocations per state.
type Counter[S comparable] struct {
	next  core.ChildGenerator[S]
	Calls map[S]int
	Total int
}

// Count wraps next in a Counter.
func Count[S comparable](next core.ChildGenerator[S]) *Counter[S] {
	return &Counter[S]{next: next, Calls: make(map[S]int)}
}

// Children is the counting ChildGenerator.
func (c *Counter[S]) Children(s S) []S {
	c.Calls[s]++
	c.Total++
	return c.next(s)
}

// MaxCalls returns the largest per-state invocation count.
func (c *Counter[S]) MaxCalls() int {
	m := 0
	for _, n := range c.Calls {
		if n > m {
			m = n
		}
	}
	return m
}
