package combinatorics

import (
	"fmt"

	"github.com/katalvlaran/lvlath/backtrack"
	"github.com/katalvlaran/lvlath/core"
)

// root is the virtual state preceding the first chosen index.
const root = -1

// Visitor receives one arrangement or combination. The slice is owned by the
// visitor. Returning false ends the enumeration.
type Visitor func(indices []int) bool

// Arrangements visits every ordered selection of r distinct indices from
// 0 … n-1 in lexicographic order.
func Arrangements(n, r int, visit Visitor, opts ...core.Option) error {
	children := func(int) []int { return indexRange(0, n) }
	// the current-path check rejects repeated indices
	return enumerate(n, r, children, visit, opts)
}

// Subsets visits every r-element subset of 0 … n-1 as strictly increasing
// indices, in lexicographic order.
func Subsets(n, r int, visit Visitor, opts ...core.Option) error {
	children := func(last int) []int { return indexRange(last+1, n) }
	// increasing children never repeat a state on the path
	opts = append(opts[:len(opts):len(opts)], core.WithAssumeNoDuplicates())
	return enumerate(n, r, children, visit, opts)
}

func enumerate(n, r int, children core.ChildGenerator[int], visit Visitor, opts []core.Option) error {
	if n < 0 || r < 0 || r > n {
		return fmt.Errorf("%w: n=%d r=%d", ErrBadRange, n, r)
	}
	if visit == nil {
		return core.ErrNilPredicate
	}
	walk, err := backtrack.NewFlexible(children)
	if err != nil {
		return err
	}

	// caller options first so the depth bound wins
	opts = append(opts[:len(opts):len(opts)], core.WithMaxPathLength(r+1))
	_, err = walk.Search(root, func(node *core.PathNode[int]) backtrack.NodeOption {
		if node.Length()-1 < r {
			return backtrack.Continue
		}
		if !visit(node.Path()[1:]) {
			return backtrack.Stop
		}
		return backtrack.Backtrack
	}, opts...)

	return err
}

func indexRange(from, to int) []int {
	if from >= to {
		return nil
	}
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}
