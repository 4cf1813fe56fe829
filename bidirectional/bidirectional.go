package bidirectional

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
)

// tree is one of the two breadth-first trees of a search call.
type tree[S comparable] struct {
	children core.ChildGenerator[S]
	weigh    core.EdgeWeigher[S]
	nodes    map[S]*core.PathNode[S] // every discovered state
	layer    []*core.PathNode[S]     // nodes of the deepest layer, in discovery order
	depth    int                     // Length() of the nodes in layer
}

func newTree[S comparable](root *core.PathNode[S], children core.ChildGenerator[S], weigh core.EdgeWeigher[S]) *tree[S] {
	return &tree[S]{
		children: children,
		weigh:    weigh,
		nodes:    map[S]*core.PathNode[S]{root.State(): root},
		layer:    []*core.PathNode[S]{root},
		depth:    root.Length(),
	}
}

// meeting pairs the forward and reverse nodes of one shared state.
type meeting[S comparable] struct {
	fwd, rev *core.PathNode[S]
	length   int // states on the stitched path
}

// search holds the mutable state of one call.
type search[S comparable] struct {
	s        *Searcher[S]
	opts     core.Options
	fwd, rev *tree[S]
	expanded int
}

// FindNode returns the last node of a fewest-edges path from start to end,
// or nil if the trees cannot meet within the path-length bound.
// Returns core.ErrNilState or core.ErrOptionViolation for invalid input,
// ErrRepairLength for a bad repair, and a wrapped context error on
// cancellation.
func (s *Searcher[S]) FindNode(start, end S, opts ...core.Option) (*core.PathNode[S], error) {
	if err := core.ValidateEndpoints(start, end); err != nil {
		return nil, err
	}
	o, err := core.Apply(opts...)
	if err != nil {
		return nil, err
	}
	from, err := core.NewRoot(start)
	if err != nil {
		return nil, err
	}
	if start == end {
		o.LogDone(algorithm, 0, from.Length())
		return from, nil
	}
	to, err := core.NewRoot(end)
	if err != nil {
		return nil, err
	}

	sr := &search[S]{
		s:    s,
		opts: o,
		fwd:  newTree(from, s.forward, s.weigh),
		// reverse edges are weighed in the forward direction
		rev: newTree(to, s.reverse, func(parent, child S) float64 { return s.weigh(child, parent) }),
	}
	node, err := sr.run()
	o.LogDone(algorithm, sr.expanded, core.LengthOf(node))

	return node, err
}

// FindPath returns a fewest-edges path from start to end, or an empty path.
func (s *Searcher[S]) FindPath(start, end S, opts ...core.Option) ([]S, error) {
	node, err := s.FindNode(start, end, opts...)
	if err != nil {
		return nil, err
	}

	return core.PathOf(node), nil
}

// run alternates forward and reverse layers until they meet, a tree runs
// out of states, or no further meeting could fit the path-length bound.
func (sr *search[S]) run() (*core.PathNode[S], error) {
	for {
		if node, done, err := sr.step(sr.fwd, sr.rev, true); done {
			return node, err
		}
		if node, done, err := sr.step(sr.rev, sr.fwd, false); done {
			return node, err
		}
	}
}

// step grows t by one layer. done reports that the search is over, with or
// without a result.
func (sr *search[S]) step(t, other *tree[S], forward bool) (node *core.PathNode[S], done bool, err error) {
	// every path of fewer than fwd.depth+rev.depth states has been seen
	if !sr.opts.Admissible(sr.fwd.depth+sr.rev.depth) || len(t.layer) == 0 {
		return nil, true, nil
	}
	m, err := sr.grow(t, other, forward)
	if err != nil {
		return nil, true, err
	}
	if m == nil {
		return nil, false, nil
	}
	node, err = sr.stitch(m)

	return node, true, err
}

// grow expands every node of t's deepest layer and returns the shortest
// meeting with other among the newly discovered states.
func (sr *search[S]) grow(t, other *tree[S], forward bool) (*meeting[S], error) {
	var (
		next []*core.PathNode[S]
		best *meeting[S]
	)
	for _, cur := range t.layer {
		if err := sr.opts.Cancelled(); err != nil {
			return nil, fmt.Errorf("bidirectional: search cancelled: %w", err)
		}
		sr.expanded++

		parent := cur.State()
		for _, child := range t.children(parent) {
			if _, seen := t.nodes[child]; seen {
				continue
			}
			node := cur.Extend(child, t.weigh(parent, child))
			t.nodes[child] = node
			next = append(next, node)

			match, ok := other.nodes[child]
			if !ok {
				continue
			}
			length := node.Length() + match.Length() - 1
			if best != nil && best.length <= length {
				continue
			}
			best = &meeting[S]{fwd: node, rev: match, length: length}
			if !forward {
				best.fwd, best.rev = match, node
			}
		}
	}
	t.layer = next
	t.depth++

	return best, nil
}

// stitch extends the forward meeting node with the reverse chain from the
// meeting state to the end. The reverse nodes are read, never relinked.
func (sr *search[S]) stitch(m *meeting[S]) (*core.PathNode[S], error) {
	chain := make([]*core.PathNode[S], 0, m.rev.Length())
	for n := m.rev; n != nil; n = n.Parent() {
		chain = append(chain, n)
	}
	segment := make([]S, len(chain))
	for i, n := range chain {
		segment[i] = n.State()
	}

	if sr.s.repair != nil && len(segment) > 1 {
		fixed := sr.s.repair(append([]S(nil), segment...))
		if len(fixed) != len(segment) {
			return nil, fmt.Errorf("%w: got %d states, want %d", ErrRepairLength, len(fixed), len(segment))
		}
		segment = fixed
	}

	cur := m.fwd
	for i := 1; i < len(segment); i++ {
		// chain[i-1].EdgeWeight() is the forward edge segment[i-1] → segment[i]
		cur = cur.Extend(segment[i], chain[i-1].EdgeWeight())
	}

	return cur, nil
}
