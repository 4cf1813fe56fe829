package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
)

// dfsWalker holds the frontier stack and explored set of one call.
type dfsWalker[S comparable] struct {
	s        *Searcher[S]
	opts     core.Options
	goal     core.Predicate[S]
	stack    []*core.PathNode[S]
	stacked  map[S]struct{}
	explored map[S]struct{}
	expanded int
}

// FindNode returns the first node satisfying goal in depth-first order, or nil.
func (s *Searcher[S]) FindNode(start S, goal core.Predicate[S], opts ...core.Option) (*core.PathNode[S], error) {
	if goal == nil {
		return nil, core.ErrNilPredicate
	}
	o, err := core.Apply(opts...)
	if err != nil {
		return nil, err
	}
	root, err := core.NewRoot(start)
	if err != nil {
		return nil, err
	}

	w := &dfsWalker[S]{
		s:        s,
		opts:     o,
		goal:     goal,
		stacked:  make(map[S]struct{}),
		explored: make(map[S]struct{}),
	}
	node, err := w.run(root)
	o.LogDone(algorithm, w.expanded, core.LengthOf(node))

	return node, err
}

// FindPath returns some path from start to end, or an empty path.
func (s *Searcher[S]) FindPath(start, end S, opts ...core.Option) ([]S, error) {
	if err := core.ValidateEndpoints(start, end); err != nil {
		return nil, err
	}
	node, err := s.FindNode(start, core.Equals(end), opts...)
	if err != nil {
		return nil, err
	}

	return core.PathOf(node), nil
}

func (w *dfsWalker[S]) run(root *core.PathNode[S]) (*core.PathNode[S], error) {
	if w.goal(root) {
		return root, nil
	}
	if !w.opts.Expandable(root.Length()) {
		return nil, nil
	}

	w.push(root)
	for len(w.stack) > 0 {
		if err := w.opts.Cancelled(); err != nil {
			return nil, fmt.Errorf("dfs: search cancelled: %w", err)
		}

		cur := w.pop()
		w.expanded++
		parent := cur.State()
		for _, child := range w.s.children(parent) {
			if w.seen(child) {
				continue
			}
			node := cur.Extend(child, w.s.weigh(parent, child))
			if w.goal(node) {
				return node, nil
			}
			if w.opts.Expandable(node.Length()) {
				w.push(node)
			}
		}
	}

	return nil, nil
}

func (w *dfsWalker[S]) push(n *core.PathNode[S]) {
	w.stacked[n.State()] = struct{}{}
	w.stack = append(w.stack, n)
}

// pop removes the top of the stack and marks its state explored.
func (w *dfsWalker[S]) pop() *core.PathNode[S] {
	last := len(w.stack) - 1
	n := w.stack[last]
	w.stack[last] = nil
	w.stack = w.stack[:last]
	delete(w.stacked, n.State())
	w.explored[n.State()] = struct{}{}

	return n
}

// seen reports whether state is explored or already on the stack.
func (w *dfsWalker[S]) seen(state S) bool {
	if _, ok := w.explored[state]; ok {
		return true
	}
	_, ok := w.stacked[state]

	return ok
}
