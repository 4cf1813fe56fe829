package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
)

// walker encapsulates the mutable state of one search call.
type walker[S comparable] struct {
	s        *Searcher[S]
	opts     core.Options
	goal     core.Predicate[S]
	queue    []*core.PathNode[S]
	queued   map[S]struct{}
	explored map[S]struct{}
	expanded int
}

// FindNode returns the first node satisfying goal in breadth-first order,
// or nil if none exists within the reachable space and path-length bound.
// Returns core.ErrNilPredicate, core.ErrNilState or core.ErrOptionViolation
// for invalid input, and a wrapped context error on cancellation.
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

	w := &walker[S]{
		s:        s,
		opts:     o,
		goal:     goal,
		queued:   make(map[S]struct{}),
		explored: make(map[S]struct{}),
	}
	node, err := w.run(root)
	o.LogDone(algorithm, w.expanded, core.LengthOf(node))

	return node, err
}

// FindPath returns the fewest-edges path from start to end, or an empty path.
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

// run tests the root, then drains the FIFO frontier.
func (w *walker[S]) run(root *core.PathNode[S]) (*core.PathNode[S], error) {
	if w.goal(root) {
		return root, nil
	}
	if !w.opts.Expandable(root.Length()) {
		return nil, nil
	}

	w.enqueue(root)
	for len(w.queue) > 0 {
		// cancellation check (once per expansion)
		if err := w.opts.Cancelled(); err != nil {
			return nil, fmt.Errorf("bfs: search cancelled: %w", err)
		}

		cur := w.dequeue()
		if found := w.expand(cur); found != nil {
			return found, nil
		}
	}

	return nil, nil
}

func (w *walker[S]) enqueue(n *core.PathNode[S]) {
	w.queued[n.State()] = struct{}{}
	w.queue = append(w.queue, n)
}

// dequeue pops the oldest node and marks its state explored.
func (w *walker[S]) dequeue() *core.PathNode[S] {
	n := w.queue[0]
	w.queue[0] = nil
	w.queue = w.queue[1:]
	delete(w.queued, n.State())
	w.explored[n.State()] = struct{}{}

	return n
}

// expand generates the children of cur and returns the first one that
// satisfies the predicate. Other unseen children are enqueued if expandable.
func (w *walker[S]) expand(cur *core.PathNode[S]) *core.PathNode[S] {
	w.expanded++
	parent := cur.State()
	for _, child := range w.s.children(parent) {
		if _, seen := w.explored[child]; seen {
			continue
		}
		if _, seen := w.queued[child]; seen {
			continue
		}

		node := cur.Extend(child, w.s.weigh(parent, child))
		if w.goal(node) {
			return node
		}
		if w.opts.Expandable(node.Length()) {
			w.enqueue(node)
		}
	}

	return nil
}
