// Package bestfirst is the priority-frontier engine shared by the leastweight
// and astar packages: a lazy-decrease-key uniform-cost search whose priority
// is the cumulative path weight plus an optional estimate of the remaining
// weight.
package bestfirst

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/pqueue"
)

// Engine holds the callbacks of one weighted search.
type Engine[S comparable] struct {
	Name     string
	Children core.ChildGenerator[S]
	Weigh    core.EdgeWeigher[S]
	// Estimate is nil for least-weight search.
	Estimate core.Heuristic[S]
}

// best is the lightest known node for a state that is still on the frontier.
type best struct {
	weight float64
	length int
}

// run holds the per-call frontier, explored set and best-known weights.
type run[S comparable] struct {
	e        *Engine[S]
	opts     core.Options
	goal     core.Predicate[S]
	frontier *pqueue.Queue[*core.PathNode[S]]
	best     map[S]best
	// explored maps a state to the shortest length it was expanded at.
	explored map[S]int
	expanded int
}

// FindNode pops nodes in order of priority and returns the first one that
// satisfies goal. Under non-negative edge weights (and, for A*, an admissible
// and consistent estimate) that node ends a least-weight path.
func (e *Engine[S]) FindNode(start S, goal core.Predicate[S], opts ...core.Option) (*core.PathNode[S], error) {
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

	r := &run[S]{
		e:        e,
		opts:     o,
		goal:     goal,
		frontier: pqueue.New[*core.PathNode[S]](),
		best:     map[S]best{start: {weight: root.Weight(), length: root.Length()}},
		explored: make(map[S]int),
	}
	node, err := r.loop(root)
	o.LogDone(e.Name, r.expanded, core.LengthOf(node))

	return node, err
}

// FindPath returns a least-weight path from start to end, or an empty path.
func (e *Engine[S]) FindPath(start, end S, opts ...core.Option) ([]S, error) {
	if err := core.ValidateEndpoints(start, end); err != nil {
		return nil, err
	}
	node, err := e.FindNode(start, core.Equals(end), opts...)
	if err != nil {
		return nil, err
	}

	return core.PathOf(node), nil
}

func (r *run[S]) priority(n *core.PathNode[S]) float64 {
	if r.e.Estimate == nil {
		return n.Weight()
	}

	return n.Weight() + r.e.Estimate(n.State())
}

// loop is the main uniform-cost loop:
//  1. pop the lowest-priority node, skipping it if its state was already
//     expanded at a length no greater than its own;
//  2. return it if it satisfies the predicate;
//  3. otherwise, if it may be expanded, mark it explored and relax its children.
func (r *run[S]) loop(root *core.PathNode[S]) (*core.PathNode[S], error) {
	r.frontier.Push(root, r.priority(root))
	for r.frontier.Len() > 0 {
		if err := r.opts.Cancelled(); err != nil {
			return nil, fmt.Errorf("%s: search cancelled: %w", r.e.Name, err)
		}

		cur, _ := r.frontier.Pop()
		state := cur.State()
		if r.covered(state, cur.Length()) {
			continue // stale entry
		}
		if r.goal(cur) {
			return cur, nil
		}
		if !r.opts.Expandable(cur.Length()) {
			continue
		}

		r.explored[state] = cur.Length()
		delete(r.best, state)
		r.relax(cur)
	}

	return nil, nil
}

// relax pushes every unexplored child of cur that improves on the best known
// node for its state, either by weight or by length.
func (r *run[S]) relax(cur *core.PathNode[S]) {
	r.expanded++
	parent := cur.State()
	for _, child := range r.e.Children(parent) {
		node := cur.Extend(child, r.e.Weigh(parent, child))
		if r.covered(child, node.Length()) {
			continue
		}
		if b, ok := r.best[child]; ok && b.weight <= node.Weight() && b.length <= node.Length() {
			continue
		}
		r.best[child] = best{weight: node.Weight(), length: node.Length()}
		r.frontier.Push(node, r.priority(node))
	}
}

// covered reports whether state was already expanded at a length no greater
// than length. A heavier but shorter node may still reach a goal the lighter
// one cannot fit under the bound, so only an unbounded search treats every
// expansion as final.
func (r *run[S]) covered(state S, length int) bool {
	at, ok := r.explored[state]
	if !ok {
		return false
	}

	return at <= length || r.opts.MaxPathLength == core.Unbounded
}
