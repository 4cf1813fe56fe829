package backtrack

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
)

// Searcher runs plain backtracking searches.
type Searcher[S comparable] struct {
	cfg config[S]
}

// New returns a backtracking Searcher over children.
// Returns core.ErrNilChildGenerator if children is nil.
func New[S comparable](children core.ChildGenerator[S], opts ...Option[S]) (*Searcher[S], error) {
	cfg, err := newConfig(children, opts)
	if err != nil {
		return nil, err
	}

	return &Searcher[S]{cfg: cfg}, nil
}

// FindNode returns the first node, depth first, that satisfies goal, or nil.
// Only the current path is remembered; see the package doc for termination.
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

	r := &runner[S]{cfg: s.cfg, opts: o, goal: goal}
	var node *core.PathNode[S]
	switch {
	case goal(root):
		node = root
	case o.Expandable(root.Length()):
		node, err = r.descend(root)
	}
	o.LogDone(algorithm, r.expanded, core.LengthOf(node))

	return node, err
}

// FindPath returns the first path, depth first, from start to end, or an empty path.
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

// runner holds the per-call state of a plain backtracking search.
type runner[S comparable] struct {
	cfg      config[S]
	opts     core.Options
	goal     core.Predicate[S]
	expanded int
}

// descend tests every child of cur and recurses into the expandable ones.
func (r *runner[S]) descend(cur *core.PathNode[S]) (*core.PathNode[S], error) {
	if err := r.opts.Cancelled(); err != nil {
		return nil, fmt.Errorf("backtrack: search cancelled: %w", err)
	}

	r.expanded++
	for _, child := range r.cfg.children(cur.State()) {
		node, ok := r.cfg.extend(cur, child, r.opts.AssumeNoDuplicates)
		if !ok {
			continue
		}
		if r.goal(node) {
			return node, nil
		}
		if !r.opts.Expandable(node.Length()) {
			continue
		}
		found, err := r.descend(node)
		if err != nil || found != nil {
			return found, err
		}
	}

	return nil, nil
}
