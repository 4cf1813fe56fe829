package backtrack

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
)

// Flexible runs open-ended backtracking traversals steered by a Decider.
type Flexible[S comparable] struct {
	cfg config[S]
}

// NewFlexible returns a Flexible traversal over children.
// Returns core.ErrNilChildGenerator if children is nil.
func NewFlexible[S comparable](children core.ChildGenerator[S], opts ...Option[S]) (*Flexible[S], error) {
	cfg, err := newConfig(children, opts)
	if err != nil {
		return nil, err
	}

	return &Flexible[S]{cfg: cfg}, nil
}

// Search visits start and its descendants depth first, asking decide what to
// do at every node. It returns the node at which decide chose Stop, or nil
// if the traversal ran to completion.
//
// Visited nodes hold at most MaxPathLength states; the start node is always
// visited. A node is descended into only when decide returns Continue and
// the node may be expanded.
func (f *Flexible[S]) Search(start S, decide Decider[S], opts ...core.Option) (*core.PathNode[S], error) {
	if decide == nil {
		return nil, core.ErrNilDecider
	}
	o, err := core.Apply(opts...)
	if err != nil {
		return nil, err
	}
	root, err := core.NewRoot(start)
	if err != nil {
		return nil, err
	}

	t := &traversal[S]{cfg: f.cfg, opts: o, decide: decide}
	stopped, err := t.visit(root)
	o.LogDone(flexibleAlgorithm, t.expanded, core.LengthOf(stopped))

	return stopped, err
}

// Walk is Search with a boolean visitor: true descends (Continue), false
// prunes the subtree (Backtrack). The traversal never stops early.
func (f *Flexible[S]) Walk(start S, visit func(node *core.PathNode[S]) bool, opts ...core.Option) error {
	if visit == nil {
		return core.ErrNilDecider
	}
	_, err := f.Search(start, func(n *core.PathNode[S]) NodeOption {
		if visit(n) {
			return Continue
		}
		return Backtrack
	}, opts...)

	return err
}

// traversal holds the per-call state of a flexible search.
type traversal[S comparable] struct {
	cfg      config[S]
	opts     core.Options
	decide   Decider[S]
	expanded int
}

// visit applies the decider to node and recurses on Continue.
func (t *traversal[S]) visit(node *core.PathNode[S]) (*core.PathNode[S], error) {
	if err := t.opts.Cancelled(); err != nil {
		return nil, fmt.Errorf("backtrack: traversal cancelled: %w", err)
	}

	switch opt := t.decide(node); opt {
	case Stop:
		return node, nil
	case Backtrack:
		return nil, nil
	case Continue:
	default:
		return nil, fmt.Errorf("%w: %s at state %v", ErrUnknownOption, opt, node.State())
	}

	if !t.opts.Expandable(node.Length()) {
		return nil, nil
	}

	t.expanded++
	for _, child := range t.cfg.children(node.State()) {
		next, ok := t.cfg.extend(node, child, t.opts.AssumeNoDuplicates)
		if !ok {
			continue
		}
		stopped, err := t.visit(next)
		if err != nil || stopped != nil {
			return stopped, err
		}
	}

	return nil, nil
}
