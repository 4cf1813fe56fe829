package leastweight

import (
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/internal/bestfirst"
)

const algorithm = "leastweight"

// Searcher runs least-weight-path searches over one weighted implicit graph.
type Searcher[S comparable] struct {
	engine bestfirst.Engine[S]
}

// New returns a Searcher over children with edge weights from weigh.
// Returns core.ErrNilChildGenerator or core.ErrNilWeigher for missing callbacks.
func New[S comparable](children core.ChildGenerator[S], weigh core.EdgeWeigher[S]) (*Searcher[S], error) {
	if children == nil {
		return nil, core.ErrNilChildGenerator
	}
	if weigh == nil {
		return nil, core.ErrNilWeigher
	}

	return &Searcher[S]{engine: bestfirst.Engine[S]{
		Name:     algorithm,
		Children: children,
		Weigh:    weigh,
	}}, nil
}

// FindNode returns the node ending a least-weight path from start to a node
// satisfying goal, or nil if no such node is reachable within the path-length
// bound.
func (s *Searcher[S]) FindNode(start S, goal core.Predicate[S], opts ...core.Option) (*core.PathNode[S], error) {
	return s.engine.FindNode(start, goal, opts...)
}

// FindPath returns a least-weight path from start to end, or an empty path.
func (s *Searcher[S]) FindPath(start, end S, opts ...core.Option) ([]S, error) {
	return s.engine.FindPath(start, end, opts...)
}
