package bfs

import (
	"github.com/katalvlaran/lvlath/core"
)

const algorithm = "bfs"

// Searcher runs breadth-first searches over one implicit graph.
// A Searcher is immutable and safe for concurrent use.
type Searcher[S comparable] struct {
	children core.ChildGenerator[S]
	weigh    core.EdgeWeigher[S]
}

// Option configures a Searcher at construction.
type Option[S comparable] func(*Searcher[S])

// WithEdgeWeigher records edge weights in the returned PathNodes.
// A nil weigher is ignored.
func WithEdgeWeigher[S comparable](w core.EdgeWeigher[S]) Option[S] {
	return func(s *Searcher[S]) {
		if w != nil {
			s.weigh = w
		}
	}
}

// New returns a Searcher over the graph described by children.
// Returns core.ErrNilChildGenerator if children is nil.
func New[S comparable](children core.ChildGenerator[S], opts ...Option[S]) (*Searcher[S], error) {
	if children == nil {
		return nil, core.ErrNilChildGenerator
	}
	s := &Searcher[S]{
		children: children,
		weigh:    core.ZeroWeight[S],
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}
