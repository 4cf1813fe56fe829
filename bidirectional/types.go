package bidirectional

import (
	"errors"

	"github.com/katalvlaran/lvlath/core"
)

const algorithm = "bidirectional"

// ErrRepairLength is returned when a RepairFunc returns a segment whose length
// differs from the one it was given.
var ErrRepairLength = errors.New("bidirectional: repaired segment changed length")

// RepairFunc receives the reverse-tree segment of a stitched path, from the
// meeting state to the end, and returns its replacement. The returned slice
// must have the same length; element 0 is ignored because the meeting state
// is taken from the forward tree.
type RepairFunc[S comparable] func(segment []S) []S

// Searcher runs bidirectional searches over one implicit graph.
// A Searcher is immutable and safe for concurrent use.
type Searcher[S comparable] struct {
	forward core.ChildGenerator[S]
	reverse core.ChildGenerator[S]
	weigh   core.EdgeWeigher[S]
	repair  RepairFunc[S]
}

// Option configures a Searcher at construction.
type Option[S comparable] func(*Searcher[S])

// WithEdgeWeigher records forward edge weights in the returned PathNodes.
// A nil weigher is ignored.
func WithEdgeWeigher[S comparable](w core.EdgeWeigher[S]) Option[S] {
	return func(s *Searcher[S]) {
		if w != nil {
			s.weigh = w
		}
	}
}

// WithRepair installs a callback applied to the reverse segment of every
// stitched path.
func WithRepair[S comparable](fn RepairFunc[S]) Option[S] {
	return func(s *Searcher[S]) {
		s.repair = fn
	}
}

// New returns a Searcher that grows the forward tree with forward and the
// reverse tree with reverse.
// Returns core.ErrNilChildGenerator if either generator is nil.
func New[S comparable](forward, reverse core.ChildGenerator[S], opts ...Option[S]) (*Searcher[S], error) {
	if forward == nil || reverse == nil {
		return nil, core.ErrNilChildGenerator
	}
	s := &Searcher[S]{
		forward: forward,
		reverse: reverse,
		weigh:   core.ZeroWeight[S],
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// NewUndirected returns a Searcher whose reverse generator is children.
func NewUndirected[S comparable](children core.ChildGenerator[S], opts ...Option[S]) (*Searcher[S], error) {
	return New(children, children, opts...)
}
