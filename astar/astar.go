package astar

import (
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/internal/bestfirst"
)

// Searcher runs A* searches over one weighted implicit graph.
type Searcher[S comparable] struct {
	engine bestfirst.Engine[S]
}

// New returns an A* Searcher.
// Returns core.ErrNilChildGenerator, core.ErrNilWeigher or core.ErrNilHeuristic
// for missing callbacks.
func New[S comparable](children core.ChildGenerator[S], weigh core.EdgeWeigher[S], estimate core.Heuristic[S]) (*Searcher[S], error) {
	if children == nil {
		return nil, core.ErrNilChildGenerator
	}
	if weigh == nil {
		return nil, core.ErrNilWeigher
	}
	if estimate == nil {
		return nil, core.ErrNilHeuristic
	}

	return &Searcher[S]{engine: bestfirst.Engine[S]{
		Name:     "astar",
		Children: children,
		Weigh:    weigh,
		Estimate: estimate,
	}}, nil
}

// FindNode returns the first node satisfying goal in order of g+h, or nil.
func (s *Searcher[S]) FindNode(start S, goal core.Predicate[S], opts ...core.Option) (*core.PathNode[S], error) {
	return s.engine.FindNode(start, goal, opts...)
}

// FindPath returns a least-weight path from start to end, or an empty path.
func (s *Searcher[S]) FindPath(start, end S, opts ...core.Option) ([]S, error) {
	return s.engine.FindPath(start, end, opts...)
}

// Manhattan returns the L1 distance heuristic to goal for grid states
// produced by key. It is admissible on 4-connected grids whose every step
// weighs at least scale.
func Manhattan[S comparable](goal S, key func(S) (x, y int), scale float64) core.Heuristic[S] {
	gx, gy := key(goal)
	return func(s S) float64 {
		x, y := key(s)
		return scale * float64(abs(x-gx)+abs(y-gy))
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
