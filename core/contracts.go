package core

// ChildGenerator returns the successor states of state. It is the only way a
// search learns the shape of the graph; it must be deterministic with respect
// to state equality.
type ChildGenerator[S comparable] func(state S) []S

// EdgeWeigher returns the weight of the edge parent → child.
// Least-weight and A* searches require it to be non-negative.
type EdgeWeigher[S comparable] func(parent, child S) float64

// Predicate reports whether node is an acceptable search result.
type Predicate[S comparable] func(node *PathNode[S]) bool

// Heuristic estimates the remaining weight from state to the nearest goal.
// A* returns optimal paths only when it is admissible and consistent.
type Heuristic[S comparable] func(state S) float64

// Equals returns a Predicate matching nodes whose state equals target.
// Every FindPath is built on it.
func Equals[S comparable](target S) Predicate[S] {
	return func(node *PathNode[S]) bool {
		return node.state == target
	}
}

// ZeroWeight is the EdgeWeigher of unweighted searches.
func ZeroWeight[S comparable](_, _ S) float64 { return 0 }

// UnitWeight weighs every edge 1, making Weight() equal Length()-1.
func UnitWeight[S comparable](_, _ S) float64 { return 1 }

// ValidateEndpoints checks the start and end states of a FindPath call.
func ValidateEndpoints[S comparable](start, end S) error {
	if IsNil(start) || IsNil(end) {
		return ErrNilState
	}

	return nil
}
