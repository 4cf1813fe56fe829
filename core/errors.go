package core

import "errors"

// Sentinel errors shared by every search package. All of them are
// invalid-argument errors raised at construction or call entry.
var (
	// ErrNilChildGenerator is returned when a search is built without a ChildGenerator.
	ErrNilChildGenerator = errors.New("core: child generator is nil")

	// ErrNilPredicate is returned when FindNode is called without a Predicate.
	ErrNilPredicate = errors.New("core: predicate is nil")

	// ErrNilWeigher is returned when a weighted search is built without an EdgeWeigher.
	ErrNilWeigher = errors.New("core: edge weigher is nil")

	// ErrNilHeuristic is returned when A* is built without a Heuristic.
	ErrNilHeuristic = errors.New("core: heuristic is nil")

	// ErrNilDecider is returned when flexible backtracking is run without a decider.
	ErrNilDecider = errors.New("core: node decider is nil")

	// ErrNilState is returned when a start, end or node state is a nil pointer or interface.
	ErrNilState = errors.New("core: state is nil")

	// ErrNilParent is returned by NewChild when the parent node is nil.
	ErrNilParent = errors.New("core: parent node is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("core: invalid option supplied")
)
