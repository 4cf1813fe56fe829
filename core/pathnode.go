package core

import (
	"fmt"
	"reflect"
	"strings"
)

// PathNode is one node of a discovered path: a caller state, a link to the
// node one step closer to the root, and the cumulative length and weight of
// the path from the root to this node.
//
// A PathNode is immutable once built. Many nodes may share one parent.
type PathNode[S comparable] struct {
	state  S
	parent *PathNode[S]
	length int
	weight float64
}

// RootOption configures a root PathNode.
type RootOption func(*rootConfig)

type rootConfig struct {
	weight float64
}

// WithInitialWeight sets the cumulative weight of a root node (default 0).
func WithInitialWeight(w float64) RootOption {
	return func(c *rootConfig) {
		c.weight = w
	}
}

// NewRoot builds the first node of a path.
// Returns ErrNilState if state is a nil pointer or interface.
func NewRoot[S comparable](state S, opts ...RootOption) (*PathNode[S], error) {
	if IsNil(state) {
		return nil, ErrNilState
	}
	cfg := rootConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &PathNode[S]{state: state, length: 1, weight: cfg.weight}, nil
}

// NewChild builds a node whose incoming edge from parent has edgeWeight.
// Returns ErrNilState for a nil state and ErrNilParent for a nil parent.
func NewChild[S comparable](state S, parent *PathNode[S], edgeWeight float64) (*PathNode[S], error) {
	if IsNil(state) {
		return nil, ErrNilState
	}
	if parent == nil {
		return nil, ErrNilParent
	}

	return parent.Extend(state, edgeWeight), nil
}

// Extend returns a new child of n holding state. The state is not validated;
// searches use Extend on ChildGenerator output.
func (n *PathNode[S]) Extend(state S, edgeWeight float64) *PathNode[S] {
	return &PathNode[S]{
		state:  state,
		parent: n,
		length: n.length + 1,
		weight: n.weight + edgeWeight,
	}
}

// State returns the caller state held by n.
func (n *PathNode[S]) State() S { return n.state }

// Parent returns the previous node on the path, or nil for a root.
func (n *PathNode[S]) Parent() *PathNode[S] { return n.parent }

// Length returns the number of states on the path from the root to n.
func (n *PathNode[S]) Length() int { return n.length }

// Weight returns the cumulative path weight from the root to n.
func (n *PathNode[S]) Weight() float64 { return n.weight }

// IsRoot reports whether n has no parent.
func (n *PathNode[S]) IsRoot() bool { return n.parent == nil }

// EdgeWeight returns the weight of the edge entering n. For a root it is the
// initial weight.
func (n *PathNode[S]) EdgeWeight() float64 {
	if n.parent == nil {
		return n.weight
	}

	return n.weight - n.parent.weight
}

// Root walks the parent links and returns the first node of the path.
func (n *PathNode[S]) Root() *PathNode[S] {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}

	return cur
}

// PathContains reports whether state appears on the path from n to the root.
// Only the current path is inspected, not the whole search tree.
func (n *PathNode[S]) PathContains(state S) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.state == state {
			return true
		}
	}

	return false
}

// Equal reports whether n and other hold the same state. The paths that led
// to them are ignored.
func (n *PathNode[S]) Equal(other *PathNode[S]) bool {
	if n == nil || other == nil {
		return n == other
	}

	return n.state == other.state
}

// Nodes returns the nodes from the root to n.
func (n *PathNode[S]) Nodes() []*PathNode[S] {
	out := make([]*PathNode[S], n.length)
	i := n.length - 1
	for cur := n; cur != nil && i >= 0; cur = cur.parent {
		out[i] = cur
		i--
	}

	return out
}

// Path returns the states from the root to n. Complexity O(Length()).
func (n *PathNode[S]) Path() []S {
	out := make([]S, n.length)
	i := n.length - 1
	for cur := n; cur != nil && i >= 0; cur = cur.parent {
		out[i] = cur.state
		i--
	}

	return out
}

// String renders the path as "a → b → c (len=3, weight=2)".
func (n *PathNode[S]) String() string {
	if n == nil {
		return "<nil>"
	}
	parts := make([]string, 0, n.length)
	for _, s := range n.Path() {
		parts = append(parts, fmt.Sprint(s))
	}

	return fmt.Sprintf("%s (len=%d, weight=%g)", strings.Join(parts, " → "), n.length, n.weight)
}

// PathOf returns node.Path(), or an empty path for a nil node.
func PathOf[S comparable](node *PathNode[S]) []S {
	if node == nil {
		return []S{}
	}

	return node.Path()
}

// IsNil reports whether v is a nil interface or a nil pointer, channel or
// unsafe pointer. Comparable value types are never nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// LengthOf returns node.Length(), or 0 for a nil node.
func LengthOf[S comparable](node *PathNode[S]) int {
	if node == nil {
		return 0
	}

	return node.length
}
