package backtrack

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlath/core"
)

const (
	algorithm         = "backtrack"
	flexibleAlgorithm = "flexible-backtrack"
)

// ErrUnknownOption is returned when a Decider returns an unrecognized NodeOption.
var ErrUnknownOption = errors.New("backtrack: unrecognized node option")

// NodeOption is the per-node decision of a flexible traversal.
// The zero value is not a valid option.
type NodeOption uint8

const (
	// Stop aborts the traversal; Search returns the current node.
	Stop NodeOption = iota + 1
	// Continue descends into the node's children.
	Continue
	// Backtrack skips the node's children and moves on to its next sibling.
	Backtrack
)

// String returns the option name.
func (o NodeOption) String() string {
	switch o {
	case Stop:
		return "Stop"
	case Continue:
		return "Continue"
	case Backtrack:
		return "Backtrack"
	default:
		return fmt.Sprintf("NodeOption(%d)", uint8(o))
	}
}

// Decider chooses what a flexible traversal does at node.
type Decider[S comparable] func(node *core.PathNode[S]) NodeOption

// Option configures a Searcher or Flexible at construction.
type Option[S comparable] func(*config[S])

type config[S comparable] struct {
	children core.ChildGenerator[S]
	weigh    core.EdgeWeigher[S]
}

// WithEdgeWeigher records edge weights in the visited PathNodes.
func WithEdgeWeigher[S comparable](w core.EdgeWeigher[S]) Option[S] {
	return func(c *config[S]) {
		if w != nil {
			c.weigh = w
		}
	}
}

func newConfig[S comparable](children core.ChildGenerator[S], opts []Option[S]) (config[S], error) {
	if children == nil {
		return config[S]{}, core.ErrNilChildGenerator
	}
	c := config[S]{children: children, weigh: core.ZeroWeight[S]}
	for _, opt := range opts {
		opt(&c)
	}

	return c, nil
}

// extend builds the node for child under cur. ok is false when child is
// already on the current path and duplicates are not assumed impossible.
func (c config[S]) extend(cur *core.PathNode[S], child S, assumeNoDuplicates bool) (node *core.PathNode[S], ok bool) {
	if !assumeNoDuplicates && cur.PathContains(child) {
		return nil, false
	}

	return cur.Extend(child, c.weigh(cur.State(), child)), true
}
