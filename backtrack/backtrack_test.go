package backtrack_test

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/backtrack"
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/internal/testgraph"
)

// TestSearcher_Errors rejects missing callbacks and states.
func TestSearcher_Errors(t *testing.T) {
	_, err := backtrack.New[int](nil)
	require.ErrorIs(t, err, core.ErrNilChildGenerator)

	s, err := backtrack.New(testgraph.OnePath())
	require.NoError(t, err)
	_, err = s.FindNode(1, nil)
	assert.ErrorIs(t, err, core.ErrNilPredicate)

	var nilStart *int
	ptr, err := backtrack.New(testgraph.Edgeless[*int]())
	require.NoError(t, err)
	_, err = ptr.FindNode(nilStart, func(*core.PathNode[*int]) bool { return true })
	assert.ErrorIs(t, err, core.ErrNilState)
}

// TestSearcher_FindPath covers the usual graph shapes.
func TestSearcher_FindPath(t *testing.T) {
	cases := []struct {
		name       string
		children   core.ChildGenerator[int]
		start, end int
		want       []int
	}{
		{"start equals end", testgraph.BinaryTree(), 3, 3, []int{3}},
		{"chain", testgraph.Finite(10), 2, 6, []int{2, 3, 4, 5, 6}},
		{"two paths takes first generated", testgraph.TwoPaths(), 1, 7, []int{1, 3, 5, 7}},
		{"cycle", testgraph.Cycle(5), 3, 1, []int{3, 4, 0, 1}},
		{"cycle without end", testgraph.Cycle(5), 3, 7, []int{}},
		{"edgeless", testgraph.Edgeless[int](), 0, 1, []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := backtrack.New(tc.children)
			require.NoError(t, err)
			path, err := s.FindPath(tc.start, tc.end)
			require.NoError(t, err)
			assert.Equal(t, tc.want, path)
		})
	}
}

// TestSearcher_NeverReentersCurrentPath checks the current-path cycle guard.
func TestSearcher_NeverReentersCurrentPath(t *testing.T) {
	// every state links to every other state of {0..3}
	complete := func(s int) []int {
		out := make([]int, 0, 3)
		for i := 0; i < 4; i++ {
			if i != s {
				out = append(out, i)
			}
		}
		return out
	}
	s, err := backtrack.New(complete)
	require.NoError(t, err)

	node, err := s.FindNode(0, func(n *core.PathNode[int]) bool {
		seen := map[int]bool{}
		for _, st := range n.Path() {
			require.False(t, seen[st], "state %d repeated on path %v", st, n.Path())
			seen[st] = true
		}
		return false
	})
	require.NoError(t, err)
	assert.Nil(t, node)
}

// TestSearcher_RevisitsAcrossPaths shows that states reachable by two
// routes are expanded once per route.
func TestSearcher_RevisitsAcrossPaths(t *testing.T) {
	c := testgraph.Count(testgraph.TwoPaths())
	s, err := backtrack.New(c.Children)
	require.NoError(t, err)

	_, err = s.FindPath(1, 8)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Calls[7], "7 is reached via 5 and via 6")
}

// TestSearcher_MaxPathLength bounds the infinite chain.
func TestSearcher_MaxPathLength(t *testing.T) {
	c := testgraph.Count(testgraph.OnePath())
	s, err := backtrack.New(c.Children)
	require.NoError(t, err)

	node, err := s.FindNode(1, core.Equals(6), core.WithMaxPathLength(5))
	require.NoError(t, err)
	assert.Nil(t, node)

	node, err = s.FindNode(1, core.Equals(5), core.WithMaxPathLength(5))
	require.NoError(t, err)
	require.NotNil(t, node)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, node.Path())

	before := c.Total
	node, err = s.FindNode(1, core.Equals(1), core.WithMaxPathLength(0))
	require.NoError(t, err)
	assert.NotNil(t, node)
	node, err = s.FindNode(1, core.Equals(2), core.WithMaxPathLength(0))
	require.NoError(t, err)
	assert.Nil(t, node)
	assert.Equal(t, before, c.Total)
}

// TestSearcher_AssumeNoDuplicates skips PathContains on a cycle.
func TestSearcher_AssumeNoDuplicates(t *testing.T) {
	s, err := backtrack.New(testgraph.Cycle(3))
	require.NoError(t, err)

	// 0 → 1 → 2 → 0 → 1 is only reachable when revisits are allowed
	node, err := s.FindNode(0, func(n *core.PathNode[int]) bool {
		return n.Length() == 5
	}, core.WithAssumeNoDuplicates(), core.WithMaxPathLength(5))
	require.NoError(t, err)
	require.NotNil(t, node)
	assert.Equal(t, []int{0, 1, 2, 0, 1}, node.Path())

	node, err = s.FindNode(0, func(n *core.PathNode[int]) bool {
		return n.Length() == 5
	}, core.WithMaxPathLength(5))
	require.NoError(t, err)
	assert.Nil(t, node)
}

// TestSearcher_ContextCancelled surfaces the context error.
func TestSearcher_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s, err := backtrack.New(testgraph.OnePath())
	require.NoError(t, err)
	_, err = s.FindPath(0, 10, core.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSearcher_LogsCompletion names the plain and flexible traversals apart.
func TestSearcher_LogsCompletion(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	s, err := backtrack.New(testgraph.OnePath())
	require.NoError(t, err)
	_, err = s.FindPath(1, 4, core.WithLogger(logger))
	require.NoError(t, err)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "backtrack", entry.Data["algorithm"])
	assert.Equal(t, 4, entry.Data["length"])

	f, err := backtrack.NewFlexible(testgraph.OnePath())
	require.NoError(t, err)
	_, err = f.Search(1, func(n *core.PathNode[int]) backtrack.NodeOption {
		if n.State() == 3 {
			return backtrack.Stop
		}
		return backtrack.Continue
	}, core.WithLogger(logger))
	require.NoError(t, err)
	entry = hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "flexible-backtrack", entry.Data["algorithm"])
	assert.Equal(t, 3, entry.Data["length"])
}
