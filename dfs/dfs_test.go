package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dfs"
	"github.com/katalvlaran/lvlath/internal/testgraph"
)

// DFSSuite exercises depth-first search on the shared test graphs.
type DFSSuite struct {
	suite.Suite
}

func (s *DFSSuite) searcher(children core.ChildGenerator[int]) *dfs.Searcher[int] {
	d, err := dfs.New(children)
	s.Require().NoError(err)
	return d
}

// TestErrors rejects missing callbacks and bad options.
func (s *DFSSuite) TestErrors() {
	_, err := dfs.New[int](nil)
	s.ErrorIs(err, core.ErrNilChildGenerator)

	d := s.searcher(testgraph.OnePath())
	_, err = d.FindNode(0, nil)
	s.ErrorIs(err, core.ErrNilPredicate)
	_, err = d.FindPath(0, 1, core.WithMaxPathLength(-3))
	s.ErrorIs(err, core.ErrOptionViolation)
}

// TestStartEqualsEnd returns the single-state path without expanding.
func (s *DFSSuite) TestStartEqualsEnd() {
	c := testgraph.Count(testgraph.BinaryTree())
	path, err := s.searcher(c.Children).FindPath(9, 9)
	s.Require().NoError(err)
	s.Equal([]int{9}, path)
	s.Zero(c.Total)
}

// TestFirstPathExplored follows the last-generated child first.
func (s *DFSSuite) TestFirstPathExplored() {
	node, err := s.searcher(testgraph.TwoPaths()).FindNode(1, core.Equals(7))
	s.Require().NoError(err)
	s.Require().NotNil(node)
	s.Equal([]int{1, 2, 4, 6, 7}, node.Path())
	s.Equal(5, node.Length())
}

// TestNotFound covers finite, edgeless and cyclic graphs without the target.
func (s *DFSSuite) TestNotFound() {
	for _, children := range []core.ChildGenerator[int]{
		testgraph.Finite(20),
		testgraph.Edgeless[int](),
		testgraph.Cycle(5),
	} {
		path, err := s.searcher(children).FindPath(1, 99)
		s.Require().NoError(err)
		s.Empty(path)
	}
}

// TestCycleExpandsEachStateOnce checks the explored set.
func (s *DFSSuite) TestCycleExpandsEachStateOnce() {
	c := testgraph.Count(testgraph.Cycle(9))
	_, err := s.searcher(c.Children).FindPath(4, -1)
	s.Require().NoError(err)
	s.Equal(1, c.MaxCalls())
	s.Len(c.Calls, 9)
}

// TestMaxPathLength bounds the depth of the infinite chain.
func (s *DFSSuite) TestMaxPathLength() {
	d := s.searcher(testgraph.OnePath())

	node, err := d.FindNode(1, core.Equals(10), core.WithMaxPathLength(9))
	s.Require().NoError(err)
	s.Nil(node)

	node, err = d.FindNode(1, core.Equals(10), core.WithMaxPathLength(10))
	s.Require().NoError(err)
	s.Require().NotNil(node)
	s.Equal(10, node.Length())

	c := testgraph.Count(testgraph.OnePath())
	node, err = s.searcher(c.Children).FindNode(1, core.Equals(1), core.WithMaxPathLength(0))
	s.Require().NoError(err)
	s.NotNil(node)
	node, err = s.searcher(c.Children).FindNode(1, core.Equals(2), core.WithMaxPathLength(0))
	s.Require().NoError(err)
	s.Nil(node)
	s.Zero(c.Total)
}

// TestContextCancelled surfaces the context error.
func (s *DFSSuite) TestContextCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.searcher(testgraph.OnePath()).FindPath(0, 5, core.WithContext(ctx))
	s.ErrorIs(err, context.Canceled)
}

// TestWeights fills cumulative weights from the fixture.
func (s *DFSSuite) TestWeights() {
	g := testgraph.MustLoad("diamond")
	d, err := dfs.New(g.Children, dfs.WithEdgeWeigher(g.Weight))
	require.NoError(s.T(), err)

	node, err := d.FindNode("S", core.Equals("G"))
	s.Require().NoError(err)
	s.Require().NotNil(node)
	// stack pops B before A
	s.Equal([]string{"S", "B", "G"}, node.Path())
	s.Equal(15.0, node.Weight())
}

func TestDFSSuite(t *testing.T) {
	suite.Run(t, new(DFSSuite))
}
