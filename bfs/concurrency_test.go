package bfs_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/internal/testgraph"
)

// TestConcurrentFindPath shares one Searcher between goroutines; every call
// owns its frontier and explored set.
func TestConcurrentFindPath(t *testing.T) {
	s, err := bfs.New(testgraph.Undirected(0, 50))
	require.NoError(t, err)

	const num = 64
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(end int) {
			defer wg.Done()
			path, err := s.FindPath(0, end)
			require.NoError(t, err)
			require.Len(t, path, end+1)
		}(i % 51)
	}
	wg.Wait()
}
