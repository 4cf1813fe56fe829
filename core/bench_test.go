package core_test

import (
	"testing"

	"github.com/katalvlaran/lvlath/core"
)

func chain(n int) *core.PathNode[int] {
	node, _ := core.NewRoot(0)
	for i := 1; i < n; i++ {
		node = node.Extend(i, 1)
	}
	return node
}

// BenchmarkPath measures reconstructing a 1 000-state path.
func BenchmarkPath(b *testing.B) {
	leaf := chain(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = leaf.Path()
	}
}

// BenchmarkPathContains measures the worst case of the current-path check.
func BenchmarkPathContains(b *testing.B) {
	leaf := chain(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = leaf.PathContains(-1)
	}
}
