package pqueue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/pqueue"
)

// TestQueue_PopsInPriorityOrder pushes shuffled priorities and expects them back sorted.
func TestQueue_PopsInPriorityOrder(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	q := pqueue.New[int]()
	want := make([]float64, 0, 100)
	for i := 0; i < 100; i++ {
		p := r.Float64() * 50
		want = append(want, p)
		q.Push(i, p)
	}
	sort.Float64s(want)

	require.Equal(t, 100, q.Len())
	for i := 0; i < 100; i++ {
		_, p := q.Pop()
		require.Equal(t, want[i], p)
	}
	assert.Equal(t, 0, q.Len())
}

// TestQueue_TiesPopInInsertionOrder checks FIFO among equal priorities.
func TestQueue_TiesPopInInsertionOrder(t *testing.T) {
	q := pqueue.New[string]()
	q.Push("a", 1)
	q.Push("b", 0)
	q.Push("c", 1)
	q.Push("d", 1)
	q.Push("e", 0)

	got := make([]string, 0, 5)
	for q.Len() > 0 {
		item, _ := q.Pop()
		got = append(got, item)
	}
	assert.Equal(t, []string{"b", "e", "a", "c", "d"}, got)
}

// TestQueue_Peek verifies Peek on empty and non-empty queues.
func TestQueue_Peek(t *testing.T) {
	q := pqueue.NewWithCapacity[int](4)
	_, _, ok := q.Peek()
	assert.False(t, ok)

	q.Push(3, 3)
	q.Push(1, 1)
	item, p, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, item)
	assert.Equal(t, 1.0, p)
	assert.Equal(t, 2, q.Len(), "Peek must not remove")
}

// TestQueue_PopEmptyPanics documents the empty-queue contract.
func TestQueue_PopEmptyPanics(t *testing.T) {
	q := pqueue.New[int]()
	assert.Panics(t, func() { q.Pop() })
}
