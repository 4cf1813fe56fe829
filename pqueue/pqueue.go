package pqueue

import "container/heap"

// entry pairs an item with its priority and its insertion sequence number.
type entry[T any] struct {
	item     T
	priority float64
	seq      uint64
}

// entries is a min-heap of entry ordered by priority, then by seq.
type entries[T any] []entry[T]

// Len returns the number of entries in the heap.
func (h entries[T]) Len() int { return len(h) }

// Less orders by priority, breaking ties by insertion order.
func (h entries[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two entries.
func (h entries[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be an entry[T].
func (h *entries[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

// Pop is called by heap.Pop and removes the last element.
func (h *entries[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	var zero entry[T]
	old[n-1] = zero // drop the reference to the item
	*h = old[:n-1]

	return e
}

// Queue is a min-priority queue. The zero value is not usable; call New.
// A Queue is not safe for concurrent use.
type Queue[T any] struct {
	h   entries[T]
	seq uint64
}

// New returns an empty Queue.
func New[T any]() *Queue[T] {
	return NewWithCapacity[T](0)
}

// NewWithCapacity returns an empty Queue with room for n items.
func NewWithCapacity[T any](n int) *Queue[T] {
	q := &Queue[T]{h: make(entries[T], 0, n)}
	heap.Init(&q.h)

	return q
}

// Push inserts item with the given priority.
func (q *Queue[T]) Push(item T, priority float64) {
	heap.Push(&q.h, entry[T]{item: item, priority: priority, seq: q.seq})
	q.seq++
}

// Pop removes and returns the item with the smallest priority together with
// that priority. It panics on an empty queue; check Len first.
func (q *Queue[T]) Pop() (T, float64) {
	if len(q.h) == 0 {
		panic("pqueue: Pop on empty queue")
	}
	e := heap.Pop(&q.h).(entry[T])

	return e.item, e.priority
}

// Peek returns the item Pop would return without removing it.
// ok is false when the queue is empty.
func (q *Queue[T]) Peek() (item T, priority float64, ok bool) {
	if len(q.h) == 0 {
		return item, 0, false
	}

	return q.h[0].item, q.h[0].priority, true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.h) }
