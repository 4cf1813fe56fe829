// Package pqueue provides a generic min-priority queue used as the frontier
// of the weighted searches (least-weight and A*).
//
// Contract
//
//   - Push(item, priority) inserts an item in O(log n).
//   - Pop() removes and returns the item with the smallest priority in O(log n).
//   - Len() reports the number of queued items.
//
// Items with equal priority pop in insertion order, which makes every search
// built on the queue deterministic for a deterministic ChildGenerator.
//
// The queue does not support decrease-key. Searches push a fresh entry when
// they find a better priority and skip stale entries when popped
// (“lazy decrease-key”).
package pqueue
