// Package dfs provides depth-first search over an implicit state space.
//
// It uses an explicit LIFO frontier and an explored set keyed by state, so
// every state is expanded at most once. The first node found satisfying the
// predicate wins; the order is fixed by the ChildGenerator's enumeration
// order (the last child generated is explored first).
//
// Unlike bfs, the returned path is "some" path, not a shortest one. Use the
// backtrack package when O(depth) memory matters more than revisiting.
//
// Options:
//
//   - core.WithMaxPathLength(n)  never return or expand paths longer than n states.
//   - core.WithContext(ctx)      cancel a long search.
//   - core.WithLogger(l)         debug entry on completion.
//
// Errors:
//
//   - core.ErrNilChildGenerator  from New.
//   - core.ErrNilPredicate, core.ErrNilState, core.ErrOptionViolation at call entry.
package dfs
