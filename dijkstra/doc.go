// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// table of weighted directed arcs.
//
// The algorithm processes vertices in order of increasing distance from the
// source using a min-heap priority queue with the lazy-decrease-key
// strategy: finding a shorter distance pushes a duplicate entry, and stale
// entries are skipped when popped. Arc weights must be non-negative and are
// pre-scanned so invalid input fails fast before any work is done.
//
// Complexity:
//
//   - Time:  O((V + E) log V): each vertex extracted at most once, each
//     relaxation may push one heap entry, heap operations cost O(log V).
//   - Space: O(V + E) for the adjacency lists, distance and predecessor
//     maps, and the worst-case heap under lazy decrease-key.
//
// An unreachable target is not an error: its distance stays +Inf and the
// reconstructed path is empty.
//
// Errors (sentinel):
//
//	ErrEmptySource     - no source vertex was provided.
//	ErrNoArcs          - the arc table is empty.
//	ErrVertexNotFound  - the source or target is absent from the arc table.
//	ErrNegativeWeight  - a negative arc weight was detected.
package dijkstra
