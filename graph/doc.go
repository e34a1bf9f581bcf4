// Package graph holds the in-memory road-network store and the structural
// transformations the routing engines depend on: weakly-connected component
// identification, pruning to the largest component, and degree-2 chain
// contraction.
//
// The store keeps vertices and edges in id-keyed maps with a vertex→edge
// index maintained incrementally, so every sub-computation borrows read-only
// views and the contractor mutates through documented methods only. Objects
// reference one another by id, never by pointer cycles, which keeps deletion
// local.
//
// Contraction collapses every chain of "intermediate" vertices into one
// synthetic edge per surviving direction, summing distances and weights.
// A vertex is intermediate when it has one in- and one out-neighbour onto
// two distinct neighbours (single), or two of each onto the same two
// neighbours (double). Each
// synthetic edge records the set of edge ids it directly subsumes (original
// or earlier synthetic), and the
// store maintains a transitively closed, bidirectional replacement relation
// so that original↔compact lookups are direct.
//
// Determinism: every enumeration that feeds an allocation or contraction
// decision walks ids in sorted order (lexicographic for vertices, numeric
// for edges). Synthetic edge ids are therefore reproducible for a given
// input, and so is the whole contracted graph.
//
// Errors (sentinel):
//
//	ErrVertexNotFound   - operation referenced a vertex that does not exist.
//	ErrEdgeNotFound     - operation referenced an edge that does not exist.
//	ErrDuplicateEdgeID  - InsertEdgeWithID was given an id already in use.
//	ErrEmptyVertexID    - a vertex id argument was the empty string.
package graph
