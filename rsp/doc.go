// Package rsp implements the randomised-shortest-path engine: Saerens-style
// entropy-regularised traversal probabilities over a weighted arc table.
//
// Instead of the single optimal route, RSP considers a distribution over
// paths between two endpoints that minimises expected cost penalised by a
// Shannon-entropy term of weight η, and reports, for every arc, the
// probability that a path drawn from that distribution traverses it. As
// η → 0 the distribution collapses onto deterministic shortest paths; as
// η → ∞ it approaches the uniform random walk.
//
// Mechanics: the live graph of n vertices is embedded into (n+2)-square
// matrices with a virtual source (row 0) that deterministically escapes
// into the start vertex and a virtual absorbing sink (row n+1) fed by the
// end vertex, which is what makes (I − Q) invertible. The fundamental
// matrix N = (I − Q)⁻¹ is computed once per request; the fixed-point then
// iterates row-normalised exponentiations of the cost-adjusted transition
// matrix until the L1 difference between successive iterates drops below
// tolerance.
//
// The update is applied only on the support of the initial transition
// structure: entries that start at zero (no edge) stay zero, and rows whose
// unnormalised sum is zero are left as zero rows.
//
// Complexity: one O(n³) inversion plus O(n²) per iteration.
//
// Errors (sentinel):
//
//	ErrNoArcs             - the arc table is empty.
//	ErrVertexNotFound     - start or end absent from the arc table.
//	ErrSingularTransition - (I − Q) is not invertible; an internal
//	                        invariant violation on well-formed input.
//	ErrNonConvergence     - the iteration cap was hit before tolerance;
//	                        the error carries the final residual and the
//	                        approximate result is still returned.
package rsp
