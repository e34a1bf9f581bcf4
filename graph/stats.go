// File: stats.go
// Role: read-only O(V+E) summary of the store, for diagnostics and test
// assertions.
package graph

// GraphStats is a snapshot of the store's size and composition at the time
// of the call.
type GraphStats struct {
	// VertexCount and EdgeCount are the live catalog sizes.
	VertexCount int
	EdgeCount   int

	// RetiredEdgeCount counts edges flagged ReplacedByCompact.
	RetiredEdgeCount int

	// OriginalEdgeCount and SyntheticEdgeCount classify the live edges.
	OriginalEdgeCount  int
	SyntheticEdgeCount int

	// IntermediateSingle and IntermediateDouble count live vertices whose
	// respective predicate holds. After Contract they count only vertices
	// the incident-edge-count guard left in place (e.g. parallel edges).
	IntermediateSingle int
	IntermediateDouble int
}

// Stats produces a read-only summary of the graph. One pass over each
// catalog; the result is a value, detached from the store.
//
// Complexity: O(V + E).
func (g *Graph) Stats() GraphStats {
	stats := GraphStats{
		VertexCount:      len(g.vertices),
		EdgeCount:        len(g.edges),
		RetiredEdgeCount: len(g.retired),
	}
	for _, e := range g.edges {
		if e.InOriginal {
			stats.OriginalEdgeCount++
		} else {
			stats.SyntheticEdgeCount++
		}
	}
	for _, v := range g.vertices {
		if v.IsIntermediateSingle() {
			stats.IntermediateSingle++
		}
		if v.IsIntermediateDouble() {
			stats.IntermediateDouble++
		}
	}

	return stats
}
