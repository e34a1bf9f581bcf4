package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osm-router/osmprob/graph"
)

// chain inserts a bidirectional unit chain over the given vertex ids.
func chain(t *testing.T, g *graph.Graph, ids ...string) {
	t.Helper()
	for i := 1; i < len(ids); i++ {
		insert(t, g, ids[i-1], ids[i])
		insert(t, g, ids[i], ids[i-1])
	}
}

func TestComponents_SingleComponent(t *testing.T) {
	g := graph.NewGraph()
	chain(t, g, "A", "B", "C")

	membership, largest := g.Components()
	require.Len(t, membership, 3)
	for id, comp := range membership {
		require.Equalf(t, largest, comp, "vertex %s outside the only component", id)
	}
}

func TestComponents_DirectionIgnored(t *testing.T) {
	// One-way edges still connect components in the undirected view.
	g := graph.NewGraph()
	insert(t, g, "A", "B")
	insert(t, g, "C", "B")

	membership, _ := g.Components()
	require.Equal(t, membership["A"], membership["C"])
}

func TestComponents_TwoComponents_LargestWins(t *testing.T) {
	g := graph.NewGraph()
	// Component of 10 vertices.
	chain(t, g, "a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9")
	// Component of 3.
	chain(t, g, "z0", "z1", "z2")

	membership, largest := g.Components()
	require.Equal(t, largest, membership["a0"])
	require.NotEqual(t, largest, membership["z0"])
}

func TestComponents_TieBreaksToLowestIndex(t *testing.T) {
	g := graph.NewGraph()
	chain(t, g, "A", "B") // seeded first (lexicographic)
	chain(t, g, "Y", "Z") // equally sized

	membership, largest := g.Components()
	require.Equal(t, membership["A"], largest)
}

func TestComponents_EmptyGraph(t *testing.T) {
	g := graph.NewGraph()
	membership, largest := g.Components()
	require.Empty(t, membership)
	require.Equal(t, 0, largest)
}

func TestPruneToLargest_SizesTenAndThree(t *testing.T) {
	g := graph.NewGraph()
	chain(t, g, "a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9")
	chain(t, g, "z0", "z1", "z2")

	g.PruneToLargest()
	require.Equal(t, 10, g.VertexCount())
	require.False(t, g.HasVertex("z0"))
	require.Equal(t, 18, g.EdgeCount()) // 9 segments, both directions

	// Connected when viewed undirected: one component remains.
	membership, largest := g.Components()
	for _, comp := range membership {
		require.Equal(t, largest, comp)
	}
}

func TestPruneToLargest_KeepsInvariants(t *testing.T) {
	g := graph.NewGraph()
	chain(t, g, "A", "B", "C")
	insert(t, g, "x", "y")

	g.PruneToLargest()
	for _, eid := range g.EdgeIDs() {
		e, err := g.Edge(eid)
		require.NoError(t, err)
		require.True(t, g.HasVertex(e.From))
		require.True(t, g.HasVertex(e.To))
	}
	require.ElementsMatch(t, []string{"A", "B", "C"}, g.VertexIDs())
}
