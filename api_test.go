// Package osmprob_test runs the end-to-end scenarios over the public
// facade: trivial routing, chain contraction, junction preservation,
// component pruning, stochastic routing on the square-with-diagonals
// graph, and the unreachable-target contract.
package osmprob_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osm-router/osmprob"
	"github.com/osm-router/osmprob/geo"
	"github.com/osm-router/osmprob/network"
	"github.com/osm-router/osmprob/rsp"
)

// oneKmLat spans one kilometre of latitude (or of longitude on the
// equator): 1/111.195 degrees.
const oneKmLat = 1.0 / 111.195

// ------------------------------------------------------------------------
// Scenario 1: two-vertex trivial graph.
// ------------------------------------------------------------------------

func TestScenario_TwoVertexTrivialGraph(t *testing.T) {
	d := geo.Haversine(0, 0, 0, oneKmLat)
	require.InDelta(t, 1.0, d, 0.01)

	edges := []osmprob.Arc{
		{FromID: "A", ToID: "B", DWeighted: d},
		{FromID: "B", ToID: "A", DWeighted: d},
	}
	path, err := osmprob.RouteDijkstra(edges, "A", "B")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, path)
}

// ------------------------------------------------------------------------
// Scenario 2: linear chain of 5 vertices contracts to its endpoints.
// ------------------------------------------------------------------------

// equatorChain builds the bidirectional raw edge table of a chain of n
// vertices one kilometre apart along the equator, edge ids 0..2(n-1)-1.
func equatorChain(n int) []osmprob.RawEdge {
	var raw []osmprob.RawEdge
	id := 0
	for i := 1; i < n; i++ {
		lonA, lonB := float64(i-1)*oneKmLat, float64(i)*oneKmLat
		d := geo.Haversine(lonA, 0, lonB, 0)
		a, b := vertexName(i-1), vertexName(i)

		raw = append(raw, osmprob.RawEdge{
			FromID: a, ToID: b,
			FromLon: lonA, ToLon: lonB,
			EdgeID: id, D: d, DWeighted: d, Highway: "residential",
		})
		id++
		raw = append(raw, osmprob.RawEdge{
			FromID: b, ToID: a,
			FromLon: lonB, ToLon: lonA,
			EdgeID: id, D: d, DWeighted: d, Highway: "residential",
		})
		id++
	}

	return raw
}

func vertexName(i int) string {
	return string(rune('A' + i))
}

func TestScenario_FiveVertexChainContracts(t *testing.T) {
	raw := equatorChain(5)
	res, err := osmprob.MakeCompactGraph(raw)
	require.NoError(t, err)

	// Exactly the two endpoint vertices and one synthetic edge per
	// direction survive.
	require.Len(t, res.Compact, 2)
	verts := make(map[string]struct{})
	for _, e := range res.Compact {
		verts[e.FromID] = struct{}{}
		verts[e.ToID] = struct{}{}
		require.InDelta(t, 4.0, e.D, 0.04)
		require.InDelta(t, 4.0, e.DWeighted, 0.04)
		require.False(t, e.FromID == e.ToID)
	}
	require.Len(t, verts, 2)
	require.Contains(t, verts, "A")
	require.Contains(t, verts, "E")

	// The replacement map enumerates 4 entries per synthetic edge.
	require.Len(t, res.Map, 8)

	// The original table is echoed unchanged.
	require.Equal(t, raw, res.Original)
}

// ------------------------------------------------------------------------
// Scenario 3: a Y-junction centre is not contractible.
// ------------------------------------------------------------------------

func TestScenario_YJunctionSurvives(t *testing.T) {
	var raw []osmprob.RawEdge
	id := 0
	for _, n := range []string{"A", "B", "D"} {
		raw = append(raw,
			osmprob.RawEdge{FromID: "C", ToID: n, EdgeID: id, D: 1, DWeighted: 1},
			osmprob.RawEdge{FromID: n, ToID: "C", EdgeID: id + 1, D: 1, DWeighted: 1})
		id += 2
	}

	res, err := osmprob.MakeCompactGraph(raw)
	require.NoError(t, err)

	// Nothing to contract: all six original edges stay live around C.
	require.Len(t, res.Compact, 6)
	require.Empty(t, res.Map)
	for _, e := range res.Compact {
		require.True(t, e.FromID == "C" || e.ToID == "C")
	}
}

// ------------------------------------------------------------------------
// Scenario 4: only the largest component survives pruning.
// ------------------------------------------------------------------------

func TestScenario_SmallComponentPruned(t *testing.T) {
	// A 10-vertex chain and a disjoint 3-vertex chain; after pruning and
	// contraction only the larger chain's endpoints remain.
	raw := equatorChain(10)
	id := 100
	for _, pair := range [][2]string{{"x", "y"}, {"y", "z"}} {
		raw = append(raw,
			osmprob.RawEdge{FromID: pair[0], ToID: pair[1], EdgeID: id, D: 1, DWeighted: 1},
			osmprob.RawEdge{FromID: pair[1], ToID: pair[0], EdgeID: id + 1, D: 1, DWeighted: 1})
		id += 2
	}

	res, err := osmprob.MakeCompactGraph(raw)
	require.NoError(t, err)

	for _, e := range res.Compact {
		require.NotContains(t, []string{"x", "y", "z"}, e.FromID)
		require.NotContains(t, []string{"x", "y", "z"}, e.ToID)
	}
	// The surviving chain contracts to its endpoints.
	require.Len(t, res.Compact, 2)
	require.InDelta(t, 9.0, res.Compact[0].D, 0.09)
}

// ------------------------------------------------------------------------
// Scenario 5: stochastic routing on the square with diagonals.
// ------------------------------------------------------------------------

// squareWithDiagonals is a 6-vertex graph: the cycle c1-c2-c3-c4 plus the
// two diagonals threaded through middle vertices m1 and m2, all
// bidirectional unit edges.
func squareWithDiagonals() []osmprob.Arc {
	pairs := [][2]string{
		{"c1", "c2"}, {"c2", "c3"}, {"c3", "c4"}, {"c4", "c1"},
		{"c1", "m1"}, {"m1", "c3"},
		{"c2", "m2"}, {"m2", "c4"},
	}
	var edges []osmprob.Arc
	for _, p := range pairs {
		edges = append(edges,
			osmprob.Arc{FromID: p[0], ToID: p[1], DWeighted: 1},
			osmprob.Arc{FromID: p[1], ToID: p[0], DWeighted: 1})
	}

	return edges
}

func TestScenario_RouteProbSquare(t *testing.T) {
	edges := squareWithDiagonals()
	probs, err := osmprob.RouteProb(edges, "c1", "c3", 1.0)
	if err != nil {
		// An approximate result is acceptable when the cap is hit; any
		// other error is a failure.
		require.ErrorIs(t, err, rsp.ErrNonConvergence)
	}
	require.Len(t, probs, len(edges))

	// Strictly positive probability on every edge of every minimum-length
	// path (here: on every edge, since all carry transition mass).
	for i, p := range probs {
		require.Greaterf(t, p, 0.0, "edge %d", i)
	}

	// The out-edges of the source form a cut separating it from the sink:
	// their probabilities sum to one.
	var cut float64
	for i, e := range edges {
		if e.FromID == "c1" {
			cut += probs[i]
		}
	}
	require.InDelta(t, 1.0, cut, 1e-4)
}

func TestRouteDijkstraWithDistances(t *testing.T) {
	d := geo.Haversine(0, 0, 0, oneKmLat)
	edges := []osmprob.Arc{
		{FromID: "A", ToID: "B", DWeighted: d},
		{FromID: "B", ToID: "C", DWeighted: d},
	}
	path, dist, err := osmprob.RouteDijkstraWithDistances(edges, "A", "C")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, path)
	require.Len(t, dist, 3)
	require.Equal(t, 0.0, dist[0])
	require.InDelta(t, 2*d, dist[2], 1e-12)
}

// ------------------------------------------------------------------------
// Scenario 6: unreachable target is a success with an empty path.
// ------------------------------------------------------------------------

func TestScenario_UnreachableTarget(t *testing.T) {
	edges := []osmprob.Arc{
		{FromID: "A", ToID: "B", DWeighted: 1},
		{FromID: "C", ToID: "D", DWeighted: 1},
	}
	path, err := osmprob.RouteDijkstra(edges, "A", "D")
	require.NoError(t, err)
	require.Empty(t, path)
}

// ------------------------------------------------------------------------
// Boundary validation.
// ------------------------------------------------------------------------

func TestRouteDijkstra_EmptyTable(t *testing.T) {
	_, err := osmprob.RouteDijkstra(nil, "A", "B")
	require.ErrorIs(t, err, osmprob.ErrEmptyGraph)
}

func TestRouteDijkstra_UnknownVertex(t *testing.T) {
	edges := []osmprob.Arc{{FromID: "A", ToID: "B", DWeighted: 1}}
	_, err := osmprob.RouteDijkstra(edges, "A", "Z")
	require.ErrorIs(t, err, osmprob.ErrUnknownVertex)

	_, err = osmprob.RouteDijkstra(edges, "Z", "B")
	require.ErrorIs(t, err, osmprob.ErrUnknownVertex)
}

func TestRouteDijkstra_NonFiniteWeight(t *testing.T) {
	edges := []osmprob.Arc{{FromID: "A", ToID: "B", DWeighted: math.Inf(1)}}
	_, err := osmprob.RouteDijkstra(edges, "A", "B")
	require.ErrorIs(t, err, osmprob.ErrMalformedInput)
}

func TestRouteProb_BadEta(t *testing.T) {
	edges := []osmprob.Arc{{FromID: "A", ToID: "B", DWeighted: 1}}
	for _, eta := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := osmprob.RouteProb(edges, "A", "B", eta)
		require.ErrorIsf(t, err, osmprob.ErrMalformedInput, "eta=%g", eta)
	}
}

func TestRouteProb_EmptyTable(t *testing.T) {
	_, err := osmprob.RouteProb(nil, "A", "B", 1)
	require.ErrorIs(t, err, osmprob.ErrEmptyGraph)
}

func TestMakeCompactGraph_EmptyTable(t *testing.T) {
	_, err := osmprob.MakeCompactGraph(nil)
	require.ErrorIs(t, err, osmprob.ErrEmptyGraph)
}

func TestMakeCompactGraph_DuplicateEdgeID(t *testing.T) {
	raw := []osmprob.RawEdge{
		{FromID: "A", ToID: "B", EdgeID: 1, D: 1, DWeighted: 1},
		{FromID: "B", ToID: "C", EdgeID: 1, D: 1, DWeighted: 1},
	}
	_, err := osmprob.MakeCompactGraph(raw)
	require.ErrorIs(t, err, osmprob.ErrMalformedInput)
}

func TestMakeCompactGraph_NonFiniteValue(t *testing.T) {
	raw := []osmprob.RawEdge{
		{FromID: "A", ToID: "B", EdgeID: 0, D: math.NaN(), DWeighted: 1},
	}
	_, err := osmprob.MakeCompactGraph(raw)
	require.ErrorIs(t, err, osmprob.ErrMalformedInput)
}

func TestMakeCompactGraph_EmptyVertexID(t *testing.T) {
	raw := []osmprob.RawEdge{
		{FromID: "", ToID: "B", EdgeID: 0, D: 1, DWeighted: 1},
	}
	_, err := osmprob.MakeCompactGraph(raw)
	require.ErrorIs(t, err, osmprob.ErrMalformedInput)
}

// ------------------------------------------------------------------------
// Pipeline: features all the way to routing.
// ------------------------------------------------------------------------

func TestPipeline_LinesToRoute(t *testing.T) {
	// One two-way street of three points, one kilometre per segment.
	features := []network.Feature{
		{
			OSMID:     "way/1",
			Coords:    [][2]float64{{0, 0}, {0, oneKmLat}, {0, 2 * oneKmLat}},
			VertexIDs: []string{"n1", "n2", "n3"},
		},
	}
	table, err := osmprob.LinesAsNetwork(features)
	require.NoError(t, err)
	require.Equal(t, 4, table.Len())

	raw := make([]osmprob.RawEdge, table.Len())
	for i := range table.Numeric {
		num, ids := table.Numeric[i], table.IDs[i]
		raw[i] = osmprob.RawEdge{
			FromID: ids.FromID, ToID: ids.ToID,
			FromLon: num.FromLon, FromLat: num.FromLat,
			ToLon: num.ToLon, ToLat: num.ToLat,
			EdgeID: i, D: num.D, DWeighted: num.D,
			Highway: "residential",
		}
	}

	res, err := osmprob.MakeCompactGraph(raw)
	require.NoError(t, err)
	require.Len(t, res.Compact, 2) // n2 contracted away

	edges := make([]osmprob.Arc, len(res.Compact))
	for i, e := range res.Compact {
		edges[i] = osmprob.Arc{FromID: e.FromID, ToID: e.ToID, DWeighted: e.DWeighted}
	}
	path, err := osmprob.RouteDijkstra(edges, "n1", "n3")
	require.NoError(t, err)
	require.Equal(t, []string{"n1", "n3"}, path)
}
