// File: api.go
// Role: thin, deterministic public facade over the subpackages. The four
// operations are pure functions of their inputs: they validate fast, never
// commit partial state, and leave all algorithmic work to network, graph,
// dijkstra and rsp.
package osmprob

import (
	"fmt"
	"math"

	"github.com/osm-router/osmprob/dijkstra"
	"github.com/osm-router/osmprob/graph"
	"github.com/osm-router/osmprob/network"
	"github.com/osm-router/osmprob/rsp"
)

// RawEdge is one row of the ingested edge table consumed by
// MakeCompactGraph, matching the output of LinesAsNetwork joined with its
// edge ids and routing weights.
type RawEdge struct {
	FromID, ToID     string
	FromLon, FromLat float64
	ToLon, ToLat     float64
	EdgeID           int
	D                float64
	DWeighted        float64
	Highway          string
}

// CompactEdge is one row of the contracted edge table: a live edge of the
// compact graph with its endpoint coordinates resolved.
type CompactEdge struct {
	FromID, ToID     string
	EdgeID           int
	D                float64
	DWeighted        float64
	FromLat, FromLon float64
	ToLat, ToLon     float64
	Highway          string
}

// EdgeMapping relates one compact edge to one edge it directly replaces.
type EdgeMapping struct {
	IDCompact  int
	IDOriginal int
}

// CompactResult bundles the three tables returned by MakeCompactGraph.
type CompactResult struct {
	// Compact holds the live edges of the contracted graph, sorted by id.
	Compact []CompactEdge

	// Original echoes the ingested rows unchanged.
	Original []RawEdge

	// Map enumerates, for every compact edge, the edge ids it directly
	// replaces (original or earlier synthetic), sorted by compact id then
	// replaced id.
	Map []EdgeMapping
}

// Arc is one row of the lightweight edge tables consumed by RouteDijkstra
// and RouteProb.
type Arc struct {
	FromID, ToID string
	DWeighted    float64
}

// LinesAsNetwork converts polyline features into parallel numeric and
// identifier edge tables, one row per directed edge. See package network
// for the oneway semantics and the error surface (ErrMalformedInput for a
// missing osm_id or geometry, an id/coordinate row-count mismatch, or a
// non-finite coordinate).
func LinesAsNetwork(features []network.Feature) (*network.EdgeTable, error) {
	return network.LinesAsNetwork(features)
}

// MakeCompactGraph builds the road graph from raw edge rows, keeps only the
// largest weakly-connected component, contracts every degree-2 chain, and
// returns the compact edge table, the untouched original rows, and the map
// from each compact edge to the edges it directly replaces.
//
// Errors: ErrEmptyGraph for an empty table; ErrMalformedInput for empty
// vertex ids, non-finite numbers, or duplicate edge ids.
func MakeCompactGraph(raw []RawEdge) (*CompactResult, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyGraph
	}

	g := graph.NewGraph()
	for i, r := range raw {
		if r.FromID == "" || r.ToID == "" {
			return nil, fmt.Errorf("%w: row %d has an empty vertex id", ErrMalformedInput, i)
		}
		for _, v := range []float64{r.FromLon, r.FromLat, r.ToLon, r.ToLat, r.D, r.DWeighted} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: row %d has a non-finite value", ErrMalformedInput, i)
			}
		}
		err := g.InsertEdgeWithID(r.EdgeID, r.FromID, r.ToID,
			r.FromLat, r.FromLon, r.ToLat, r.ToLon, r.D, r.DWeighted, r.Highway)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedInput, i, err)
		}
	}

	g.PruneToLargest()
	g.Contract()

	res := &CompactResult{
		Compact:  make([]CompactEdge, 0, g.EdgeCount()),
		Original: raw,
	}
	for _, eid := range g.EdgeIDs() {
		e, _ := g.Edge(eid)
		from, _ := g.Vertex(e.From)
		to, _ := g.Vertex(e.To)
		res.Compact = append(res.Compact, CompactEdge{
			FromID:    e.From,
			ToID:      e.To,
			EdgeID:    e.ID,
			D:         e.Dist,
			DWeighted: e.Weight,
			FromLat:   from.Lat,
			FromLon:   from.Lon,
			ToLat:     to.Lat,
			ToLon:     to.Lon,
			Highway:   e.Highway,
		})
		for _, rid := range e.ReplacingEdges() {
			res.Map = append(res.Map, EdgeMapping{IDCompact: e.ID, IDOriginal: rid})
		}
	}

	return res, nil
}

// RouteDijkstra computes the shortest path from start to end over the edge
// table and returns the ordered vertex id sequence, beginning with start.
// An unreachable end is a successful call with an empty sequence, not an
// error.
//
// Errors: ErrEmptyGraph for an empty table; ErrMalformedInput for a
// non-finite weight; ErrUnknownVertex when start or end does not appear in
// the table; dijkstra.ErrNegativeWeight passes through.
func RouteDijkstra(edges []Arc, start, end string) ([]string, error) {
	arcs, err := toArcs(edges, start, end)
	if err != nil {
		return nil, err
	}

	_, prev, err := dijkstra.Run(arcs, dijkstra.Source(start), dijkstra.WithTarget(end))
	if err != nil {
		return nil, err
	}

	return dijkstra.PathTo(prev, start, end), nil
}

// RouteDijkstraWithDistances is RouteDijkstra returning, alongside the
// vertex sequence, the cumulative distance from start at every vertex of
// the path. Both slices are empty for an unreachable end.
func RouteDijkstraWithDistances(edges []Arc, start, end string) ([]string, []float64, error) {
	arcs, err := toArcs(edges, start, end)
	if err != nil {
		return nil, nil, err
	}

	route, err := dijkstra.RouteTo(arcs, start, end)
	if err != nil {
		return nil, nil, err
	}

	return route.Vertices, route.CumDist, nil
}

// RouteProb computes the randomised-shortest-path traversal probability of
// every edge of the table for a route from start to end with entropy
// weight eta, in input row order.
//
// Errors: ErrEmptyGraph, ErrMalformedInput (non-finite weight or
// non-positive eta), ErrUnknownVertex; rsp.ErrSingularTransition passes
// through. On rsp.ErrNonConvergence the approximate probabilities are
// returned together with the error so callers can decide whether to accept
// them.
func RouteProb(edges []Arc, start, end string, eta float64) ([]float64, error) {
	if eta <= 0 || math.IsNaN(eta) || math.IsInf(eta, 0) {
		return nil, fmt.Errorf("%w: eta must be a positive finite number, got %g",
			ErrMalformedInput, eta)
	}
	arcs, err := toArcs(edges, start, end)
	if err != nil {
		return nil, err
	}

	rspArcs := make([]rsp.Arc, len(arcs))
	for i, a := range arcs {
		rspArcs[i] = rsp.Arc{From: a.From, To: a.To, Weight: a.Weight}
	}

	res, err := rsp.Probabilities(rspArcs, start, end, rsp.WithEta(eta))
	if res == nil {
		return nil, err
	}

	return res.Probs, err
}

// toArcs validates an edge table and the presence of both endpoints, and
// converts the rows for the routing engines.
func toArcs(edges []Arc, start, end string) ([]dijkstra.Arc, error) {
	if len(edges) == 0 {
		return nil, ErrEmptyGraph
	}

	arcs := make([]dijkstra.Arc, len(edges))
	vertices := make(map[string]struct{}, len(edges))
	for i, e := range edges {
		if e.FromID == "" || e.ToID == "" {
			return nil, fmt.Errorf("%w: row %d has an empty vertex id", ErrMalformedInput, i)
		}
		if math.IsNaN(e.DWeighted) || math.IsInf(e.DWeighted, 0) {
			return nil, fmt.Errorf("%w: row %d has a non-finite weight", ErrMalformedInput, i)
		}
		arcs[i] = dijkstra.Arc{From: e.FromID, To: e.ToID, Weight: e.DWeighted}
		vertices[e.FromID] = struct{}{}
		vertices[e.ToID] = struct{}{}
	}

	if _, ok := vertices[start]; !ok {
		return nil, fmt.Errorf("%w: start %q", ErrUnknownVertex, start)
	}
	if _, ok := vertices[end]; !ok {
		return nil, fmt.Errorf("%w: end %q", ErrUnknownVertex, end)
	}

	return arcs, nil
}
