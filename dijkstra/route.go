package dijkstra

// Route is a reconstructed shortest path: the ordered vertex sequence from
// source to target and, parallel to it, the cumulative distance from the
// source at each vertex (CumDist[0] == 0).
type Route struct {
	Vertices []string
	CumDist  []float64
}

// Len returns the number of vertices on the route.
func (r *Route) Len() int { return len(r.Vertices) }

// TotalDist returns the full length of the route, zero for an empty route.
func (r *Route) TotalDist() float64 {
	if len(r.CumDist) == 0 {
		return 0
	}

	return r.CumDist[len(r.CumDist)-1]
}

// RouteTo runs Dijkstra from source with early exit at target and returns
// the reconstructed route with its cumulative distances. An unreachable
// target yields an empty route and no error; validation errors are those
// of Run.
func RouteTo(arcs []Arc, source, target string) (*Route, error) {
	dist, prev, err := Run(arcs, Source(source), WithTarget(target))
	if err != nil {
		return nil, err
	}

	vertices := PathTo(prev, source, target)
	route := &Route{
		Vertices: vertices,
		CumDist:  make([]float64, len(vertices)),
	}
	for i, v := range vertices {
		route.CumDist[i] = dist[v]
	}

	return route, nil
}
