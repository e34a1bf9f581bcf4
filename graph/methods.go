// File: methods.go
// Role: store mutation and query surface. The contractor and pruner mutate
// the graph exclusively through the methods declared here.
//
// Determinism:
//   - VertexIDs() returns ids sorted lexicographically ascending.
//   - EdgeIDs() and EdgesOf() return ids sorted numerically ascending.
package graph

import "sort"

// InsertEdge creates a directed edge with a store-allocated id, creating
// either endpoint vertex lazily with its position on first sighting, and
// updates neighbour sets and the vertex→edge index.
//
// Returns the fresh edge id.
// Complexity: O(1) amortized.
func (g *Graph) InsertEdge(fromID, toID string, fromLat, fromLon, toLat, toLon, d, weight float64, highway string) (int, error) {
	id := g.nextEdgeID
	if err := g.InsertEdgeWithID(id, fromID, toID, fromLat, fromLon, toLat, toLon, d, weight, highway); err != nil {
		return 0, err
	}

	return id, nil
}

// InsertEdgeWithID is InsertEdge with a caller-supplied edge id, used when
// ingesting tables that already carry an edge_id column. The internal
// allocator is advanced past id so later store-allocated ids stay fresh.
//
// Errors: ErrEmptyVertexID for an empty endpoint id, ErrDuplicateEdgeID if
// the id is already in use (live or retired).
func (g *Graph) InsertEdgeWithID(id int, fromID, toID string, fromLat, fromLon, toLat, toLon, d, weight float64, highway string) error {
	if fromID == "" || toID == "" {
		return ErrEmptyVertexID
	}
	if _, dup := g.edges[id]; dup {
		return ErrDuplicateEdgeID
	}
	if _, dup := g.retired[id]; dup {
		return ErrDuplicateEdgeID
	}

	g.ensureVertex(fromID, fromLat, fromLon)
	g.ensureVertex(toID, toLat, toLon)

	e := &Edge{
		ID:         id,
		From:       fromID,
		To:         toID,
		Dist:       d,
		Weight:     weight,
		Highway:    highway,
		InOriginal: true,
		replacing:  make(map[int]struct{}),
	}
	g.linkEdge(e)
	if id >= g.nextEdgeID {
		g.nextEdgeID = id + 1
	}

	return nil
}

// insertSynthetic creates a contractor-emitted edge with a fresh id and the
// set of edge ids it directly subsumes. Endpoints must already exist;
// neighbour sets are expected to have been rewritten by the contractor, so
// only the edge catalog and the index are touched here, plus the
// bidirectional replacement relation.
func (g *Graph) insertSynthetic(fromID, toID string, d, weight float64, highway string, replacing map[int]struct{}) int {
	id := g.nextEdgeID
	g.nextEdgeID++

	e := &Edge{
		ID:        id,
		From:      fromID,
		To:        toID,
		Dist:      d,
		Weight:    weight,
		Highway:   highway,
		replacing: make(map[int]struct{}, len(replacing)),
	}
	for rid := range replacing {
		e.replacing[rid] = struct{}{}
		g.relate(id, rid)
	}

	g.edges[id] = e
	g.indexEdge(fromID, id)
	g.indexEdge(toID, id)

	return id
}

// ReplaceNeighbour rewrites any reference to oldID in v's in and out sets
// to point at newID instead. A set that does not hold oldID is left alone;
// a missing vertex is a no-op.
func (g *Graph) ReplaceNeighbour(v, oldID, newID string) {
	vtx, ok := g.vertices[v]
	if !ok {
		return
	}
	if _, ok := vtx.in[oldID]; ok {
		delete(vtx.in, oldID)
		vtx.in[newID] = struct{}{}
	}
	if _, ok := vtx.out[oldID]; ok {
		delete(vtx.out, oldID)
		vtx.out[newID] = struct{}{}
	}
}

// EraseEdge removes a live edge from the store and the index, and drops the
// endpoint neighbour links unless another live edge still connects the same
// ordered pair.
//
// Errors: ErrEdgeNotFound if id is not live.
func (g *Graph) EraseEdge(id int) error {
	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, id)
	g.unindexEdge(e.From, id)
	g.unindexEdge(e.To, id)

	if !g.hasLiveArc(e.From, e.To) {
		if from, ok := g.vertices[e.From]; ok {
			delete(from.out, e.To)
		}
		if to, ok := g.vertices[e.To]; ok {
			delete(to.in, e.From)
		}
	}

	return nil
}

// EraseVertex removes a vertex together with every live edge incident to
// it, keeping all store invariants.
//
// Errors: ErrVertexNotFound.
func (g *Graph) EraseVertex(id string) error {
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	for _, eid := range g.EdgesOf(id) {
		_ = g.EraseEdge(eid)
	}
	delete(g.vert2edge, id)
	delete(g.vertices, id)

	return nil
}

// retireEdge flags a live edge as replaced by a synthetic one and moves it
// to the retired catalog. Neighbour sets are left untouched: the contractor
// rewires them explicitly via ReplaceNeighbour.
func (g *Graph) retireEdge(id int) {
	e, ok := g.edges[id]
	if !ok {
		return
	}
	e.ReplacedByCompact = true
	delete(g.edges, id)
	g.retired[id] = e
	g.unindexEdge(e.From, id)
	g.unindexEdge(e.To, id)
}

// relate records the replacement relation a↔b and closes it transitively:
// a and everything already related to a become related to b and to
// everything already related to b.
func (g *Graph) relate(a, b int) {
	left := []int{a}
	for c := range g.repl[a] {
		left = append(left, c)
	}
	right := []int{b}
	for c := range g.repl[b] {
		right = append(right, c)
	}
	for _, x := range left {
		for _, y := range right {
			if x != y {
				g.addRelation(x, y)
			}
		}
	}
}

func (g *Graph) addRelation(a, b int) {
	if g.repl[a] == nil {
		g.repl[a] = make(map[int]struct{})
	}
	if g.repl[b] == nil {
		g.repl[b] = make(map[int]struct{})
	}
	g.repl[a][b] = struct{}{}
	g.repl[b][a] = struct{}{}
}

// HasVertex reports whether id exists in the store.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]
	return ok
}

// Vertex returns the vertex with the given id.
// Errors: ErrVertexNotFound.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// Edge returns the live edge with the given id.
// Errors: ErrEdgeNotFound.
func (g *Graph) Edge(id int) (*Edge, error) {
	e, ok := g.edges[id]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// RetiredEdge returns an edge flagged ReplacedByCompact.
// Errors: ErrEdgeNotFound.
func (g *Graph) RetiredEdge(id int) (*Edge, error) {
	e, ok := g.retired[id]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// VertexCount returns the number of live vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of live edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// VertexIDs returns all live vertex ids sorted lexicographically. This is
// the stable enumeration surface every deterministic pass iterates over.
func (g *Graph) VertexIDs() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// EdgeIDs returns all live edge ids sorted ascending.
func (g *Graph) EdgeIDs() []int {
	ids := make([]int, 0, len(g.edges))
	for id := range g.edges {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// EdgesOf returns the sorted ids of the live edges incident to vertex id.
func (g *Graph) EdgesOf(id string) []int {
	set := g.vert2edge[id]
	ids := make([]int, 0, len(set))
	for eid := range set {
		ids = append(ids, eid)
	}
	sort.Ints(ids)

	return ids
}

// Replacements returns the sorted edge ids related to id by the replacement
// relation: every edge that subsumes it, every edge it subsumes, and, by
// transitivity, every other edge those are related to (such as the other
// edges retired by the same contraction). The relation is symmetric and
// transitively closed.
func (g *Graph) Replacements(id int) []int {
	set := g.repl[id]
	ids := make([]int, 0, len(set))
	for other := range set {
		ids = append(ids, other)
	}
	sort.Ints(ids)

	return ids
}

// ensureVertex creates the vertex on first sighting, recording its position.
func (g *Graph) ensureVertex(id string, lat, lon float64) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = &Vertex{
		ID:  id,
		Lat: lat,
		Lon: lon,
		in:  make(map[string]struct{}),
		out: make(map[string]struct{}),
	}
}

// linkEdge registers a live edge: catalog, neighbour sets, index.
func (g *Graph) linkEdge(e *Edge) {
	g.edges[e.ID] = e
	g.vertices[e.From].out[e.To] = struct{}{}
	g.vertices[e.To].in[e.From] = struct{}{}
	g.indexEdge(e.From, e.ID)
	g.indexEdge(e.To, e.ID)
}

func (g *Graph) indexEdge(vid string, eid int) {
	if g.vert2edge[vid] == nil {
		g.vert2edge[vid] = make(map[int]struct{})
	}
	g.vert2edge[vid][eid] = struct{}{}
}

func (g *Graph) unindexEdge(vid string, eid int) {
	if set, ok := g.vert2edge[vid]; ok {
		delete(set, eid)
	}
}

// hasLiveArc reports whether any live edge runs from→to.
func (g *Graph) hasLiveArc(from, to string) bool {
	for eid := range g.vert2edge[from] {
		if e := g.edges[eid]; e != nil && e.From == from && e.To == to {
			return true
		}
	}

	return false
}
