package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
)

// Run computes shortest distances from Options.Source to every vertex of
// the arc table (or up to Options.Target when early exit is enabled).
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (+Inf if unreachable).
//   - prev: predecessor map; prev[v] == u means the shortest path to v
//     arrives through u. For the source and unreachable vertices,
//     prev[v] == "".
//   - err:  error if inputs are invalid or a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. The arc table must be non-empty (ErrNoArcs).
//  3. No arc may have negative weight (ErrNegativeWeight).
//  4. Source must appear in the arc table (ErrVertexNotFound).
//  5. If Target is set it must appear in the arc table (ErrVertexNotFound).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Run(arcs []Arc, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if len(arcs) == 0 {
		return nil, nil, ErrNoArcs
	}

	// Build adjacency lists and the vertex catalog; fail fast on negative
	// weights while scanning.
	adj := make(map[string][]Arc, len(arcs))
	vertices := make(map[string]struct{}, len(arcs))
	for _, a := range arcs {
		if a.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: arc %s→%s weight=%g",
				ErrNegativeWeight, a.From, a.To, a.Weight)
		}
		adj[a.From] = append(adj[a.From], a)
		vertices[a.From] = struct{}{}
		vertices[a.To] = struct{}{}
	}

	if _, ok := vertices[cfg.Source]; !ok {
		return nil, nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, cfg.Source)
	}
	if cfg.Target != "" {
		if _, ok := vertices[cfg.Target]; !ok {
			return nil, nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, cfg.Target)
		}
	}

	r := &runner{
		adj:     adj,
		options: cfg,
		dist:    make(map[string]float64, len(vertices)),
		prev:    make(map[string]string, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
	}
	r.init(vertices)
	r.process()

	return r.dist, r.prev, nil
}

// PathTo reconstructs the vertex sequence from source to target by
// back-tracing the predecessor map returned by Run. The result starts with
// the source and ends with the target; it is empty when the target is not
// reachable (or when target equals the empty string).
func PathTo(prev map[string]string, source, target string) []string {
	if target == "" {
		return nil
	}
	if target == source {
		return []string{source}
	}
	if prev[target] == "" {
		return nil // unreachable: nothing ever relaxed into target
	}

	var path []string
	for v := target; v != ""; v = prev[v] {
		path = append(path, v)
	}
	// Back-trace produced target..source; reverse in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state of a single execution.
type runner struct {
	adj     map[string][]Arc
	options Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

// init sets dist[v] = +Inf for every vertex, dist[source] = 0, and seeds
// the heap with the source.
func (r *runner) init(vertices map[string]struct{}) {
	for v := range vertices {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process is the main loop: extract the minimum-distance vertex, relax its
// outgoing arcs, stop when the heap empties or the target is finalised.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale heap entry under lazy decrease-key.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		// Early exit: the target's distance is final the moment it pops.
		if r.options.Target != "" && u == r.options.Target {
			return
		}

		for _, a := range r.adj[u] {
			newDist := r.dist[u] + a.Weight
			if newDist >= r.dist[a.To] {
				continue
			}
			r.dist[a.To] = newDist
			r.prev[a.To] = u
			heap.Push(&r.pq, &nodeItem{id: a.To, dist: newDist})
		}
	}
}

// nodeItem is one (vertex, distance) heap entry.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, used with
// the lazy-decrease-key pattern: outdated entries remain in the heap and
// are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
