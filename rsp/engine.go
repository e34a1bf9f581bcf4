package rsp

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Result is the outcome of one RSP computation.
type Result struct {
	// Probs holds one probability per input arc, in input order: the
	// converged Q entry for the arc's (from, to) pair.
	Probs []float64

	// Q is the converged transition matrix trimmed of the virtual source
	// row and column. Rows 0..n-1 are the live vertices in sorted id
	// order; row n is the virtual absorbing sink (a zero row).
	Q *mat.Dense

	// Iters is the number of fixed-point iterations performed; Residual
	// the final L1 difference between successive iterates.
	Iters    int
	Residual float64
}

// Probabilities computes entropy-regularised traversal probabilities for
// every arc of the table, for a route from start to end.
//
// Validation (in order): the table must be non-empty (ErrNoArcs) and both
// endpoints must appear in it (ErrVertexNotFound). The fundamental matrix
// is inverted once (ErrSingularTransition on failure); the fixed point then
// iterates until the L1 residual drops below Options.Tol or Options.MaxIter
// is hit, in which case the approximate result is returned together with a
// *NonConvergenceError.
//
// Complexity: O(n³) for the inversion, O(n²) per iteration, n = vertex count.
func Probabilities(arcs []Arc, start, end string, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(arcs) == 0 {
		return nil, ErrNoArcs
	}

	e, err := newEngine(arcs, start, end, cfg)
	if err != nil {
		return nil, err
	}
	if err = e.invert(); err != nil {
		return nil, err
	}

	iterErr := e.iterate()
	res := e.result(arcs)
	if iterErr != nil {
		return res, iterErr
	}

	return res, nil
}

// engine holds the matrices and scratch vectors of one computation. All
// indices are matrix rows: 0 is the virtual source, 1..n the live vertices
// in sorted id order, n+1 the virtual absorbing sink.
type engine struct {
	cfg Options

	dim      int            // n + 2
	index    map[string]int // vertex id → matrix row 1..n
	srcRow   int
	endRow   int
	sinkCol  int
	d        *mat.Dense // cost matrix, +Inf where no transition exists
	d0       *mat.Dense // d with non-finite entries replaced by zero
	q        *mat.Dense // current transition matrix
	n        *mat.Dense // fundamental matrix (I−Q)⁻¹
	support  [][]int    // per-row columns of the initial transition structure
	iters    int
	residual float64
}

// newEngine indexes the vertices and builds the cost and initial transition
// matrices, including the virtual source escape and the absorbing-sink
// scaling of the end row.
func newEngine(arcs []Arc, start, end string, cfg Options) (*engine, error) {
	// Vertex catalog in sorted id order; distinct out-neighbour sets.
	seen := make(map[string]struct{}, len(arcs))
	outs := make(map[string]map[string]struct{}, len(arcs))
	for _, a := range arcs {
		seen[a.From] = struct{}{}
		seen[a.To] = struct{}{}
		if outs[a.From] == nil {
			outs[a.From] = make(map[string]struct{})
		}
		outs[a.From][a.To] = struct{}{}
	}
	if _, ok := seen[start]; !ok {
		return nil, fmt.Errorf("%w: start %q", ErrVertexNotFound, start)
	}
	if _, ok := seen[end]; !ok {
		return nil, fmt.Errorf("%w: end %q", ErrVertexNotFound, end)
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	e := &engine{
		cfg:   cfg,
		dim:   len(ids) + 2,
		index: make(map[string]int, len(ids)),
	}
	for i, id := range ids {
		e.index[id] = i + 1
	}
	e.srcRow = e.index[start]
	e.endRow = e.index[end]
	e.sinkCol = e.dim - 1

	e.buildCost(arcs)
	e.buildTransition(ids, outs)

	return e, nil
}

// buildCost fills D: +Inf everywhere, zero diagonal, arc weights on live
// transitions, and the deterministic unit-cost escape from the virtual
// source into the start vertex. D₀ mirrors D with non-finite entries set to
// zero for the expected-cost products.
func (e *engine) buildCost(arcs []Arc) {
	inf := math.Inf(1)
	e.d = mat.NewDense(e.dim, e.dim, nil)
	for r := 0; r < e.dim; r++ {
		for c := 0; c < e.dim; c++ {
			if r == c {
				continue // diagonal stays zero
			}
			e.d.Set(r, c, inf)
		}
	}
	for _, a := range arcs {
		e.d.Set(e.index[a.From], e.index[a.To], a.Weight)
	}
	e.d.Set(0, e.srcRow, 1.0)

	e.d0 = mat.NewDense(e.dim, e.dim, nil)
	for r := 0; r < e.dim; r++ {
		for c := 0; c < e.dim; c++ {
			if v := e.d.At(r, c); !math.IsInf(v, 0) && !math.IsNaN(v) {
				e.d0.Set(r, c, v)
			}
		}
	}
}

// buildTransition fills the substochastic Q: uniform 1/k over each vertex's
// distinct out-neighbours, probability one from the virtual source into the
// start vertex, and the end row rescaled by k/(k+1) with the remaining mass
// on the absorbing sink. The sink row stays zero. The support of this
// initial structure is recorded per row; the fixed-point update never
// leaves it.
func (e *engine) buildTransition(ids []string, outs map[string]map[string]struct{}) {
	e.q = mat.NewDense(e.dim, e.dim, nil)
	e.q.Set(0, e.srcRow, 1.0)

	for _, id := range ids {
		row := e.index[id]
		k := len(outs[id])
		if k == 0 && row != e.endRow {
			continue
		}

		if row == e.endRow {
			// Absorbing transition: the end vertex leaks into the sink.
			scale := float64(k) / float64(k+1)
			for nb := range outs[id] {
				e.q.Set(row, e.index[nb], scale/float64(k))
			}
			e.q.Set(row, e.sinkCol, 1.0/float64(k+1))

			continue
		}

		p := 1.0 / float64(k)
		for nb := range outs[id] {
			e.q.Set(row, e.index[nb], p)
		}
	}

	e.support = make([][]int, e.dim)
	for r := 0; r < e.dim; r++ {
		for c := 0; c < e.dim; c++ {
			if e.q.At(r, c) > 0 {
				e.support[r] = append(e.support[r], c)
			}
		}
	}
}

// invert computes the fundamental matrix N = (I − Q)⁻¹, once per request.
func (e *engine) invert() error {
	imq := mat.NewDense(e.dim, e.dim, nil)
	for r := 0; r < e.dim; r++ {
		imq.Set(r, r, 1.0)
	}
	imq.Sub(imq, e.q)

	e.n = mat.NewDense(e.dim, e.dim, nil)
	if err := e.n.Inverse(imq); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) && !math.IsInf(float64(cond), 1) {
			// Ill-conditioned but solvable; the iteration tolerates it.
			return nil
		}

		return fmt.Errorf("%w: %v", ErrSingularTransition, err)
	}

	return nil
}

// iterate runs the fixed point until the L1 difference between successive
// transition matrices falls below tolerance or the cap is hit.
func (e *engine) iterate() error {
	h := mat.NewVecDense(e.dim, nil)
	qd := mat.NewVecDense(e.dim, nil)
	x := mat.NewVecDense(e.dim, nil)
	v := mat.NewVecDense(e.dim, nil)
	next := mat.NewDense(e.dim, e.dim, nil)

	for e.iters = 0; e.iters < e.cfg.MaxIter; e.iters++ {
		// h_i = −Σ_j Q[i,j]·log Q[i,j], with 0·log 0 = 0.
		for r := 0; r < e.dim; r++ {
			var hr float64
			for _, c := range e.support[r] {
				if p := e.q.At(r, c); p > 0 {
					hr -= p * math.Log(p)
				}
			}
			h.SetVec(r, hr)
		}

		// x = N·h and v = N·diag(Q·D₀ᵀ).
		x.MulVec(e.n, h)
		for r := 0; r < e.dim; r++ {
			var sum float64
			for _, c := range e.support[r] {
				sum += e.q.At(r, c) * e.d0.At(r, c)
			}
			qd.SetVec(r, sum)
		}
		v.MulVec(e.n, qd)

		// Row update on the support, then row normalisation. Rows with a
		// zero unnormalised sum are left as zero rows.
		next.Zero()
		for r := 0; r < e.dim; r++ {
			var sum float64
			for _, c := range e.support[r] {
				w := math.Exp((e.q.At(r, c)+v.AtVec(c))/e.cfg.Eta + x.AtVec(c))
				next.Set(r, c, w)
				sum += w
			}
			if sum == 0 {
				continue
			}
			for _, c := range e.support[r] {
				next.Set(r, c, next.At(r, c)/sum)
			}
		}

		// L1 difference over the support (everything else is zero in both).
		var res float64
		for r := 0; r < e.dim; r++ {
			for _, c := range e.support[r] {
				res += math.Abs(next.At(r, c) - e.q.At(r, c))
			}
		}
		e.q.Copy(next)
		e.residual = res

		if res < e.cfg.Tol {
			e.iters++

			return nil
		}
	}

	return &NonConvergenceError{Residual: e.residual, Iters: e.iters}
}

// result extracts the trimmed transition matrix and the per-arc
// probabilities in input order.
func (e *engine) result(arcs []Arc) *Result {
	probs := make([]float64, len(arcs))
	for i, a := range arcs {
		probs[i] = e.q.At(e.index[a.From], e.index[a.To])
	}

	trimmed := mat.DenseCopyOf(e.q.Slice(1, e.dim, 1, e.dim))

	return &Result{
		Probs:    probs,
		Q:        trimmed,
		Iters:    e.iters,
		Residual: e.residual,
	}
}
