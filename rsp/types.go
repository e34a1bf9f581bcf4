package rsp

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the RSP engine.
var (
	// ErrNoArcs indicates an empty arc table.
	ErrNoArcs = errors.New("rsp: arc table is empty")

	// ErrVertexNotFound indicates the start or end vertex does not appear
	// in the arc table.
	ErrVertexNotFound = errors.New("rsp: vertex not found in arc table")

	// ErrSingularTransition indicates (I − Q) could not be inverted. On a
	// connected input with a reachable end vertex this is an internal
	// invariant violation, not a caller error.
	ErrSingularTransition = errors.New("rsp: transition matrix I-Q is singular")

	// ErrNonConvergence indicates the fixed-point iteration hit MaxIter
	// before the L1 residual dropped below Tol.
	ErrNonConvergence = errors.New("rsp: fixed-point iteration did not converge")

	// ErrBadEta indicates a non-positive entropy weight.
	ErrBadEta = errors.New("rsp: eta must be positive")

	// ErrBadTol indicates a non-positive convergence tolerance.
	ErrBadTol = errors.New("rsp: tolerance must be positive")

	// ErrBadMaxIter indicates a non-positive iteration cap.
	ErrBadMaxIter = errors.New("rsp: max iterations must be positive")
)

// NonConvergenceError reports a run that hit the iteration cap, carrying
// the final residual so callers can decide whether to accept the
// approximation. errors.Is(err, ErrNonConvergence) matches it.
type NonConvergenceError struct {
	// Residual is the final L1 difference between successive iterates.
	Residual float64

	// Iters is the number of iterations performed.
	Iters int
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("rsp: no convergence after %d iterations (residual %g)",
		e.Iters, e.Residual)
}

// Unwrap ties the typed error to the ErrNonConvergence sentinel.
func (e *NonConvergenceError) Unwrap() error { return ErrNonConvergence }

// Arc is one weighted directed connection of the input table.
type Arc struct {
	// From and To are the endpoint vertex ids.
	From, To string

	// Weight is the routing cost used in the cost matrix.
	Weight float64
}

// Options configures one RSP computation.
//
// Eta     – entropy weight η; η → 0 approaches deterministic shortest
//           paths, η → ∞ the uniform random walk. Must be > 0.
// Tol     – L1 convergence tolerance. Default 1e-6.
// MaxIter – iteration cap before ErrNonConvergence. Default 1e6.
type Options struct {
	Eta     float64
	Tol     float64
	MaxIter int
}

// Option is a functional option for configuring the engine.
type Option func(*Options)

// WithEta sets the entropy weight. Must be positive; non-positive values
// panic to signal invalid configuration early.
func WithEta(eta float64) Option {
	if eta <= 0 {
		panic(ErrBadEta.Error())
	}

	return func(o *Options) { o.Eta = eta }
}

// WithTol sets the convergence tolerance. Must be positive.
func WithTol(tol float64) Option {
	if tol <= 0 {
		panic(ErrBadTol.Error())
	}

	return func(o *Options) { o.Tol = tol }
}

// WithMaxIter sets the iteration cap. Must be positive.
func WithMaxIter(n int) Option {
	if n <= 0 {
		panic(ErrBadMaxIter.Error())
	}

	return func(o *Options) { o.MaxIter = n }
}

// DefaultOptions returns the engine defaults: η = 1, tolerance 1e-6, cap
// one million iterations.
func DefaultOptions() Options {
	return Options{
		Eta:     1.0,
		Tol:     1e-6,
		MaxIter: 1_000_000,
	}
}
