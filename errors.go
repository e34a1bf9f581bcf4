package osmprob

import "errors"

// Sentinel errors surfaced at the API boundary. Engine-level failures
// (rsp.ErrSingularTransition, rsp.ErrNonConvergence, dijkstra
// sentinels) pass through wrapped and match with errors.Is; ingestion
// failures surface network.ErrMalformedInput.
var (
	// ErrMalformedInput indicates a missing required column value, a
	// non-finite number, or a duplicate edge id in an input table.
	ErrMalformedInput = errors.New("osmprob: malformed input")

	// ErrEmptyGraph indicates an input with no vertices or no edges.
	ErrEmptyGraph = errors.New("osmprob: empty graph")

	// ErrUnknownVertex indicates a start or end vertex absent from the
	// input edge table.
	ErrUnknownVertex = errors.New("osmprob: unknown vertex")
)
