// Package osmprob computes minimum-entropy (randomised shortest path)
// routing probabilities on road networks derived from OpenStreetMap
// linestrings.
//
// 🚀 What is osmprob?
//
//	A library that turns geospatial polylines into a routable graph and
//	answers two questions about it:
//
//	  • Classic routing: the single shortest path between two vertices
//	  • Stochastic routing: for every edge, the probability that it is
//	    traversed by a random path drawn from the distribution minimising
//	    expected cost plus a Shannon-entropy penalty of weight η
//
// The pipeline runs raw polylines → directed edge list → in-memory graph →
// largest weakly-connected component → degree-2 chain contraction →
// {Dijkstra | RSP engine}.
//
// Everything is organised under per-concern subpackages:
//
//	geo/      — haversine great-circle distances on (lon,lat) degrees
//	network/  — polyline features → directed edge tables with oneway semantics
//	graph/    — vertex/edge stores, component pruning, chain contraction
//	dijkstra/ — shortest paths over weighted arc tables
//	rsp/      — the entropy-regularised probability engine
//
// This root package is the caller-facing facade: four pure functions over
// typed table rows (LinesAsNetwork, MakeCompactGraph, RouteDijkstra,
// RouteProb), each validating its input and failing fast with a sentinel
// error, never committing partial state.
//
// The core is single-threaded and synchronous: a request owns its graph,
// matrices and scratch buffers for its lifetime, and every enumeration that
// influences an allocation walks ids in sorted order, so outputs are
// deterministic, including the synthetic edge ids produced by contraction.
package osmprob
