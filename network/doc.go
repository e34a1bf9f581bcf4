// Package network converts geospatial polyline features into the directed
// edge tables the routing graph is built from.
//
// Each feature is an ordered polyline of (lon, lat) points with a stable
// per-point vertex identifier and the OSM oneway attributes. For every
// consecutive pair of points one directed edge is emitted with its haversine
// length; unless the feature is one-way, the reverse edge is emitted too
// with the identical length.
//
// A feature is one-way when its "oneway" value is "yes" or "-1", and
// likewise when its "oneway.bicycle" value is; any other value (including
// the empty string) means two-way.
//
// The output is a pair of parallel tables, one numeric row and one id row
// per directed edge, in feature order.
//
// Errors (sentinel): ErrMalformedInput for a missing osm_id, missing
// geometry, an id/coordinate row-count mismatch, or a non-finite coordinate.
package network
