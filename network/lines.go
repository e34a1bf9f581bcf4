package network

import (
	"fmt"
	"math"

	"github.com/osm-router/osmprob/geo"
)

// LinesAsNetwork converts a sequence of polyline features into parallel
// numeric and identifier edge tables, one row per directed edge.
//
// For every consecutive point pair (i-1, i) of a feature it emits the edge
// from point i-1 to point i with its haversine length; if the feature is not
// one-way the reverse edge is emitted immediately after with the identical
// length. Features are processed in input order, so the output order is
// fully determined by the input.
//
// The whole call fails on the first malformed feature; nothing is returned
// alongside an error.
//
// Complexity: O(P) time and memory, where P = total number of polyline points.
func LinesAsNetwork(features []Feature) (*EdgeTable, error) {
	// Pre-size the tables: each feature with n points yields n-1 segments,
	// doubled when two-way.
	var rows int
	for i := range features {
		if err := features[i].validate(); err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		segs := len(features[i].Coords) - 1
		if !features[i].oneWay() {
			segs *= 2
		}
		rows += segs
	}

	table := &EdgeTable{
		Numeric: make([]NumericRow, 0, rows),
		IDs:     make([]IDRow, 0, rows),
	}

	for i := range features {
		f := &features[i]
		twoWay := !f.oneWay()
		for p := 1; p < len(f.Coords); p++ {
			from, to := f.Coords[p-1], f.Coords[p]
			d := geo.Haversine(from[0], from[1], to[0], to[1])

			table.Numeric = append(table.Numeric, NumericRow{
				FromLon: from[0], FromLat: from[1],
				ToLon: to[0], ToLat: to[1],
				D: d,
			})
			table.IDs = append(table.IDs, IDRow{
				FromID: f.VertexIDs[p-1],
				ToID:   f.VertexIDs[p],
			})

			if twoWay {
				table.Numeric = append(table.Numeric, NumericRow{
					FromLon: to[0], FromLat: to[1],
					ToLon: from[0], ToLat: from[1],
					D: d,
				})
				table.IDs = append(table.IDs, IDRow{
					FromID: f.VertexIDs[p],
					ToID:   f.VertexIDs[p-1],
				})
			}
		}
	}

	return table, nil
}

// validate checks the feature against the ingestion contract:
// non-empty osm_id, non-empty geometry, id rows matching coordinate rows,
// and finite coordinates. All violations map to ErrMalformedInput.
func (f *Feature) validate() error {
	if f.OSMID == "" {
		return fmt.Errorf("%w: missing osm_id", ErrMalformedInput)
	}
	if len(f.Coords) == 0 {
		return fmt.Errorf("%w: feature %s has no geometry", ErrMalformedInput, f.OSMID)
	}
	if len(f.VertexIDs) != len(f.Coords) {
		return fmt.Errorf("%w: feature %s has %d vertex ids for %d points",
			ErrMalformedInput, f.OSMID, len(f.VertexIDs), len(f.Coords))
	}
	for _, c := range f.Coords {
		if !isFinite(c[0]) || !isFinite(c[1]) {
			return fmt.Errorf("%w: feature %s has non-finite coordinate (%g, %g)",
				ErrMalformedInput, f.OSMID, c[0], c[1])
		}
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
