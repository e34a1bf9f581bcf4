// Package geo implements great-circle distance primitives on the Earth
// modeled as a sphere of mean radius 6371 km.
//
// All inputs are (longitude, latitude) pairs in decimal degrees; all
// distances are kilometres. Haversine uses the numerically stable
// 2·R·asin(√a) form, which keeps precision for the short hops between
// consecutive polyline points that road networks are made of.
//
// Complexity: O(1) per pair, O(n) for PathLength over n points.
package geo
