// Package distance provides Euclidean distance between integer points.
//
// Euclidean truncates to an integer: floor(sqrt(dx*dx + dy*dy)). The
// truncation matches the integer centroids and decides ties during
// nearest-centroid assignment, so two centroids at 2.2 and 2.9 are both
// at distance 2 and the lower index wins.
//
// # Usage
//
//	d := distance.Euclidean(a, b)
//	sq := distance.SquaredEuclidean(a, b)
package distance
