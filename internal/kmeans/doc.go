// Package kmeans implements the steps of Lloyd's algorithm on integer points.
//
// The orchestration loop lives in the root package; this package provides the
// building blocks it drives: a random initial partition, centroid
// computation, nearest-centroid reassignment and the convergence test.
package kmeans
