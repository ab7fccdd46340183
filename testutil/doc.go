// Package testutil provides testing utilities for the clustering packages.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source and generators for integer point sets.
//
// # Random Points
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(100, -50, 50)
//	blobs := rng.Blobs(centers, 40, 5)  // 40 points around every center
//
// *RNG satisfies kmeans.Rand, so the same source can drive a run:
//
//	kmeans.New(3, kmeans.WithRand(rng))
package testutil
