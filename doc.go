// Package kmeans clusters two-dimensional integer points with Lloyd's
// algorithm.
//
// # Quick Start
//
//	points := []model.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 10, Y: 10}, {X: 11, Y: 10}}
//	res, err := kmeans.Cluster(ctx, points, 2, kmeans.WithSeed(42))
//	for i, c := range res.Clusters {
//	    fmt.Println(i, c, res.Centroids[i])
//	}
//
// # Algorithm
//
// A run starts from a uniformly random partition in which every cluster has
// at least one member; a draw that leaves a cluster empty is thrown away and
// redrawn (WithMaxPartitionAttempts bounds the redraws). Then it alternates:
//
//  1. centroids = integer-truncated mean of every cluster
//  2. every point moves to the cluster of its nearest centroid, using the
//     truncated Euclidean distance; the lowest index wins ties
//
// The run stops when a reassignment reproduces the previous cluster set
// exactly: same clusters, same points, same order. WithMaxIterations bounds
// the loop; a run that hits the bound reports Converged == false.
//
// Reassignment can leave a cluster empty. Its centroid is then moved to a
// random input point (Reseed, the default) or kept from the previous
// iteration (KeepPrevious). KeepPrevious can leave two coincident centroids
// in place, in which case the lower index keeps every point and the run
// converges with an empty cluster.
//
// # Reproducibility
//
// All randomness comes from one source. WithSeed or WithRand make runs
// reproducible:
//
//	c, _ := kmeans.New(3, kmeans.WithSeed(7))
//
// # Observability
//
//	metrics := &kmeans.BasicMetricsCollector{}
//	c, _ := kmeans.New(3,
//	    kmeans.WithLogger(kmeans.NewJSONLogger(slog.LevelDebug)),
//	    kmeans.WithMetricsCollector(metrics),
//	)
//
// # Related Packages
//
//   - pointfile: decoding "x y" point files, plain or compressed
//   - report: text and JSON rendering of results
//   - plot: HTML scatter plot of results
//   - blobstore: local, S3 and MinIO locations for inputs and outputs
//   - runstore: run ledger backed by DynamoDB
package kmeans
