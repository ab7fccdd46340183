package kmeans

import (
	"context"
	"fmt"
	"time"

	"github.com/racheljewell/kmeans/internal/kmeans"
	"github.com/racheljewell/kmeans/internal/membership"
	"github.com/racheljewell/kmeans/model"
)

// Result is the outcome of a clustering run.
type Result struct {
	// Clusters is the final partition; it has exactly k clusters, some of
	// which may be empty.
	Clusters model.ClusterSet
	// Centroids holds one centroid per cluster, computed from Clusters.
	Centroids []model.Point
	// Iterations is the number of reclustering passes.
	Iterations int
	// Converged is false when the iteration cap stopped the loop.
	Converged bool
	// PartitionAttempts is the number of random initial partitions drawn.
	PartitionAttempts int
	// Inertia is the sum of squared distances of points to their centroid.
	Inertia int64
	// Duration is the wall time of the run.
	Duration time.Duration
}

// Clusterer runs k-means over integer points.
//
// A Clusterer is not safe for concurrent use; runs on the same Clusterer
// must be sequential.
type Clusterer struct {
	k    int
	opts options
	rng  Rand
}

// New returns a Clusterer for k clusters.
func New(k int, optFns ...Option) (*Clusterer, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}

	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.maxIterations < 1 {
		return nil, fmt.Errorf("%w: max iterations must be positive, got %d", ErrInvalidOption, opts.maxIterations)
	}
	if opts.maxPartitionAttempts < 1 {
		return nil, fmt.Errorf("%w: max partition attempts must be positive, got %d", ErrInvalidOption, opts.maxPartitionAttempts)
	}
	switch opts.emptyClusterPolicy {
	case KeepPrevious, Reseed:
	default:
		return nil, fmt.Errorf("%w: empty cluster policy %v", ErrInvalidOption, opts.emptyClusterPolicy)
	}

	return &Clusterer{
		k:    k,
		opts: opts,
		rng:  opts.random(),
	}, nil
}

// K returns the configured number of clusters.
func (c *Clusterer) K() int {
	return c.k
}

// Run clusters points.
//
// The initial partition is random. The loop then alternates reclustering
// and centroid computation until a reclustering reproduces the previous
// cluster set exactly, or the iteration cap is reached.
func (c *Clusterer) Run(ctx context.Context, points []model.Point) (*Result, error) {
	start := time.Now()
	logger := c.opts.logger.WithK(c.k).WithCount(len(points))

	res, err := c.run(ctx, points, logger)
	err = translateError(err)

	duration := time.Since(start)
	iterations, converged := 0, false
	if res != nil {
		res.Duration = duration
		iterations, converged = res.Iterations, res.Converged
	}
	c.opts.metricsCollector.RecordRun(iterations, converged, duration, err)
	logger.LogRun(ctx, iterations, converged, err)

	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Clusterer) run(ctx context.Context, points []model.Point, logger *Logger) (*Result, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	for i, p := range points {
		if !p.InRange() {
			return nil, fmt.Errorf("%w: point %d %v", ErrPointOutOfRange, i, p)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// INITIAL -> PARTITIONED
	oldClusters, assignments, attempts, err := kmeans.RandomPartition(points, c.k, c.rng, c.opts.maxPartitionAttempts)
	c.opts.metricsCollector.RecordPartition(attempts, err)
	logger.LogPartition(ctx, attempts, err)
	if err != nil {
		return nil, err
	}

	newClusters := model.NewClusterSet(c.k)
	centroids := kmeans.ComputeCentroids(oldClusters, nil, points, c.opts.emptyClusterPolicy, c.rng)
	prevMembers := membership.FromAssignments(assignments, c.k)

	res := &Result{PartitionAttempts: attempts}

	for !kmeans.Converged(oldClusters, newClusters) {
		if res.Iterations >= c.opts.maxIterations {
			res.Clusters = newClusters
			res.Centroids = centroids
			res.Inertia = kmeans.Inertia(newClusters, centroids)
			return res, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		iterStart := time.Now()

		oldClusters = newClusters
		newClusters, assignments = kmeans.Recluster(points, centroids)
		centroids = kmeans.ComputeCentroids(newClusters, centroids, points, c.opts.emptyClusterPolicy, c.rng)
		res.Iterations++

		members := membership.FromAssignments(assignments, c.k)
		moved := membership.Moved(prevMembers, members)
		prevMembers = members

		empty := newClusters.Empty()
		c.opts.metricsCollector.RecordIteration(moved, empty, time.Since(iterStart))
		logger.LogIteration(ctx, res.Iterations, moved, empty)
	}

	// CONVERGED
	res.Clusters = newClusters
	res.Centroids = centroids
	res.Converged = true
	res.Inertia = kmeans.Inertia(newClusters, centroids)
	return res, nil
}

// Cluster is a convenience wrapper for New(k, optFns...).Run(ctx, points).
func Cluster(ctx context.Context, points []model.Point, k int, optFns ...Option) (*Result, error) {
	c, err := New(k, optFns...)
	if err != nil {
		return nil, err
	}
	return c.Run(ctx, points)
}
