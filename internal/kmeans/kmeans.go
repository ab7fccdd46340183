package kmeans

import (
	"errors"
	"fmt"
	"math"

	"github.com/racheljewell/kmeans/distance"
	"github.com/racheljewell/kmeans/model"
)

// Rand is the source of uniform integers used for partitioning and reseeding.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform integer in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// ErrPartitionExhausted is returned when no partition without empty clusters
// was found within the attempt budget.
var ErrPartitionExhausted = errors.New("kmeans: random partition exhausted")

// PartitionError describes a failed random partition.
type PartitionError struct {
	K        int
	Points   int
	Attempts int
}

func (e *PartitionError) Error() string {
	if e.Attempts == 0 {
		return fmt.Sprintf("kmeans: cannot partition %d points into %d non-empty clusters", e.Points, e.K)
	}
	return fmt.Sprintf("kmeans: no partition of %d points into %d non-empty clusters after %d attempts", e.Points, e.K, e.Attempts)
}

func (e *PartitionError) Unwrap() error { return ErrPartitionExhausted }

// EmptyClusterPolicy decides the centroid of a cluster without members.
type EmptyClusterPolicy int

const (
	// KeepPrevious reuses the centroid from the previous iteration.
	KeepPrevious EmptyClusterPolicy = iota
	// Reseed picks a uniformly random input point.
	Reseed
)

func (p EmptyClusterPolicy) String() string {
	switch p {
	case KeepPrevious:
		return "keep"
	case Reseed:
		return "reseed"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// RandomPartition assigns every point to a uniformly drawn cluster in [0, k).
// When a draw leaves any cluster empty, the whole assignment is discarded and
// restarted, up to maxAttempts times.
//
// It returns the partition, the cluster index of every point and the number
// of attempts used.
func RandomPartition(points []model.Point, k int, rng Rand, maxAttempts int) (model.ClusterSet, []int, int, error) {
	if k < 1 || k > len(points) {
		return nil, nil, 0, &PartitionError{K: k, Points: len(points)}
	}

	assignments := make([]int, len(points))
	counts := make([]int, k)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		clear(counts)
		for i := range points {
			c := rng.IntN(k)
			assignments[i] = c
			counts[c]++
		}

		if !hasZero(counts) {
			return group(points, assignments, counts), assignments, attempt, nil
		}
	}

	return nil, nil, maxAttempts, &PartitionError{K: k, Points: len(points), Attempts: maxAttempts}
}

// ComputeCentroids returns the integer-truncated mean of every cluster.
// Empty clusters are resolved with policy; previous may be nil.
func ComputeCentroids(set model.ClusterSet, previous []model.Point, points []model.Point, policy EmptyClusterPolicy, rng Rand) []model.Point {
	centroids := make([]model.Point, len(set))

	for i, cluster := range set {
		if len(cluster) == 0 {
			centroids[i] = emptyCentroid(i, previous, points, policy, rng)
			continue
		}

		var sumX, sumY int64
		for _, p := range cluster {
			sumX += int64(p.X)
			sumY += int64(p.Y)
		}
		n := int64(len(cluster))
		centroids[i] = model.Point{X: int(sumX / n), Y: int(sumY / n)}
	}

	return centroids
}

func emptyCentroid(i int, previous, points []model.Point, policy EmptyClusterPolicy, rng Rand) model.Point {
	if policy == Reseed && len(points) > 0 && rng != nil {
		return points[rng.IntN(len(points))]
	}
	if i < len(previous) {
		return previous[i]
	}
	return model.Point{}
}

// Recluster assigns every point to the cluster of its nearest centroid.
// Centroids are scanned in index order and only a strictly smaller distance
// replaces the current best, so the lowest index wins ties.
func Recluster(points []model.Point, centroids []model.Point) (model.ClusterSet, []int) {
	k := len(centroids)
	assignments := make([]int, len(points))
	counts := make([]int, k)

	for i, p := range points {
		best := 0
		bestDist := -1
		for j, c := range centroids {
			d := distance.Euclidean(p, c)
			if bestDist < 0 || d < bestDist {
				bestDist = d
				best = j
			}
		}
		assignments[i] = best
		counts[best]++
	}

	return group(points, assignments, counts), assignments
}

// Converged reports whether cur reproduces prev exactly.
func Converged(prev, cur model.ClusterSet) bool {
	return prev.Equal(cur)
}

// Inertia returns the sum of squared distances of every point to the
// centroid of its cluster. The sum saturates at math.MaxInt64.
func Inertia(set model.ClusterSet, centroids []model.Point) int64 {
	var total int64
	for i, cluster := range set {
		if i >= len(centroids) {
			break
		}
		for _, p := range cluster {
			d := distance.SquaredEuclidean(p, centroids[i])
			if d > math.MaxInt64-total {
				return math.MaxInt64
			}
			total += d
		}
	}
	return total
}

// group builds the cluster set for an assignment. Clusters keep input order.
func group(points []model.Point, assignments []int, counts []int) model.ClusterSet {
	set := model.NewClusterSet(len(counts))
	for c, n := range counts {
		if n > 0 {
			set[c] = make(model.Cluster, 0, n)
		}
	}
	for i, p := range points {
		c := assignments[i]
		set[c] = append(set[c], p)
	}
	return set
}

func hasZero(counts []int) bool {
	for _, n := range counts {
		if n == 0 {
			return true
		}
	}
	return false
}
