package kmeans

import (
	"context"
	"errors"
	"testing"

	"github.com/racheljewell/kmeans/model"
	"github.com/racheljewell/kmeans/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequenceRand replays a fixed sequence of draws.
type sequenceRand struct {
	draws []int
	pos   int
}

func (r *sequenceRand) IntN(n int) int {
	v := r.draws[r.pos%len(r.draws)] % n
	r.pos++
	return v
}

var sixPoints = []model.Point{
	{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1},
	{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 10, Y: 11},
}

func TestNew_Validation(t *testing.T) {
	_, err := New(0)
	assert.ErrorIs(t, err, ErrInvalidK)

	_, err = New(-3)
	assert.ErrorIs(t, err, ErrInvalidK)

	_, err = New(2, WithMaxIterations(0))
	assert.ErrorIs(t, err, ErrInvalidOption)

	_, err = New(2, WithMaxPartitionAttempts(-1))
	assert.ErrorIs(t, err, ErrInvalidOption)

	_, err = New(2, WithEmptyClusterPolicy(EmptyClusterPolicy(9)))
	assert.ErrorIs(t, err, ErrInvalidOption)

	c, err := New(4)
	require.NoError(t, err)
	assert.Equal(t, 4, c.K())
}

func TestRun_TwoClusters(t *testing.T) {
	ctx := context.Background()
	rng := &sequenceRand{draws: []int{0, 1, 0, 1, 0, 1}}

	res, err := Cluster(ctx, sixPoints, 2, WithRand(rng))
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Equal(t, 2, res.Iterations)
	assert.Equal(t, 1, res.PartitionAttempts)
	assert.Equal(t, model.ClusterSet{
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
		{{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 10, Y: 11}},
	}, res.Clusters)
	assert.Equal(t, []model.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}, res.Centroids)
	assert.Equal(t, int64(4), res.Inertia)
}

func TestRun_TwoClustersAnySeed(t *testing.T) {
	ctx := context.Background()
	near := []model.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	far := []model.Point{{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 10, Y: 11}}

	for seed := uint64(1); seed <= 500; seed++ {
		res, err := Cluster(ctx, sixPoints, 2, WithSeed(seed))
		require.NoError(t, err)
		require.True(t, res.Converged, "seed %d", seed)
		require.Len(t, res.Clusters, 2)

		a, b := res.Clusters[0], res.Clusters[1]
		if len(a) > 0 && a[0] == far[0] || len(b) > 0 && b[0] == near[0] {
			a, b = b, a
		}
		assert.ElementsMatch(t, near, a, "seed %d", seed)
		assert.ElementsMatch(t, far, b, "seed %d", seed)
	}
}

// Draws [0 1 1 0 1 1] give both initial clusters the centroid (5, 5).
var coincidentDraws = []int{0, 1, 1, 0, 1, 1}

func TestRun_KeepPreviousCoincidentCentroids(t *testing.T) {
	ctx := context.Background()

	res, err := Cluster(ctx, sixPoints, 2, WithRand(&sequenceRand{draws: coincidentDraws}), WithEmptyClusterPolicy(KeepPrevious))
	require.NoError(t, err)

	// The lower index wins every tie and the empty cluster keeps (5, 5).
	assert.True(t, res.Converged)
	assert.Equal(t, 2, res.Iterations)
	assert.Equal(t, []int{6, 0}, res.Clusters.Sizes())
	assert.Equal(t, []model.Point{{X: 5, Y: 5}, {X: 5, Y: 5}}, res.Centroids)
}

func TestRun_ReseedSplitsCoincidentCentroids(t *testing.T) {
	ctx := context.Background()

	// The reseed draw replays 0 and moves the empty centroid to (0, 0).
	res, err := Cluster(ctx, sixPoints, 2, WithRand(&sequenceRand{draws: coincidentDraws}))
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Equal(t, 3, res.Iterations)
	assert.Equal(t, model.ClusterSet{
		{{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 10, Y: 11}},
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
	}, res.Clusters)
	assert.Equal(t, []model.Point{{X: 10, Y: 10}, {X: 0, Y: 0}}, res.Centroids)
}

func TestRun_SingleCluster(t *testing.T) {
	ctx := context.Background()
	points := []model.Point{{X: 0, Y: 0}, {X: 4, Y: 2}, {X: 8, Y: 7}}

	res, err := Cluster(ctx, points, 1, WithSeed(7))
	require.NoError(t, err)

	assert.True(t, res.Converged)
	// One pass reclusters from the placeholder, the second confirms it.
	assert.Equal(t, 2, res.Iterations)
	assert.Equal(t, model.ClusterSet{points}, res.Clusters)
	assert.Equal(t, []model.Point{{X: 4, Y: 3}}, res.Centroids)
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("NoPoints", func(t *testing.T) {
		_, err := Cluster(ctx, nil, 2)
		assert.ErrorIs(t, err, ErrNoPoints)
	})

	t.Run("PointOutOfRange", func(t *testing.T) {
		points := []model.Point{{X: 1, Y: 1}, {X: 4_000_000_000, Y: 0}}
		_, err := Cluster(ctx, points, 2)
		assert.ErrorIs(t, err, ErrPointOutOfRange)
	})

	t.Run("KExceedsPoints", func(t *testing.T) {
		_, err := Cluster(ctx, sixPoints[:1], 2)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInfeasiblePartition)

		var pe *ErrPartitionExhausted
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, 2, pe.K)
		assert.Equal(t, 1, pe.Points)
		assert.Zero(t, pe.Attempts)
	})

	t.Run("AttemptsExhausted", func(t *testing.T) {
		rng := &sequenceRand{draws: []int{0}}
		_, err := Cluster(ctx, sixPoints, 2, WithRand(rng), WithMaxPartitionAttempts(3))
		assert.ErrorIs(t, err, ErrInfeasiblePartition)

		var pe *ErrPartitionExhausted
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, 3, pe.Attempts)
	})

	t.Run("Canceled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := Cluster(cctx, sixPoints, 2)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRun_IterationCap(t *testing.T) {
	ctx := context.Background()
	rng := &sequenceRand{draws: []int{0, 1, 0, 1, 0, 1}}

	res, err := Cluster(ctx, sixPoints, 2, WithRand(rng), WithMaxIterations(1))
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, len(sixPoints), res.Clusters.Len())
}

func TestRun_Metrics(t *testing.T) {
	ctx := context.Background()
	metrics := &BasicMetricsCollector{}
	rng := &sequenceRand{draws: []int{0, 1, 0, 1, 0, 1}}

	_, err := Cluster(ctx, sixPoints, 2, WithRand(rng), WithMetricsCollector(metrics), WithLogger(nil))
	require.NoError(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.PartitionCount)
	assert.Equal(t, int64(1), stats.PartitionAttempts)
	assert.Equal(t, int64(2), stats.IterationCount)
	assert.Equal(t, int64(1), stats.RunCount)
	assert.Equal(t, int64(1), stats.RunsConverged)
	assert.Zero(t, stats.RunErrors)
	// Random partition [0 1 0 1 0 1] -> [0 0 0 1 1 1] moves two points, the
	// confirming pass moves none.
	assert.Equal(t, int64(2), stats.PointsMoved)
}

func TestRun_Blobs(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(4711)
	centers := []model.Point{{X: 0, Y: 0}, {X: 1000, Y: 0}, {X: 0, Y: 1000}}
	points := rng.Blobs(centers, 40, 20)

	res, err := Cluster(ctx, points, 3, WithRand(rng), WithEmptyClusterPolicy(Reseed))
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, len(points), res.Clusters.Len())
	assert.Len(t, res.Centroids, 3)
}

func TestRun_Reusable(t *testing.T) {
	ctx := context.Background()
	c, err := New(2, WithSeed(3), WithEmptyClusterPolicy(Reseed))
	require.NoError(t, err)

	for range 3 {
		res, err := c.Run(ctx, sixPoints)
		require.NoError(t, err)
		assert.Equal(t, len(sixPoints), res.Clusters.Len())
	}
}
