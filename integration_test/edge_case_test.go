package integration_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/racheljewell/kmeans"
	"github.com/racheljewell/kmeans/model"
	"github.com/racheljewell/kmeans/testutil"
)

func TestEdge_KEqualsN(t *testing.T) {
	points := []model.Point{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 9, Y: 1}}

	res, err := kmeans.Cluster(context.Background(), points, 3, kmeans.WithSeed(2))
	require.NoError(t, err)
	require.True(t, res.Converged)

	// Every point is its own cluster and centroid.
	assert.Equal(t, []int{1, 1, 1}, res.Clusters.Sizes())
	assert.Equal(t, int64(0), res.Inertia)
	assert.ElementsMatch(t, points, res.Centroids)
}

func TestEdge_IdenticalPoints(t *testing.T) {
	points := make([]model.Point, 8)
	for i := range points {
		points[i] = model.Point{X: 7, Y: -3}
	}

	res, err := kmeans.Cluster(context.Background(), points, 2, kmeans.WithSeed(1))
	require.NoError(t, err)
	require.True(t, res.Converged)

	// Both centroids coincide, so the first one takes every point.
	assert.Equal(t, []int{8, 0}, res.Clusters.Sizes())
	assert.Equal(t, model.Point{X: 7, Y: -3}, res.Centroids[0])
	assert.Equal(t, model.Point{X: 7, Y: -3}, res.Centroids[1])
}

func TestEdge_NegativeCoordinatesTruncateTowardZero(t *testing.T) {
	points := []model.Point{{X: -1, Y: -1}, {X: -2, Y: -2}, {X: -100, Y: -100}, {X: -101, Y: -99}}

	res, err := kmeans.Cluster(context.Background(), points, 2, kmeans.WithSeed(8), kmeans.WithEmptyClusterPolicy(kmeans.Reseed))
	require.NoError(t, err)
	assert.ElementsMatch(t, []model.Point{{X: -1, Y: -1}, {X: -100, Y: -99}}, res.Centroids)
}

func TestEdge_InfeasibleK(t *testing.T) {
	_, err := kmeans.Cluster(context.Background(), []model.Point{{X: 1, Y: 1}}, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, kmeans.ErrInfeasiblePartition))

	var pe *kmeans.ErrPartitionExhausted
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.K)
	assert.Equal(t, 1, pe.Points)
}

func TestEdge_EveryPointAssignedAcrossSeeds(t *testing.T) {
	points := testutil.NewRNG(5).UniformPoints(50, -20, 20)

	for seed := range uint64(30) {
		res, err := kmeans.Cluster(context.Background(), points, 4, kmeans.WithSeed(seed))
		require.NoError(t, err, "seed %d", seed)
		require.Equal(t, len(points), res.Clusters.Len(), "seed %d", seed)
		require.Len(t, res.Centroids, 4)
	}
}
