package kmeans

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting clustering metrics.
// Implement this interface to integrate with monitoring systems like Prometheus
// (see package prommetrics).
type MetricsCollector interface {
	// RecordPartition is called after the random initial partition.
	// attempts is the number of full assignments drawn, err is nil if successful.
	RecordPartition(attempts int, err error)

	// RecordIteration is called after each reclustering pass.
	// moved is the number of points whose cluster changed, empty is the
	// number of clusters left without members.
	RecordIteration(moved, empty int, duration time.Duration)

	// RecordRun is called once per run.
	RecordRun(iterations int, converged bool, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPartition(int, error)                {}
func (NoopMetricsCollector) RecordIteration(int, int, time.Duration)   {}
func (NoopMetricsCollector) RecordRun(int, bool, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PartitionCount    atomic.Int64
	PartitionAttempts atomic.Int64
	PartitionErrors   atomic.Int64
	IterationCount    atomic.Int64
	IterationNanos    atomic.Int64
	PointsMoved       atomic.Int64
	EmptyClusters     atomic.Int64
	RunCount          atomic.Int64
	RunErrors         atomic.Int64
	RunsConverged     atomic.Int64
	RunTotalNanos     atomic.Int64
}

// RecordPartition implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPartition(attempts int, err error) {
	b.PartitionCount.Add(1)
	b.PartitionAttempts.Add(int64(attempts))
	if err != nil {
		b.PartitionErrors.Add(1)
	}
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(moved, empty int, duration time.Duration) {
	b.IterationCount.Add(1)
	b.IterationNanos.Add(duration.Nanoseconds())
	b.PointsMoved.Add(int64(moved))
	b.EmptyClusters.Add(int64(empty))
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(iterations int, converged bool, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
		return
	}
	if converged {
		b.RunsConverged.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		PartitionCount:    b.PartitionCount.Load(),
		PartitionAttempts: b.PartitionAttempts.Load(),
		PartitionErrors:   b.PartitionErrors.Load(),
		IterationCount:    b.IterationCount.Load(),
		IterationAvgNanos: b.getAvgIterationNanos(),
		PointsMoved:       b.PointsMoved.Load(),
		EmptyClusters:     b.EmptyClusters.Load(),
		RunCount:          b.RunCount.Load(),
		RunErrors:         b.RunErrors.Load(),
		RunsConverged:     b.RunsConverged.Load(),
		RunAvgNanos:       b.getAvgRunNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgIterationNanos() int64 {
	count := b.IterationCount.Load()
	if count == 0 {
		return 0
	}
	return b.IterationNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgRunNanos() int64 {
	count := b.RunCount.Load()
	if count == 0 {
		return 0
	}
	return b.RunTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	PartitionCount    int64
	PartitionAttempts int64
	PartitionErrors   int64
	IterationCount    int64
	IterationAvgNanos int64
	PointsMoved       int64
	EmptyClusters     int64
	RunCount          int64
	RunErrors         int64
	RunsConverged     int64
	RunAvgNanos       int64
}
