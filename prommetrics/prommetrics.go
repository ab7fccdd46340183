// Package prommetrics implements kmeans.MetricsCollector with Prometheus
// metrics.
//
//	col := prommetrics.New(prometheus.NewRegistry())
//	c, err := kmeans.New(k, kmeans.WithMetricsCollector(col))
package prommetrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/racheljewell/kmeans"
)

const namespace = "kmeans"

// Collector records clustering metrics on a Prometheus registry.
type Collector struct {
	reg prometheus.Gatherer

	partitions        *prometheus.CounterVec
	partitionAttempts prometheus.Histogram
	iterations        prometheus.Counter
	iterationLatency  prometheus.Histogram
	pointsMoved       prometheus.Counter
	emptyClusters     prometheus.Counter
	runs              *prometheus.CounterVec
	runLatency        prometheus.Histogram
	runIterations     prometheus.Histogram
}

var _ kmeans.MetricsCollector = (*Collector)(nil)

// New creates a Collector and registers its metrics with reg.
// It panics if the metrics are already registered, like prometheus.MustRegister.
func New(reg *prometheus.Registry) *Collector {
	c := &Collector{
		reg: reg,
		partitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "partitions_total",
			Help:      "Random initial partitions by outcome.",
		}, []string{"result"}),
		partitionAttempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "partition_attempts",
			Help:      "Full assignments drawn before no cluster was empty.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 11),
		}),
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "iterations_total",
			Help:      "Reclustering passes.",
		}),
		iterationLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "iteration_duration_seconds",
			Help:      "Wall time of one reclustering pass.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
		pointsMoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_moved_total",
			Help:      "Points that changed cluster during reclustering.",
		}),
		emptyClusters: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "empty_clusters_total",
			Help:      "Clusters left without members after a pass, summed over passes.",
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Clustering runs by outcome.",
		}, []string{"result"}),
		runLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of a clustering run.",
			Buckets:   prometheus.DefBuckets,
		}),
		runIterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_iterations",
			Help:      "Reclustering passes per run.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 11),
		}),
	}

	reg.MustRegister(
		c.partitions,
		c.partitionAttempts,
		c.iterations,
		c.iterationLatency,
		c.pointsMoved,
		c.emptyClusters,
		c.runs,
		c.runLatency,
		c.runIterations,
	)
	return c
}

func (c *Collector) RecordPartition(attempts int, err error) {
	if err != nil {
		c.partitions.WithLabelValues("exhausted").Inc()
		return
	}
	c.partitions.WithLabelValues("ok").Inc()
	c.partitionAttempts.Observe(float64(attempts))
}

func (c *Collector) RecordIteration(moved, empty int, duration time.Duration) {
	c.iterations.Inc()
	c.iterationLatency.Observe(duration.Seconds())
	c.pointsMoved.Add(float64(moved))
	c.emptyClusters.Add(float64(empty))
}

func (c *Collector) RecordRun(iterations int, converged bool, duration time.Duration, err error) {
	c.runs.WithLabelValues(runResult(converged, err)).Inc()
	if err != nil {
		return
	}
	c.runLatency.Observe(duration.Seconds())
	c.runIterations.Observe(float64(iterations))
}

func runResult(converged bool, err error) string {
	switch {
	case errors.Is(err, kmeans.ErrInfeasiblePartition):
		return "infeasible"
	case err != nil:
		return "error"
	case converged:
		return "converged"
	default:
		return "iteration_limit"
	}
}

// WriteTextfile writes all metrics of the registry to path in the text
// exposition format, for the node exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.reg)
}
