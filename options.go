package kmeans

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/racheljewell/kmeans/internal/kmeans"
)

const (
	// DefaultMaxIterations caps the reclustering loop.
	DefaultMaxIterations = 1000

	// DefaultMaxPartitionAttempts caps the random partition restarts.
	DefaultMaxPartitionAttempts = 1000
)

// Rand is the source of randomness for the initial partition.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand = kmeans.Rand

// EmptyClusterPolicy decides the centroid of a cluster that lost all its
// members during reclustering.
type EmptyClusterPolicy = kmeans.EmptyClusterPolicy

const (
	// KeepPrevious reuses the previous centroid of an empty cluster.
	KeepPrevious = kmeans.KeepPrevious
	// Reseed moves the centroid of an empty cluster to a random input point.
	Reseed = kmeans.Reseed
)

type options struct {
	rng                  Rand
	seed                 *uint64
	maxIterations        int
	maxPartitionAttempts int
	emptyClusterPolicy   EmptyClusterPolicy
	metricsCollector     MetricsCollector
	logger               *Logger
}

func defaultOptions() options {
	return options{
		maxIterations:        DefaultMaxIterations,
		maxPartitionAttempts: DefaultMaxPartitionAttempts,
		emptyClusterPolicy:   Reseed,
		metricsCollector:     NoopMetricsCollector{},
		logger:               NoopLogger(),
	}
}

// Option configures a Clusterer.
type Option func(*options)

// WithRand injects the random source used for partitioning and reseeding.
// It takes precedence over WithSeed.
func WithRand(rng Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithSeed makes runs reproducible by seeding a PCG source.
//
// Example:
//
//	c, _ := kmeans.New(3, kmeans.WithSeed(42))
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// WithMaxIterations caps the number of reclustering passes.
// When the cap is hit the result is returned with Converged == false.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithMaxPartitionAttempts caps how often the random initial partition is
// redrawn because a cluster came out empty.
func WithMaxPartitionAttempts(n int) Option {
	return func(o *options) {
		o.maxPartitionAttempts = n
	}
}

// WithEmptyClusterPolicy selects how the centroid of an empty cluster is
// chosen. The default is Reseed.
func WithEmptyClusterPolicy(p EmptyClusterPolicy) Option {
	return func(o *options) {
		o.emptyClusterPolicy = p
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &kmeans.BasicMetricsCollector{}
//	c, _ := kmeans.New(3, kmeans.WithMetricsCollector(metrics))
//	// ... run ...
//	stats := metrics.GetStats()
//	fmt.Printf("Iterations: %d, moved: %d\n", stats.IterationCount, stats.PointsMoved)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := kmeans.NewJSONLogger(slog.LevelInfo)
//	c, _ := kmeans.New(3, kmeans.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func (o *options) random() Rand {
	if o.rng != nil {
		return o.rng
	}
	if o.seed != nil {
		return rand.New(rand.NewPCG(*o.seed, *o.seed))
	}
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, now>>32|now<<32))
}
