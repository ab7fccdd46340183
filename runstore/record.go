package runstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/racheljewell/kmeans"
)

var (
	// ErrNotFound is returned when no record has the requested ID.
	ErrNotFound = errors.New("runstore: record not found")

	// ErrDuplicate is returned when a record with the same ID already exists.
	ErrDuplicate = errors.New("runstore: duplicate record")
)

// Record describes one clustering run.
type Record struct {
	ID                string    `dynamodbav:"run_id" json:"run_id"`
	Input             string    `dynamodbav:"input" json:"input"`
	K                 int       `dynamodbav:"k" json:"k"`
	Points            int       `dynamodbav:"points" json:"points"`
	Iterations        int       `dynamodbav:"iterations" json:"iterations"`
	Converged         bool      `dynamodbav:"converged" json:"converged"`
	PartitionAttempts int       `dynamodbav:"partition_attempts" json:"partition_attempts"`
	Inertia           int64     `dynamodbav:"inertia" json:"inertia"`
	ClusterSizes      []int     `dynamodbav:"cluster_sizes" json:"cluster_sizes"`
	Seed              *uint64   `dynamodbav:"seed,omitempty" json:"seed,omitempty"`
	StartedAt         time.Time `dynamodbav:"started_at" json:"started_at"`
	DurationMillis    int64     `dynamodbav:"duration_ms" json:"duration_ms"`
}

// NewRecord builds a Record for a finished run that started at startedAt.
func NewRecord(res *kmeans.Result, input string, seed *uint64, startedAt time.Time) Record {
	return Record{
		ID:                uuid.NewString(),
		Input:             input,
		K:                 res.Clusters.K(),
		Points:            res.Clusters.Len(),
		Iterations:        res.Iterations,
		Converged:         res.Converged,
		PartitionAttempts: res.PartitionAttempts,
		Inertia:           res.Inertia,
		ClusterSizes:      res.Clusters.Sizes(),
		Seed:              seed,
		StartedAt:         startedAt.UTC(),
		DurationMillis:    res.Duration.Milliseconds(),
	}
}

// Store persists run records.
type Store interface {
	// Put stores a new record. It fails with ErrDuplicate if the ID exists.
	Put(ctx context.Context, rec Record) error
	// Get returns the record with the given ID.
	Get(ctx context.Context, id string) (Record, error)
	// List returns all records ordered by StartedAt.
	List(ctx context.Context) ([]Record, error)
}
