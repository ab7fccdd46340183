package kmeans

import (
	"errors"
	"fmt"

	"github.com/racheljewell/kmeans/internal/kmeans"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrNoPoints is returned when there is nothing to cluster.
	ErrNoPoints = errors.New("no points to cluster")

	// ErrPointOutOfRange is returned when a coordinate exceeds ±model.MaxCoordinate.
	ErrPointOutOfRange = errors.New("point out of range")

	// ErrInfeasiblePartition is returned when the points cannot be split into
	// k non-empty clusters within the attempt budget.
	ErrInfeasiblePartition = errors.New("infeasible partition")

	// ErrInvalidOption is returned for out-of-range option values.
	ErrInvalidOption = errors.New("invalid option")
)

// ErrPartitionExhausted reports a failed random initial partition.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrPartitionExhausted struct {
	K        int
	Points   int
	Attempts int
	cause    error
}

func (e *ErrPartitionExhausted) Error() string {
	if e.Attempts == 0 {
		return fmt.Sprintf("infeasible partition: k=%d exceeds %d points", e.K, e.Points)
	}
	return fmt.Sprintf("infeasible partition: k=%d over %d points, gave up after %d attempts", e.K, e.Points, e.Attempts)
}

// Is makes errors.Is(err, ErrInfeasiblePartition) hold.
func (e *ErrPartitionExhausted) Is(target error) bool { return target == ErrInfeasiblePartition }

func (e *ErrPartitionExhausted) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pe *kmeans.PartitionError
	if errors.As(err, &pe) {
		return &ErrPartitionExhausted{K: pe.K, Points: pe.Points, Attempts: pe.Attempts, cause: err}
	}

	return err
}
