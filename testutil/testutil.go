package testutil

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/racheljewell/kmeans/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed uint64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewPCG(seed, seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewPCG(r.seed, r.seed))
}

// Seed returns the initial seed.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// IntN returns a non-negative pseudo-random number in [0,n).
func (r *RNG) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.IntN(n)
}

// UniformPoints returns num points with coordinates uniform in [minVal, maxVal].
func (r *RNG) UniformPoints(num, minVal, maxVal int) []model.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal + 1
	points := make([]model.Point, num)
	for i := range points {
		points[i] = model.Point{
			X: minVal + r.rand.IntN(span),
			Y: minVal + r.rand.IntN(span),
		}
	}
	return points
}

// Blobs returns perCenter points around every center with Gaussian noise of
// the given spread, rounded toward zero. Points are grouped by center.
func (r *RNG) Blobs(centers []model.Point, perCenter int, spread float64) []model.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]model.Point, 0, len(centers)*perCenter)
	for _, c := range centers {
		for range perCenter {
			points = append(points, model.Point{
				X: c.X + int(r.rand.NormFloat64()*spread),
				Y: c.Y + int(r.rand.NormFloat64()*spread),
			})
		}
	}
	return points
}

// Shuffle permutes points in place.
func (r *RNG) Shuffle(points []model.Point) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(points), func(i, j int) {
		points[i], points[j] = points[j], points[i]
	})
}

// PointFile renders points in the "x y" line format.
func PointFile(points []model.Point) string {
	var sb strings.Builder
	for _, p := range points {
		fmt.Fprintf(&sb, "%d %d\n", p.X, p.Y)
	}
	return sb.String()
}
