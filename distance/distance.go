package distance

import (
	"math"

	"github.com/racheljewell/kmeans/model"
)

// SquaredEuclidean returns (x2-x1)^2 + (y2-y1)^2 using 64-bit arithmetic.
// The result does not overflow for points within ±model.MaxCoordinate.
func SquaredEuclidean(a, b model.Point) int64 {
	dx := int64(b.X) - int64(a.X)
	dy := int64(b.Y) - int64(a.Y)
	return dx*dx + dy*dy
}

// Euclidean returns the Euclidean distance between a and b truncated
// toward zero.
func Euclidean(a, b model.Point) int {
	return int(Isqrt(SquaredEuclidean(a, b)))
}

// Isqrt returns floor(sqrt(n)) for n >= 0 and 0 otherwise.
// The float estimate is corrected so large inputs do not round up.
func Isqrt(n int64) int64 {
	if n <= 0 {
		return 0
	}
	r := int64(math.Sqrt(float64(n)))
	for r > 0 && r > n/r {
		r--
	}
	for (r+1) <= n/(r+1) {
		r++
	}
	return r
}
