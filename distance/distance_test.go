package distance

import (
	"math"
	"testing"

	"github.com/racheljewell/kmeans/model"
	"github.com/stretchr/testify/assert"
)

func TestEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		a, b     model.Point
		expected int
	}{
		{"Identical", model.Point{X: 3, Y: 4}, model.Point{X: 3, Y: 4}, 0},
		{"Pythagorean", model.Point{X: 0, Y: 0}, model.Point{X: 3, Y: 4}, 5},
		{"Truncated", model.Point{X: 0, Y: 0}, model.Point{X: 1, Y: 1}, 1},       // sqrt(2)
		{"TruncatedHigh", model.Point{X: 0, Y: 0}, model.Point{X: 2, Y: 2}, 2},   // sqrt(8) = 2.83
		{"Negative", model.Point{X: -1, Y: -1}, model.Point{X: 2, Y: 3}, 5},
		{"Axis", model.Point{X: 10, Y: 0}, model.Point{X: 0, Y: 0}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Euclidean(tt.a, tt.b))
		})
	}
}

func TestEuclidean_CoordinateBounds(t *testing.T) {
	const m = model.MaxCoordinate
	lo, hi := model.Point{X: -m, Y: -m}, model.Point{X: m, Y: m}

	assert.Equal(t, int64(8)*m*m, SquaredEuclidean(lo, hi))
	assert.Positive(t, Euclidean(lo, hi))
	assert.Equal(t, 2*m, Euclidean(model.Point{Y: -m}, model.Point{Y: m}))
}

func TestEuclidean_Symmetric(t *testing.T) {
	pts := []model.Point{{X: 0, Y: 0}, {X: 7, Y: -2}, {X: -13, Y: 5}, {X: 100, Y: 100}}
	for _, a := range pts {
		assert.Equal(t, 0, Euclidean(a, a))
		for _, b := range pts {
			assert.Equal(t, Euclidean(a, b), Euclidean(b, a))
		}
	}
}

func TestIsqrt(t *testing.T) {
	for n := int64(0); n < 10000; n++ {
		r := Isqrt(n)
		assert.LessOrEqual(t, r*r, n)
		assert.Greater(t, (r+1)*(r+1), n)
	}
	assert.Equal(t, int64(0), Isqrt(-5))
	assert.Equal(t, int64(3037000499), Isqrt(math.MaxInt64))
}
