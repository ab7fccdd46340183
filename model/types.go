package model

import (
	"fmt"
	"slices"
)

// MaxCoordinate bounds both coordinates of a Point to
// [-MaxCoordinate, MaxCoordinate]. Inside that range a squared distance
// between any two points fits in an int64.
const MaxCoordinate = 1<<30 - 1

// Point is a two-dimensional integer coordinate. Both coordinates must lie
// within ±MaxCoordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// InRange reports whether both coordinates lie within ±MaxCoordinate.
func (p Point) InRange() bool {
	return p.X >= -MaxCoordinate && p.X <= MaxCoordinate &&
		p.Y >= -MaxCoordinate && p.Y <= MaxCoordinate
}

// String returns the point rendered as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Cluster is an ordered group of points.
// Order reflects insertion during assignment.
type Cluster []Point

// Equal reports whether both clusters hold the same points in the same order.
func (c Cluster) Equal(other Cluster) bool {
	return slices.Equal(c, other)
}

// Clone returns a copy that shares no memory with c.
func (c Cluster) Clone() Cluster {
	if c == nil {
		return nil
	}
	return slices.Clone(c)
}

// ClusterSet is a k-way partition of a point list.
type ClusterSet []Cluster

// NewClusterSet returns k empty clusters.
func NewClusterSet(k int) ClusterSet {
	if k < 0 {
		k = 0
	}
	return make(ClusterSet, k)
}

// K returns the number of clusters.
func (s ClusterSet) K() int {
	return len(s)
}

// Equal reports whether s and other have the same number of clusters and
// each cluster at the same index contains exactly the same points in exactly
// the same order. Two sets with identical membership but different insertion
// order are not equal.
func (s ClusterSet) Equal(other ClusterSet) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if !s[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Len returns the total number of points across all clusters.
func (s ClusterSet) Len() int {
	n := 0
	for _, c := range s {
		n += len(c)
	}
	return n
}

// Sizes returns the member count of every cluster.
func (s ClusterSet) Sizes() []int {
	sizes := make([]int, len(s))
	for i, c := range s {
		sizes[i] = len(c)
	}
	return sizes
}

// Empty returns the number of clusters without members.
func (s ClusterSet) Empty() int {
	n := 0
	for _, c := range s {
		if len(c) == 0 {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of s.
func (s ClusterSet) Clone() ClusterSet {
	if s == nil {
		return nil
	}
	out := make(ClusterSet, len(s))
	for i, c := range s {
		out[i] = c.Clone()
	}
	return out
}
