package membership

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Snapshot holds one bitmap of point indices per cluster.
type Snapshot struct {
	clusters []*roaring.Bitmap
}

// FromAssignments builds a snapshot from the cluster index of every point.
func FromAssignments(assignments []int, k int) *Snapshot {
	s := &Snapshot{clusters: make([]*roaring.Bitmap, k)}
	for i := range s.clusters {
		s.clusters[i] = roaring.New()
	}
	for idx, c := range assignments {
		if c < 0 || c >= k {
			continue
		}
		s.clusters[c].Add(uint32(idx))
	}
	for _, bm := range s.clusters {
		bm.RunOptimize()
	}
	return s
}

// Moved returns how many points of cur are not in the same cluster in prev.
// A nil prev counts every point of cur as moved.
func Moved(prev, cur *Snapshot) int {
	if cur == nil {
		return 0
	}
	moved := 0
	for c, bm := range cur.clusters {
		if prev == nil || c >= len(prev.clusters) {
			moved += int(bm.GetCardinality())
			continue
		}
		moved += int(roaring.AndNot(bm, prev.clusters[c]).GetCardinality())
	}
	return moved
}
