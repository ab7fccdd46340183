// Package report renders clustering results as text or JSON.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/racheljewell/kmeans"
	"github.com/racheljewell/kmeans/codec"
	"github.com/racheljewell/kmeans/model"
)

// WriteText writes one block per cluster: "Cluster N:" (1-indexed) followed
// by one "(x, y)" line per member. Empty clusters print only their header.
func WriteText(w io.Writer, set model.ClusterSet) error {
	bw := bufio.NewWriter(w)
	for i, c := range set {
		if _, err := fmt.Fprintf(bw, "Cluster %d:\n", i+1); err != nil {
			return err
		}
		for _, p := range c {
			if _, err := fmt.Fprintln(bw, p.String()); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// Cluster is the JSON form of one cluster.
type Cluster struct {
	Index    int           `json:"index"`
	Centroid model.Point   `json:"centroid"`
	Size     int           `json:"size"`
	Points   []model.Point `json:"points"`
}

// Document is the JSON form of a run.
type Document struct {
	K                 int       `json:"k"`
	Points            int       `json:"points"`
	Iterations        int       `json:"iterations"`
	Converged         bool      `json:"converged"`
	PartitionAttempts int       `json:"partition_attempts"`
	Inertia           int64     `json:"inertia"`
	DurationMillis    float64   `json:"duration_ms"`
	Seed              *uint64   `json:"seed,omitempty"`
	Input             string    `json:"input,omitempty"`
	Codec             string    `json:"codec"`
	Clusters          []Cluster `json:"clusters"`
}

// NewDocument builds a Document from a run result.
func NewDocument(res *kmeans.Result) Document {
	doc := Document{
		K:                 res.Clusters.K(),
		Points:            res.Clusters.Len(),
		Iterations:        res.Iterations,
		Converged:         res.Converged,
		PartitionAttempts: res.PartitionAttempts,
		Inertia:           res.Inertia,
		DurationMillis:    float64(res.Duration.Microseconds()) / 1000,
		Clusters:          make([]Cluster, len(res.Clusters)),
	}
	for i, c := range res.Clusters {
		pts := c
		if pts == nil {
			pts = model.Cluster{}
		}
		doc.Clusters[i] = Cluster{
			Index:    i,
			Centroid: res.Centroids[i],
			Size:     len(c),
			Points:   pts,
		}
	}
	return doc
}

// Encode marshals doc with c, indented when c supports it.
// A nil codec selects codec.Default.
func Encode(doc Document, c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	doc.Codec = c.Name()

	var (
		b   []byte
		err error
	)
	if ind, ok := c.(codec.Indenter); ok {
		b, err = ind.MarshalIndent(doc, "", "  ")
	} else {
		b, err = c.Marshal(doc)
	}
	if err != nil {
		return nil, fmt.Errorf("report: encode with %s: %w", c.Name(), err)
	}
	return append(b, '\n'), nil
}

// WriteJSON encodes doc with c and writes it to w.
func WriteJSON(w io.Writer, doc Document, c codec.Codec) error {
	b, err := Encode(doc, c)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
