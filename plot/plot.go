// Package plot renders final clusters as an interactive HTML scatter chart.
package plot

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/racheljewell/kmeans/model"
)

// Palette holds series colors; clusters past its length wrap around.
var Palette = []string{
	"#5470c6", "#91cc75", "#fac858", "#ee6666", "#73c0de",
	"#3ba272", "#fc8452", "#9a60b4", "#ea7ccc", "#2f4554",
}

// CentroidColor is the color of the centroid series.
const CentroidColor = "black"

// Options configures the chart.
type Options struct {
	Title    string
	Subtitle string
}

// Color returns the palette color for cluster i.
func Color(i int) string {
	return Palette[i%len(Palette)]
}

// NewScatter builds a scatter chart with one series per cluster and a final
// "Centroids" series.
func NewScatter(set model.ClusterSet, centroids []model.Point, o Options) *charts.Scatter {
	if o.Title == "" {
		o.Title = "Clustering - Scatter Plot"
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: o.Title}),
		charts.WithTitleOpts(opts.Title{Title: o.Title, Subtitle: o.Subtitle}),
	)

	for i, c := range set {
		data := make([]opts.ScatterData, 0, len(c))
		for _, p := range c {
			data = append(data, scatterPoint(p))
		}
		sc.AddSeries(fmt.Sprintf("Cluster %d", i+1), data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: Color(i)}))
	}

	data := make([]opts.ScatterData, 0, len(centroids))
	for _, p := range centroids {
		data = append(data, scatterPoint(p))
	}
	sc.AddSeries("Centroids", data, charts.WithItemStyleOpts(opts.ItemStyle{Color: CentroidColor}))

	return sc
}

func scatterPoint(p model.Point) opts.ScatterData {
	return opts.ScatterData{Name: p.String(), Value: []int{p.X, p.Y}}
}

// Scatter renders the chart as a standalone HTML page to w.
func Scatter(w io.Writer, set model.ClusterSet, centroids []model.Point, o Options) error {
	if len(centroids) != len(set) {
		return fmt.Errorf("plot: %d centroids for %d clusters", len(centroids), len(set))
	}
	return NewScatter(set, centroids, o).Render(w)
}

// Render returns the HTML page as bytes, for upload to a blob store.
func Render(set model.ClusterSet, centroids []model.Point, o Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Scatter(&buf, set, centroids, o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
