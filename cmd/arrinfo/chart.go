package main

import (
	"io"

	"github.com/Vannevartech/cgal/internal"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Render finite vertices as a scatter series with one overlaid line per edge.
// Edges to vertices at infinity have no finite segment and are left out.
func renderChart(arr *internal.Arrangement, title string, w io.Writer) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "800px",
			Width:  "800px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "value",
			SplitLine: &opts.SplitLine{Show: opts.Bool(false)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "value",
			SplitLine: &opts.SplitLine{Show: opts.Bool(false)},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
		}),
	)

	points := make([]opts.ScatterData, 0)
	for _, v := range arr.Vertices() {
		p, err := v.Point()
		if err != nil {
			continue
		}
		points = append(points, opts.ScatterData{
			Name:  v.String(),
			Value: []float64{p.ApproxX(), p.ApproxY()},
		})
	}
	scatter.AddSeries("Vertices", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "darkgreen",
			}),
		)

	for _, h := range arr.Edges() {
		s, err := h.Curve()
		if err != nil {
			continue
		}
		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
			charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
		)
		line.AddSeries("Edges", []opts.LineData{
			{Value: []float64{s.Source().ApproxX(), s.Source().ApproxY()}},
			{Value: []float64{s.Target().ApproxX(), s.Target().ApproxY()}},
		}).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{
				Width: 2,
			}),
		)
		scatter.Overlap(line)
	}

	return scatter.Render(w)
}
