package heatmap

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/chiennifer/ConsHMM/emissions"
)

// RenderHTML writes the table as a self-contained interactive HTML heatmap.
// It shares the grid layout of the static renderer, including the spacer
// between the aligned and matched blocks, but draws no dendrogram; rows
// arrive in the already-ordered permutation.
func RenderHTML(
	t *emissions.Table,
	order, boundaries []int,
	title string,
	w io.Writer,
) error {
	grid := NewGrid(t, order, boundaries)
	cols, rows := grid.Dims()

	xCats := make([]string, cols)
	for j := 0; j < cols; j++ {
		xCats[j] = grid.ColName(j)
	}
	yCats := make([]string, rows)
	for i := 0; i < rows; i++ {
		yCats[i] = grid.RowLabel(i)
	}

	data := make([]opts.HeatMapData, 0, cols*rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			z := grid.Z(j, i)
			if math.IsNaN(z) {
				continue
			}
			data = append(data, opts.HeatMapData{
				Value: [3]interface{}{j, i, z},
			})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  fmt.Sprintf("%dpx", 48*cols+220),
			Height: fmt.Sprintf("%dpx", 28*rows+200),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			AxisLabel: &opts.AxisLabel{Rotate: 60, Interval: "0"},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "category",
			Data: yCats,
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Min:        0,
			Max:        1,
			Calculable: opts.Bool(true),
			Orient:     "horizontal",
			InRange: &opts.VisualMapInRange{
				Color: []string{"#313695", "#f7f7f7", "#a50026"},
			},
		}),
	)
	hm.SetXAxis(xCats).AddSeries("emission probability", data)
	return hm.Render(w)
}
