package heatmap

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/chiennifer/ConsHMM/cluster"
	"github.com/chiennifer/ConsHMM/emissions"
)

// Config carries the rendering options of a single heatmap.
type Config struct {
	Title string

	// ShowValues overlays each cell with its probability.
	ShowValues bool

	// Cell is the edge length of one heatmap cell; the zero value picks a
	// default. Total image size scales with the row and column counts.
	Cell vg.Length
}

// Render draws the table as a color-encoded grid and writes it to outPath;
// the image format follows the file extension (.png, .pdf, .svg, ...).
// The color scale is a diverging blue-white-red ramp over [0, 1], neutral
// at probability 0.5. Rows follow order (nil for table order) with gaps at
// the given cluster boundaries, and dg, when non-nil, is drawn as a
// dendrogram beside the rows.
func Render(
	t *emissions.Table,
	dg *cluster.Dendrogram,
	order, boundaries []int,
	cfg Config,
	outPath string,
) error {
	grid := NewGrid(t, order, boundaries)
	cols, rows := grid.Dims()

	p := plot.New()
	p.Title.Text = cfg.Title

	cm := moreland.SmoothBlueRed()
	cm.SetMin(0)
	cm.SetMax(1)
	hm := plotter.NewHeatMap(grid, cm.Palette(255))
	hm.Min, hm.Max = 0, 1
	hm.NaN = color.Transparent
	p.Add(hm)

	colPos := make([]float64, cols)
	colNames := make([]string, cols)
	for j := 0; j < cols; j++ {
		colPos[j] = float64(j)
		colNames[j] = grid.ColName(j)
	}
	p.X.Tick.Marker = fixedTicks{colPos, colNames}
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	rowPos := make([]float64, rows)
	rowNames := make([]string, rows)
	for i := 0; i < rows; i++ {
		rowPos[i] = float64(i)
		rowNames[i] = grid.RowLabel(i)
	}
	p.Y.Tick.Marker = fixedTicks{rowPos, rowNames}

	if dg != nil && dg.Root != nil && !dg.Root.IsLeaf() {
		span := math.Max(3, float64(cols)/6)
		p.Add(newDendroPlotter(dg, grid, span))
	}

	if colors := groupColors(grid); len(colors) > 0 {
		p.Add(newGroupStrip(grid, colors))
		for _, g := range groupOrder(grid) {
			p.Legend.Add(g, swatch{colors[g]})
		}
		p.Legend.Top = true
		p.Legend.Left = true
	}

	if cfg.ShowValues {
		labels, err := valueLabels(grid)
		if err != nil {
			return err
		}
		p.Add(labels)
	}

	cell := cfg.Cell
	if cell == 0 {
		cell = vg.Points(22)
	}
	w := vg.Length(cols+10) * cell
	h := vg.Length(rows+6) * cell
	return p.Save(w, h, outPath)
}

// groupColors picks one color per species group, in column order.
func groupColors(grid *Grid) map[string]color.Color {
	colors := make(map[string]color.Color)
	cols, _ := grid.Dims()
	n := 0
	for j := 0; j < cols; j++ {
		g := grid.ColGroup(j)
		if len(g) == 0 {
			continue
		}
		if _, ok := colors[g]; !ok {
			colors[g] = plotutil.Color(n)
			n++
		}
	}
	return colors
}

func groupOrder(grid *Grid) []string {
	var order []string
	seen := make(map[string]bool)
	cols, _ := grid.Dims()
	for j := 0; j < cols; j++ {
		g := grid.ColGroup(j)
		if len(g) > 0 && !seen[g] {
			seen[g] = true
			order = append(order, g)
		}
	}
	return order
}

func valueLabels(grid *Grid) (*plotter.Labels, error) {
	cols, rows := grid.Dims()
	var xys plotter.XYs
	var strs []string
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			z := grid.Z(c, r)
			if math.IsNaN(z) {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(c), Y: float64(r)})
			strs = append(strs, fmt.Sprintf("%.2f", z))
		}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: strs})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
		labels.TextStyle[i].Font.Size = vg.Points(6)
	}
	return labels, nil
}
