package heatmap

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/chiennifer/ConsHMM/cluster"
)

// dendroPlotter draws the row dendrogram in the margin left of the cell
// grid, leaves against the grid edge and the root merge furthest out.
type dendroPlotter struct {
	root *cluster.Node
	grid *Grid

	// Data-unit geometry: leaves sit at x0, merges grow leftward over
	// span, scaled by the root height.
	x0, span, maxH float64
	sty            draw.LineStyle
}

func newDendroPlotter(dg *cluster.Dendrogram, grid *Grid, span float64) *dendroPlotter {
	return &dendroPlotter{
		root: dg.Root,
		grid: grid,
		x0:   -0.75,
		span: span,
		maxH: dg.Root.Height,
		sty: draw.LineStyle{
			Color: color.Gray{0x33},
			Width: vg.Points(0.75),
		},
	}
}

func (d *dendroPlotter) x(h float64) float64 {
	if d.maxH <= 0 {
		return d.x0
	}
	return d.x0 - d.span*h/d.maxH
}

func (d *dendroPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	var walk func(n *cluster.Node) float64
	walk = func(n *cluster.Node) float64 {
		if n.IsLeaf() {
			return d.grid.RowY(n.Leaf)
		}
		yl, yr := walk(n.Left), walk(n.Right)
		x := d.x(n.Height)
		// One horizontal arm per child, one vertical connector.
		c.StrokeLine2(d.sty, trX(d.x(n.Left.Height)), trY(yl), trX(x), trY(yl))
		c.StrokeLine2(d.sty, trX(d.x(n.Right.Height)), trY(yr), trX(x), trY(yr))
		c.StrokeLine2(d.sty, trX(x), trY(yl), trX(x), trY(yr))
		return (yl + yr) / 2
	}
	walk(d.root)
}

func (d *dendroPlotter) DataRange() (xmin, xmax, ymin, ymax float64) {
	_, rows := d.grid.Dims()
	return d.x0 - d.span - 0.25, d.x0, -0.5, float64(rows) - 0.5
}

// groupStrip draws one colored band above the cell grid identifying each
// column's species group.
type groupStrip struct {
	grid   *Grid
	colors map[string]color.Color
	y0, y1 float64
}

func newGroupStrip(grid *Grid, colors map[string]color.Color) *groupStrip {
	_, rows := grid.Dims()
	top := float64(rows) - 0.5
	return &groupStrip{
		grid:   grid,
		colors: colors,
		y0:     top + 0.35,
		y1:     top + 1.1,
	}
}

func (s *groupStrip) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	cols, _ := s.grid.Dims()
	for j := 0; j < cols; j++ {
		clr, ok := s.colors[s.grid.ColGroup(j)]
		if !ok {
			continue
		}
		x0, x1 := trX(float64(j)-0.5), trX(float64(j)+0.5)
		y0, y1 := trY(s.y0), trY(s.y1)
		c.FillPolygon(clr, []vg.Point{
			{X: x0, Y: y0},
			{X: x1, Y: y0},
			{X: x1, Y: y1},
			{X: x0, Y: y1},
		})
	}
}

func (s *groupStrip) DataRange() (xmin, xmax, ymin, ymax float64) {
	cols, _ := s.grid.Dims()
	return -0.5, float64(cols) - 0.5, s.y0, s.y1 + 0.25
}

// swatch is a legend thumbnail filled with a group's strip color.
type swatch struct {
	color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Min.X, Y: c.Max.Y},
	}
	c.FillPolygon(s.Color, pts)
}

// fixedTicks places one labeled tick per named position and nothing else.
type fixedTicks struct {
	pos   []float64
	names []string
}

func (ft fixedTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i, p := range ft.pos {
		if p < min || p > max || len(ft.names[i]) == 0 {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: p, Label: ft.names[i]})
	}
	return ticks
}
