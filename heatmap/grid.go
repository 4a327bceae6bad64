// Package heatmap renders a corrected, reordered emissions table as an
// annotated heatmap, either as a static image or as an interactive HTML
// chart.
package heatmap

import (
	"math"

	"github.com/chiennifer/ConsHMM/emissions"
)

// Grid lays the table out as the cell grid to draw: states top to bottom in
// the given row order, the aligned column block left of the matched block.
// Spacer rows and columns (value NaN) open visual gaps between cluster
// blocks and between the two column blocks. It implements
// plotter.GridXYZ; the y axis grows upward, so display row 0 is the
// bottom of the image.
type Grid struct {
	table *emissions.Table

	rowOf []int // display row (bottom up) -> table row, -1 for a gap
	colOf []int // display col -> table col, -1 for a gap
	rowY  map[int]float64
}

// NewGrid arranges the table's rows by order (nil means table order), with
// gaps after each boundary position, and splits the aligned and matched
// column blocks with one spacer column.
func NewGrid(t *emissions.Table, order, boundaries []int) *Grid {
	nrows, ncols := t.Data.Dims()
	if order == nil {
		order = make([]int, nrows)
		for i := range order {
			order[i] = i
		}
	}

	isBound := make(map[int]bool, len(boundaries))
	for _, b := range boundaries {
		isBound[b] = true
	}
	topDown := make([]int, 0, nrows+len(boundaries))
	for i, row := range order {
		if i > 0 && isBound[i] {
			topDown = append(topDown, -1)
		}
		topDown = append(topDown, row)
	}

	g := &Grid{
		table: t,
		rowOf: make([]int, len(topDown)),
		rowY:  make(map[int]float64, nrows),
	}
	for i, row := range topDown {
		y := len(topDown) - 1 - i
		g.rowOf[y] = row
		if row >= 0 {
			g.rowY[row] = float64(y)
		}
	}

	split := t.SplitIndex()
	for j := 0; j < ncols; j++ {
		if j == split && split > 0 && split < ncols {
			g.colOf = append(g.colOf, -1)
		}
		g.colOf = append(g.colOf, j)
	}
	return g
}

func (g *Grid) Dims() (c, r int) {
	return len(g.colOf), len(g.rowOf)
}

func (g *Grid) Z(c, r int) float64 {
	tc, tr := g.colOf[c], g.rowOf[r]
	if tc < 0 || tr < 0 {
		return math.NaN()
	}
	return g.table.Data.At(tr, tc)
}

func (g *Grid) X(c int) float64 {
	return float64(c)
}

func (g *Grid) Y(r int) float64 {
	return float64(r)
}

// RowY returns the display y coordinate of a table row.
func (g *Grid) RowY(row int) float64 {
	return g.rowY[row]
}

// ColName returns the display header of a column, or "" for the spacer.
func (g *Grid) ColName(c int) string {
	if g.colOf[c] < 0 {
		return ""
	}
	return g.table.Names[g.colOf[c]]
}

// ColGroup returns the species group of a column, or "" for the spacer or
// when the table has not been annotated.
func (g *Grid) ColGroup(c int) string {
	if g.colOf[c] < 0 || g.colOf[c] >= len(g.table.Groups) {
		return ""
	}
	return g.table.Groups[g.colOf[c]]
}

// RowLabel returns the state identifier of a display row, or "" for a gap.
func (g *Grid) RowLabel(r int) string {
	if g.rowOf[r] < 0 {
		return ""
	}
	return g.table.States[g.rowOf[r]]
}
