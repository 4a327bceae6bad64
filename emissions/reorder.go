package emissions

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Reorder repositions the table's columns by phylogenetic distance: all
// aligned columns first, ascending by the genome's distanceToHuman rank,
// then all matched columns in the same relative order. Column headers are
// replaced with the genomes' common names and the species group of each
// column is recorded for rendering.
//
// Placement is an explicit validated sort. Ranks are never used as raw
// array indices, so non-contiguous ranks are fine; duplicated ranks among
// the genomes actually present are rejected with ErrDuplicateRank.
func (t *Table) Reorder(sp SpeciesMap) error {
	for _, c := range t.Columns {
		if _, ok := sp[c.Genome]; !ok {
			return fmt.Errorf("%w: '%s' (column '%s')",
				ErrMissingAnnotation, c.Genome, c.FullName())
		}
	}

	perm := make([]int, 0, len(t.Columns))
	for _, kind := range []Kind{Aligned, Matched} {
		block := make([]int, 0, len(t.Columns))
		for j, c := range t.Columns {
			if c.Kind == kind {
				block = append(block, j)
			}
		}
		sort.SliceStable(block, func(a, b int) bool {
			ra := sp[t.Columns[block[a]].Genome].DistanceToHuman
			rb := sp[t.Columns[block[b]].Genome].DistanceToHuman
			return ra < rb
		})
		for i := 1; i < len(block); i++ {
			ca, cb := t.Columns[block[i-1]], t.Columns[block[i]]
			if ca.Genome != cb.Genome &&
				sp[ca.Genome].DistanceToHuman == sp[cb.Genome].DistanceToHuman {
				return fmt.Errorf("%w: '%s' and '%s' both have rank %d",
					ErrDuplicateRank, ca.Genome, cb.Genome,
					sp[ca.Genome].DistanceToHuman)
			}
		}
		perm = append(perm, block...)
	}

	nrows, ncols := t.Data.Dims()
	cols := make([]Column, ncols)
	names := make([]string, ncols)
	groups := make([]string, ncols)
	data := mat.NewDense(nrows, ncols, nil)
	col := make([]float64, nrows)
	for to, from := range perm {
		c := t.Columns[from]
		cols[to] = c
		names[to] = sp[c.Genome].CommonName
		groups[to] = sp[c.Genome].Group
		mat.Col(col, from, t.Data)
		data.SetCol(to, col)
	}

	t.Columns = cols
	t.Names = names
	t.Groups = groups
	t.Data = data
	return nil
}
