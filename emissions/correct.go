package emissions

import "fmt"

// CorrectMatched rescales every matched column by the same genome's aligned
// column, row by row. The learner's matched probability is conditional on
// alignment; the product is the unconditional quantity the heatmap compares
// across genomes. Must be applied exactly once: a second application would
// treat already-corrected values as raw conditionals.
func (t *Table) CorrectMatched() error {
	aligned := make(map[string]int, len(t.Columns))
	for j, c := range t.Columns {
		if c.Kind == Aligned {
			aligned[c.Genome] = j
		}
	}

	nrows, _ := t.Data.Dims()
	for j, c := range t.Columns {
		if c.Kind != Matched {
			continue
		}
		aj, ok := aligned[c.Genome]
		if !ok {
			return fmt.Errorf("%w: '%s'", ErrIncompletePair, c.FullName())
		}
		for i := 0; i < nrows; i++ {
			t.Data.Set(i, j, t.Data.At(i, j)*t.Data.At(i, aj))
		}
	}
	return nil
}
