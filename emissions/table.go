package emissions

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Table is an emissions matrix: one row per learned model state, one column
// per (genome, kind) pair, values in [0, 1].
type Table struct {
	// States holds the state identifier of each row.
	States []string

	// Columns identifies each column's genome and kind.
	Columns []Column

	// Names holds the display header of each column. ReadTable sets these
	// to the raw '<genome>_<kind>' names; Reorder replaces them with the
	// genomes' common names.
	Names []string

	// Groups holds the species group of each column. Empty until Reorder
	// joins the species annotations in.
	Groups []string

	Data *mat.Dense
}

// ReadTable parses a tab-separated emissions table. The header row names a
// leading state-identifier column followed by '<genome>_aligned' and
// '<genome>_matched' columns; every later row carries the state identifier
// and one probability per column.
func ReadTable(r io.Reader) (*Table, error) {
	csvr := csv.NewReader(r)
	csvr.Comma = '\t'
	csvr.TrimLeadingSpace = true

	records, err := csvr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading emissions table: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("emissions table has no data rows")
	}
	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("emissions table has no genome columns")
	}

	ncols := len(header) - 1
	t := &Table{
		Columns: make([]Column, ncols),
		Names:   make([]string, ncols),
	}
	seen := make(map[Column]bool, ncols)
	for i, name := range header[1:] {
		col, err := parseColumn(name)
		if err != nil {
			return nil, err
		}
		if seen[col] {
			return nil, fmt.Errorf("emissions column '%s' appears twice", name)
		}
		seen[col] = true
		t.Columns[i] = col
		t.Names[i] = col.FullName()
	}

	nrows := len(records) - 1
	t.States = make([]string, nrows)
	vals := make([]float64, nrows*ncols)
	for i, record := range records[1:] {
		t.States[i] = record[0]
		for j, field := range record[1:] {
			p, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf(
					"state '%s', column '%s': expected probability, got '%s'",
					record[0], t.Names[j], field)
			}
			if p < 0 || p > 1 {
				return nil, fmt.Errorf(
					"state '%s', column '%s': probability %v out of [0,1]",
					record[0], t.Names[j], p)
			}
			vals[i*ncols+j] = p
		}
	}
	t.Data = mat.NewDense(nrows, ncols, vals)
	return t, nil
}

// WriteTSV writes the table back out in the input format, using the current
// display names as column headers.
func (t *Table) WriteTSV(w io.Writer) error {
	csvw := csv.NewWriter(w)
	csvw.Comma = '\t'

	nrows, ncols := t.Data.Dims()
	record := make([]string, 1+ncols)

	record[0] = "state"
	copy(record[1:], t.Names)
	if err := csvw.Write(record); err != nil {
		return err
	}
	for i := 0; i < nrows; i++ {
		record[0] = t.States[i]
		for j := 0; j < ncols; j++ {
			record[1+j] = strconv.FormatFloat(t.Data.At(i, j), 'g', -1, 64)
		}
		if err := csvw.Write(record); err != nil {
			return err
		}
	}
	csvw.Flush()
	return csvw.Error()
}

// SplitIndex returns the number of aligned columns, which is also the index
// of the first matched column once the table has been reordered.
func (t *Table) SplitIndex() int {
	n := 0
	for _, c := range t.Columns {
		if c.Kind == Aligned {
			n++
		}
	}
	return n
}

// Genomes returns the distinct genome names in column order of first
// appearance.
func (t *Table) Genomes() []string {
	seen := make(map[string]bool, len(t.Columns))
	var genomes []string
	for _, c := range t.Columns {
		if !seen[c.Genome] {
			seen[c.Genome] = true
			genomes = append(genomes, c.Genome)
		}
	}
	return genomes
}
