// Package cluster provides agglomerative hierarchical clustering of
// emissions rows, optimal leaf ordering of the resulting dendrogram, flat
// cluster cuts and Newick tree interchange.
package cluster

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/BurntSushi/intern"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Metric selects the dissimilarity between two row vectors.
type Metric uint8

const (
	Euclidean Metric = iota
	Manhattan
)

// ParseMetric maps a flag value to a Metric.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "euclidean":
		return Euclidean, nil
	case "manhattan":
		return Manhattan, nil
	}
	return 0, fmt.Errorf("unknown distance metric '%s'", s)
}

// Dists is a symmetric pairwise distance table over labeled items. Storage
// is an interned-atom table, which keeps the table label-addressable and
// cheaply gob-encodable for caching between runs.
type Dists struct {
	Labels []string
	Table  *intern.Table

	atoms []intern.Atom
}

// NewDists returns an empty distance table over the given labels.
func NewDists(labels []string) *Dists {
	d := &Dists{
		Labels: labels,
		Table:  intern.NewTable(len(labels)),
	}
	d.internAtoms()
	return d
}

func (d *Dists) internAtoms() {
	d.atoms = make([]intern.Atom, len(d.Labels))
	for i, label := range d.Labels {
		d.atoms[i] = d.Table.Atom(label)
	}
}

func (d *Dists) Len() int {
	return len(d.Labels)
}

func (d *Dists) Set(i, j int, v float64) {
	d.Table.Set(d.atoms[i], d.atoms[j], v)
}

func (d *Dists) Get(i, j int) float64 {
	if i == j {
		return 0
	}
	return d.Table.Get(d.atoms[i], d.atoms[j])
}

// RowDistances computes pairwise distances between the rows of m. The label
// slice names the rows and must match m's row count.
func RowDistances(m mat.Matrix, labels []string, metric Metric) *Dists {
	nrows, ncols := m.Dims()
	if nrows != len(labels) {
		panic(fmt.Sprintf("cluster: %d row labels for %d rows", len(labels), nrows))
	}

	L := 2.0
	if metric == Manhattan {
		L = 1.0
	}

	rows := make([][]float64, nrows)
	for i := range rows {
		rows[i] = make([]float64, ncols)
		mat.Row(rows[i], i, m)
	}

	d := NewDists(labels)
	for i := 0; i < nrows; i++ {
		for j := i + 1; j < nrows; j++ {
			d.Set(i, j, floats.Distance(rows[i], rows[j], L))
		}
	}
	return d
}

// WriteGob caches the distance table to w.
func (d *Dists) WriteGob(w io.Writer) error {
	return gob.NewEncoder(w).Encode(d)
}

// ReadDistsGob restores a distance table cached by WriteGob.
func ReadDistsGob(r io.Reader) (*Dists, error) {
	var d Dists
	if err := gob.NewDecoder(r).Decode(&d); err != nil {
		return nil, err
	}
	// Atoms are not serialized; re-interning the labels recovers them from
	// the decoded table.
	d.internAtoms()
	return &d, nil
}
