package cluster

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/TuftsBCB/io/newick"
)

// WriteNewick serializes the dendrogram in Newick tree format, labeling
// each leaf with the corresponding entry of labels and encoding merge
// heights as branch lengths. A tree written here can be handed back to a
// later run through FromNewick, so an expensive clustering (or a manually
// curated ordering) is computed once and reused.
func WriteNewick(w io.Writer, dg *Dendrogram, labels []string) error {
	bw := bufio.NewWriter(w)
	if dg.Root != nil {
		writeNode(bw, dg.Root, labels)
	}
	bw.WriteString(";\n")
	return bw.Flush()
}

func writeNode(w *bufio.Writer, n *Node, labels []string) {
	if n.IsLeaf() {
		w.WriteString(labels[n.Leaf])
		return
	}
	w.WriteByte('(')
	writeNode(w, n.Left, labels)
	w.WriteByte(':')
	w.WriteString(formatLen(n.Height - n.Left.Height))
	w.WriteByte(',')
	writeNode(w, n.Right, labels)
	w.WriteByte(':')
	w.WriteString(formatLen(n.Height - n.Right.Height))
	w.WriteByte(')')
}

func formatLen(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// branchLen returns the branch length of t, treating an absent length as 0.
func branchLen(t *newick.Tree) float64 {
	if t.Length == nil {
		return 0
	}
	return *t.Length
}

// FromNewick rebuilds a dendrogram from a parsed Newick tree. The tree must
// be binary and its leaf labels must match the given labels exactly, one
// leaf per label. Merge heights are recovered from branch lengths.
func FromNewick(t *newick.Tree, labels []string) (*Dendrogram, error) {
	index := make(map[string]int, len(labels))
	for i, label := range labels {
		index[label] = i
	}

	seen := make(map[int]bool, len(labels))
	root, err := fromNode(t, index, seen)
	if err != nil {
		return nil, err
	}
	if len(seen) != len(labels) {
		return nil, fmt.Errorf(
			"newick tree has %d leaves, expected %d", len(seen), len(labels))
	}
	return &Dendrogram{Root: root, NLeaves: len(labels)}, nil
}

func fromNode(t *newick.Tree, index map[string]int, seen map[int]bool) (*Node, error) {
	if len(t.Children) == 0 {
		leaf, ok := index[t.Label]
		if !ok {
			return nil, fmt.Errorf("unknown leaf label '%s'", t.Label)
		}
		if seen[leaf] {
			return nil, fmt.Errorf("leaf label '%s' appears twice", t.Label)
		}
		seen[leaf] = true
		return &Node{Leaf: leaf, size: 1}, nil
	}
	if len(t.Children) != 2 {
		return nil, fmt.Errorf(
			"node has %d children, dendrograms are binary", len(t.Children))
	}

	left, err := fromNode(&t.Children[0], index, seen)
	if err != nil {
		return nil, err
	}
	right, err := fromNode(&t.Children[1], index, seen)
	if err != nil {
		return nil, err
	}
	// For an ultrametric tree both children give the same height; taking
	// the max tolerates small asymmetries in hand-edited trees.
	h := max(left.Height+branchLen(&t.Children[0]), right.Height+branchLen(&t.Children[1]))
	return &Node{
		Left:   left,
		Right:  right,
		Leaf:   -1,
		Height: h,
		size:   left.size + right.size,
	}, nil
}
