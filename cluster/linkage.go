package cluster

import "fmt"

// Linkage selects how the distance between two merged clusters is derived
// from the distances of their members.
type Linkage uint8

const (
	Average Linkage = iota
	Single
	Complete
)

// ParseLinkage maps a flag value to a Linkage.
func ParseLinkage(s string) (Linkage, error) {
	switch s {
	case "average":
		return Average, nil
	case "single":
		return Single, nil
	case "complete":
		return Complete, nil
	}
	return 0, fmt.Errorf("unknown linkage '%s'", s)
}

// Node is one vertex of a dendrogram. Leaves have Left and Right nil and
// Leaf set to the row index they represent; internal nodes carry the
// distance at which their two children were merged.
type Node struct {
	Left, Right *Node
	Leaf        int
	Height      float64

	size int
}

// IsLeaf reports whether n represents a single row.
func (n *Node) IsLeaf() bool {
	return n.Left == nil
}

// Dendrogram is the merge tree produced by agglomerative clustering.
type Dendrogram struct {
	Root    *Node
	NLeaves int
}

// Leaves returns the leaf row indices in left-to-right tree order.
func (d *Dendrogram) Leaves() []int {
	order := make([]int, 0, d.NLeaves)
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if n.IsLeaf() {
			order = append(order, n.Leaf)
			return
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(d.Root)
	return order
}

// Cluster agglomerates the items of d into a binary merge tree using the
// Lance-Williams update for the chosen linkage. Ties are broken by the
// lowest pair of active cluster indices, so the result is deterministic.
func Cluster(d *Dists, link Linkage) *Dendrogram {
	n := d.Len()
	dg := &Dendrogram{NLeaves: n}
	if n == 0 {
		return dg
	}

	// Working copy of the distance matrix over active clusters.
	work := make([][]float64, n)
	for i := range work {
		work[i] = make([]float64, n)
		for j := range work[i] {
			work[i][j] = d.Get(i, j)
		}
	}
	active := make([]*Node, n)
	for i := range active {
		active[i] = &Node{Left: nil, Right: nil, Leaf: i, size: 1}
	}

	alive := make([]bool, n)
	for i := range alive {
		alive[i] = true
	}

	for merges := 0; merges < n-1; merges++ {
		bi, bj, best := -1, -1, 0.0
		for i := 0; i < n; i++ {
			if !alive[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if !alive[j] {
					continue
				}
				if bi < 0 || work[i][j] < best {
					bi, bj, best = i, j, work[i][j]
				}
			}
		}

		a, b := active[bi], active[bj]
		merged := &Node{
			Left:   a,
			Right:  b,
			Leaf:   -1,
			Height: best,
			size:   a.size + b.size,
		}

		// Fold cluster bj into slot bi and update distances to every
		// other active cluster.
		for k := 0; k < n; k++ {
			if !alive[k] || k == bi || k == bj {
				continue
			}
			dik, djk := work[bi][k], work[bj][k]
			var dk float64
			switch link {
			case Single:
				dk = min(dik, djk)
			case Complete:
				dk = max(dik, djk)
			default:
				na, nb := float64(a.size), float64(b.size)
				dk = (na*dik + nb*djk) / (na + nb)
			}
			work[bi][k], work[k][bi] = dk, dk
		}
		active[bi] = merged
		alive[bj] = false
	}

	for i := 0; i < n; i++ {
		if alive[i] {
			dg.Root = active[i]
			break
		}
	}
	return dg
}
