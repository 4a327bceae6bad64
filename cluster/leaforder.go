package cluster

import "math"

// oloTable is the dynamic-programming table of one dendrogram node: the
// minimum total adjacent-leaf distance of any ordering of the node's leaves
// with a given pair of endpoint leaves. Valid endpoint pairs lie in
// different children, since each child's leaves stay contiguous.
type oloTable struct {
	leaves []int       // leaf row ids, left-to-right tree order
	index  map[int]int // leaf row id -> position in leaves
	nl     int         // number of leaves in the left child
	cost   [][]float64 // +Inf marks an invalid endpoint pair
	// junction[u][w] holds, for an ordering with leaf u of the left child
	// leftmost and leaf w of the right child rightmost, the two leaf row
	// ids adjacent across the child boundary: {last of left, first of
	// right}.
	junction [][][2]int
}

// OptimalOrder returns the permutation of leaf row indices that minimizes
// the sum of distances between adjacent leaves, over all permutations
// consistent with the dendrogram's merge structure. The tree itself is
// never altered; only the left/right presentation of each merge is chosen.
func (dg *Dendrogram) OptimalOrder(d *Dists) []int {
	if dg.Root == nil {
		return nil
	}
	tables := make(map[*Node]*oloTable, 2*dg.NLeaves)
	root := buildOLO(dg.Root, d, tables)

	bu, bw, best := -1, -1, math.Inf(1)
	for i, u := range root.leaves {
		for j, w := range root.leaves {
			if i != j && root.cost[i][j] < best {
				bu, bw, best = u, w, root.cost[i][j]
			}
		}
	}
	if bu < 0 {
		// Single leaf.
		return []int{root.leaves[0]}
	}
	return extractOrder(dg.Root, tables, bu, bw)
}

func buildOLO(n *Node, d *Dists, tables map[*Node]*oloTable) *oloTable {
	if n.IsLeaf() {
		t := &oloTable{
			leaves: []int{n.Leaf},
			index:  map[int]int{n.Leaf: 0},
			cost:   [][]float64{{0}},
		}
		tables[n] = t
		return t
	}

	l := buildOLO(n.Left, d, tables)
	r := buildOLO(n.Right, d, tables)
	nl, nr := len(l.leaves), len(r.leaves)
	m := nl + nr

	t := &oloTable{
		leaves:   make([]int, 0, m),
		index:    make(map[int]int, m),
		nl:       nl,
		cost:     make([][]float64, m),
		junction: make([][][2]int, m),
	}
	t.leaves = append(t.leaves, l.leaves...)
	t.leaves = append(t.leaves, r.leaves...)
	for i, leaf := range t.leaves {
		t.index[leaf] = i
	}
	for i := range t.cost {
		t.cost[i] = make([]float64, m)
		t.junction[i] = make([][2]int, m)
		for j := range t.cost[i] {
			t.cost[i][j] = math.Inf(1)
		}
	}

	// bridge[u][k]: cheapest way to order the left child with u leftmost
	// and any leaf h rightmost, plus the hop from h to right-child leaf k.
	bridge := make([][]float64, nl)
	argH := make([][]int, nl)
	for u := 0; u < nl; u++ {
		bridge[u] = make([]float64, nr)
		argH[u] = make([]int, nr)
		for k := 0; k < nr; k++ {
			best, bh := math.Inf(1), -1
			for h := 0; h < nl; h++ {
				if math.IsInf(l.cost[u][h], 1) {
					continue
				}
				c := l.cost[u][h] + d.Get(l.leaves[h], r.leaves[k])
				if c < best {
					best, bh = c, h
				}
			}
			bridge[u][k] = best
			argH[u][k] = bh
		}
	}

	for u := 0; u < nl; u++ {
		for w := 0; w < nr; w++ {
			best, bk := math.Inf(1), -1
			for k := 0; k < nr; k++ {
				if math.IsInf(r.cost[k][w], 1) {
					continue
				}
				c := bridge[u][k] + r.cost[k][w]
				if c < best {
					best, bk = c, k
				}
			}
			t.cost[u][nl+w] = best
			t.cost[nl+w][u] = best
			t.junction[u][nl+w] = [2]int{
				l.leaves[argH[u][bk]],
				r.leaves[bk],
			}
		}
	}

	tables[n] = t
	return t
}

// extractOrder recovers the ordering of n's leaves with u leftmost and w
// rightmost by following the junction choices recorded during the build.
func extractOrder(n *Node, tables map[*Node]*oloTable, u, w int) []int {
	if n.IsLeaf() {
		return []int{n.Leaf}
	}
	t := tables[n]
	pu, pw := t.index[u], t.index[w]
	if pu < t.nl {
		// u sits in the left child, w in the right.
		j := t.junction[pu][pw]
		order := extractOrder(n.Left, tables, u, j[0])
		return append(order, extractOrder(n.Right, tables, j[1], w)...)
	}
	// Mirror image: the recorded junction for (w, u) read right-to-left.
	j := t.junction[pw][pu]
	order := extractOrder(n.Right, tables, u, j[1])
	return append(order, extractOrder(n.Left, tables, j[0], w)...)
}

// TotalAdjacentDistance sums the distances between consecutive leaves of an
// ordering. This is the quantity OptimalOrder minimizes.
func TotalAdjacentDistance(d *Dists, order []int) float64 {
	total := 0.0
	for i := 1; i < len(order); i++ {
		total += d.Get(order[i-1], order[i])
	}
	return total
}
