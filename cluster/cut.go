package cluster

// Cut flattens the dendrogram into k clusters by repeatedly splitting the
// subtree with the highest merge height until k subtrees remain. k == 0
// disables cutting and returns nil; k >= the number of leaves puts every
// leaf in its own cluster. Otherwise the result assigns each leaf row index
// a cluster id; ids are numbered by each cluster's first leaf in
// left-to-right tree order, so any topology-consistent leaf ordering sees
// each cluster as one contiguous block.
func (dg *Dendrogram) Cut(k int) []int {
	if k <= 0 || dg.Root == nil {
		return nil
	}
	if k > dg.NLeaves {
		k = dg.NLeaves
	}

	subtrees := []*Node{dg.Root}
	for len(subtrees) < k {
		// Split the subtree whose root merge is highest.
		bi := -1
		for i, n := range subtrees {
			if n.IsLeaf() {
				continue
			}
			if bi < 0 || n.Height > subtrees[bi].Height {
				bi = i
			}
		}
		if bi < 0 {
			break
		}
		n := subtrees[bi]
		subtrees = append(subtrees[:bi], subtrees[bi+1:]...)
		subtrees = append(subtrees, n.Left, n.Right)
	}

	assign := make([]int, dg.NLeaves)
	for _, leaf := range dg.Leaves() {
		assign[leaf] = -1
	}
	next := 0
	// Number clusters in tree order for stable ids.
	for _, leaf := range dg.Leaves() {
		if assign[leaf] >= 0 {
			continue
		}
		for _, n := range subtrees {
			if contains(n, leaf) {
				id := next
				next++
				markLeaves(n, assign, id)
				break
			}
		}
	}
	return assign
}

func contains(n *Node, leaf int) bool {
	if n.IsLeaf() {
		return n.Leaf == leaf
	}
	return contains(n.Left, leaf) || contains(n.Right, leaf)
}

func markLeaves(n *Node, assign []int, id int) {
	if n.IsLeaf() {
		assign[n.Leaf] = id
		return
	}
	markLeaves(n.Left, assign, id)
	markLeaves(n.Right, assign, id)
}

// Boundaries lists the positions in the given leaf ordering after which the
// cluster assignment changes. A nil assignment yields no boundaries.
func Boundaries(assign, order []int) []int {
	if assign == nil {
		return nil
	}
	var bounds []int
	for i := 1; i < len(order); i++ {
		if assign[order[i]] != assign[order[i-1]] {
			bounds = append(bounds, i)
		}
	}
	return bounds
}

// Groups collects the members of each cluster, labeled and in the given
// leaf order, for writing out as rows of a clusters file.
func Groups(assign, order []int, labels []string) [][]string {
	if len(order) == 0 {
		return nil
	}
	if assign == nil {
		all := make([]string, len(order))
		for i, leaf := range order {
			all[i] = labels[leaf]
		}
		return [][]string{all}
	}
	var groups [][]string
	for i, leaf := range order {
		if i == 0 || assign[leaf] != assign[order[i-1]] {
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], labels[leaf])
	}
	return groups
}
