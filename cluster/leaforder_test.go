package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// oloDists makes the default order of the tree ((0,1),(2,3)) suboptimal:
// the cheap seam is between leaves 0 and 3, so the best ordering flips both
// subtrees.
func oloDists() *Dists {
	d := NewDists([]string{"0", "1", "2", "3"})
	d.Set(0, 1, 1)
	d.Set(2, 3, 1)
	d.Set(0, 3, 0.5)
	d.Set(0, 2, 5)
	d.Set(1, 2, 5)
	d.Set(1, 3, 5)
	return d
}

// oloTree builds ((0,1),(2,3)) by hand, so the test pins the topology.
func oloTree() *Dendrogram {
	leaf := func(i int) *Node { return &Node{Leaf: i, size: 1} }
	ab := &Node{Left: leaf(0), Right: leaf(1), Leaf: -1, Height: 1, size: 2}
	cd := &Node{Left: leaf(2), Right: leaf(3), Leaf: -1, Height: 1, size: 2}
	root := &Node{Left: ab, Right: cd, Leaf: -1, Height: 5, size: 4}
	return &Dendrogram{Root: root, NLeaves: 4}
}

func TestOptimalOrderFourLeaves(t *testing.T) {
	d := oloDists()
	dg := oloTree()

	// Of the eight orderings consistent with ((0,1),(2,3)), the optimum
	// is 1,0,3,2 (or its reversal) with total 1 + 0.5 + 1 = 2.5; the
	// tree's default order 0,1,2,3 costs 1 + 5 + 1 = 7.
	order := dg.OptimalOrder(d)
	require.Len(t, order, 4)
	assert.InDelta(t, 2.5, TotalAdjacentDistance(d, order), 1e-12)
	if order[0] == 1 {
		assert.Equal(t, []int{1, 0, 3, 2}, order)
	} else {
		assert.Equal(t, []int{2, 3, 0, 1}, order)
	}
}

func TestOptimalOrderPreservesTopology(t *testing.T) {
	d := oloDists()
	order := oloTree().OptimalOrder(d)

	// Each subtree's leaves stay contiguous.
	pos := make(map[int]int, 4)
	for i, leaf := range order {
		pos[leaf] = i
	}
	assert.Equal(t, 1, abs(pos[0]-pos[1]), "leaves 0,1 not adjacent")
	assert.Equal(t, 1, abs(pos[2]-pos[3]), "leaves 2,3 not adjacent")
}

func TestOptimalOrderBeatsEveryConsistentOrder(t *testing.T) {
	d := oloDists()
	best := TotalAdjacentDistance(d, oloTree().OptimalOrder(d))

	consistent := [][]int{
		{0, 1, 2, 3}, {0, 1, 3, 2}, {1, 0, 2, 3}, {1, 0, 3, 2},
		{2, 3, 0, 1}, {3, 2, 0, 1}, {2, 3, 1, 0}, {3, 2, 1, 0},
	}
	for _, order := range consistent {
		assert.LessOrEqual(t, best, TotalAdjacentDistance(d, order)+1e-12,
			"order %v", order)
	}
}

func TestOptimalOrderSingleLeaf(t *testing.T) {
	d := NewDists([]string{"only"})
	dg := Cluster(d, Average)
	assert.Equal(t, []int{0}, dg.OptimalOrder(d))
}

func TestOptimalOrderOnClusteredTree(t *testing.T) {
	d := fourDists()
	dg := Cluster(d, Average)
	order := dg.OptimalOrder(d)

	assert.ElementsMatch(t, []int{0, 1, 2, 3}, order)
	// The optimum puts the cheap cross pair (1,2) at the seam.
	assert.InDelta(t, 1+9+2, TotalAdjacentDistance(d, order), 1e-12)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
