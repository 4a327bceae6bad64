package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fourDists builds two tight pairs (a,b) and (c,d) far from each other.
func fourDists() *Dists {
	d := NewDists([]string{"a", "b", "c", "d"})
	d.Set(0, 1, 1)
	d.Set(2, 3, 2)
	d.Set(0, 2, 10)
	d.Set(0, 3, 11)
	d.Set(1, 2, 9)
	d.Set(1, 3, 10)
	return d
}

func leafSet(n *Node) map[int]bool {
	set := make(map[int]bool)
	var walk func(*Node)
	walk = func(n *Node) {
		if n.IsLeaf() {
			set[n.Leaf] = true
			return
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(n)
	return set
}

func TestClusterSingleLinkage(t *testing.T) {
	dg := Cluster(fourDists(), Single)
	require.NotNil(t, dg.Root)
	assert.Equal(t, 4, dg.NLeaves)

	// (a,b) merge first at 1, (c,d) at 2, then the pairs join at the
	// closest cross distance, 9.
	root := dg.Root
	assert.InDelta(t, 9, root.Height, 1e-12)
	assert.Equal(t, map[int]bool{0: true, 1: true}, leafSet(root.Left))
	assert.Equal(t, map[int]bool{2: true, 3: true}, leafSet(root.Right))
	assert.InDelta(t, 1, root.Left.Height, 1e-12)
	assert.InDelta(t, 2, root.Right.Height, 1e-12)
}

func TestClusterCompleteLinkage(t *testing.T) {
	dg := Cluster(fourDists(), Complete)
	// Same topology, but the pairs join at the farthest cross distance.
	assert.InDelta(t, 11, dg.Root.Height, 1e-12)
}

func TestClusterAverageLinkage(t *testing.T) {
	dg := Cluster(fourDists(), Average)
	// Mean of the four cross distances 10, 11, 9, 10.
	assert.InDelta(t, 10, dg.Root.Height, 1e-12)
}

func TestClusterSingleLeaf(t *testing.T) {
	d := NewDists([]string{"only"})
	dg := Cluster(d, Average)
	require.NotNil(t, dg.Root)
	assert.True(t, dg.Root.IsLeaf())
	assert.Equal(t, []int{0}, dg.Leaves())
}

func TestClusterEmpty(t *testing.T) {
	dg := Cluster(NewDists(nil), Average)
	assert.Nil(t, dg.Root)
	assert.Empty(t, dg.Leaves())
}

func TestLeavesCoverAllRows(t *testing.T) {
	dg := Cluster(fourDists(), Average)
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, dg.Leaves())
}
