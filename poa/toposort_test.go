package poa_test

import (
	"testing"

	"github.com/katalvlaran/wfpoa/poa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rankOf inverts the rank permutation for assertion convenience.
func rankOf(g *poa.Graph) map[int]int {
	ranks := make(map[int]int, g.NumNodes())
	for rank := 0; rank < g.NumNodes(); rank++ {
		ranks[g.NodeIDAtRank(rank)] = rank
	}

	return ranks
}

// TestTopologicalSort_EdgeOrder verifies that after every insertion each
// edge points from a lower to a higher rank.
func TestTopologicalSort_EdgeOrder(t *testing.T) {
	g := buildDriverGraph(t)

	require.True(t, g.IsTopologicallySorted())

	ranks := rankOf(g)
	assert.Len(t, ranks, g.NumNodes(), "rank is a permutation of the nodes")

	for u := 0; u < g.NumNodes(); u++ {
		for _, v := range g.OutNeighbors(u) {
			assert.Less(t, ranks[u], ranks[v], "edge %d->%d", u, v)
		}
	}
}

// TestTopologicalSort_AlignedAdjacency verifies the property the MSA
// depends on: every aligned group occupies consecutive ranks.
func TestTopologicalSort_AlignedAdjacency(t *testing.T) {
	g := buildDriverGraph(t)

	ranks := rankOf(g)
	for nodeID := 0; nodeID < g.NumNodes(); nodeID++ {
		peers := g.AlignedNodes(nodeID)
		if len(peers) == 0 {
			continue
		}

		lo, hi := ranks[nodeID], ranks[nodeID]
		for _, peer := range peers {
			if ranks[peer] < lo {
				lo = ranks[peer]
			}
			if ranks[peer] > hi {
				hi = ranks[peer]
			}
		}

		assert.Equal(t, len(peers), hi-lo, "group of %d spans consecutive ranks", nodeID)
	}
}

// TestTopologicalSort_DriverRanks pins the exact rank order of the
// reference graph: aligned pairs (1,9), (6,10), (8,11) stay adjacent.
func TestTopologicalSort_DriverRanks(t *testing.T) {
	g := buildDriverGraph(t)

	want := []int{0, 1, 9, 2, 3, 4, 5, 6, 10, 7, 8, 11}
	got := make([]int, g.NumNodes())
	for rank := range got {
		got[rank] = g.NodeIDAtRank(rank)
	}

	assert.Equal(t, want, got)
}

// TestTopologicalSort_CycleDetected verifies that a hand-made cycle is
// reported as ErrNotDAG by the next insertion.
func TestTopologicalSort_CycleDetected(t *testing.T) {
	g := poa.NewGraph(1, 4)

	g.AddNode('A')
	g.AddNode('C')
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 0, 1)

	err := g.AddAlignment(poa.Alignment{{NodeID: 0, SeqIdx: 0}}, []byte("A"), []int64{1})
	assert.ErrorIs(t, err, poa.ErrNotDAG)
}
