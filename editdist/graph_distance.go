package editdist

import "github.com/katalvlaran/wfpoa/poa"

// GraphDistance returns the unit-cost edit distance between a
// partial-order graph and seq: the DP walks the graph in topological
// rank order and, at every node, minimizes over all predecessors instead
// of the single left neighbor of the classical recurrence.
//
// Source nodes take the synthetic zero-rank row as their predecessor, so
// entering the graph at any source is free; column 0 charges one deletion
// per rank, which is exact for a linear chain and a best-case bound
// otherwise. On a graph built from a single sequence this reduces to the
// classical edit distance.
//
// Complexity: O((|V|+|E|)·m) time, O(|V|·m) memory.
func GraphDistance(g *poa.Graph, seq []byte) (uint32, error) {
	if g == nil {
		return 0, ErrNilGraph
	}

	numNodes := g.NumNodes()
	m := len(seq)

	nodeIDToRank := make([]int, numNodes)
	for rank := 0; rank < numNodes; rank++ {
		nodeIDToRank[g.NodeIDAtRank(rank)] = rank
	}

	// distances[rank+1][j] scores the graph prefix up to that rank
	// against seq[:j]; row 0 is the virtual source.
	distances := make([][]uint32, numNodes+1)
	for i := range distances {
		distances[i] = make([]uint32, m+1)
		distances[i][0] = uint32(i)
	}
	for j := 0; j <= m; j++ {
		distances[0][j] = uint32(j)
	}

	predRanks := make([]int, 0, 4)

	for rank := 0; rank < numNodes; rank++ {
		nodeID := g.NodeIDAtRank(rank)
		character := g.Character(nodeID)

		// A source node reads the virtual row 0 (stored as rank -1).
		predRanks = predRanks[:0]
		for _, beginNodeID := range g.InNeighbors(nodeID) {
			predRanks = append(predRanks, nodeIDToRank[beginNodeID])
		}
		if len(predRanks) == 0 {
			predRanks = append(predRanks, -1)
		}

		row := distances[rank+1]
		for j := 1; j <= m; j++ {
			cost := uint32(1)
			if character == seq[j-1] {
				cost = 0
			}

			// Insertion from the left cell of this row.
			best := row[j-1] + 1

			// Deletion or match/mismatch through every predecessor row.
			for _, i := range predRanks {
				prevRow := distances[i+1]

				best = min3(best, prevRow[j]+1, prevRow[j-1]+cost)
			}

			row[j] = best
		}
	}

	return distances[numNodes][m], nil
}
