package poa

// msaColumns assigns every node its MSA column and returns the alignment
// width. It relies on the sorter keeping aligned nodes consecutively
// ranked: the node at the head of a run and all of its aligned peers
// share one column.
func (g *Graph) msaColumns() (int, []int) {
	if len(g.nodes) == 0 {
		return 0, nil
	}

	nodeIDToColumn := make([]int, len(g.nodes))

	column := 0
	for i := 0; i < len(g.nodes); column++ {
		nodeID := g.rankToNodeID[i]

		nodeIDToColumn[nodeID] = column
		i++

		for _, alignedNodeID := range g.nodes[nodeID].alignedNodeIDs {
			nodeIDToColumn[alignedNodeID] = column
			i++
		}
	}

	return column, nodeIDToColumn
}

// GenerateMultipleSequenceAlignment materializes the graph as a row-major
// character matrix: one row per inserted sequence, '-' in every column
// the sequence does not visit, and width msaLen. With includeConsensus a
// final row carries the heaviest-bundle consensus painted onto the same
// columns.
//
// Complexity: O(V + E + rows·width).
func (g *Graph) GenerateMultipleSequenceAlignment(includeConsensus bool) (int, [][]byte) {
	msaLen, nodeIDToColumn := g.msaColumns()

	numRows := len(g.sequencesBeginNodeIDs)
	if includeConsensus {
		numRows++
	}

	msaSeqs := make([][]byte, numRows)
	for i := range msaSeqs {
		row := make([]byte, msaLen)
		for j := range row {
			row[j] = '-'
		}
		msaSeqs[i] = row
	}

	// Extract each sequence by chasing its label through the graph.
	for label, beginNodeID := range g.sequencesBeginNodeIDs {
		for nodeID := beginNodeID; nodeID != Unaligned; nodeID = g.Successor(nodeID, label) {
			msaSeqs[label][nodeIDToColumn[nodeID]] = g.nodes[nodeID].character
		}
	}

	if includeConsensus {
		g.traverseHeaviestBundle()

		for _, nodeID := range g.consensus {
			msaSeqs[numRows-1][nodeIDToColumn[nodeID]] = g.nodes[nodeID].character
		}
	}

	return msaLen, msaSeqs
}
