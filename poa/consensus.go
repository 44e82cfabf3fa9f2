package poa

// The consensus is the heaviest bundle: the path maximizing cumulative
// edge weight. Scores are computed by a forward DP over the rank order;
// when the peak is not a sink, branch completion restarts the DP past the
// peak so the walk is carried through to a sink.

// traverseHeaviestBundle recomputes g.consensus.
//
// Per-node score is the best incoming edge weight plus the predecessor's
// score; on weight ties the predecessor backed by the deeper bundle wins
// (its own score is larger or equal). The traceback follows the recorded
// predecessors from the final peak to a source.
func (g *Graph) traverseHeaviestBundle() {
	numNodes := len(g.nodes)

	g.consensus = g.consensus[:0]
	if numNodes == 0 {
		return
	}

	predecessors := make([]int, numNodes)
	scores := make([]int64, numNodes)
	for i := 0; i < numNodes; i++ {
		predecessors[i] = Unaligned
		scores[i] = -1
	}

	maxScoreID := g.rankToNodeID[0]
	for _, nodeID := range g.rankToNodeID {
		for _, h := range g.nodes[nodeID].inEdges {
			edge := &g.edges[h]

			if scores[nodeID] < edge.totalWeight ||
				(scores[nodeID] == edge.totalWeight &&
					scores[predecessors[nodeID]] <= scores[edge.beginNodeID]) {
				scores[nodeID] = edge.totalWeight
				predecessors[nodeID] = edge.beginNodeID
			}
		}

		if predecessors[nodeID] != Unaligned {
			scores[nodeID] += scores[predecessors[nodeID]]
		}

		if scores[maxScoreID] < scores[nodeID] {
			maxScoreID = nodeID
		}
	}

	// A mid-graph peak would truncate the path; complete the branch until
	// the peak is a sink.
	if len(g.nodes[maxScoreID].outEdges) > 0 {
		nodeIDToRank := make([]int, numNodes)
		for rank, nodeID := range g.rankToNodeID {
			nodeIDToRank[nodeID] = rank
		}

		for {
			maxScoreID = g.branchCompletion(scores, predecessors, nodeIDToRank[maxScoreID])

			if len(g.nodes[maxScoreID].outEdges) == 0 {
				break
			}
		}
	}

	// Traceback.
	for predecessors[maxScoreID] != Unaligned {
		g.consensus = append(g.consensus, maxScoreID)
		maxScoreID = predecessors[maxScoreID]
	}
	g.consensus = append(g.consensus, maxScoreID)

	for l, r := 0, len(g.consensus)-1; l < r; l, r = l+1, r-1 {
		g.consensus[l], g.consensus[r] = g.consensus[r], g.consensus[l]
	}
}

// branchCompletion commits to the branch chosen at the peak ranked at
// rank: every alternative parent of the peak's successors has its score
// invalidated, the DP is re-run over the suffix ranks ignoring
// invalidated predecessors, and the new suffix peak is returned.
func (g *Graph) branchCompletion(scores []int64, predecessors []int, rank int) int {
	peakNodeID := g.rankToNodeID[rank]

	// 1) Invalidate the other parents of every successor, so the suffix
	// DP cannot route around the chosen branch.
	for _, oh := range g.nodes[peakNodeID].outEdges {
		outEdge := &g.edges[oh]

		for _, ih := range g.nodes[outEdge.endNodeID].inEdges {
			inEdge := &g.edges[ih]
			if inEdge.beginNodeID != peakNodeID {
				scores[inEdge.beginNodeID] = -1
			}
		}
	}

	// 2) Recompute the suffix, same recurrence and tie-break as the main
	// DP, skipping invalidated predecessors.
	maxScoreID := peakNodeID
	for i := rank + 1; i < len(g.nodes); i++ {
		nodeID := g.rankToNodeID[i]

		scores[nodeID] = -1
		predecessors[nodeID] = Unaligned

		for _, h := range g.nodes[nodeID].inEdges {
			edge := &g.edges[h]

			if scores[edge.beginNodeID] == -1 {
				continue
			}

			if scores[nodeID] < edge.totalWeight ||
				(scores[nodeID] == edge.totalWeight &&
					scores[predecessors[nodeID]] <= scores[edge.beginNodeID]) {
				scores[nodeID] = edge.totalWeight
				predecessors[nodeID] = edge.beginNodeID
			}
		}

		if predecessors[nodeID] != Unaligned {
			scores[nodeID] += scores[predecessors[nodeID]]
		}

		if scores[maxScoreID] < scores[nodeID] {
			maxScoreID = nodeID
		}
	}

	return maxScoreID
}

// ConsensusPath runs the heaviest-bundle traversal and returns the
// consensus as node identities, source to sink.
func (g *Graph) ConsensusPath() []int {
	g.traverseHeaviestBundle()

	path := make([]int, len(g.consensus))
	copy(path, g.consensus)

	return path
}

// ConsensusSequence runs the heaviest-bundle traversal and returns the
// consensus symbols.
func (g *Graph) ConsensusSequence() []byte {
	g.traverseHeaviestBundle()

	seq := make([]byte, 0, len(g.consensus))
	for _, nodeID := range g.consensus {
		seq = append(seq, g.nodes[nodeID].character)
	}

	return seq
}
