package poa

// NumNodes returns the number of nodes in the graph.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumSequences returns the number of sequences inserted so far.
func (g *Graph) NumSequences() int { return len(g.sequencesBeginNodeIDs) }

// NodeIDAtRank returns the node identity occupying the given topological
// rank. Valid ranks are 0..NumNodes()-1.
func (g *Graph) NodeIDAtRank(rank int) int { return g.rankToNodeID[rank] }

// Character returns the symbol carried by the node.
func (g *Graph) Character(nodeID int) byte { return g.nodes[nodeID].character }

// BeginNodeID returns the first node of the sequence with the given label.
func (g *Graph) BeginNodeID(label int) int { return g.sequencesBeginNodeIDs[label] }

// AlignedNodes returns the identities of the nodes sharing the node's MSA
// column. The returned slice is a copy.
func (g *Graph) AlignedNodes(nodeID int) []int {
	aligned := make([]int, len(g.nodes[nodeID].alignedNodeIDs))
	copy(aligned, g.nodes[nodeID].alignedNodeIDs)

	return aligned
}

// InNeighbors returns the identities of the nodes with an edge into nodeID.
func (g *Graph) InNeighbors(nodeID int) []int {
	in := make([]int, 0, len(g.nodes[nodeID].inEdges))
	for _, h := range g.nodes[nodeID].inEdges {
		in = append(in, g.edges[h].beginNodeID)
	}

	return in
}

// OutNeighbors returns the identities of the nodes reached by an edge
// leaving nodeID.
func (g *Graph) OutNeighbors(nodeID int) []int {
	out := make([]int, 0, len(g.nodes[nodeID].outEdges))
	for _, h := range g.nodes[nodeID].outEdges {
		out = append(out, g.edges[h].endNodeID)
	}

	return out
}

// EdgeBetween returns the unique edge begin→end, if present.
func (g *Graph) EdgeBetween(beginNodeID, endNodeID int) (*Edge, bool) {
	for _, h := range g.nodes[beginNodeID].outEdges {
		if g.edges[h].endNodeID == endNodeID {
			return &g.edges[h], true
		}
	}

	return nil, false
}

// Successor returns the node that follows nodeID on the path of the given
// sequence label, or Unaligned if the sequence terminates at nodeID.
// At most one outgoing edge carries any label, so no tie-break is needed.
func (g *Graph) Successor(nodeID, label int) int {
	for _, h := range g.nodes[nodeID].outEdges {
		edge := &g.edges[h]
		for _, l := range edge.sequenceLabels {
			if l == label {
				return edge.endNodeID
			}
		}
	}

	return Unaligned
}

// Sequence returns the node characters in topological rank order.
func (g *Graph) Sequence() []byte {
	seq := make([]byte, 0, len(g.nodes))
	for _, nodeID := range g.rankToNodeID {
		seq = append(seq, g.nodes[nodeID].character)
	}

	return seq
}

// AddNode appends a fresh node carrying the symbol and returns its
// identity. Identities are monotonically increasing array indices; nodes
// are never destroyed.
func (g *Graph) AddNode(character byte) int {
	lastID := len(g.nodes)

	g.nodes = append(g.nodes, node{
		id:        lastID,
		character: character,
	})

	return lastID
}

// AddEdge connects beginNodeID→endNodeID on behalf of the sequence
// currently being inserted (its label is the next sequence index). If the
// edge already exists the traversal fuses into it: the label is appended
// and the weight accumulated; otherwise a fresh edge is placed in the
// arena and indexed from both adjacency lists.
func (g *Graph) AddEdge(beginNodeID, endNodeID int, weight int64) {
	label := len(g.sequencesBeginNodeIDs)

	// 1) Fuse into an existing edge when the ordered pair is already connected.
	for _, h := range g.nodes[beginNodeID].outEdges {
		if g.edges[h].endNodeID == endNodeID {
			g.edges[h].addSequence(label, weight)

			return
		}
	}

	// 2) Otherwise create the edge once, in the arena...
	handle := len(g.edges)
	g.edges = append(g.edges, Edge{
		beginNodeID:    beginNodeID,
		endNodeID:      endNodeID,
		sequenceLabels: []int{label},
		totalWeight:    weight,
	})

	// 3) ...and reference it from both endpoints.
	g.nodes[beginNodeID].outEdges = append(g.nodes[beginNodeID].outEdges, handle)
	g.nodes[endNodeID].inEdges = append(g.nodes[endNodeID].inEdges, handle)
}

// AddSequence inserts seq[begin:end] as a fresh chain of nodes and returns
// the identities of the first and last node added, or (Unaligned,
// Unaligned) for an empty range. Consecutive nodes are connected with
// edges weighted by both endpoints: weights[i-1] + weights[i].
func (g *Graph) AddSequence(seq []byte, weights []int64, begin, end int) (int, int) {
	if begin == end {
		return Unaligned, Unaligned
	}

	firstNodeID := g.AddNode(seq[begin])
	currNodeID := firstNodeID
	for i := begin + 1; i < end; i++ {
		prevNodeID := currNodeID
		currNodeID = g.AddNode(seq[i])

		g.AddEdge(prevNodeID, currNodeID, weights[i-1]+weights[i])
	}

	return firstNodeID, currNodeID
}
