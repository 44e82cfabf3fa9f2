package poa

import (
	"fmt"
	"io"
	"strings"
)

// String renders the graph for debugging: a header, every node in rank
// order with its incoming and outgoing edges (endpoints shown as
// rank (char), with total weight and traversing labels), and the final
// rank table.
func (g *Graph) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "num_sequences: %d\n", len(g.sequencesBeginNodeIDs))
	fmt.Fprintf(&b, "num_nodes: %d\n", len(g.nodes))

	nodeIDToRank := make([]int, len(g.nodes))
	for rank, nodeID := range g.rankToNodeID {
		nodeIDToRank[nodeID] = rank
	}

	edgeLine := func(arrow string, fromID, toID int, edge *Edge) {
		fmt.Fprintf(&b, "\t\t%d (%c) %s %d (%c) - W: %d\n",
			nodeIDToRank[fromID], g.nodes[fromID].character,
			arrow,
			nodeIDToRank[toID], g.nodes[toID].character,
			edge.totalWeight)
		for _, label := range edge.sequenceLabels {
			fmt.Fprintf(&b, "\t\t\tsequence_label: %d\n", label)
		}
	}

	for _, nodeID := range g.rankToNodeID {
		n := &g.nodes[nodeID]

		fmt.Fprintf(&b, "\t%d: %c\n", n.id, n.character)

		for _, h := range n.inEdges {
			edge := &g.edges[h]
			edgeLine("<---", edge.endNodeID, edge.beginNodeID, edge)
		}
		for _, h := range n.outEdges {
			edge := &g.edges[h]
			edgeLine("--->", edge.beginNodeID, edge.endNodeID, edge)
		}
	}

	b.WriteString("Rank\tNodeId\n")
	for rank, nodeID := range g.rankToNodeID {
		fmt.Fprintf(&b, "\t%d\t%d (%c)\n", rank, nodeID, g.nodes[nodeID].character)
	}

	return b.String()
}

// Per-symbol fill colors for the DOT rendering; symbols without an entry
// fall back to gray.
var dotNodeColors = map[byte]string{
	'A': "lightskyblue",
	'C': "salmon",
	'G': "lightgoldenrod",
	'T': "limegreen",
	'N': "gray",
	'S': "thistle",
	'E': "thistle",
}

// WriteDOT serializes the graph as a Graphviz digraph: left-to-right rank
// direction, one circle per node labelled "<char> (<id>)\nr: <rank>",
// edge penwidth scaled by label multiplicity, aligned groups clustered at
// the same rank and joined by dashed mismatch edges.
func (g *Graph) WriteDOT(w io.Writer) error {
	const fontSize = 22

	var b strings.Builder

	fmt.Fprintf(&b, "// wfpoa graph dot file\n//%d nodes.\n", len(g.nodes))
	b.WriteString("digraph wfpoa_graph {\n" +
		"\tgraph [rankdir=\"LR\"];\n" +
		"\tnode [width=1.2, style=filled, fixedsize=true, shape=circle];\n")

	nodeIDToRank := make([]int, len(g.nodes))
	for rank, nodeID := range g.rankToNodeID {
		nodeIDToRank[nodeID] = rank
	}

	nodeLabel := make([]string, len(g.nodes))
	for rank, nodeID := range g.rankToNodeID {
		n := &g.nodes[nodeID]

		nodeLabel[nodeID] = fmt.Sprintf("%c (%d)\\nr: %d", n.character, nodeID, rank)

		color, ok := dotNodeColors[n.character]
		if !ok {
			color = "gray"
		}

		fmt.Fprintf(&b, "\"%s\" [color=%s, fontsize=%d]\n", nodeLabel[nodeID], color, fontSize)
	}

	// Emitting the dashed mismatch run once per aligned group: only the
	// lowest-ranked member not already covered draws it.
	xIndex := 0

	for rank, nodeID := range g.rankToNodeID {
		n := &g.nodes[nodeID]

		for _, h := range n.outEdges {
			edge := &g.edges[h]
			multiplicity := len(edge.sequenceLabels)

			fmt.Fprintf(&b, "\t\"%s\" -> \"%s\" [label=\"%d\", penwidth=%d]\n",
				nodeLabel[nodeID], nodeLabel[edge.endNodeID], multiplicity, multiplicity+1)
		}

		if len(n.alignedNodeIDs) == 0 {
			continue
		}

		fmt.Fprintf(&b, "\t{rank=same; \"%s\" ", nodeLabel[nodeID])
		for _, alignedNodeID := range n.alignedNodeIDs {
			fmt.Fprintf(&b, "\"%s\" ", nodeLabel[alignedNodeID])
		}
		b.WriteString("};\n")

		if rank > xIndex {
			xIndex = rank

			fmt.Fprintf(&b, "\t{ edge [style=dashed, arrowhead=none]; \"%s\" ", nodeLabel[nodeID])
			for _, alignedNodeID := range n.alignedNodeIDs {
				fmt.Fprintf(&b, "-> \"%s\" ", nodeLabel[alignedNodeID])

				if nodeIDToRank[alignedNodeID] > xIndex {
					xIndex = nodeIDToRank[alignedNodeID]
				}
			}
			b.WriteString("}\n")
		}
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())

	return err
}
