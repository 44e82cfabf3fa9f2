// Package poa defines the partial-order graph types: Node, Edge, Graph,
// the Alignment input consumed by Graph.AddAlignment, and the sentinel
// errors returned by the incremental builder.
package poa

import "errors"

// Unaligned marks the absent side of an AlignedPair: a pair with
// NodeID == Unaligned inserts a fresh node, a pair with
// SeqIdx == Unaligned leaves the graph node unmatched.
const Unaligned = -1

// Sentinel errors for graph construction.
var (
	// ErrLengthMismatch indicates sequence and weights differ in length.
	ErrLengthMismatch = errors.New("poa: sequence and weights are of unequal size")

	// ErrBadWeight indicates a negative per-symbol weight.
	ErrBadWeight = errors.New("poa: weights must be non-negative")

	// ErrInvalidAlignment indicates an alignment pair referencing a
	// sequence position beyond the sequence length.
	ErrInvalidAlignment = errors.New("poa: alignment references a position beyond the sequence")

	// ErrMissingSequence indicates a non-empty alignment in which no pair
	// carries a sequence position.
	ErrMissingSequence = errors.New("poa: alignment carries no sequence positions")

	// ErrNotDAG indicates the edge set contains a cycle.
	ErrNotDAG = errors.New("poa: graph is not a DAG")
)

// AlignedPair couples a graph node with a position of the sequence being
// inserted. Either side (but not both) may be Unaligned.
type AlignedPair struct {
	// NodeID is the aligned graph node, or Unaligned for an insertion.
	NodeID int

	// SeqIdx is the aligned sequence position, or Unaligned for a deletion.
	SeqIdx int
}

// Alignment is the ordered pairing consumed by Graph.AddAlignment.
// It is produced by an external aligner; pairs are listed in path order.
type Alignment []AlignedPair

// Edge is a directed connection between two nodes. For any ordered node
// pair there is at most one Edge; repeated traversals fuse into it by
// appending the traversing sequence label and accumulating the weight.
//
// Edges live in a graph-owned arena; adjacency lists reference them by
// integer handle, so the outgoing view of the begin node and the incoming
// view of the end node always observe the same record.
type Edge struct {
	beginNodeID int
	endNodeID   int

	sequenceLabels []int

	totalWeight int64
}

// BeginNodeID returns the source node of the edge.
func (e *Edge) BeginNodeID() int { return e.beginNodeID }

// EndNodeID returns the destination node of the edge.
func (e *Edge) EndNodeID() int { return e.endNodeID }

// Labels returns the sequence labels traversing this edge, in insertion
// order. The returned slice is a copy.
func (e *Edge) Labels() []int {
	labels := make([]int, len(e.sequenceLabels))
	copy(labels, e.sequenceLabels)

	return labels
}

// TotalWeight returns the cumulative weight over all traversals.
func (e *Edge) TotalWeight() int64 { return e.totalWeight }

// addSequence records one more traversal: the label is appended and the
// weight accumulated.
func (e *Edge) addSequence(label int, weight int64) {
	e.sequenceLabels = append(e.sequenceLabels, label)
	e.totalWeight += weight
}

// node is a single symbol of the partial-order graph. Its identity equals
// its index in the graph's node array; adjacency lists hold edge handles
// into the graph's edge arena.
type node struct {
	id        int
	character byte

	inEdges  []int
	outEdges []int

	// alignedNodeIDs lists the other nodes sharing this node's MSA column
	// (same column, different symbol). The relation is symmetric and a
	// node never lists itself.
	alignedNodeIDs []int
}

// Graph is a partial-order alignment graph under incremental construction.
//
// A Graph is not safe for concurrent use; callers aligning in parallel
// must hold independent instances or serialize access.
type Graph struct {
	nodes []node
	edges []Edge

	// rankToNodeID is the topological order refreshed after every
	// AddAlignment; aligned nodes occupy consecutive ranks.
	rankToNodeID []int

	// sequencesBeginNodeIDs holds the first node of each inserted
	// sequence; its length doubles as the next sequence label.
	sequencesBeginNodeIDs []int

	// consensus is the node path of the last heaviest-bundle traversal.
	consensus []int
}

// NewGraph creates an empty Graph with capacity hints for the expected
// number of sequences and nodes. Complexity: O(1).
func NewGraph(numSequences, numNodes int) *Graph {
	return &Graph{
		nodes:                 make([]node, 0, numNodes),
		edges:                 make([]Edge, 0, numNodes),
		rankToNodeID:          make([]int, 0, numNodes),
		sequencesBeginNodeIDs: make([]int, 0, numSequences),
		consensus:             make([]int, 0, numNodes),
	}
}
