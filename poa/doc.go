// Package poa implements partial-order alignment (POA) graphs for
// multiple sequence alignment of short byte sequences.
//
// 🚀 What is a PO graph?
//
//	A directed acyclic graph in which every node carries a single symbol
//	(A, C, G, T, N, …) and every input sequence is a path. Sequences are
//	inserted one at a time under an externally computed alignment; matching
//	symbols fuse into shared nodes, mismatching symbols become mutually
//	"aligned" nodes occupying the same MSA column, and repeated edge
//	traversals fuse into a single weighted edge. The result is a compact,
//	incrementally grown representation of a multiple alignment.
//
// ✨ Key features:
//   - Graph.AddAlignment — incremental insertion with node/edge fusion
//   - topological ordering that keeps aligned nodes consecutively ranked
//   - Graph.GenerateMultipleSequenceAlignment — row × column MSA matrix
//   - heaviest-bundle consensus with branch completion
//   - String and Graphviz DOT renderings for inspection
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/wfpoa/poa"
//
//	g := poa.NewGraph(3, 128)
//
//	// First sequence: no alignment, inserted as a fresh chain.
//	_ = g.AddAlignment(nil, []byte("AAAGGGAAA"), weights)
//
//	// Second sequence: aligned column-by-column against nodes 0..8.
//	_ = g.AddAlignment(aln, []byte("AAATTTAAA"), weights)
//
//	width, rows := g.GenerateMultipleSequenceAlignment(true)
//
// Performance:
//
//   - AddAlignment:  O(V + E) per insertion (dominated by the re-sort)
//   - MSA:           O(V + E + rows·width)
//   - Consensus:     O(V + E) per branch-completion round
//
// The aligners that produce the (node, position) pairs consumed by
// AddAlignment are external; see the editdist and wavefront packages for
// engines that score sequences against a graph or against each other.
package poa
