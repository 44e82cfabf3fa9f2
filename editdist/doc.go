// Package editdist computes unit-cost edit distances: between two byte
// sequences, and between a partial-order graph and a byte sequence.
//
// 🚀 What is edit distance?
//
//	The minimum number of single-symbol insertions, deletions, and
//	substitutions transforming one sequence into another. The graph
//	variant generalizes the classical recurrence to nodes with multiple
//	predecessors, scoring a sequence against every path of a PO graph
//	at once.
//
// ✨ Key features:
//   - Distance: rolling single-row DP, O(m) extra memory for m=len(b)
//   - GraphDistance: O(|V|·m) DP over a topologically sorted poa.Graph
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/wfpoa/editdist"
//
//	d := editdist.Distance([]byte("My Cat"), []byte("My Case")) // 2
//
//	gd, err := editdist.GraphDistance(g, []byte("AAATATATA"))
//
// Performance:
//
//   - Distance:      O(n·m) time, O(m) memory
//   - GraphDistance: O((|V|+|E|)·m) time, O(|V|·m) memory
//
// For alignments whose cost is expected to be small relative to the
// sequence lengths, the wavefront package computes the same distance in
// time proportional to it, together with a CIGAR trace.
package editdist
