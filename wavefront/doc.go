// Package wavefront computes unit-cost edit alignments with the
// wavefront algorithm (WFA): instead of filling an n×m table, it tracks
// the furthest-reaching point on every diagonal at each distance, so the
// work grows with the true edit distance rather than with the product of
// the sequence lengths.
//
// 🚀 How it works
//
//	A diagonal k = h − v groups the DP cells reachable with the same
//	surplus of text over pattern. The wavefront at distance d stores, per
//	diagonal, the maximum text offset reachable with d edits. Each round
//	(1) extends every diagonal across free matches, (2) checks whether
//	the target cell (k = n−m, offset n) was reached, and (3) derives the
//	next wavefront from deletion / substitution / insertion moves. A
//	backtrace over the stored wavefronts yields the CIGAR.
//
// ✨ Key features:
//   - Wavefronts engine with storage reused across Align calls
//   - CIGAR output (M match, X mismatch, I insertion, D deletion)
//   - AlignFunc: a pluggable matches(v, h) comparator, so the extension
//     step is independent of how symbols are stored
//   - Validate / Compact helpers for CIGAR round-trips and formatting
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/wfpoa/wavefront"
//
//	w := wavefront.New(len(pattern), len(text))
//	cigar, distance, err := w.Align(pattern, text)
//
// Performance:
//
//   - Time:   O((n+m)·d) where d is the edit distance
//   - Memory: O(d²) offsets, allocated once and reused
//
// The engine is scoped to linear sequences: extending it to partial-order
// graphs requires branching on predecessors during the extension step,
// not just a different comparator.
package wavefront
