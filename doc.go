// Package wfpoa is an in-memory toolkit for partial-order alignment (POA)
// of short biological sequences, paired with wavefront edit alignment.
//
// 🚀 What is wfpoa?
//
//	A pure-Go library that brings together:
//
//	  • A partial-order graph that grows one aligned sequence at a time
//	    and compactly represents a multiple sequence alignment
//	  • MSA materialization and heaviest-bundle consensus extraction
//	  • Two edit-distance engines: a classical O(n·m) dynamic program
//	    generalized to graph layouts, and a diagonal-wavefront engine
//	    that runs in time proportional to the true edit distance
//
// ✨ Why choose wfpoa?
//
//   - Minimal API          — byte slices in, byte slices out
//   - Allocation-conscious — graph and wavefront storage is reused
//   - Pure Go              — no cgo, no runtime dependencies
//
// Under the hood, everything is organized under three subpackages:
//
//	poa/       — partial-order graph, incremental builder, MSA & consensus
//	editdist/  — unit-cost edit distance for strings and PO graphs
//	wavefront/ — diagonal-wavefront edit alignment with CIGAR output
//
// Quick ASCII example:
//
//	        ┌─ G ─ G ─ G ─┐
//	A ─ A ─ A             A ─ A ─ A
//	        └─ T ─ T ─ T ─┘
//
//	two sequences AAAGGGAAA and AAATTTAAA folded into one graph; the
//	G/T columns hold mutually aligned nodes.
//
// See each subpackage's doc.go for walkthroughs and complexity notes.
//
//	go get github.com/katalvlaran/wfpoa
package wfpoa
