package poa_test

import (
	"testing"

	"github.com/katalvlaran/wfpoa/poa"
	"github.com/stretchr/testify/require"
)

// newEmptyGraph returns a graph with no insertions.
func newEmptyGraph() *poa.Graph {
	return poa.NewGraph(0, 0)
}

// buildLinearGraph inserts a single unanchored sequence, producing a
// plain chain.
func buildLinearGraph(t *testing.T, seq []byte) *poa.Graph {
	t.Helper()

	g := poa.NewGraph(1, len(seq))
	require.NoError(t, g.AddAlignment(nil, seq, uniformWeights(len(seq))))

	return g
}

// buildDriverGraph constructs the three-sequence reference graph used
// across the MSA and consensus tests:
//
//	s0 = CAAATAAGT   (unanchored, nodes 0..8)
//	s1 = CCAATAAT    (second C mismatches node 1 → fresh node 9)
//	s2 = CCTATC      (skips the AA run; fresh nodes 10 (T) and 11 (C))
func buildDriverGraph(t *testing.T) *poa.Graph {
	t.Helper()

	g := poa.NewGraph(3, 128)

	s1 := []byte("CAAATAAGT")
	require.NoError(t, g.AddAlignment(nil, s1, uniformWeights(len(s1))))

	s2 := []byte("CCAATAAT")
	aln2 := poa.Alignment{
		{NodeID: 0, SeqIdx: 0},
		{NodeID: 1, SeqIdx: 1},
		{NodeID: 2, SeqIdx: 2},
		{NodeID: 3, SeqIdx: 3},
		{NodeID: 4, SeqIdx: 4},
		{NodeID: 5, SeqIdx: 5},
		{NodeID: 6, SeqIdx: 6},
		{NodeID: 7, SeqIdx: poa.Unaligned},
		{NodeID: 8, SeqIdx: 7},
	}
	require.NoError(t, g.AddAlignment(aln2, s2, uniformWeights(len(s2))))

	s3 := []byte("CCTATC")
	aln3 := poa.Alignment{
		{NodeID: 0, SeqIdx: 0},
		{NodeID: 9, SeqIdx: 1},
		{NodeID: 2, SeqIdx: poa.Unaligned},
		{NodeID: 3, SeqIdx: poa.Unaligned},
		{NodeID: 4, SeqIdx: 2},
		{NodeID: 5, SeqIdx: 3},
		{NodeID: 6, SeqIdx: 4},
		{NodeID: 8, SeqIdx: 5},
	}
	require.NoError(t, g.AddAlignment(aln3, s3, uniformWeights(len(s3))))

	return g
}
