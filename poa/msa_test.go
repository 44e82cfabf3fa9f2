package poa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateMSA_Driver replays the three-sequence driver and checks
// the full matrix: one row per sequence plus the consensus row, equal
// row lengths, '-' in unvisited columns.
func TestGenerateMSA_Driver(t *testing.T) {
	g := buildDriverGraph(t)

	width, rows := g.GenerateMultipleSequenceAlignment(true)

	require.Equal(t, 9, width)
	require.Len(t, rows, 4, "three sequences plus consensus")
	for _, row := range rows {
		assert.Len(t, row, width, "every row spans the full width")
	}

	assert.Equal(t, "CAAATAAGT", string(rows[0]))
	assert.Equal(t, "CCAATAA-T", string(rows[1]))
	assert.Equal(t, "CC--TAT-C", string(rows[2]))
	assert.Equal(t, "CCAATAAGT", string(rows[3]), "consensus row")
}

// TestGenerateMSA_WithoutConsensus checks the row count without the
// consensus row.
func TestGenerateMSA_WithoutConsensus(t *testing.T) {
	g := buildDriverGraph(t)

	width, rows := g.GenerateMultipleSequenceAlignment(false)

	assert.Equal(t, 9, width)
	assert.Len(t, rows, 3)
}

// TestGenerateMSA_SingleSequence verifies the degenerate one-row case.
func TestGenerateMSA_SingleSequence(t *testing.T) {
	g := buildLinearGraph(t, []byte("ACGT"))

	width, rows := g.GenerateMultipleSequenceAlignment(false)

	assert.Equal(t, 4, width)
	require.Len(t, rows, 1)
	assert.Equal(t, "ACGT", string(rows[0]))
}

// TestGenerateMSA_EmptyGraph verifies a graph with no insertions yields
// an empty matrix, consensus requested or not.
func TestGenerateMSA_EmptyGraph(t *testing.T) {
	g := newEmptyGraph()

	width, rows := g.GenerateMultipleSequenceAlignment(true)
	assert.Equal(t, 0, width)
	require.Len(t, rows, 1, "only the (empty) consensus row")
	assert.Empty(t, rows[0])

	width, rows = g.GenerateMultipleSequenceAlignment(false)
	assert.Equal(t, 0, width)
	assert.Empty(t, rows)
}
