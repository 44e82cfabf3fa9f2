package wavefront_test

import (
	"testing"

	"github.com/katalvlaran/wfpoa/wavefront"
	"github.com/stretchr/testify/assert"
)

// TestValidate_Accepts verifies well-formed edit scripts pass.
func TestValidate_Accepts(t *testing.T) {
	assert.NoError(t, wavefront.Validate([]byte("ACGT"), []byte("ACGT"), []byte("MMMM")))
	assert.NoError(t, wavefront.Validate([]byte("ACGT"), []byte("AGGT"), []byte("MXMM")))
	assert.NoError(t, wavefront.Validate([]byte("ACG"), []byte("ACGT"), []byte("MMMI")))
	assert.NoError(t, wavefront.Validate([]byte("ACGT"), []byte("ACG"), []byte("MMMD")))
	assert.NoError(t, wavefront.Validate(nil, nil, nil))
}

// TestValidate_Rejects verifies each malformation is caught.
func TestValidate_Rejects(t *testing.T) {
	// M over differing symbols.
	err := wavefront.Validate([]byte("A"), []byte("C"), []byte("M"))
	assert.ErrorIs(t, err, wavefront.ErrInvalidCigar)

	// X over equal symbols.
	err = wavefront.Validate([]byte("A"), []byte("A"), []byte("X"))
	assert.ErrorIs(t, err, wavefront.ErrInvalidCigar)

	// Script runs past the pattern.
	err = wavefront.Validate([]byte("A"), []byte("A"), []byte("MD"))
	assert.ErrorIs(t, err, wavefront.ErrInvalidCigar)

	// Script leaves text unconsumed.
	err = wavefront.Validate([]byte("A"), []byte("AC"), []byte("M"))
	assert.ErrorIs(t, err, wavefront.ErrInvalidCigar)

	// Unknown operation byte.
	err = wavefront.Validate([]byte("A"), []byte("A"), []byte("Z"))
	assert.ErrorIs(t, err, wavefront.ErrInvalidCigar)
}

// TestCompact verifies run-length rendering.
func TestCompact(t *testing.T) {
	assert.Equal(t, "", wavefront.Compact(nil))
	assert.Equal(t, "4M", wavefront.Compact([]byte("MMMM")))
	assert.Equal(t, "3M1X1M", wavefront.Compact([]byte("MMMXM")))
	assert.Equal(t, "1M1I2M1X1D1M1X", wavefront.Compact([]byte("MIMMXDMX")))
}
