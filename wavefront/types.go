// Package wavefront defines the engine state types, CIGAR operation
// bytes, and sentinel errors for wavefront edit alignment.
package wavefront

import "errors"

// Sentinel errors for the wavefront engine and CIGAR helpers.
var (
	// ErrCapacityExceeded indicates the sequences outgrow the capacity
	// the engine was constructed with.
	ErrCapacityExceeded = errors.New("wavefront: sequence lengths exceed engine capacity")

	// ErrNegativeLength indicates a negative sequence length.
	ErrNegativeLength = errors.New("wavefront: sequence lengths must be non-negative")

	// ErrNilMatchFunc indicates AlignFunc was handed a nil comparator.
	ErrNilMatchFunc = errors.New("wavefront: match function is nil")

	// ErrInvalidCigar indicates a CIGAR that does not transform the
	// pattern into the text.
	ErrInvalidCigar = errors.New("wavefront: invalid cigar")
)

// CIGAR operation bytes emitted by Align.
const (
	// OpMatch consumes one pattern and one text symbol that compare equal.
	OpMatch byte = 'M'

	// OpMismatch consumes one symbol of each side, substituting.
	OpMismatch byte = 'X'

	// OpInsertion consumes one text symbol (gap in the pattern).
	OpInsertion byte = 'I'

	// OpDeletion consumes one pattern symbol (gap in the text).
	OpDeletion byte = 'D'
)

// MatchFunc reports whether pattern position v matches text position h.
// Both positions are guaranteed in-range by the engine.
type MatchFunc func(v, h int) bool

// editWavefront is the per-distance state: the inclusive diagonal span
// [lo, hi] and the furthest-reaching text offset per diagonal, stored
// densely and indexed by k − lo.
type editWavefront struct {
	lo int
	hi int

	offsets []int32
}

// alloc configures the wavefront for the span [lo, hi], reusing the
// offset storage when its capacity allows.
func (wf *editWavefront) alloc(lo, hi int) {
	length := hi - lo + 1

	wf.lo = lo
	wf.hi = hi

	if cap(wf.offsets) < length {
		wf.offsets = make([]int32, length)

		return
	}

	wf.offsets = wf.offsets[:length]
	for i := range wf.offsets {
		wf.offsets[i] = 0
	}
}

// Wavefronts is a reusable edit-alignment engine with fixed capacity.
// All storage — the wavefront vector and the CIGAR buffer — is allocated
// by New and reused by every Align call.
//
// A Wavefronts is not safe for concurrent use.
type Wavefronts struct {
	patternLength int
	textLength    int
	maxDistance   int

	wavefronts []editWavefront
	allocated  int

	cigar       []byte
	cigarLength int
}

// New creates an engine able to align any pattern/text pair whose summed
// length does not exceed patternLength+textLength.
// Complexity: O(patternLength+textLength) memory up front.
func New(patternLength, textLength int) *Wavefronts {
	maxDistance := patternLength + textLength

	return &Wavefronts{
		patternLength: patternLength,
		textLength:    textLength,
		maxDistance:   maxDistance,

		// One extra slot: the final round may derive the wavefront at
		// distance maxDistance before the exit check sees it.
		wavefronts: make([]editWavefront, maxDistance+1),

		cigar: make([]byte, maxDistance),
	}
}

// clean resets the per-distance offset storage while keeping the outer
// vector and every offset array's capacity, so repeated alignments do
// not reallocate.
func (w *Wavefronts) clean() {
	for i := 0; i < w.allocated; i++ {
		w.wavefronts[i].offsets = w.wavefronts[i].offsets[:0]
	}

	w.allocated = 0
	w.cigarLength = 0
}
