package wavefront

import "fmt"

// Align computes the unit-cost edit alignment of pattern against text.
// It returns the CIGAR in forward order (M/X/I/D, see the Op constants)
// and the edit distance.
//
// Complexity: O((n+m)·d) time where d is the returned distance.
func (w *Wavefronts) Align(pattern, text []byte) ([]byte, int, error) {
	return w.AlignFunc(len(pattern), len(text), func(v, h int) bool {
		return pattern[v] == text[h]
	})
}

// AlignFunc is the comparator-parameterized engine behind Align: the
// extension step asks matches(v, h) instead of comparing bytes, so the
// sequences may live anywhere — packed arrays, graph ranks, generators.
func (w *Wavefronts) AlignFunc(patternLength, textLength int, matches MatchFunc) ([]byte, int, error) {
	// 1) Contract checks.
	if matches == nil {
		return nil, 0, ErrNilMatchFunc
	}
	if patternLength < 0 || textLength < 0 {
		return nil, 0, ErrNegativeLength
	}
	maxDistance := patternLength + textLength
	if maxDistance > w.maxDistance {
		return nil, 0, fmt.Errorf("%w: %d+%d > %d", ErrCapacityExceeded, patternLength, textLength, w.maxDistance)
	}

	// 2) Reset reused storage from the previous alignment.
	w.clean()

	// 3) Alignment target: the end-of-both-sequences cell.
	targetK := textLength - patternLength // h - v
	targetOffset := int32(textLength)     // h
	targetKAbs := targetK
	if targetKAbs < 0 {
		targetKAbs = -targetKAbs
	}

	// 4) Wavefront 0: diagonal 0, offset 0.
	w.wavefronts[0].alloc(0, 0)
	w.allocated++
	w.wavefronts[0].offsets[0] = 0

	// 5) Grow the distance until the target cell is reached. The target
	// diagonal enters the span once distance >= |targetK|, so the check
	// below never indexes outside it.
	targetDistance := maxDistance
	for distance := 0; distance < maxDistance; distance++ {
		w.wavefronts[distance].extend(patternLength, textLength, matches)

		wf := &w.wavefronts[distance]
		if distance >= targetKAbs && wf.offsets[targetK-wf.lo] == targetOffset {
			targetDistance = distance
			break
		}

		w.compute(distance + 1)
	}

	// 6) Backtrace fills w.cigar in reverse order; surface it forward.
	w.backtrace(targetK, targetDistance)

	cigar := make([]byte, w.cigarLength)
	for i := 0; i < w.cigarLength; i++ {
		cigar[i] = w.cigar[w.cigarLength-1-i]
	}

	return cigar, targetDistance, nil
}

// extend slides every diagonal across its run of free matches: while the
// next pattern/text pair matches, the offset advances at no cost. This
// is the only step that inspects sequence content.
func (wf *editWavefront) extend(patternLength, textLength int, matches MatchFunc) {
	for k := wf.lo; k <= wf.hi; k++ {
		offset := wf.offsets[k-wf.lo]

		v := int(offset) - k // pattern position
		h := int(offset)     // text position

		for v < patternLength && h < textLength && matches(v, h) {
			offset++
			v++
			h++
		}

		wf.offsets[k-wf.lo] = offset
	}
}

// compute derives the wavefront at the given distance from its
// predecessor. The span widens by one diagonal on each side; per
// diagonal the furthest offset is the max of the deletion (k+1, same
// offset), substitution (k, offset+1) and insertion (k−1, offset+1)
// moves, with out-of-span cells reading as −1. The four boundary
// diagonals are peeled off the main loop because they miss one or two of
// the three moves.
func (w *Wavefronts) compute(distance int) {
	prec := &w.wavefronts[distance-1]
	succ := &w.wavefronts[distance]

	succ.alloc(prec.lo-1, prec.hi+1)
	w.allocated++

	span := prec.hi - prec.lo

	precOffsetLo := prec.offsets[0]

	// k = lo-1: only the deletion move exists.
	succ.offsets[0] = precOffsetLo

	// k = lo: substitution or deletion.
	bottomUpperDel := int32(-1)
	if span >= 1 {
		bottomUpperDel = prec.offsets[1]
	}
	succ.offsets[1] = maxOffset(precOffsetLo+1, bottomUpperDel)

	// Interior diagonals: all three moves.
	for ik := 1; ik < span; ik++ {
		maxInsSub := maxOffset(prec.offsets[ik], prec.offsets[ik-1]) + 1
		succ.offsets[ik+1] = maxOffset(maxInsSub, prec.offsets[ik+1])
	}

	precOffsetHi := prec.offsets[span]

	// k = hi: substitution or insertion.
	topLowerIns := int32(-1)
	if span >= 1 {
		topLowerIns = prec.offsets[span-1]
	}
	succ.offsets[span+1] = maxOffset(precOffsetHi, topLowerIns) + 1

	// k = hi+1: only the insertion move exists.
	succ.offsets[span+2] = precOffsetHi + 1
}

// backtrace rebuilds the edit script from the stored wavefronts, walking
// from the target cell back to distance 0. Operations land in w.cigar in
// reverse order. At each step the previous wavefront is probed for the
// move that explains the current offset: deletion keeps the offset on
// diagonal k+1, insertion and mismatch sit one offset lower, and
// anything else is a free match.
func (w *Wavefronts) backtrace(targetK, targetDistance int) {
	k := targetK
	distance := targetDistance

	target := &w.wavefronts[targetDistance]
	offset := target.offsets[k-target.lo]

	w.cigarLength = 0

	for distance > 0 {
		wf := &w.wavefronts[distance-1]

		switch {
		case wf.lo <= k+1 && k+1 <= wf.hi && offset == wf.offsets[k+1-wf.lo]:
			w.cigar[w.cigarLength] = OpDeletion
			w.cigarLength++
			k++
			distance--
		case wf.lo <= k-1 && k-1 <= wf.hi && offset == wf.offsets[k-1-wf.lo]+1:
			w.cigar[w.cigarLength] = OpInsertion
			w.cigarLength++
			k--
			offset--
			distance--
		case wf.lo <= k && k <= wf.hi && offset == wf.offsets[k-wf.lo]+1:
			w.cigar[w.cigarLength] = OpMismatch
			w.cigarLength++
			offset--
			distance--
		default:
			w.cigar[w.cigarLength] = OpMatch
			w.cigarLength++
			offset--
		}
	}

	// Account for the run of matches leading out of the origin.
	for offset > 0 {
		w.cigar[w.cigarLength] = OpMatch
		w.cigarLength++
		offset--
	}
}

// maxOffset returns the larger of two offsets.
func maxOffset(a, b int32) int32 {
	if a > b {
		return a
	}

	return b
}
