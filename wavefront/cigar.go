package wavefront

import (
	"fmt"
	"strconv"
	"strings"
)

// Validate replays cigar against pattern and text and reports whether it
// is an exact edit script: M steps must compare equal, X steps must
// differ, and the script must consume both sequences completely.
func Validate(pattern, text, cigar []byte) error {
	v, h := 0, 0

	for i, op := range cigar {
		switch op {
		case OpMatch:
			if v >= len(pattern) || h >= len(text) {
				return fmt.Errorf("%w: op %d (M) runs past the sequences", ErrInvalidCigar, i)
			}
			if pattern[v] != text[h] {
				return fmt.Errorf("%w: op %d (M) on mismatching symbols %q/%q", ErrInvalidCigar, i, pattern[v], text[h])
			}
			v++
			h++
		case OpMismatch:
			if v >= len(pattern) || h >= len(text) {
				return fmt.Errorf("%w: op %d (X) runs past the sequences", ErrInvalidCigar, i)
			}
			if pattern[v] == text[h] {
				return fmt.Errorf("%w: op %d (X) on matching symbol %q", ErrInvalidCigar, i, pattern[v])
			}
			v++
			h++
		case OpInsertion:
			if h >= len(text) {
				return fmt.Errorf("%w: op %d (I) runs past the text", ErrInvalidCigar, i)
			}
			h++
		case OpDeletion:
			if v >= len(pattern) {
				return fmt.Errorf("%w: op %d (D) runs past the pattern", ErrInvalidCigar, i)
			}
			v++
		default:
			return fmt.Errorf("%w: unknown op %q at %d", ErrInvalidCigar, op, i)
		}
	}

	if v != len(pattern) || h != len(text) {
		return fmt.Errorf("%w: consumed %d/%d pattern and %d/%d text symbols",
			ErrInvalidCigar, v, len(pattern), h, len(text))
	}

	return nil
}

// Compact renders a CIGAR in run-length form, e.g. "3M1X9M1D".
func Compact(cigar []byte) string {
	if len(cigar) == 0 {
		return ""
	}

	var b strings.Builder

	run := 1
	for i := 1; i <= len(cigar); i++ {
		if i < len(cigar) && cigar[i] == cigar[i-1] {
			run++
			continue
		}

		b.WriteString(strconv.Itoa(run))
		b.WriteByte(cigar[i-1])
		run = 1
	}

	return b.String()
}
