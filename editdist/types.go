// Package editdist defines the sentinel errors for the edit-distance
// routines.
package editdist

import "errors"

// ErrNilGraph indicates GraphDistance was handed a nil graph.
var ErrNilGraph = errors.New("editdist: graph is nil")
