// core/profile/score.go
package profile

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch means two profiles from different schemes were
// compared. Not recoverable per-row: every later comparison would be
// meaningless too.
var ErrLengthMismatch = errors.New("profile length mismatch")

// Score counts loci where both profiles carry the same non-missing call.
// A missing call on either side never matches and never errors; it still
// counts toward the denominator, so mismatches == len(q) - matches for
// every candidate. That keeps the denominator identical across the whole
// reference table and is the intended policy, not an oversight.
func Score(q, c Profile) (int, error) {
	if len(q) != len(c) {
		return 0, fmt.Errorf("%w: %d vs %d loci", ErrLengthMismatch, len(q), len(c))
	}
	n := 0
	for i, a := range q {
		if a != Missing && a == c[i] {
			n++
		}
	}
	return n, nil
}
