// core/profile/profile.go
package profile

import (
	"fmt"
	"strconv"
	"strings"
)

// Missing is the sentinel allele call for a locus with no reliable call.
const Missing uint32 = 0

// Profile is one isolate's ordered allele calls, one entry per locus.
// Locus order is fixed by the reference scheme and shared by every
// profile compared within a run.
type Profile []uint32

// ParseToken converts one query-table allele token to a call. Typing
// pipelines emit an open-ended vocabulary of non-numeric markers for
// failed calls (LNF, NIPH, ASM, ALM, PLOT*, INF-...); all of them, plus
// "0" and "-", map to Missing.
func ParseToken(tok string) uint32 {
	tok = strings.TrimSpace(tok)
	v, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return Missing
	}
	return uint32(v)
}

// ParseStrictToken converts one reference-table allele token. Reference
// schemes carry only plain integers and the "-" missing marker; anything
// else is a malformed row.
func ParseStrictToken(tok string) (uint32, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" || tok == "-" {
		return Missing, nil
	}
	v, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return Missing, fmt.Errorf("bad allele token %q", tok)
	}
	return uint32(v), nil
}

// FormatError reports a malformed row in a delimited table.
type FormatError struct {
	Path string
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}
