// internal/output/rows.go
package output

import (
	"fmt"
	"strings"
)

// Row is one finished result line, immutable once assembled.
type Row struct {
	Isolate    string
	Matches    int
	Loci       int
	Mismatches int
	Type       string
	Codes      map[string]string // hierCC level → code; nil when the join missed
	Confidence string
}

// baseHeader is the canonical fixed prefix for the output table. Keep
// this as the single source of truth.
const baseHeader = "isolate\tmatching_alleles\tnr_loci\tmismatches\tcgmlst"

// Header returns the full header row for the given hierCC levels.
func Header(levels []string, confidence bool) string {
	var b strings.Builder
	b.WriteString(baseHeader)
	for _, lvl := range levels {
		b.WriteByte('\t')
		b.WriteString(lvl)
	}
	if confidence {
		b.WriteString("\tconfidence_level")
	}
	return b.String()
}

// FormatRowTSV returns one result row (no trailing newline). Levels
// absent from the row's codes come out blank, which is also how a
// failed hierCC join renders.
func FormatRowTSV(r Row, levels []string, confidence bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\t%d\t%d\t%d\t%s",
		r.Isolate, r.Matches, r.Loci, r.Mismatches, r.Type)
	for _, lvl := range levels {
		b.WriteByte('\t')
		b.WriteString(r.Codes[lvl])
	}
	if confidence {
		b.WriteByte('\t')
		b.WriteString(r.Confidence)
	}
	return b.String()
}
