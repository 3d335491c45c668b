// core/hiercc/confidence.go
package hiercc

// Confidence buckets a mismatch count into the tightest hierCC level the
// assignment can still be trusted at: a query within N allele differences
// of its matched type is reliable at HC(N) and coarser. Beyond HC1100 the
// assignment is flagged unreliable.
func Confidence(mismatches int) string {
	levels := []struct {
		name string
		max  int
	}{
		{"HC20", 20}, {"HC50", 50}, {"HC100", 100},
		{"HC200", 200}, {"HC400", 400}, {"HC1100", 1100},
	}
	for _, l := range levels {
		if mismatches <= l.max {
			return l.name
		}
	}
	return "unreliable"
}
