// core/profile/profile_test.go
package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToken(t *testing.T) {
	cases := map[string]uint32{
		"42":      42,
		" 7 ":     7,
		"0":       Missing,
		"-":       Missing,
		"":        Missing,
		"LNF":     Missing,
		"NIPH":    Missing,
		"PLOT3":   Missing,
		"INF-512": Missing,
	}
	for tok, want := range cases {
		assert.Equal(t, want, ParseToken(tok), "token %q", tok)
	}
}

func TestParseStrictToken(t *testing.T) {
	v, err := ParseStrictToken("15")
	require.NoError(t, err)
	assert.Equal(t, uint32(15), v)

	v, err = ParseStrictToken("-")
	require.NoError(t, err)
	assert.Equal(t, Missing, v)

	v, err = ParseStrictToken("0")
	require.NoError(t, err)
	assert.Equal(t, Missing, v)

	_, err = ParseStrictToken("LNF")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LNF")
}
