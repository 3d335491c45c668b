// core/profile/score_test.go
package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreIdenticalProfiles(t *testing.T) {
	p := Profile{1, 2, 3, 4, 5}
	n, err := Score(p, p)
	require.NoError(t, err)
	assert.Equal(t, len(p), n)
}

func TestScoreMissingNeverMatches(t *testing.T) {
	q := Profile{Missing, 2, 3}
	c := Profile{Missing, 2, 9}
	n, err := Score(q, c)
	require.NoError(t, err)
	// locus 1: both missing, still not a match; locus 2: match; locus 3: differ.
	assert.Equal(t, 1, n)
}

func TestScoreSymmetry(t *testing.T) {
	q := Profile{1, Missing, 3, 7, 0}
	c := Profile{1, 5, Missing, 7, 2}
	a, err := Score(q, c)
	require.NoError(t, err)
	b, err := Score(c, q)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestScoreMatchPlusMismatchIsTotal(t *testing.T) {
	q := Profile{1, 2, Missing, 4, 5, 6}
	candidates := []Profile{
		{1, 2, 3, 4, 5, 6},
		{9, 9, 9, 9, 9, 9},
		{1, Missing, Missing, 4, 0, 6},
	}
	for _, c := range candidates {
		n, err := Score(q, c)
		require.NoError(t, err)
		mismatches := len(q) - n
		assert.Equal(t, len(q), n+mismatches)
		assert.GreaterOrEqual(t, n, 0)
		assert.LessOrEqual(t, n, len(q))
	}
}

func TestScoreLengthMismatch(t *testing.T) {
	_, err := Score(Profile{1, 2}, Profile{1, 2, 3})
	require.ErrorIs(t, err, ErrLengthMismatch)
}
