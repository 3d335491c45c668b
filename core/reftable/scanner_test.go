// core/reftable/scanner_test.go
package reftable

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cgmatch-core/profile"
)

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.list")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadHeader(t *testing.T) {
	path := writeTable(t, "ST\tlocusA\tlocusB\tlocusC\n1\t1\t1\t1\n")
	loci, err := ReadHeader(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"locusA", "locusB", "locusC"}, loci)
}

func TestScanChunking(t *testing.T) {
	content := "ST\tlocusA\tlocusB\n"
	for i := 1; i <= 5; i++ {
		content += fmt.Sprintf("%d\t%d\t%d\n", i, i, i)
	}
	sc := &Scanner{Path: writeTable(t, content), ChunkSize: 2, Loci: 2}

	var sizes []int
	var types []string
	err := sc.Scan(context.Background(), func(rows []Row) error {
		sizes = append(sizes, len(rows))
		for _, r := range rows {
			types = append(types, r.Type)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 1}, sizes)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, types)
}

func TestScanIsRestartable(t *testing.T) {
	sc := &Scanner{Path: writeTable(t, "ST\tlocusA\n7\t3\n8\t4\n"), ChunkSize: 10, Loci: 1}
	for pass := 0; pass < 2; pass++ {
		var got []string
		err := sc.Scan(context.Background(), func(rows []Row) error {
			for _, r := range rows {
				got = append(got, r.Type)
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"7", "8"}, got, "pass %d", pass)
	}
}

func TestScanRowsCarryLineNumbers(t *testing.T) {
	sc := &Scanner{Path: writeTable(t, "ST\tlocusA\n10\t1\n11\t2\n"), Loci: 1}
	var lines []int
	err := sc.Scan(context.Background(), func(rows []Row) error {
		for _, r := range rows {
			lines = append(lines, r.Line)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, lines)
}

func TestScanBadColumnCount(t *testing.T) {
	sc := &Scanner{Path: writeTable(t, "ST\tlocusA\tlocusB\n1\t1\n"), Loci: 2}
	err := sc.Scan(context.Background(), func([]Row) error { return nil })
	var ferr *profile.FormatError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, 2, ferr.Line)
}

func TestScanBadAlleleToken(t *testing.T) {
	sc := &Scanner{Path: writeTable(t, "ST\tlocusA\n1\tLNF\n"), Loci: 1}
	err := sc.Scan(context.Background(), func([]Row) error { return nil })
	var ferr *profile.FormatError
	require.ErrorAs(t, err, &ferr)
	assert.Contains(t, ferr.Msg, "LNF")
}

func TestScanDashIsMissing(t *testing.T) {
	sc := &Scanner{Path: writeTable(t, "ST\tlocusA\tlocusB\n1\t-\t5\n"), Loci: 2}
	var got profile.Profile
	err := sc.Scan(context.Background(), func(rows []Row) error {
		got = rows[0].Profile
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, profile.Profile{profile.Missing, 5}, got)
}
