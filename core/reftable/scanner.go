// core/reftable/scanner.go
package reftable

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"cgmatch-core/profile"
)

// DefaultChunkSize is how many reference rows are held in memory at once.
const DefaultChunkSize = 10000

// Row is one reference profile keyed by its type identifier (cgST).
// Line is the 1-based line number in the source file, for diagnostics.
type Row struct {
	Type    string
	Line    int
	Profile profile.Profile
}

// ReadHeader returns the scheme's locus names: every header column after
// the leading type-identifier column.
func ReadHeader(path string) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, &profile.FormatError{Path: path, Line: 1, Msg: "empty table"}
	}
	fields := strings.Split(strings.TrimRight(sc.Text(), "\r"), "\t")
	if len(fields) < 2 {
		return nil, &profile.FormatError{Path: path, Line: 1, Msg: "header has no locus columns"}
	}
	loci := make([]string, len(fields)-1)
	for i, name := range fields[1:] {
		loci[i] = strings.TrimSpace(name)
	}
	return loci, nil
}

// Scanner streams a reference profile table in fixed-size row chunks.
// Every Scan call reopens the file and starts from the top, so one
// Scanner serves any number of independent passes, including concurrent
// ones. At most one chunk of rows is materialized per pass.
type Scanner struct {
	Path      string
	ChunkSize int // rows per chunk; <=0 means DefaultChunkSize
	Loci      int // expected locus count per row
}

// Scan reads the whole table, calling emit once per chunk. emit must not
// retain the slice beyond the call. A row whose column count disagrees
// with Loci, or that carries a non-integer allele token, aborts the scan
// with an error naming the offending line.
func (s *Scanner) Scan(ctx context.Context, emit func([]Row) error) error {
	size := s.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}
	fh, err := os.Open(s.Path)
	if err != nil {
		return err
	}
	defer func() { _ = fh.Close() }()

	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return err
		}
		return &profile.FormatError{Path: s.Path, Line: 1, Msg: "empty table"}
	}

	rows := make([]Row, 0, size)
	ln := 1
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != s.Loci+1 {
			return &profile.FormatError{Path: s.Path, Line: ln,
				Msg: fmt.Sprintf("expected %d columns, got %d", s.Loci+1, len(fields))}
		}
		p := make(profile.Profile, s.Loci)
		for i, tok := range fields[1:] {
			v, err := profile.ParseStrictToken(tok)
			if err != nil {
				return &profile.FormatError{Path: s.Path, Line: ln, Msg: err.Error()}
			}
			p[i] = v
		}
		rows = append(rows, Row{Type: fields[0], Line: ln, Profile: p})
		if len(rows) == size {
			if err := emit(rows); err != nil {
				return err
			}
			rows = rows[:0]
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%s: %w", s.Path, err)
	}
	if len(rows) > 0 {
		return emit(rows)
	}
	return nil
}
