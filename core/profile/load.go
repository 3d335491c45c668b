// core/profile/load.go
package profile

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Query is one isolate row from the typing-pipeline output table.
type Query struct {
	Isolate string
	Line    int
	Profile Profile
}

// LoadQueries reads a typing output table (first column isolate ID, one
// column per locus) and returns one Query per row, with locus columns
// selected and reordered to match loci, the reference scheme's locus
// order. chewBBACA appends ".fasta" to locus column names and isolate
// IDs; both suffixes are stripped. Extra input columns are ignored; a
// scheme locus missing from the input header is fatal.
func LoadQueries(path string, loci []string) ([]Query, error) {
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
		return nil, &FormatError{Path: path, Line: 1, Msg: "empty table"}
	}
	header := splitRow(sc.Text())
	if len(header) < 2 {
		return nil, &FormatError{Path: path, Line: 1, Msg: "header has no locus columns"}
	}
	byName := make(map[string]int, len(header))
	for i, name := range header[1:] {
		byName[strings.TrimSuffix(strings.TrimSpace(name), ".fasta")] = i + 1
	}
	cols := make([]int, len(loci))
	for i, locus := range loci {
		idx, ok := byName[locus]
		if !ok {
			return nil, fmt.Errorf("%s: locus %q from the reference scheme is missing from the input header", path, locus)
		}
		cols[i] = idx
	}

	var queries []Query
	ln := 1
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		fields := splitRow(line)
		if len(fields) != len(header) {
			return nil, &FormatError{Path: path, Line: ln,
				Msg: fmt.Sprintf("expected %d columns, got %d", len(header), len(fields))}
		}
		p := make(Profile, len(cols))
		for i, c := range cols {
			p[i] = ParseToken(fields[c])
		}
		queries = append(queries, Query{
			Isolate: strings.TrimSuffix(fields[0], ".fasta"),
			Line:    ln,
			Profile: p,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return queries, nil
}

func splitRow(line string) []string {
	return strings.Split(strings.TrimRight(line, "\r"), "\t")
}
