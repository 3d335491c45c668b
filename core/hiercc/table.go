// core/hiercc/table.go
package hiercc

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"cgmatch-core/profile"
)

// DefaultLevels is the Enterobase hierCC column set, tightest first.
var DefaultLevels = []string{
	"HC0", "HC2", "HC5", "HC10", "HC20", "HC50", "HC100",
	"HC200", "HC400", "HC1100", "HC1500", "HC2000", "HC2350",
}

// ErrUnknownType means a type identifier has no row in the lookup table,
// usually because the profile and hierCC tables come from different
// database versions. Recoverable per isolate.
var ErrUnknownType = errors.New("type not present in hierCC table")

// Table maps a type identifier (cgST) to its cluster code at each
// hierarchical level. Loaded once, read-only afterwards.
type Table struct {
	Levels []string
	codes  map[string][]string // aligned with Levels
}

// Load reads a type-to-cluster lookup table: first column the type
// identifier, remaining columns one per level. Decorated level names
// such as "HC400 (cgST Cplx)" are normalized to their first word.
func Load(path string) (*Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, &profile.FormatError{Path: path, Line: 1, Msg: "empty table"}
	}
	header := strings.Split(strings.TrimRight(sc.Text(), "\r"), "\t")
	if len(header) < 2 {
		return nil, &profile.FormatError{Path: path, Line: 1, Msg: "header has no level columns"}
	}
	levels := make([]string, len(header)-1)
	for i, name := range header[1:] {
		levels[i] = normalizeLevel(name)
	}

	t := &Table{Levels: levels, codes: make(map[string][]string)}
	ln := 1
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != len(header) {
			return nil, &profile.FormatError{Path: path, Line: ln,
				Msg: fmt.Sprintf("expected %d columns, got %d", len(header), len(fields))}
		}
		t.codes[fields[0]] = fields[1:]
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// Len reports how many types the table holds.
func (t *Table) Len() int { return len(t.codes) }

// Lookup returns the cluster code per level for one type identifier.
func (t *Table) Lookup(typeID string) (map[string]string, error) {
	row, ok := t.codes[typeID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, typeID)
	}
	m := make(map[string]string, len(t.Levels))
	for i, lvl := range t.Levels {
		m[lvl] = row[i]
	}
	return m, nil
}

func normalizeLevel(name string) string {
	f := strings.Fields(strings.TrimSpace(name))
	if len(f) == 0 {
		return ""
	}
	return f[0]
}
