// internal/output/writer.go
package output

import (
	"bytes"
	"io"
	"os"
)

// Render serializes the whole result table into one byte slice.
func Render(rows []Row, levels []string, header, confidence bool) []byte {
	var buf bytes.Buffer
	if header {
		buf.WriteString(Header(levels, confidence))
		buf.WriteByte('\n')
	}
	for _, r := range rows {
		buf.WriteString(FormatRowTSV(r, levels, confidence))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Write emits the rendered table to w in a single call.
func Write(w io.Writer, rows []Row, levels []string, header, confidence bool) error {
	_, err := w.Write(Render(rows, levels, header, confidence))
	return err
}

// WriteFile writes the rendered table to path in one shot. The file is
// only created once the whole run has finished, so an interrupted run
// never leaves a half-written result behind.
func WriteFile(path string, rows []Row, levels []string, header, confidence bool) error {
	return os.WriteFile(path, Render(rows, levels, header, confidence), 0o644)
}
