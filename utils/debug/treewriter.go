// Package debug provides helpers for producing readable dumps of internal
// structures.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// TreeWriter accumulates an indented textual tree. It exists solely for
// manual inspection during troubleshooting, output format is not a contract.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

// Line writes a single formatted line at the given depth.
func (tw TreeWriter) Line(depth int, format string, args ...any) {
	for range depth {
		tw.w.WriteString("  ")
	}
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes a labeled value, quoting non-empty text so control
// characters and spacing stay visible.
func (tw TreeWriter) TextBlock(depth int, label, value string) {
	for range depth {
		tw.w.WriteString("  ")
	}
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
