// Package debug has helpers producing human readable dumps of themes and
// styling results.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

const indent = "    "

// TreeWriter accumulates indented lines.
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

func (tw TreeWriter) pad(depth int) {
	for range depth {
		tw.w.WriteString(indent)
	}
}

// Line writes formatted line at depth.
func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Field writes "label: value" line, value is written as is.
func (tw TreeWriter) Field(depth int, label string, value any) {
	tw.pad(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	fmt.Fprint(tw.w, value)
	tw.w.WriteByte('\n')
}

// Text writes "label: value" line with value quoted.
func (tw TreeWriter) Text(depth int, label, value string) {
	tw.Field(depth, label, quote(value))
}

// Open writes "label" line and returns depth for nested lines.
func (tw TreeWriter) Open(depth int, label string) int {
	tw.pad(depth)
	tw.w.WriteString(label)
	tw.w.WriteByte('\n')
	return depth + 1
}

func quote(raw string) string {
	if raw == "" {
		return `""`
	}
	return strconv.Quote(raw)
}
