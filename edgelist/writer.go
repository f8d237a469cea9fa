// SPDX-License-Identifier: MIT

package edgelist

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"
)

// ErrBadLabel is returned by Writer.AddEdge for labels that would not survive
// a round trip: empty labels or labels containing whitespace.
var ErrBadLabel = errors.New("edgelist: label is empty or contains whitespace")

// Writer encodes edges as "a\tb\n" lines. Output is buffered; call Flush
// when done.
type Writer struct {
	bw    *bufio.Writer
	edges int
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// AddEdge writes one edge line.
func (w *Writer) AddEdge(a, b string) error {
	if !validLabel(a) || !validLabel(b) {
		return ErrBadLabel
	}
	if _, err := w.bw.WriteString(a); err != nil {
		return err
	}
	if err := w.bw.WriteByte('\t'); err != nil {
		return err
	}
	if _, err := w.bw.WriteString(b); err != nil {
		return err
	}
	if err := w.bw.WriteByte('\n'); err != nil {
		return err
	}
	w.edges++

	return nil
}

// Edges returns the number of lines written.
func (w *Writer) Edges() int { return w.edges }

// Flush writes buffered lines to the underlying writer.
func (w *Writer) Flush() error { return w.bw.Flush() }

func validLabel(s string) bool {
	return s != "" && !strings.ContainsFunc(s, unicode.IsSpace)
}
