// SPDX-License-Identifier: MIT

// Package paf filters pairwise read overlaps into an edge list.
//
// Input is the whitespace-separated overlap table an assembler writes, one
// overlap per line. Only five columns are read (0-based):
//
//	0, 1   names of the two overlapping reads
//	6, 7   start and end of the overlap on the first read
//	9, 10  start and end of the overlap on the second read
//
// An overlap is kept when both spans (end - start) are at least the minimum
// overlap length, and it becomes the edge "col0 col1". Lines with fewer than
// eleven columns or non-integer coordinates abort the read with a
// *textio.FormatError.
package paf

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/degreeplot/textio"
)

// DefaultMinOverlap is the shortest overlap span kept by default.
const DefaultMinOverlap = 1000

// Column layout of an overlap line.
const (
	colNameA  = 0
	colNameB  = 1
	colStartA = 6
	colEndA   = 7
	colStartB = 9
	colEndB   = 10
	minFields = colEndB + 1
)

// Reasons carried by FormatErrors.
var (
	// ErrShortLine marks a line with fewer than eleven columns.
	ErrShortLine = errors.New("paf: expected at least 11 columns")

	// ErrBadCoordinate marks an overlap coordinate that is not an integer.
	ErrBadCoordinate = errors.New("paf: overlap coordinate is not an integer")
)

// ErrNegativeMinOverlap is returned for a minimum overlap below zero.
var ErrNegativeMinOverlap = errors.New("paf: minimum overlap must be >= 0")

// Overlap is one decoded overlap line.
type Overlap struct {
	A, B         string
	SpanA, SpanB int
}

// Keep reports whether both spans reach minOverlap.
func (o Overlap) Keep(minOverlap int) bool {
	return o.SpanA >= minOverlap && o.SpanB >= minOverlap
}

// ParseLine decodes the columns of line that the filter needs.
func ParseLine(line string) (Overlap, error) {
	f := strings.Fields(line)
	if len(f) < minFields {
		return Overlap{}, fmt.Errorf("%w: got %d", ErrShortLine, len(f))
	}

	var c [4]int
	for i, col := range [...]int{colStartA, colEndA, colStartB, colEndB} {
		v, err := strconv.Atoi(f[col])
		if err != nil {
			return Overlap{}, fmt.Errorf("%w: column %d: %v", ErrBadCoordinate, col, err)
		}
		c[i] = v
	}

	return Overlap{A: f[colNameA], B: f[colNameB], SpanA: c[1] - c[0], SpanB: c[3] - c[2]}, nil
}

// Sink receives the kept overlaps as edges. *edgelist.Writer and
// *core.Graph both satisfy it.
type Sink interface {
	AddEdge(a, b string) error
}

// Stats counts the outcome of one Filter call.
type Stats struct {
	Overlaps int // lines read
	Kept     int // lines passed to the sink
}

// Dropped returns the number of overlaps below the minimum.
func (s Stats) Dropped() int { return s.Overlaps - s.Kept }

// Filter reads overlaps from r and passes those reaching minOverlap to sink,
// in input order.
//
// Errors:
//   - ErrNegativeMinOverlap: minOverlap < 0.
//   - *textio.FormatError: a line does not decode.
//   - errors from sink, wrapped with the line number.
func Filter(r io.Reader, minOverlap int, sink Sink) (Stats, error) {
	if minOverlap < 0 {
		return Stats{}, fmt.Errorf("%w: got %d", ErrNegativeMinOverlap, minOverlap)
	}
	var st Stats
	err := textio.Scan(r, filterLine(minOverlap, sink, &st))

	return st, err
}

// FilterFile is Filter over the file at path.
func FilterFile(path string, minOverlap int, sink Sink) (Stats, error) {
	if minOverlap < 0 {
		return Stats{}, fmt.Errorf("%w: got %d", ErrNegativeMinOverlap, minOverlap)
	}
	var st Stats
	err := textio.ScanFile(path, filterLine(minOverlap, sink, &st))

	return st, err
}

func filterLine(minOverlap int, sink Sink, st *Stats) textio.LineFunc {
	return func(lineNo int, line string) error {
		o, err := ParseLine(line)
		if err != nil {
			return &textio.FormatError{Line: lineNo, Text: line, Reason: err}
		}
		st.Overlaps++
		if !o.Keep(minOverlap) {
			return nil
		}
		if err = sink.AddEdge(o.A, o.B); err != nil {
			return fmt.Errorf("paf: line %d: %w", lineNo, err)
		}
		st.Kept++

		return nil
	}
}
