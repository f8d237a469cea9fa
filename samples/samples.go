// SPDX-License-Identifier: MIT

// Package samples reads and writes distribution files: one numeric sample per
// line, such as a degree list ("<base>_degrees.txt") or a list of component
// densities. Surrounding whitespace on a line is ignored; anything else that
// does not parse aborts the read with a *textio.FormatError.
package samples

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/degreeplot/textio"
)

// Reasons carried by FormatErrors.
var (
	// ErrNotNumber marks a line that does not parse.
	ErrNotNumber = errors.New("samples: not a number")

	// ErrNotFinite marks a line that parses to NaN or ±Inf.
	ErrNotFinite = errors.New("samples: not a finite number")

	// ErrLengthMismatch is returned when labels and values differ in length.
	ErrLengthMismatch = errors.New("samples: labels and values differ in length")
)

// ReadInts reads one integer per line from r.
func ReadInts(r io.Reader) ([]int, error) {
	var out []int
	err := textio.Scan(r, intLine(&out))

	return finish(out, err)
}

// ReadIntsFile is ReadInts over the file at path.
func ReadIntsFile(path string) ([]int, error) {
	var out []int
	err := textio.ScanFile(path, intLine(&out))

	return finish(out, err)
}

// ReadFloats reads one floating-point number per line from r.
func ReadFloats(r io.Reader) ([]float64, error) {
	var out []float64
	err := textio.Scan(r, floatLine(&out))

	return finish(out, err)
}

// ReadFloatsFile is ReadFloats over the file at path.
func ReadFloatsFile(path string) ([]float64, error) {
	var out []float64
	err := textio.ScanFile(path, floatLine(&out))

	return finish(out, err)
}

func finish[T any](out []T, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}

	return out, nil
}

func intLine(out *[]int) textio.LineFunc {
	return func(lineNo int, line string) error {
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return &textio.FormatError{Line: lineNo, Text: line, Reason: fmt.Errorf("%w: %v", ErrNotNumber, err)}
		}
		*out = append(*out, v)

		return nil
	}
}

func floatLine(out *[]float64) textio.LineFunc {
	return func(lineNo int, line string) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			return &textio.FormatError{Line: lineNo, Text: line, Reason: fmt.Errorf("%w: %v", ErrNotNumber, err)}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &textio.FormatError{Line: lineNo, Text: line, Reason: ErrNotFinite}
		}
		*out = append(*out, v)

		return nil
	}
}

// WriteInts writes values to w, one per line.
func WriteInts(w io.Writer, values []int) error {
	buf := make([]byte, 0, 16)
	for _, v := range values {
		buf = strconv.AppendInt(buf[:0], int64(v), 10)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}

	return nil
}

// WriteIntsFile writes values to path, one per line, replacing any existing file.
func WriteIntsFile(path string, values []int) error {
	return textio.CreateFile(path, func(w io.Writer) error {
		return WriteInts(w, values)
	})
}

// WriteLabeledInts writes "label\tvalue" lines pairing labels[i] with
// values[i].
func WriteLabeledInts(w io.Writer, labels []string, values []int) error {
	if len(labels) != len(values) {
		return fmt.Errorf("%w: %d labels, %d values", ErrLengthMismatch, len(labels), len(values))
	}
	buf := make([]byte, 0, 64)
	for i, v := range values {
		buf = append(buf[:0], labels[i]...)
		buf = append(buf, '\t')
		buf = strconv.AppendInt(buf, int64(v), 10)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}

	return nil
}

// WriteLabeledIntsFile is WriteLabeledInts to path, replacing any existing file.
// Nothing is created on a length mismatch.
func WriteLabeledIntsFile(path string, labels []string, values []int) error {
	if len(labels) != len(values) {
		return fmt.Errorf("%w: %d labels, %d values", ErrLengthMismatch, len(labels), len(values))
	}

	return textio.CreateFile(path, func(w io.Writer) error {
		return WriteLabeledInts(w, labels, values)
	})
}

// Float64s converts integer samples for a distribution renderer.
func Float64s(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}

	return out
}
