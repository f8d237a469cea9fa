// SPDX-License-Identifier: MIT

// Package edgelist decodes and encodes the plain-text edge-list format:
// one undirected edge per line, given as two whitespace-separated vertex
// labels. There is no header, comment syntax or escaping.
//
//	fp.3.Luci_01A01.ctg.ctg7180000038386  fp.3.Luci_02C06.ctg.ctg7180000060335
//	fp.3.Luci_02C06.ctg.ctg7180000060335  fp.3.Luci_02C06.ctg.ctg7180000085546
//
// Tokens past the second are ignored. A line with fewer than two tokens,
// including an empty line, aborts the read with a *textio.FormatError.
package edgelist

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/degreeplot/core"
	"github.com/katalvlaran/degreeplot/textio"
)

// ErrMalformedLine is the reason carried by FormatErrors for short lines.
var ErrMalformedLine = errors.New("edgelist: expected two whitespace-separated labels")

// ParseLine splits line into its two endpoint labels.
func ParseLine(line string) (a, b string, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", "", fmt.Errorf("%w: got %d", ErrMalformedLine, len(fields))
	}

	return fields[0], fields[1], nil
}

// Read builds a graph from the edge list in r. No graph is returned when any
// line is malformed.
func Read(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	g := core.NewGraph(opts...)
	if err := textio.Scan(r, ingest(g)); err != nil {
		return nil, err
	}

	return g, nil
}

// ReadFile is Read over the file at path; the file is closed before return.
func ReadFile(path string, opts ...core.GraphOption) (*core.Graph, error) {
	g := core.NewGraph(opts...)
	if err := textio.ScanFile(path, ingest(g)); err != nil {
		return nil, err
	}

	return g, nil
}

func ingest(g *core.Graph) textio.LineFunc {
	return func(lineNo int, line string) error {
		a, b, err := ParseLine(line)
		if err != nil {
			return &textio.FormatError{Line: lineNo, Text: line, Reason: err}
		}
		if err = g.AddEdge(a, b); err != nil {
			return fmt.Errorf("edgelist: line %d: %w", lineNo, err)
		}

		return nil
	}
}
