// SPDX-License-Identifier: MIT

package textio

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// maxLineBytes bounds a single line; labels in assembly overlap files can be long.
const maxLineBytes = 16 << 20

// LineFunc receives each line with its 1-based number. Returning a non-nil
// error stops the scan and is returned by Scan unchanged.
type LineFunc func(lineNo int, line string) error

// Scan calls fn for every line in r. Line terminators (\n, \r\n) are removed;
// a final line without a terminator is still delivered.
//
// Errors:
//   - the first error returned by fn;
//   - read errors from r, returned as-is.
func Scan(r io.Reader, fn LineFunc) error {
	err := scan(r, fn)

	var re readError
	if errors.As(err, &re) {
		return re.err
	}

	return err
}

// readError marks failures of the underlying reader, as opposed to errors
// returned by a LineFunc.
type readError struct{ err error }

func (e readError) Error() string { return e.err.Error() }
func (e readError) Unwrap() error { return e.err }

func scan(r io.Reader, fn LineFunc) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		if err := fn(lineNo, strings.TrimSuffix(sc.Text(), "\r")); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return readError{err: err}
	}

	return nil
}

// ScanFile opens path, runs Scan over it and closes it.
// FormatErrors produced by fn get Path filled in when it is empty.
func ScanFile(path string, fn LineFunc) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	err = scan(f, fn)

	var (
		fe *FormatError
		re readError
	)
	switch {
	case err == nil:
		return nil
	case errors.As(err, &re):
		return &IOError{Op: "read", Path: path, Err: re.err}
	case errors.As(err, &fe):
		if fe.Path == "" {
			fe.Path = path
		}
		return err
	default:
		return err
	}
}

// CreateFile creates (or truncates) path, passes a buffered writer to fn and
// flushes and closes the file. The file is closed on every path.
func CreateFile(path string, fn func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	bw := bufio.NewWriter(f)
	if err = fn(bw); err != nil {
		return err
	}
	if ferr := bw.Flush(); ferr != nil {
		return &IOError{Op: "write", Path: path, Err: ferr}
	}

	return nil
}

// BaseName strips the final extension from path. A leading dot in the last
// path element (".hidden") is not treated as an extension.
//
//	"data/graph.txt"  → "data/graph"
//	"data/graph"      → "data/graph"
//	"data/.edges"     → "data/.edges"
//	"a.b/graph"       → "a.b/graph"
func BaseName(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return path
	}
	base := filepath.Base(path)
	if len(ext) == len(base) {
		return path
	}

	return strings.TrimSuffix(path, ext)
}
