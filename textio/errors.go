// SPDX-License-Identifier: MIT

package textio

import (
	"errors"
	"fmt"
)

// ErrFormat is matched by every *FormatError through errors.Is.
var ErrFormat = errors.New("textio: malformed line")

// FormatError reports an input line that could not be decoded.
type FormatError struct {
	Path   string // empty when reading from a plain io.Reader
	Line   int    // 1-based
	Text   string // offending line as read
	Reason error
}

func (e *FormatError) Error() string {
	src := e.Path
	if src == "" {
		src = "input"
	}

	return fmt.Sprintf("%s:%d: %v (line %q)", src, e.Line, e.Reason, e.Text)
}

// Unwrap exposes the underlying reason.
func (e *FormatError) Unwrap() error { return e.Reason }

// Is reports ErrFormat as a match so callers can branch without errors.As.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// IOError reports a failure to open, read, write or close a file.
type IOError struct {
	Op   string // "open", "read", "create", "write", "close"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("textio: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes the os-level error, so errors.Is(err, fs.ErrNotExist) works.
func (e *IOError) Unwrap() error { return e.Err }
