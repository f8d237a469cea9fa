// SPDX-License-Identifier: MIT

// Package textio holds the line-oriented plumbing shared by the edge-list and
// distribution-file codecs: a numbered line scanner, scoped file access, and
// the FormatError / IOError types that callers classify with errors.As.
//
// Every file opened by ScanFile or CreateFile is closed before the call
// returns, on success and on every failure path.
package textio
