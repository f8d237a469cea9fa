// SPDX-License-Identifier: MIT
// Package: degreeplot/builder
//
// id_fn.go - vertex label schemes.

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// IDFn generates a vertex label from its zero-based index.
// It must be pure: the same idx always yields the same label, and distinct
// indices yield distinct labels. Labels must not contain whitespace, since
// edge-list tokens are whitespace separated.
type IDFn func(idx int) string

// Label scheme names accepted by ParseIDScheme.
const (
	SchemeDecimal = "decimal"
	SchemeExcel   = "excel"
	SchemeHex     = "hex"
)

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Never panics.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns the spreadsheet column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA", 702→"AAA".
// Complexity: O(log₂₆ idx).
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// HexIDFn returns the lowercase hexadecimal form of idx, e.g. 10→"a", 255→"ff".
// Panics if idx < 0.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 16)
}

// PrefixIDFn returns a scheme producing prefix + decimal index, e.g. "v0", "v1".
// The returned function panics if idx < 0.
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixIDFn: idx must be ≥ 0, got %d", idx))
		}

		return prefix + strconv.Itoa(idx)
	}
}

// ParseIDScheme maps a scheme name (case-insensitive) to its IDFn.
func ParseIDScheme(name string) (IDFn, error) {
	switch strings.ToLower(name) {
	case SchemeDecimal, "":
		return DefaultIDFn, nil
	case SchemeExcel:
		return ExcelColumnIDFn, nil
	case SchemeHex:
		return HexIDFn, nil
	}

	return nil, fmt.Errorf("builder: unknown label scheme %q (want %s, %s or %s)",
		name, SchemeDecimal, SchemeExcel, SchemeHex)
}
