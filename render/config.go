// SPDX-License-Identifier: MIT

// Package render draws distributions of numeric samples as histograms.
//
// A Renderer is configured once and holds no other state; every call bins
// its input from scratch, so independent renders never influence each other.
// Each Render call produces two PNG artifacts from a caller-supplied base
// name:
//
//	<base>_linear.png   linear axes
//	<base>_log.png      log-scaled counts (and log-scaled x for LogBins)
//
// Display is the interactive counterpart and prints a text histogram.
package render

import (
	"errors"
	"fmt"
)

// Spacing selects how bin dividers are laid out.
type Spacing int

const (
	// LinearBins spaces dividers evenly over [min, max].
	LinearBins Spacing = iota
	// LogBins spaces dividers evenly in log10 over [1, max+1], as suited to
	// integer-valued heavy-tailed data such as degrees. Samples in (0, 1)
	// move the lower end down to min.
	LogBins
)

// Style is the color scheme of rendered images.
type Style string

const (
	StyleDark  Style = "dark"
	StyleLight Style = "light"
)

// Sentinel errors.
var (
	// ErrNoSamples indicates an empty sample sequence.
	ErrNoSamples = errors.New("render: no samples")

	// ErrNonFinite indicates a NaN or infinite sample.
	ErrNonFinite = errors.New("render: non-finite sample")

	// ErrBadConfig indicates a Config that cannot produce a histogram.
	ErrBadConfig = errors.New("render: invalid config")
)

// Config describes one kind of histogram.
type Config struct {
	Title     string
	XLabel    string
	YLabel    string
	LogXLabel string // x label of the log variant; XLabel when empty
	LogYLabel string // y label of the log variant; YLabel when empty

	Bins        int // number of bins in images
	DisplayBins int // number of bins in the text display
	Spacing     Spacing
	Style       Style

	DPI    int     // image resolution
	Width  float64 // inches
	Height float64 // inches
}

// Image defaults.
const (
	DefaultDPI         = 400
	DefaultWidth       = 6.4
	DefaultHeight      = 4.8
	DefaultDisplayBins = 20
)

// DegreeConfig is the degree-distribution preset: 74 bins between 75
// log-spaced dividers, log x and log y in the log variant.
func DegreeConfig() Config {
	return Config{
		Title:       "Degree Distribution",
		XLabel:      "Degree",
		YLabel:      "Number of Nodes",
		LogXLabel:   "Log Degree",
		LogYLabel:   "Log Number of Nodes",
		Bins:        74,
		DisplayBins: DefaultDisplayBins,
		Spacing:     LogBins,
		Style:       StyleDark,
		DPI:         DefaultDPI,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
	}
}

// DensityConfig is the component-density preset: 70 linear bins, log y in
// the log variant.
func DensityConfig() Config {
	return Config{
		Title:       "Component Density Distribution",
		XLabel:      "Component Densities",
		YLabel:      "Frequency",
		LogYLabel:   "Log Frequency",
		Bins:        70,
		DisplayBins: DefaultDisplayBins,
		Spacing:     LinearBins,
		Style:       StyleDark,
		DPI:         DefaultDPI,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
	}
}

// Validate reports the first problem with c, wrapped in ErrBadConfig.
func (c Config) Validate() error {
	switch {
	case c.Bins < 1:
		return fmt.Errorf("%w: bins=%d < 1", ErrBadConfig, c.Bins)
	case c.DisplayBins < 1:
		return fmt.Errorf("%w: display bins=%d < 1", ErrBadConfig, c.DisplayBins)
	case c.DPI < 1:
		return fmt.Errorf("%w: dpi=%d < 1", ErrBadConfig, c.DPI)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %gx%g in", ErrBadConfig, c.Width, c.Height)
	case c.Spacing != LinearBins && c.Spacing != LogBins:
		return fmt.Errorf("%w: spacing %d", ErrBadConfig, c.Spacing)
	case c.Style != StyleDark && c.Style != StyleLight:
		return fmt.Errorf("%w: style %q", ErrBadConfig, c.Style)
	}

	return nil
}

// ParseStyle converts a configuration string to a Style.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleDark, StyleLight:
		return Style(s), nil
	}

	return "", fmt.Errorf("%w: style %q", ErrBadConfig, s)
}
