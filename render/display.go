// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// barWidth is the length of the longest bar in the text display.
const barWidth = 50

// Display writes a text histogram of samples to w, one line per bin:
//
//	Degree Distribution
//	[       1,     1.5)    12 ██████████████████████████████
//	...
//
// It uses DisplayBins bins with the configured spacing.
func (r *Renderer) Display(w io.Writer, samples []float64) error {
	b, err := binSamples(samples, r.cfg.DisplayBins, r.cfg.Spacing)
	if err != nil {
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%d samples)\n", r.cfg.Title, len(samples))
	fmt.Fprintf(&sb, "%s vs %s\n", r.cfg.YLabel, r.cfg.XLabel)

	peak := maxCount(b.bins)
	for i, bin := range b.bins {
		closing := ")"
		if i == len(b.bins)-1 {
			closing = "]"
		}
		n := 0
		if peak > 0 {
			n = bin.Count * barWidth / peak
		}
		if n == 0 && bin.Count > 0 {
			n = 1
		}
		fmt.Fprintf(&sb, "[%8s, %8s%s %6d %s\n",
			short(bin.Min), short(bin.Max), closing, bin.Count, strings.Repeat("█", n))
	}

	_, err = io.WriteString(w, sb.String())

	return err
}

// short formats v compactly, like %g with at most four significant digits.
func short(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
