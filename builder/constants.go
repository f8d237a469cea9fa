// SPDX-License-Identifier: MIT
// Package: degreeplot/builder
//
// constants.go - method tags and parameter domains.

package builder

// Method tags used as error context.
const (
	MethodPath         = "Path"
	MethodCycle        = "Cycle"
	MethodStar         = "Star"
	MethodComplete     = "Complete"
	MethodRandomSparse = "RandomSparse"
)

// Minimum vertex counts. Every topology needs at least one edge.
const (
	MinPathNodes         = 2
	MinCycleNodes        = 3
	MinStarNodes         = 2
	MinCompleteNodes     = 2
	MinRandomSparseNodes = 2
)

// Probability domain for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
