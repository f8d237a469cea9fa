// Package degreeplot computes vertex degrees of edge-list graphs and draws
// degree and component-density distributions as histograms.
//
// What it does:
//
//	• Ingests an edge list (one "a b" pair per line) in a single pass
//	• Interns arbitrary string labels to dense indices in first-seen order
//	• Builds an adjacency multigraph: duplicates and self-loops are kept
//	• Computes every vertex degree in O(V + E)
//	• Renders linear and log-scaled histograms to PNG, or prints them as text
//	• Generates synthetic edge lists (path, cycle, star, complete, G(n,p))
//	• Filters assembler read overlaps by span length into an edge list
//	• Lists every vertex label with its degree
//
// Packages:
//
//	core/          — Interner, Graph (adjacency multigraph), DegreeMap
//	edgelist/      — edge-list reader and writer
//	samples/       — one-value-per-line distribution files
//	paf/           — read-overlap filter producing edges
//	textio/        — line scanning, file creation, typed I/O and format errors
//	render/        — histogram binning, PNG export (gonum/plot), text display
//	builder/       — deterministic edge-stream generators
//	pipeline/      — the degrees, plot-degrees and plot-densities flows
//	config/        — viper-backed configuration
//	observability/ — slog loggers and OpenTelemetry tracing
//	cmd/degreeplot — the command-line tool
//
// Quick ASCII example:
//
//	    A───B        A B
//	    │  ╱    ⇒    B C     ⇒   A:2  B:2  C:2
//	    C╱           A C
//
// The triangle's edge list yields three vertices of degree two.
//
//	go install github.com/katalvlaran/degreeplot/cmd/degreeplot@latest
package degreeplot
