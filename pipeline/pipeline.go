// SPDX-License-Identifier: MIT

// Package pipeline runs the batch flows of degreeplot:
//
//	Degrees        edge list → graph → degree values → histograms
//	PlotDegrees    degree file → histograms
//	PlotDensities  density file → histograms
//	Overlaps       read-overlap table → filtered edge list
//
// Each flow is one sequential pass: it reads its input completely, aborts on
// the first error and only then writes. A failed flow removes the files it
// already wrote. Every flow opens a root span with a child span per stage,
// logs stage completion and returns a Summary.
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"os"

	"go.opentelemetry.io/otel/trace"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/degreeplot/core"
	"github.com/katalvlaran/degreeplot/edgelist"
	"github.com/katalvlaran/degreeplot/observability"
	"github.com/katalvlaran/degreeplot/paf"
	"github.com/katalvlaran/degreeplot/render"
	"github.com/katalvlaran/degreeplot/samples"
	"github.com/katalvlaran/degreeplot/textio"
)

// Flow names, used for spans, logs and Summary.Flow.
const (
	FlowDegrees       = "degrees"
	FlowPlotDegrees   = "plot-degrees"
	FlowPlotDensities = "plot-densities"
	FlowOverlaps      = "overlaps"
)

// Output name suffixes.
const (
	// DegreesSuffix is appended to the output base for the degree files and
	// the degree histograms of the Degrees flow.
	DegreesSuffix = "_degrees"
	// ByVertexSuffix follows DegreesSuffix for the per-vertex degree file.
	ByVertexSuffix = "_by_vertex"
	// EdgesSuffix is appended to the output base for the edge list written
	// by the Overlaps flow.
	EdgesSuffix = "_edges"
)

// ErrNilRenderer indicates New was given a nil renderer.
var ErrNilRenderer = errors.New("pipeline: nil renderer")

// Options controls the outputs of one flow.
type Options struct {
	// Out is the output base name; textio.BaseName(input) when empty.
	Out string
	// Display, when non-nil, receives a text histogram instead of PNG files.
	Display io.Writer
	// WriteDegrees also writes <base>_degrees.txt (Degrees flow only).
	WriteDegrees bool
	// WriteByVertex also writes <base>_degrees_by_vertex.txt with one
	// "label\tdegree" line per vertex (Degrees flow only).
	WriteByVertex bool
}

// Summary describes a finished flow. Statistics are zero when there are no
// samples. Bins is the bin count of the histogram drawn, zero when nothing
// was drawn. Overlaps and Dropped are set by the Overlaps flow only.
type Summary struct {
	Flow      string   `json:"flow"`
	Input     string   `json:"input"`
	Vertices  int      `json:"vertices,omitempty"`
	Edges     int      `json:"edges,omitempty"`
	Overlaps  int      `json:"overlaps,omitempty"`
	Dropped   int      `json:"dropped,omitempty"`
	Samples   int      `json:"samples"`
	Min       float64  `json:"min"`
	Max       float64  `json:"max"`
	Mean      float64  `json:"mean"`
	StdDev    float64  `json:"stddev"`
	Bins      int      `json:"bins,omitempty"`
	Artifacts []string `json:"artifacts"`
}

// Pipeline holds the renderers and logger shared by the flows.
type Pipeline struct {
	degree  *render.Renderer
	density *render.Renderer
	logger  *slog.Logger
}

// New returns a Pipeline rendering degree histograms with degree and density
// histograms with density. A nil logger discards logs.
func New(degree, density *render.Renderer, logger *slog.Logger) (*Pipeline, error) {
	if degree == nil || density == nil {
		return nil, ErrNilRenderer
	}
	if logger == nil {
		logger = observability.Discard()
	}

	return &Pipeline{degree: degree, density: density, logger: logger}, nil
}

// Degrees ingests the edge list at path, computes vertex degrees and renders
// their distribution to <base>_degrees_linear.png and <base>_degrees_log.png
// (or to opts.Display). With opts.WriteDegrees the degree values are also
// written to <base>_degrees.txt in first-seen vertex order; with
// opts.WriteByVertex each label is written with its degree to
// <base>_degrees_by_vertex.txt.
//
// An empty edge list is not an error: the summary reports zero vertices and
// nothing is rendered.
func (p *Pipeline) Degrees(ctx context.Context, path string, opts Options) (sum *Summary, err error) {
	ctx, span := observability.StartFlowSpan(ctx, FlowDegrees, path)
	defer func() { finish(span, err) }()

	g, err := p.readGraph(ctx, path)
	if err != nil {
		return nil, err
	}

	_, stage := observability.StartStageSpan(ctx, "degrees")
	degrees := g.Degrees()
	values, x := degrees.Values(), degrees.Samples()
	observability.RecordSamples(stage, len(values))
	stage.End()
	p.logger.Debug("degrees computed", "vertices", degrees.Len(), "degree_sum", degrees.Sum())

	s := newSummary(FlowDegrees, path, x)
	s.Vertices, s.Edges = g.VertexCount(), g.EdgeCount()
	defer p.discardOnError(&err, s)

	base := outBase(path, opts) + DegreesSuffix
	if opts.WriteDegrees {
		out := base + ".txt"
		if err = p.writeDegrees(ctx, out, func() error { return samples.WriteIntsFile(out, values) }); err != nil {
			return nil, err
		}
		s.Artifacts = append(s.Artifacts, out)
	}
	if opts.WriteByVertex {
		out := base + ByVertexSuffix + ".txt"
		labels := g.Labels()
		if err = p.writeDegrees(ctx, out, func() error { return samples.WriteLabeledIntsFile(out, labels, values) }); err != nil {
			return nil, err
		}
		s.Artifacts = append(s.Artifacts, out)
	}

	if err = p.draw(ctx, p.degree, x, base, opts.Display, s); err != nil {
		return nil, err
	}

	return s, nil
}

// PlotDegrees renders the integer distribution in the file at path to
// <base>_linear.png and <base>_log.png with the degree preset.
func (p *Pipeline) PlotDegrees(ctx context.Context, path string, opts Options) (sum *Summary, err error) {
	ctx, span := observability.StartFlowSpan(ctx, FlowPlotDegrees, path)
	defer func() { finish(span, err) }()

	_, stage := observability.StartStageSpan(ctx, "read")
	values, err := samples.ReadIntsFile(path)
	observability.RecordError(stage, err)
	stage.End()
	if err != nil {
		return nil, err
	}
	p.logger.Debug("samples read", "path", path, "samples", len(values))

	x := samples.Float64s(values)
	sum = newSummary(FlowPlotDegrees, path, x)
	if err = p.draw(ctx, p.degree, x, outBase(path, opts), opts.Display, sum); err != nil {
		return nil, err
	}

	return sum, nil
}

// PlotDensities renders the real-valued distribution in the file at path to
// <base>_linear.png and <base>_log.png with the density preset.
func (p *Pipeline) PlotDensities(ctx context.Context, path string, opts Options) (sum *Summary, err error) {
	ctx, span := observability.StartFlowSpan(ctx, FlowPlotDensities, path)
	defer func() { finish(span, err) }()

	_, stage := observability.StartStageSpan(ctx, "read")
	x, err := samples.ReadFloatsFile(path)
	observability.RecordError(stage, err)
	stage.End()
	if err != nil {
		return nil, err
	}
	p.logger.Debug("samples read", "path", path, "samples", len(x))

	sum = newSummary(FlowPlotDensities, path, x)
	if err = p.draw(ctx, p.density, x, outBase(path, opts), opts.Display, sum); err != nil {
		return nil, err
	}

	return sum, nil
}

func (p *Pipeline) readGraph(ctx context.Context, path string) (*core.Graph, error) {
	_, stage := observability.StartStageSpan(ctx, "read")
	defer stage.End()

	g, err := edgelist.ReadFile(path)
	if err != nil {
		observability.RecordError(stage, err)
		return nil, err
	}
	observability.RecordGraph(stage, g.VertexCount(), g.EdgeCount())
	p.logger.Info("edge list read", "path", path, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	return g, nil
}

func (p *Pipeline) writeDegrees(ctx context.Context, out string, write func() error) error {
	_, stage := observability.StartStageSpan(ctx, "write_degrees")
	defer stage.End()

	if err := write(); err != nil {
		observability.RecordError(stage, err)
		return err
	}
	observability.RecordArtifacts(stage, out)
	p.logger.Info("degrees written", "path", out)

	return nil
}

// Overlaps filters the read-overlap table at path, keeping overlaps whose
// spans on both reads reach minOverlap, and writes the kept pairs as an edge
// list to <base>_edges.txt. The edge file is written only after the whole
// table has been read, so a malformed line leaves nothing behind. The summary
// carries the vertex and edge counts of the kept graph.
func (p *Pipeline) Overlaps(ctx context.Context, path string, minOverlap int, opts Options) (sum *Summary, err error) {
	ctx, span := observability.StartFlowSpan(ctx, FlowOverlaps, path)
	defer func() { finish(span, err) }()

	_, stage := observability.StartStageSpan(ctx, "filter")
	var buf bytes.Buffer
	ew := edgelist.NewWriter(&buf)
	g := core.NewGraph()
	st, err := paf.FilterFile(path, minOverlap, tee{ew, g})
	if err == nil {
		err = ew.Flush()
	}
	observability.RecordError(stage, err)
	observability.RecordGraph(stage, g.VertexCount(), g.EdgeCount())
	stage.End()
	if err != nil {
		return nil, err
	}
	p.logger.Info("overlaps filtered", "path", path, "overlaps", st.Overlaps, "kept", st.Kept, "min_overlap", minOverlap)

	s := newSummary(FlowOverlaps, path, nil)
	s.Vertices, s.Edges = g.VertexCount(), g.EdgeCount()
	s.Overlaps, s.Dropped = st.Overlaps, st.Dropped()

	out := outBase(path, opts) + EdgesSuffix + ".txt"
	_, stage = observability.StartStageSpan(ctx, "write_edges")
	defer stage.End()
	if err = textio.CreateFile(out, func(w io.Writer) error {
		_, werr := buf.WriteTo(w)
		return werr
	}); err != nil {
		observability.RecordError(stage, err)
		_ = os.Remove(out)
		return nil, err
	}
	observability.RecordArtifacts(stage, out)
	s.Artifacts = append(s.Artifacts, out)
	p.logger.Info("edge list written", "path", out, "edges", s.Edges)

	return s, nil
}

// tee forwards every edge to both sinks.
type tee [2]paf.Sink

func (t tee) AddEdge(a, b string) error {
	if err := t[0].AddEdge(a, b); err != nil {
		return err
	}
	return t[1].AddEdge(a, b)
}

// discardOnError removes the artifacts of s when *err is set on return.
func (p *Pipeline) discardOnError(err *error, s *Summary) {
	if *err == nil {
		return
	}
	for _, path := range s.Artifacts {
		if rerr := os.Remove(path); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
			p.logger.Warn("cannot remove partial output", "path", path, "error", rerr)
		}
	}
}

// draw renders x with r, to display when it is non-nil and to PNG files
// under base otherwise. Empty x is skipped with a warning.
func (p *Pipeline) draw(ctx context.Context, r *render.Renderer, x []float64, base string, display io.Writer, sum *Summary) error {
	if len(x) == 0 {
		p.logger.Warn("no samples to plot", "flow", sum.Flow, "input", sum.Input)
		return nil
	}

	if display != nil {
		_, stage := observability.StartStageSpan(ctx, "display")
		defer stage.End()
		if err := r.Display(display, x); err != nil {
			observability.RecordError(stage, err)
			return err
		}
		sum.Bins = r.Config().DisplayBins
		return nil
	}

	_, stage := observability.StartStageSpan(ctx, "render")
	defer stage.End()
	observability.RecordSamples(stage, len(x))

	art, err := r.Render(x, base)
	if err != nil {
		observability.RecordError(stage, err)
		return err
	}
	observability.RecordArtifacts(stage, art.Linear, art.Log)
	sum.Artifacts = append(sum.Artifacts, art.Linear, art.Log)
	sum.Bins = r.Config().Bins
	p.logger.Info("histograms written", "linear", art.Linear, "log", art.Log, "bins", sum.Bins)

	return nil
}

func finish(span trace.Span, err error) {
	observability.RecordError(span, err)
	span.End()
}

func outBase(path string, opts Options) string {
	if opts.Out != "" {
		return opts.Out
	}

	return textio.BaseName(path)
}

// newSummary fills the sample statistics. StdDev is the sample standard
// deviation and zero for fewer than two samples.
func newSummary(flow, input string, x []float64) *Summary {
	s := &Summary{Flow: flow, Input: input, Samples: len(x), Artifacts: []string{}}
	if len(x) == 0 {
		return s
	}
	s.Min, s.Max = floats.Min(x), floats.Max(x)
	s.Mean, s.StdDev = stat.MeanStdDev(x, nil)
	if len(x) < 2 || math.IsNaN(s.StdDev) {
		s.StdDev = 0
	}

	return s
}
