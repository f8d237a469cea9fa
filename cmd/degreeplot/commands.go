// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/degreeplot/builder"
	"github.com/katalvlaran/degreeplot/edgelist"
	"github.com/katalvlaran/degreeplot/paf"
	"github.com/katalvlaran/degreeplot/pipeline"
	"github.com/katalvlaran/degreeplot/textio"
)

const version = "0.1.0"

// Topologies accepted by gen.
var topologies = []string{"path", "cycle", "star", "complete", "random"}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "degreeplot",
		Short:         "Degree distributions of edge-list graphs",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageErrorf("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return usageErrorf("missing command")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			return a.setup(cmd.Context(), flags.Changed("log-level"), flags.Changed("log-format"))
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Config file path (YAML)")
	pf.StringVar(&a.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "text", "Log format: text or json")

	root.AddCommand(
		newDegreesCmd(a),
		newPlotCmd(a, "plot-degrees <degrees-file>", "Plot a degree distribution file", (*pipeline.Pipeline).PlotDegrees),
		newPlotCmd(a, "plot-densities <densities-file>", "Plot a component density file", (*pipeline.Pipeline).PlotDensities),
		newOverlapsCmd(a),
		newGenCmd(a),
	)

	return root
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

// outputFlags are shared by the flow commands.
type outputFlags struct {
	out     string
	display bool
	json    bool
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.out, "out", "", "Output base name (default: input path without extension)")
	cmd.Flags().BoolVar(&f.display, "display", false, "Print a text histogram instead of writing PNG files")
	cmd.Flags().BoolVar(&f.json, "json", false, "Print the run summary as JSON")
}

func (f *outputFlags) options(stdout io.Writer) pipeline.Options {
	opts := pipeline.Options{Out: f.out}
	if f.display {
		opts.Display = stdout
	}
	return opts
}

func newDegreesCmd(a *app) *cobra.Command {
	var (
		of           outputFlags
		writeDegrees bool
		byVertex     bool
	)
	cmd := &cobra.Command{
		Use:   "degrees <edge-list>",
		Short: "Compute vertex degrees of an edge list and plot their distribution",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.pipeline()
			if err != nil {
				return err
			}
			opts := of.options(a.stdout)
			opts.WriteDegrees = writeDegrees
			opts.WriteByVertex = byVertex
			sum, err := p.Degrees(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			return report(a.stdout, sum, of.json)
		},
	}
	of.register(cmd)
	cmd.Flags().BoolVar(&writeDegrees, "write-degrees", false, "Also write <base>_degrees.txt")
	cmd.Flags().BoolVar(&byVertex, "by-vertex", false, "Also write <base>_degrees_by_vertex.txt (label and degree per line)")

	return cmd
}

type flowFunc func(*pipeline.Pipeline, context.Context, string, pipeline.Options) (*pipeline.Summary, error)

func newPlotCmd(a *app, use, short string, flow flowFunc) *cobra.Command {
	var of outputFlags
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.pipeline()
			if err != nil {
				return err
			}
			sum, err := flow(p, cmd.Context(), args[0], of.options(a.stdout))
			if err != nil {
				return err
			}
			return report(a.stdout, sum, of.json)
		},
	}
	of.register(cmd)

	return cmd
}

// report prints the artifacts of sum, one per line, or the whole summary as JSON.
func report(w io.Writer, sum *pipeline.Summary, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sum)
	}
	for _, path := range sum.Artifacts {
		if _, err := fmt.Fprintln(w, path); err != nil {
			return err
		}
	}
	return nil
}

func newOverlapsCmd(a *app) *cobra.Command {
	var (
		out        string
		asJSON     bool
		minOverlap int
	)
	cmd := &cobra.Command{
		Use:     "overlaps <overlap-file>",
		Aliases: []string{"paf"},
		Short:   "Filter read overlaps into an edge list",
		Long: "Keeps the overlaps whose spans on both reads (columns 7-8 and 10-11) reach\n" +
			"--min-overlap and writes the read-name pairs (columns 1-2) to <base>_edges.txt.",
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if minOverlap < 0 {
				return usageErrorf("--min-overlap must be >= 0, got %d", minOverlap)
			}
			p, err := a.pipeline()
			if err != nil {
				return err
			}
			sum, err := p.Overlaps(cmd.Context(), args[0], minOverlap, pipeline.Options{Out: out})
			if err != nil {
				return err
			}
			return report(a.stdout, sum, asJSON)
		},
	}
	f := cmd.Flags()
	f.StringVar(&out, "out", "", "Output base name (default: input path without extension)")
	f.BoolVar(&asJSON, "json", false, "Print the run summary as JSON")
	f.IntVar(&minOverlap, "min-overlap", paf.DefaultMinOverlap, "Shortest overlap span kept on each read")

	return cmd
}

func newGenCmd(a *app) *cobra.Command {
	var (
		n      int
		p      float64
		seed   int64
		labels string
		prefix string
		out    string
	)
	cmd := &cobra.Command{
		Use:       "gen <" + strings.Join(topologies, "|") + ">",
		Short:     "Generate a synthetic edge list",
		ValidArgs: topologies,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs)(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			idFn, err := builder.ParseIDScheme(labels)
			if err != nil {
				return &usageError{err: err}
			}
			opts := []builder.BuilderOption{
				builder.WithIDScheme(idFn),
				builder.WithPrefix(prefix),
				builder.WithSeed(seed),
			}
			cons := constructor(args[0], n, p)
			if err = validate(cons); err != nil {
				return &usageError{err: err}
			}

			w := &countingSink{}
			if out == "" {
				err = writeEdges(a.stdout, opts, cons, w)
			} else {
				err = textio.CreateFile(out, func(f io.Writer) error {
					return writeEdges(f, opts, cons, w)
				})
			}
			if err != nil {
				return err
			}
			a.logger.Info("edge list generated", "topology", args[0], "n", n, "edges", w.edges, "out", orStdout(out))

			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&n, "n", 10, "Number of vertices")
	f.Float64Var(&p, "p", 0.1, "Edge probability (random only)")
	f.Int64Var(&seed, "seed", 1, "Random seed (random only)")
	f.StringVar(&labels, "labels", builder.SchemeDecimal, "Label scheme: decimal, excel or hex")
	f.StringVar(&prefix, "prefix", "", "Prefix prepended to every label")
	f.StringVarP(&out, "out", "o", "", "Output file (default: stdout)")

	return cmd
}

func constructor(topology string, n int, p float64) builder.Constructor {
	switch topology {
	case "path":
		return builder.Path(n)
	case "cycle":
		return builder.Cycle(n)
	case "star":
		return builder.Star(n)
	case "complete":
		return builder.Complete(n)
	default:
		return builder.RandomSparse(n, p)
	}
}

// errProbed stops a validation run at its first edge.
var errProbed = errors.New("probe: first edge reached")

type probe struct{}

func (probe) AddEdge(_, _ string) error { return errProbed }

// validate runs cons until its first edge. Constructors check their parameters
// before emitting, so this surfaces bad flags before any output is created.
func validate(cons builder.Constructor) error {
	err := builder.Build(probe{}, []builder.BuilderOption{builder.WithSeed(0)}, cons)
	if err == nil || errors.Is(err, errProbed) {
		return nil
	}
	return err
}

// countingSink tallies the edges written through writeEdges.
type countingSink struct {
	next  builder.Sink
	edges int
}

func (c *countingSink) AddEdge(a, b string) error {
	if err := c.next.AddEdge(a, b); err != nil {
		return err
	}
	c.edges++
	return nil
}

func writeEdges(w io.Writer, opts []builder.BuilderOption, cons builder.Constructor, counter *countingSink) error {
	ew := edgelist.NewWriter(w)
	counter.next = ew
	if err := builder.Build(counter, opts, cons); err != nil {
		return err
	}
	return ew.Flush()
}

func orStdout(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
