// SPDX-License-Identifier: MIT

// Command degreeplot computes vertex degrees of edge-list graphs and plots
// degree and component-density distributions as histograms.
//
//	degreeplot degrees graph.txt --write-degrees
//	degreeplot plot-degrees graph_degrees.txt
//	degreeplot plot-densities densities.txt --display
//	degreeplot overlaps reads.paf --min-overlap 1000
//	degreeplot gen random --n 1000 --p 0.01 --seed 7 --out random.txt
//
// Exit status is 0 on success, 2 on usage errors and 1 otherwise.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	defer a.shutdown(ctx)

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return exitOK
	}
	if cmd == nil {
		cmd = root
	}

	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintf(stderr, "Error: %v\n\n%s", err, cmd.UsageString())
		return exitUsage
	}
	if a.logger != nil {
		a.logger.Error("run failed", "command", cmd.Name(), "error", err)
	} else {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}

	return exitError
}

// usageError marks wrong arguments or flags; it maps to exitUsage.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}
