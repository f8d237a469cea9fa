// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/degreeplot/config"
	"github.com/katalvlaran/degreeplot/observability"
	"github.com/katalvlaran/degreeplot/pipeline"
	"github.com/katalvlaran/degreeplot/render"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	// global flags
	configPath string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger *slog.Logger
	tracer *observability.TracerProvider
}

// setup loads configuration, applies global flag overrides and initializes
// logging and tracing. It runs after argument validation, so usage errors
// never touch the file system.
func (a *app) setup(ctx context.Context, levelSet, formatSet bool) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if levelSet {
		cfg.Log.Level = a.logLevel
	}
	if formatSet {
		cfg.Log.Format = a.logFormat
	}
	a.cfg = cfg

	// An unknown level or format still yields a working logger; the problem
	// is reported through Validate below.
	a.logger, _ = observability.NewLogger(cfg.Log.Level, cfg.Log.Format, a.stderr)
	for _, w := range cfg.Validate() {
		a.logger.Warn("config", "warning", w)
	}

	a.tracer, err = observability.InitTracing(ctx, &observability.TracingConfig{
		ServiceName:    cfg.Tracing.ServiceName,
		ServiceVersion: version,
		OTLPEndpoint:   cfg.Tracing.Endpoint,
		SampleRate:     cfg.Tracing.SampleRate,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}

	return nil
}

// pipeline builds the renderers from the loaded configuration.
func (a *app) pipeline() (*pipeline.Pipeline, error) {
	deg, err := a.cfg.Render.DegreeRender()
	if err != nil {
		return nil, err
	}
	den, err := a.cfg.Render.DensityRender()
	if err != nil {
		return nil, err
	}
	degR, err := render.New(deg)
	if err != nil {
		return nil, err
	}
	denR, err := render.New(den)
	if err != nil {
		return nil, err
	}

	return pipeline.New(degR, denR, a.logger)
}

// shutdown flushes pending spans.
func (a *app) shutdown(ctx context.Context) {
	if a.tracer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := a.tracer.Shutdown(ctx); err != nil && a.logger != nil {
		a.logger.Warn("tracing shutdown", "error", err)
	}
}
