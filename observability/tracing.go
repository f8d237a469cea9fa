// SPDX-License-Identifier: MIT

package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope of every degreeplot span.
const TracerName = "github.com/katalvlaran/degreeplot"

// TracingConfig configures OpenTelemetry tracing.
type TracingConfig struct {
	ServiceName    string
	ServiceVersion string

	// OTLPEndpoint is the OTLP gRPC endpoint (e.g. "localhost:4317").
	// If empty, tracing is disabled.
	OTLPEndpoint string

	// SampleRate is the trace sampling rate in [0, 1].
	SampleRate float64
}

// DefaultTracingConfig returns a disabled tracing configuration.
func DefaultTracingConfig() *TracingConfig {
	return &TracingConfig{
		ServiceName:    "degreeplot",
		ServiceVersion: "0.1.0",
		SampleRate:     1.0,
	}
}

// TracerProvider wraps the OpenTelemetry tracer provider.
// Spans are started through the global provider under TracerName.
type TracerProvider struct {
	provider *sdktrace.TracerProvider
}

// InitTracing initializes OpenTelemetry tracing and installs the provider
// globally. It returns a no-op provider if OTLPEndpoint is empty.
func InitTracing(ctx context.Context, cfg *TracingConfig) (*TracerProvider, error) {
	if cfg == nil {
		cfg = DefaultTracingConfig()
	}
	if cfg.OTLPEndpoint == "" {
		return &TracerProvider{}, nil
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("create OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithSchemaURL(semconv.SchemaURL),
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(cfg.SampleRate)),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &TracerProvider{provider: provider}, nil
}

func sampler(rate float64) sdktrace.Sampler {
	switch {
	case rate >= 1.0:
		return sdktrace.AlwaysSample()
	case rate <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.TraceIDRatioBased(rate)
	}
}

// Shutdown flushes pending spans and stops the exporter.
func (tp *TracerProvider) Shutdown(ctx context.Context) error {
	if tp.provider != nil {
		return tp.provider.Shutdown(ctx)
	}
	return nil
}

// Span kinds recorded under "degreeplot.span.kind".
const (
	SpanKindFlow  = "flow"
	SpanKindStage = "stage"
)

// StartFlowSpan starts the root span of one CLI flow (degrees, plot-degrees,
// plot-densities) over input.
func StartFlowSpan(ctx context.Context, flow, input string) (context.Context, trace.Span) {
	return otel.Tracer(TracerName).Start(ctx, "flow."+flow,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("degreeplot.span.kind", SpanKindFlow),
			attribute.String("degreeplot.input", input),
		),
	)
}

// StartStageSpan starts a span for one stage of a flow (read, degrees,
// render, ...).
func StartStageSpan(ctx context.Context, stage string) (context.Context, trace.Span) {
	return otel.Tracer(TracerName).Start(ctx, "stage."+stage,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("degreeplot.span.kind", SpanKindStage),
		),
	)
}

// RecordGraph records graph size on a span.
func RecordGraph(span trace.Span, vertices, edges int) {
	span.SetAttributes(
		attribute.Int("graph.vertices", vertices),
		attribute.Int("graph.edges", edges),
	)
}

// RecordSamples records the number of samples handed to the renderer.
func RecordSamples(span trace.Span, n int) {
	span.SetAttributes(attribute.Int("render.samples", n))
}

// RecordArtifacts records the files written by a stage.
func RecordArtifacts(span trace.Span, paths ...string) {
	span.SetAttributes(attribute.StringSlice("degreeplot.artifacts", paths))
}

// RecordError records an error on a span.
func RecordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
