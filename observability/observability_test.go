package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger("debug", "json", &buf)
	require.NoError(t, err)

	logger.Debug("degrees computed", "vertices", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "degrees computed", rec["msg"])
	require.EqualValues(t, 3, rec["vertices"])
}

func TestNewLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger("warn", "text", &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	require.Zero(t, buf.Len())
	logger.Warn("shown")
	require.Contains(t, buf.String(), "msg=shown")
}

func TestNewLogger_FallsBack(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger("info", "xml", &buf)
	require.Error(t, err)
	require.NotNil(t, logger)

	logger.Info("still logs")
	require.Contains(t, buf.String(), "still logs")
}

func TestDiscard(t *testing.T) {
	require.False(t, Discard().Enabled(context.Background(), slog.LevelError))
}

func TestInitTracing_NoEndpoint(t *testing.T) {
	ctx := context.Background()
	tp, err := InitTracing(ctx, &TracingConfig{ServiceName: "test"})
	require.NoError(t, err)
	require.NotNil(t, tp)
	require.NoError(t, tp.Shutdown(ctx), "a provider without exporter has nothing to flush")

	tp, err = InitTracing(ctx, nil)
	require.NoError(t, err)
	require.NotNil(t, tp)
}

func TestSampler(t *testing.T) {
	require.Equal(t, sdktrace.AlwaysSample().Description(), sampler(1).Description())
	require.Equal(t, sdktrace.NeverSample().Description(), sampler(0).Description())
	require.Equal(t, sdktrace.TraceIDRatioBased(0.5).Description(), sampler(0.5).Description())
}

func TestSpans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx, flow := StartFlowSpan(context.Background(), "degrees", "g.txt")
	_, stage := StartStageSpan(ctx, "read")
	RecordGraph(stage, 3, 4)
	RecordSamples(stage, 3)
	RecordArtifacts(stage, "g_degrees.txt")
	RecordError(stage, errors.New("boom"))
	RecordError(stage, nil)
	stage.End()
	flow.End()

	ended := sr.Ended()
	require.Len(t, ended, 2)
	require.Equal(t, "stage.read", ended[0].Name())
	require.Equal(t, "flow.degrees", ended[1].Name())
	require.Equal(t, ended[1].SpanContext().SpanID(), ended[0].Parent().SpanID())
	require.Equal(t, codes.Error, ended[0].Status().Code)
	require.Contains(t, ended[0].Attributes(), attribute.Int("graph.edges", 4))
	require.Contains(t, ended[1].Attributes(), attribute.String("degreeplot.input", "g.txt"))
}
