package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degreeplot/render"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Defaults(), *cfg)
	require.Empty(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "degreeplot.yaml")
	yaml := `
log:
  level: debug
  format: json
render:
  style: light
  dpi: 150
  degree_bins: 30
tracing:
  endpoint: localhost:4317
  sample_rate: 0.25
unrelated: ignored
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, "light", cfg.Render.Style)
	require.Equal(t, 150, cfg.Render.DPI)
	require.Equal(t, 30, cfg.Render.DegreeBins)
	require.Equal(t, 70, cfg.Render.DensityBins, "unset keys keep defaults")
	require.Equal(t, "localhost:4317", cfg.Tracing.Endpoint)
	require.InDelta(t, 0.25, cfg.Tracing.SampleRate, 1e-12)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "degreeplot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("render:\n  dpi: 150\n"), 0o600))
	t.Setenv("DEGREEPLOT_RENDER_DPI", "300")
	t.Setenv("DEGREEPLOT_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 300, cfg.Render.DPI)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config")
}

func TestValidate_Warnings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "log level"},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, "log format"},
		{"style", func(c *Config) { c.Render.Style = "neon" }, "render style"},
		{"dpi", func(c *Config) { c.Render.DPI = 10 }, "dpi"},
		{"bins", func(c *Config) { c.Render.DisplayBins = 0 }, "bin counts"},
		{"sample rate", func(c *Config) { c.Tracing.SampleRate = 2 }, "sample_rate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			warnings := cfg.Validate()
			require.Len(t, warnings, 1)
			require.True(t, strings.Contains(warnings[0], tt.want), warnings[0])
		})
	}
}

func TestRenderConfig_Presets(t *testing.T) {
	rc := Defaults().Render
	rc.Style = "light"
	rc.DPI = 100
	rc.DegreeBins = 10
	rc.DensityBins = 12

	deg, err := rc.DegreeRender()
	require.NoError(t, err)
	require.Equal(t, render.LogBins, deg.Spacing)
	require.Equal(t, render.StyleLight, deg.Style)
	require.Equal(t, 100, deg.DPI)
	require.Equal(t, 10, deg.Bins)

	den, err := rc.DensityRender()
	require.NoError(t, err)
	require.Equal(t, render.LinearBins, den.Spacing)
	require.Equal(t, 12, den.Bins)

	rc.Style = "neon"
	_, err = rc.DegreeRender()
	require.ErrorIs(t, err, render.ErrBadConfig)

	rc.Style = "dark"
	rc.Width = 0
	_, err = rc.DensityRender()
	require.ErrorIs(t, err, render.ErrBadConfig)
}
