// SPDX-License-Identifier: MIT

// Package config loads degreeplot settings from an optional YAML file and
// DEGREEPLOT_* environment variables. Command-line flags are applied on top
// by the caller.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/degreeplot/render"
)

// EnvPrefix is prepended to every environment key: log.level → DEGREEPLOT_LOG_LEVEL.
const EnvPrefix = "DEGREEPLOT"

// Config holds all application configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Render  RenderConfig  `mapstructure:"render"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text or json
}

// RenderConfig overrides the image settings of the histogram presets.
type RenderConfig struct {
	Style       string  `mapstructure:"style"`
	DPI         int     `mapstructure:"dpi"`
	Width       float64 `mapstructure:"width"`
	Height      float64 `mapstructure:"height"`
	DegreeBins  int     `mapstructure:"degree_bins"`
	DensityBins int     `mapstructure:"density_bins"`
	DisplayBins int     `mapstructure:"display_bins"`
}

type TracingConfig struct {
	// Endpoint is the OTLP gRPC endpoint; tracing is disabled when empty.
	Endpoint    string  `mapstructure:"endpoint"`
	ServiceName string  `mapstructure:"service_name"`
	SampleRate  float64 `mapstructure:"sample_rate"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	deg := render.DegreeConfig()

	return Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Render: RenderConfig{
			Style:       string(deg.Style),
			DPI:         deg.DPI,
			Width:       deg.Width,
			Height:      deg.Height,
			DegreeBins:  deg.Bins,
			DensityBins: render.DensityConfig().Bins,
			DisplayBins: deg.DisplayBins,
		},
		Tracing: TracingConfig{ServiceName: "degreeplot", SampleRate: 1.0},
	}
}

// Load reads configuration from path (skipped when empty) and the environment.
// Unknown keys in the file are ignored.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Defaults())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can resolve it on Unmarshal.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetDefault("render.style", d.Render.Style)
	v.SetDefault("render.dpi", d.Render.DPI)
	v.SetDefault("render.width", d.Render.Width)
	v.SetDefault("render.height", d.Render.Height)
	v.SetDefault("render.degree_bins", d.Render.DegreeBins)
	v.SetDefault("render.density_bins", d.Render.DensityBins)
	v.SetDefault("render.display_bins", d.Render.DisplayBins)

	v.SetDefault("tracing.endpoint", d.Tracing.Endpoint)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
}

// Validate checks configuration for issues and returns warnings.
// Warnings never stop a run; render settings are re-checked by render.New.
func (c *Config) Validate() []string {
	var warnings []string

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		warnings = append(warnings, fmt.Sprintf("log level '%s' is unknown; using info", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		warnings = append(warnings, fmt.Sprintf("log format '%s' is unknown; using text", c.Log.Format))
	}

	if _, err := render.ParseStyle(c.Render.Style); err != nil {
		warnings = append(warnings, fmt.Sprintf("render style '%s' is unknown", c.Render.Style))
	}
	if c.Render.DPI < 72 || c.Render.DPI > 1200 {
		warnings = append(warnings, fmt.Sprintf("render dpi %d is outside recommended range [72, 1200]", c.Render.DPI))
	}
	if c.Render.DegreeBins < 1 || c.Render.DensityBins < 1 || c.Render.DisplayBins < 1 {
		warnings = append(warnings, "render bin counts must be positive")
	}

	if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1.0 {
		warnings = append(warnings, fmt.Sprintf("tracing sample_rate %.2f is outside [0.0, 1.0]", c.Tracing.SampleRate))
	}

	return warnings
}

// DegreeRender returns the degree preset with the image settings applied.
func (c RenderConfig) DegreeRender() (render.Config, error) {
	return c.apply(render.DegreeConfig(), c.DegreeBins)
}

// DensityRender returns the density preset with the image settings applied.
func (c RenderConfig) DensityRender() (render.Config, error) {
	return c.apply(render.DensityConfig(), c.DensityBins)
}

func (c RenderConfig) apply(base render.Config, bins int) (render.Config, error) {
	style, err := render.ParseStyle(c.Style)
	if err != nil {
		return render.Config{}, err
	}
	base.Style = style
	base.DPI = c.DPI
	base.Width = c.Width
	base.Height = c.Height
	base.Bins = bins
	base.DisplayBins = c.DisplayBins

	return base, base.Validate()
}
