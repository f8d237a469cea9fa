package render_test

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/degreeplot/render"
)

// small shrinks a preset so tests encode tiny images quickly.
func small(cfg render.Config) render.Config {
	cfg.DPI = 40
	cfg.Width = 4
	cfg.Height = 3

	return cfg
}

type RenderSuite struct {
	suite.Suite
	dir string
}

func (s *RenderSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *RenderSuite) requirePNG(path string) {
	f, err := os.Open(path)
	s.Require().NoError(err)
	defer f.Close()

	img, err := png.Decode(f)
	s.Require().NoError(err, "%s is not a PNG", path)
	s.Require().Equal(4*40, img.Bounds().Dx())
	s.Require().Equal(3*40, img.Bounds().Dy())
}

func (s *RenderSuite) render(cfg render.Config, samples []float64) render.Artifacts {
	r, err := render.New(small(cfg))
	s.Require().NoError(err)

	base := filepath.Join(s.dir, "dist")
	art, err := r.Render(samples, base)
	s.Require().NoError(err)
	s.Require().Equal(base+render.LinearSuffix, art.Linear)
	s.Require().Equal(base+render.LogSuffix, art.Log)
	s.requirePNG(art.Linear)
	s.requirePNG(art.Log)

	return art
}

func (s *RenderSuite) TestDegreePreset() {
	s.render(render.DegreeConfig(), []float64{1, 2, 2, 3})
}

func (s *RenderSuite) TestDensityPreset() {
	s.render(render.DensityConfig(), []float64{0.4, 0.66, 1, 1, 0.5})
}

func (s *RenderSuite) TestAllEqualSamples() {
	s.render(render.DegreeConfig(), []float64{2, 2, 2, 2})
	s.render(render.DensityConfig(), []float64{1, 1, 1})
}

func (s *RenderSuite) TestSingleSample() {
	s.render(render.DegreeConfig(), []float64{5})
	s.render(render.DensityConfig(), []float64{0.5})
}

func (s *RenderSuite) TestNonPositiveSamplesWithLogBins() {
	s.render(render.DegreeConfig(), []float64{0, 0, 1, 4, -2})
}

func (s *RenderSuite) TestHeavyTail() {
	samples := make([]float64, 0, 2000)
	for i := 1; i <= 2000; i++ {
		samples = append(samples, float64(1+(i*i)%997))
	}
	s.render(render.DegreeConfig(), samples)
}

func (s *RenderSuite) TestLightStyle() {
	cfg := render.DensityConfig()
	cfg.Style = render.StyleLight
	s.render(cfg, []float64{0.1, 0.2, 0.3})
}

func (s *RenderSuite) TestEmptySamples() {
	r, err := render.New(small(render.DegreeConfig()))
	s.Require().NoError(err)

	base := filepath.Join(s.dir, "empty")
	_, err = r.Render(nil, base)
	s.Require().ErrorIs(err, render.ErrNoSamples)
	s.Require().NoFileExists(base + render.LinearSuffix)
}

func (s *RenderSuite) TestUnwritableDestination() {
	r, err := render.New(small(render.DegreeConfig()))
	s.Require().NoError(err)

	_, err = r.Render([]float64{1, 2}, filepath.Join(s.dir, "missing", "dist"))
	s.Require().Error(err)
}

func (s *RenderSuite) TestFailedLogVariantRemovesLinear() {
	r, err := render.New(small(render.DegreeConfig()))
	s.Require().NoError(err)

	base := filepath.Join(s.dir, "dist")
	// A directory where the log image belongs makes the second write fail.
	s.Require().NoError(os.Mkdir(base+render.LogSuffix, 0o700))

	_, err = r.Render([]float64{1, 2, 3}, base)
	s.Require().Error(err)
	s.Require().NoFileExists(base + render.LinearSuffix)
}

func (s *RenderSuite) TestWriteVariants() {
	r, err := render.New(small(render.DensityConfig()))
	s.Require().NoError(err)

	for _, write := range []func(*bytes.Buffer) error{
		func(b *bytes.Buffer) error { return r.WriteLinear(b, []float64{0.2, 0.9}) },
		func(b *bytes.Buffer) error { return r.WriteLog(b, []float64{0.2, 0.9}) },
	} {
		var buf bytes.Buffer
		s.Require().NoError(write(&buf))
		_, err = png.Decode(&buf)
		s.Require().NoError(err)
	}
}

func TestRenderSuite(t *testing.T) {
	suite.Run(t, new(RenderSuite))
}

func TestBin_CountsEverySample(t *testing.T) {
	inputs := [][]float64{
		{1, 2, 2, 3},
		{7},
		{3, 3, 3},
		{0, 1, 100, 1000},
		{-1.5, 0, 2.25},
	}
	for _, cfg := range []render.Config{render.DegreeConfig(), render.DensityConfig()} {
		r, err := render.New(cfg)
		require.NoError(t, err)
		for _, in := range inputs {
			bins, err := r.Bin(in)
			require.NoError(t, err)
			require.Len(t, bins, cfg.Bins)

			total := 0
			for i, b := range bins {
				require.Less(t, b.Min, b.Max)
				if i > 0 {
					require.Equal(t, bins[i-1].Max, b.Min, "bins must be contiguous")
				}
				total += b.Count
			}
			require.Equal(t, len(in), total, "input %v", in)
		}
	}
}

func TestBin_LinearEdges(t *testing.T) {
	cfg := render.DensityConfig()
	cfg.Bins = 4
	r, err := render.New(cfg)
	require.NoError(t, err)

	bins, err := r.Bin([]float64{0, 1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 1, 2}, []int{bins[0].Count, bins[1].Count, bins[2].Count, bins[3].Count})
	require.InDelta(t, 0, bins[0].Min, 1e-12)
	require.InDelta(t, 4, bins[3].Max, 1e-9)
}

func TestBin_LogRangeStartsAtOne(t *testing.T) {
	cfg := render.DegreeConfig()
	cfg.Bins = 3
	r, err := render.New(cfg)
	require.NoError(t, err)

	for _, in := range [][]float64{{1, 10, 99}, {3, 10, 99}} {
		bins, err := r.Bin(in)
		require.NoError(t, err)
		require.Equal(t, 1.0, bins[0].Min, "input %v", in)
		require.InDelta(t, 100, bins[2].Max, 1e-9)
		require.InDelta(t, bins[0].Max*bins[0].Max, bins[1].Max, 1e-6, "dividers are log-spaced")
		require.Equal(t, []int{1, 1, 1}, []int{bins[0].Count, bins[1].Count, bins[2].Count})
	}

	// Fractions below one pull the lower end down to the minimum.
	bins, err := r.Bin([]float64{0.5, 2})
	require.NoError(t, err)
	require.Equal(t, 0.5, bins[0].Min)
	require.InDelta(t, 3, bins[2].Max, 1e-9)
}

func TestBin_NonFiniteSamples(t *testing.T) {
	inputs := map[string][]float64{
		"nan":  {0.1, math.NaN(), 0.5},
		"+inf": {0.1, math.Inf(1), 0.5},
		"-inf": {math.Inf(-1), 0.1, 0.5},
	}
	dir := t.TempDir()
	for _, cfg := range []render.Config{render.DegreeConfig(), render.DensityConfig()} {
		r, err := render.New(small(cfg))
		require.NoError(t, err)
		for name, in := range inputs {
			_, err = r.Bin(in)
			require.ErrorIs(t, err, render.ErrNonFinite, name)

			base := filepath.Join(dir, name)
			_, err = r.Render(in, base)
			require.ErrorIs(t, err, render.ErrNonFinite, name)
			require.NoFileExists(t, base+render.LinearSuffix)

			var buf bytes.Buffer
			require.ErrorIs(t, r.Display(&buf, in), render.ErrNonFinite, name)
			require.Zero(t, buf.Len())
		}
	}
}

func TestConfigValidate(t *testing.T) {
	mutations := map[string]func(*render.Config){
		"bins":         func(c *render.Config) { c.Bins = 0 },
		"display bins": func(c *render.Config) { c.DisplayBins = 0 },
		"dpi":          func(c *render.Config) { c.DPI = 0 },
		"width":        func(c *render.Config) { c.Width = 0 },
		"height":       func(c *render.Config) { c.Height = -1 },
		"spacing":      func(c *render.Config) { c.Spacing = render.Spacing(9) },
		"style":        func(c *render.Config) { c.Style = "neon" },
	}
	for name, mutate := range mutations {
		cfg := render.DegreeConfig()
		mutate(&cfg)
		_, err := render.New(cfg)
		require.ErrorIs(t, err, render.ErrBadConfig, name)
	}
}

func TestParseStyle(t *testing.T) {
	st, err := render.ParseStyle("light")
	require.NoError(t, err)
	require.Equal(t, render.StyleLight, st)

	_, err = render.ParseStyle("solarized")
	require.ErrorIs(t, err, render.ErrBadConfig)
}

func TestDisplay(t *testing.T) {
	cfg := render.DegreeConfig()
	cfg.DisplayBins = 3
	r, err := render.New(cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Display(&buf, []float64{1, 2, 2, 3}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2+3)
	require.Equal(t, "Degree Distribution (4 samples)", lines[0])
	require.True(t, strings.HasSuffix(lines[len(lines)-1], "█"), "last bin holds the maximum")
	require.Contains(t, buf.String(), "]")

	require.ErrorIs(t, r.Display(&buf, nil), render.ErrNoSamples)
}
