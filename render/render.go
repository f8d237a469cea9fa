// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/katalvlaran/degreeplot/textio"
)

// Artifact file suffixes appended to the caller's base name.
const (
	LinearSuffix = "_linear.png"
	LogSuffix    = "_log.png"
)

// Renderer draws histograms for one Config.
type Renderer struct {
	cfg Config
}

// New validates cfg and returns a Renderer for it.
func New(cfg Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Renderer{cfg: cfg}, nil
}

// Config returns the renderer's configuration.
func (r *Renderer) Config() Config { return r.cfg }

// Artifacts names the files written by Render.
type Artifacts struct {
	Linear string
	Log    string
}

// Render writes the linear and log histograms of samples to
// base+LinearSuffix and base+LogSuffix.
//
// Errors:
//   - ErrNoSamples: empty samples; nothing is written.
//   - ErrNonFinite: a sample is NaN or ±Inf; nothing is written.
//   - *textio.IOError: a file could not be created or written; a linear
//     image already written is removed.
func (r *Renderer) Render(samples []float64, base string) (Artifacts, error) {
	b, err := binSamples(samples, r.cfg.Bins, r.cfg.Spacing)
	if err != nil {
		return Artifacts{}, err
	}

	out := Artifacts{Linear: base + LinearSuffix, Log: base + LogSuffix}
	if err = r.writePNG(out.Linear, r.plot(b, false)); err != nil {
		return Artifacts{}, err
	}
	if err = r.writePNG(out.Log, r.plot(b, true)); err != nil {
		// Both variants or neither.
		_ = os.Remove(out.Linear)
		return Artifacts{}, err
	}

	return out, nil
}

// WriteLinear encodes the linear variant to w.
func (r *Renderer) WriteLinear(w io.Writer, samples []float64) error {
	return r.write(w, samples, false)
}

// WriteLog encodes the log variant to w.
func (r *Renderer) WriteLog(w io.Writer, samples []float64) error {
	return r.write(w, samples, true)
}

func (r *Renderer) write(w io.Writer, samples []float64, logScale bool) error {
	b, err := binSamples(samples, r.cfg.Bins, r.cfg.Spacing)
	if err != nil {
		return err
	}

	return r.encode(w, r.plot(b, logScale))
}

// plot builds the histogram figure. The log variant uses a log y axis and,
// when the bins are log-spaced, a log x axis.
func (r *Renderer) plot(b binning, logScale bool) *plot.Plot {
	fg, bg := r.palette()

	p := plot.New()
	p.BackgroundColor = bg
	p.Title.TextStyle.Color = fg
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle.Color = fg
		ax.LineStyle.Color = fg
		ax.Tick.Label.Color = fg
		ax.Tick.LineStyle.Color = fg
	}

	hbins := make([]plotter.HistogramBin, len(b.bins))
	for i, bin := range b.bins {
		hbins[i] = plotter.HistogramBin{Min: bin.Min, Max: bin.Max, Weight: float64(bin.Count)}
	}
	h := &plotter.Histogram{
		Bins:      hbins,
		Width:     hbins[0].Max - hbins[0].Min,
		FillColor: barColor,
		LineStyle: draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)},
		LogY:      logScale,
	}
	p.Add(h)

	if !logScale {
		p.Title.Text = r.cfg.Title + " (Linear Scale)"
		p.X.Label.Text = r.cfg.XLabel
		p.Y.Label.Text = r.cfg.YLabel
		return p
	}

	p.Title.Text = r.cfg.Title + " (Log Scale)"
	p.X.Label.Text = orDefault(r.cfg.LogXLabel, r.cfg.XLabel)
	p.Y.Label.Text = orDefault(r.cfg.LogYLabel, r.cfg.YLabel)

	// Counts below one are not drawn on a log axis; keep the range positive
	// and non-degenerate even when every bar has the same height.
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Min = 0.5
	p.Y.Max = math.Max(2, 2*float64(maxCount(b.bins)))

	if b.logX {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	return p
}

func (r *Renderer) palette() (fg, bg color.Color) {
	if r.cfg.Style == StyleLight {
		return color.Black, color.White
	}

	return color.White, color.Black
}

// barColor is the default bar fill.
var barColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

func (r *Renderer) canvas() *vgimg.Canvas {
	return vgimg.NewWith(
		vgimg.UseWH(vg.Length(r.cfg.Width)*vg.Inch, vg.Length(r.cfg.Height)*vg.Inch),
		vgimg.UseDPI(r.cfg.DPI),
	)
}

func (r *Renderer) encode(w io.Writer, p *plot.Plot) error {
	c := r.canvas()
	p.Draw(draw.New(c))
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}

	return nil
}

func (r *Renderer) writePNG(path string, p *plot.Plot) error {
	return textio.CreateFile(path, func(w io.Writer) error {
		return r.encode(w, p)
	})
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}

	return s
}
