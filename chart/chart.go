// Package chart renders a series.Comparison as an overlaid line chart using
// gonum/plot.
package chart

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/RyanBlaney/sonido-fourier/algorithms/series"
	"github.com/RyanBlaney/sonido-fourier/formula"
)

var (
	approximationColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	referenceColor     = color.RGBA{G: 0x80, A: 0xff}
	axisColor          = color.Black
)

// Options sizes the chart (in points) and picks the output format
type Options struct {
	Width  float64
	Height float64
	Format string // "svg" or "png"
}

// DefaultOptions returns a 640x480 point SVG
func DefaultOptions() Options {
	return Options{Width: 640, Height: 480, Format: "svg"}
}

// ContentType returns the MIME type for the configured format
func (o Options) ContentType() string {
	if o.format() == "png" {
		return "image/png"
	}
	return "image/svg+xml"
}

func (o Options) format() string {
	f := strings.ToLower(strings.TrimSpace(o.Format))
	if f == "" {
		return "svg"
	}
	return f
}

// Render draws the approximation and the reference waveform over the shared
// domain and writes the encoded chart to w.
func Render(w io.Writer, c series.Comparison, opts Options) error {
	p, err := newPlot(c)
	if err != nil {
		return err
	}

	if opts.Width <= 0 || opts.Height <= 0 {
		d := DefaultOptions()
		opts.Width, opts.Height = d.Width, d.Height
	}

	wt, err := p.WriterTo(vg.Points(opts.Width), vg.Points(opts.Height), opts.format())
	if err != nil {
		return fmt.Errorf("chart: encode %s: %w", opts.format(), err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("chart: write: %w", err)
	}

	return nil
}

func newPlot(c series.Comparison) (*plot.Plot, error) {
	if len(c.Domain) == 0 {
		return nil, fmt.Errorf("chart: empty domain")
	}
	if len(c.Approximation) != len(c.Domain) || len(c.Reference) != len(c.Domain) {
		return nil, fmt.Errorf("chart: domain has %d samples, approximation %d, reference %d",
			len(c.Domain), len(c.Approximation), len(c.Reference))
	}

	p := plot.New()
	p.Title.Text = formula.Title(c.Terms)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	approx, err := line(c.Domain, c.Approximation, approximationColor, 1.5)
	if err != nil {
		return nil, fmt.Errorf("chart: approximation: %w", err)
	}
	ref, err := line(c.Domain, c.Reference, referenceColor, 1.5)
	if err != nil {
		return nil, fmt.Errorf("chart: reference: %w", err)
	}

	xMin, xMax := floats.Min(c.Domain), floats.Max(c.Domain)
	yMin := min(floats.Min(c.Approximation), floats.Min(c.Reference))
	yMax := max(floats.Max(c.Approximation), floats.Max(c.Reference))

	hAxis, err := line([]float64{xMin, xMax}, []float64{0, 0}, axisColor, 0.5)
	if err != nil {
		return nil, fmt.Errorf("chart: x axis: %w", err)
	}
	vAxis, err := line([]float64{0, 0}, []float64{yMin, yMax}, axisColor, 0.5)
	if err != nil {
		return nil, fmt.Errorf("chart: y axis: %w", err)
	}

	p.Add(hAxis, vAxis, approx, ref)
	p.Legend.Add("Fourier Approximation", approx)
	p.Legend.Add("Actual Waveform", ref)
	p.Legend.Top = true

	return p, nil
}

func line(xs, ys []float64, c color.Color, width float64) (*plotter.Line, error) {
	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X = xs[i]
		xys[i].Y = ys[i]
	}

	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = vg.Points(width)

	return l, nil
}
