package server

import (
	"bytes"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/RyanBlaney/sonido-fourier/algorithms/common"
	"github.com/RyanBlaney/sonido-fourier/algorithms/series"
	"github.com/RyanBlaney/sonido-fourier/algorithms/spectral"
	"github.com/RyanBlaney/sonido-fourier/algorithms/stats"
	"github.com/RyanBlaney/sonido-fourier/chart"
	"github.com/RyanBlaney/sonido-fourier/formula"
	"github.com/RyanBlaney/sonido-fourier/logging"
)

// report is everything derived from one term count. It is rebuilt on every
// request and never cached.
type report struct {
	Comparison series.Comparison
	Latex      string
	Title      string
	Metrics    stats.ApproximationError
	Measured   []spectral.Coefficient
}

func (s *Server) buildReport(n int) report {
	c := s.approx.Compare(n)

	r := report{
		Comparison: c,
		Latex:      formula.PartialSum(c.Terms),
		Title:      formula.Title(c.Terms),
	}

	metrics, err := stats.CompareToReference(c.Approximation, c.Reference)
	if err != nil {
		s.logger.Error(err, "approximation metrics failed", logging.Fields{"n": c.Terms})
	}
	r.Metrics = metrics

	r.Measured = s.measureHarmonics(c.Terms)
	return r
}

// measureHarmonics samples one full period and recovers the sine
// coefficients with an FFT, as a check on the closed-form Terms.
func (s *Server) measureHarmonics(n int) []spectral.Coefficient {
	samples := max(s.cfg.Samples, 4*n+2)
	x := common.PeriodicSpace(-math.Pi, samples)

	coeffs, err := spectral.SeriesCoefficients(series.SquareWaveApproximation(x, n), -math.Pi, 2*n)
	if err != nil {
		s.logger.Warn("harmonic measurement skipped", logging.Fields{"n": n, "error": err.Error()})
		return nil
	}
	return coeffs
}

func (s *Server) renderSVG(c series.Comparison) (string, error) {
	opts := s.chartOptions("svg")

	var buf bytes.Buffer
	if err := chart.Render(&buf, c, opts); err != nil {
		return "", err
	}

	// drop the XML prolog so the document can be inlined into HTML
	svg := buf.String()
	if i := strings.Index(svg, "<svg"); i > 0 {
		svg = svg[i:]
	}
	return svg, nil
}

// termsFromQuery reads ?n= leniently: missing or malformed values fall back
// to the configured default and everything else is clamped.
func (s *Server) termsFromQuery(r *http.Request) int {
	raw := r.URL.Query().Get("n")
	if raw == "" {
		return s.cfg.Terms.Default
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		s.logger.Debug("invalid term count, using default", logging.Fields{"n": raw})
		return s.cfg.Terms.Default
	}
	return s.cfg.ClampTerms(n)
}
