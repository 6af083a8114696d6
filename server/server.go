package server

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/klauspost/compress/gzhttp"

	"github.com/RyanBlaney/sonido-fourier/algorithms/common"
	"github.com/RyanBlaney/sonido-fourier/algorithms/series"
	"github.com/RyanBlaney/sonido-fourier/algorithms/spectral"
	"github.com/RyanBlaney/sonido-fourier/algorithms/stats"
	"github.com/RyanBlaney/sonido-fourier/chart"
	"github.com/RyanBlaney/sonido-fourier/config"
	"github.com/RyanBlaney/sonido-fourier/formula"
	"github.com/RyanBlaney/sonido-fourier/logging"
)

const shutdownTimeout = 5 * time.Second

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Server serves the interactive page, the chart and the JSON series API
type Server struct {
	cfg    *config.Config
	approx *series.Approximator
	logger logging.Logger
}

// New builds a server from a validated config
func New(cfg *config.Config) *Server {
	domain := common.Linspace(cfg.DomainStart, cfg.DomainEnd, cfg.Samples)

	return &Server{
		cfg:    cfg,
		approx: series.NewApproximator(domain, cfg.Terms.Min, cfg.Terms.Max),
		logger: logging.WithFields(logging.Fields{
			"component": "server",
			"samples":   cfg.Samples,
		}),
	}
}

// Handler returns the routed handler. Everything except the websocket is
// gzip-compressed when the client accepts it.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /{$}", gzhttp.GzipHandler(http.HandlerFunc(s.handleIndex)))
	mux.Handle("GET /plot.svg", gzhttp.GzipHandler(s.handlePlot("svg")))
	mux.Handle("GET /plot.png", gzhttp.GzipHandler(s.handlePlot("png")))
	mux.Handle("GET /api/series", gzhttp.GzipHandler(http.HandlerFunc(s.handleSeries)))
	mux.HandleFunc("GET /ws", s.handleWS)

	return s.logRequests(mux)
}

// Run listens on the configured address until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve handles connections on ln and shuts down gracefully once ctx is done
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		shutdownErr <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("listening", logging.Fields{"address": ln.Addr().String()})

	if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdownErr; err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("stopped")
	return nil
}

func (s *Server) chartOptions(format string) chart.Options {
	return chart.Options{
		Width:  s.cfg.Chart.Width,
		Height: s.cfg.Chart.Height,
		Format: format,
	}
}

type indexData struct {
	N              int
	Min            int
	Max            int
	Latex          string
	InfiniteSeries string
	Title          string
	Chart          template.HTML
	Metrics        stats.ApproximationError
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	rep := s.buildReport(s.termsFromQuery(r))

	svg, err := s.renderSVG(rep.Comparison)
	if err != nil {
		s.logger.Error(err, "render chart failed", logging.Fields{"n": rep.Comparison.Terms})
		http.Error(w, "render chart failed", http.StatusInternalServerError)
		return
	}

	data := indexData{
		N:              rep.Comparison.Terms,
		Min:            s.cfg.Terms.Min,
		Max:            s.cfg.Terms.Max,
		Latex:          rep.Latex,
		InfiniteSeries: formula.InfiniteSeries,
		Title:          rep.Title,
		Chart:          template.HTML(svg), // produced by chart.Render, not user input
		Metrics:        rep.Metrics,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		s.logger.Error(err, "execute index template failed")
	}
}

// handlePlot serves the chart in the format named by the route
func (s *Server) handlePlot(format string) http.Handler {
	opts := s.chartOptions(format)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := s.termsFromQuery(r)

		var buf bytes.Buffer
		if err := chart.Render(&buf, s.approx.Compare(n), opts); err != nil {
			s.logger.Error(err, "render chart failed", logging.Fields{"n": n, "format": format})
			http.Error(w, "render chart failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", opts.ContentType())
		_, _ = buf.WriteTo(w)
	})
}

// seriesResponse is the JSON body of /api/series
type seriesResponse struct {
	N                 int                      `json:"n"`
	Latex             string                   `json:"latex"`
	InfiniteSeries    string                   `json:"infinite_series"`
	Title             string                   `json:"title"`
	Domain            []float64                `json:"domain"`
	Approximation     []float64                `json:"approximation"`
	Reference         []float64                `json:"reference"`
	Harmonics         []series.Harmonic        `json:"harmonics"`
	MeasuredHarmonics []spectral.Coefficient   `json:"measured_harmonics,omitempty"`
	Metrics           stats.ApproximationError `json:"metrics"`
}

func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	rep := s.buildReport(s.termsFromQuery(r))
	c := rep.Comparison

	resp := seriesResponse{
		N:                 c.Terms,
		Latex:             rep.Latex,
		InfiniteSeries:    formula.InfiniteSeries,
		Title:             rep.Title,
		Domain:            c.Domain,
		Approximation:     c.Approximation,
		Reference:         c.Reference,
		Harmonics:         c.Harmonics,
		MeasuredHarmonics: rep.Measured,
		Metrics:           rep.Metrics,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error(err, "encode series response failed")
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request", logging.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		})
	})
}
