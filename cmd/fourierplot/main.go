// Command fourierplot serves an interactive page comparing truncated Fourier
// series of a square wave with the exact waveform.
//
// Usage:
//
//	fourierplot [flags]
//
// Examples:
//
//	fourierplot                          serve on :8080
//	fourierplot -addr 127.0.0.1:9000     serve on another address
//	fourierplot -terms 12 -out out.svg   render one chart and exit
//	fourierplot -format png -out out.png render a PNG chart and exit
//	fourierplot -terms 3 -latex          print the partial sum in LaTeX
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/RyanBlaney/sonido-fourier/algorithms/common"
	"github.com/RyanBlaney/sonido-fourier/algorithms/series"
	"github.com/RyanBlaney/sonido-fourier/chart"
	"github.com/RyanBlaney/sonido-fourier/config"
	"github.com/RyanBlaney/sonido-fourier/formula"
	"github.com/RyanBlaney/sonido-fourier/logging"
	"github.com/RyanBlaney/sonido-fourier/server"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("fourierplot", flag.ContinueOnError)
	configPath := fs.String("config", "", "JSON config file")
	addr := fs.String("addr", "", "listen address (overrides config)")
	terms := fs.Int("terms", 0, "number of terms for -out/-latex (default from config)")
	samples := fs.Int("samples", 0, "samples over the domain (overrides config)")
	out := fs.String("out", "", "render one chart to this file and exit")
	format := fs.String("format", "", "chart format for -out: svg or png (overrides config)")
	printLatex := fs.Bool("latex", false, "print the partial-sum LaTeX and exit")
	logFormat := fs.String("log-format", "", "text or json (overrides config)")
	logLevel := fs.String("log-level", "", "debug, info, warn or error (overrides config)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: fourierplot [flags]\n\n")
		fmt.Fprintf(fs.Output(), "Serves a page plotting Fourier approximations of a square wave.\n\n")
		fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	applyOverrides(cfg, overrides{
		addr:        *addr,
		samples:     *samples,
		chartFormat: *format,
		logFormat:   *logFormat,
		logLevel:    *logLevel,
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	flush, err := setupLogging(cfg.Log)
	if err != nil {
		return err
	}
	defer flush()

	n := cfg.Terms.Default
	if *terms != 0 {
		n = cfg.ClampTerms(*terms)
	}

	switch {
	case *printLatex:
		fmt.Println(formula.PartialSum(n))
		return nil
	case *out != "":
		return renderFile(cfg, n, *out)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg).Run(ctx)
}

// overrides holds flag values; zero values leave the config untouched
type overrides struct {
	addr        string
	samples     int
	chartFormat string
	logFormat   string
	logLevel    string
}

func applyOverrides(cfg *config.Config, o overrides) {
	if o.addr != "" {
		cfg.Addr = o.addr
	}
	if o.samples > 0 {
		cfg.Samples = o.samples
	}
	if o.chartFormat != "" {
		cfg.Chart.Format = o.chartFormat
	}
	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
}

// setupLogging installs the global logger and returns a func that flushes it
// before exit.
func setupLogging(lc config.LogConfig) (func(), error) {
	level, err := logging.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(lc.Format, "json") {
		logger := logging.NewZapLogger(level)
		logging.SetGlobalLogger(logger)
		return func() { _ = logger.Sync() }, nil
	}

	logger := logging.NewDefaultLogger()
	logger.SetLevel(level)
	logging.SetGlobalLogger(logger)
	return func() {}, nil
}

func renderFile(cfg *config.Config, n int, path string) error {
	domain := common.Linspace(cfg.DomainStart, cfg.DomainEnd, cfg.Samples)
	c := series.NewApproximator(domain, cfg.Terms.Min, cfg.Terms.Max).Compare(n)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	opts := chart.Options{Width: cfg.Chart.Width, Height: cfg.Chart.Height, Format: cfg.Chart.Format}
	if err := chart.Render(f, c, opts); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	logging.Info("chart written", logging.Fields{"path": path, "n": c.Terms})
	return nil
}
