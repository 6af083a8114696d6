package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/RyanBlaney/sonido-fourier/algorithms/common"
)

// ErrInvalidConfig marks a configuration that failed validation
var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything the page server needs
type Config struct {
	Addr        string  `json:"addr"`
	Samples     int     `json:"samples"`
	DomainStart float64 `json:"domain_start"`
	DomainEnd   float64 `json:"domain_end"`

	Terms TermsConfig `json:"terms"`
	Chart ChartConfig `json:"chart"`
	Log   LogConfig   `json:"log"`
}

// TermsConfig bounds the "number of terms" control
type TermsConfig struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

// ChartConfig sizes the rendered chart in points
type ChartConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Format string  `json:"format"` // "svg", "png"
}

// LogConfig selects the logger backend and its minimum level
type LogConfig struct {
	Level  string `json:"level"`  // "debug", "info", "warn", "error"
	Format string `json:"format"` // "text", "json"
}

// DefaultConfig returns the page defaults: 1000 samples over
// [-π, π] and a 1..50 slider starting at 5.
func DefaultConfig() *Config {
	return &Config{
		Addr:        ":8080",
		Samples:     1000,
		DomainStart: -math.Pi,
		DomainEnd:   math.Pi,
		Terms: TermsConfig{
			Min:     1,
			Max:     50,
			Default: 5,
		},
		Chart: ChartConfig{
			Width:  640,
			Height: 480,
			Format: "svg",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a JSON config file on top of DefaultConfig. Fields missing from
// the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports the first invalid setting. Format names are lowercased in
// place so later comparisons can be exact.
func (c *Config) Validate() error {
	c.Chart.Format = strings.ToLower(strings.TrimSpace(c.Chart.Format))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))

	switch {
	case c.Samples < 2:
		return fmt.Errorf("%w: samples must be >= 2: %d", ErrInvalidConfig, c.Samples)
	case !(c.DomainEnd > c.DomainStart):
		return fmt.Errorf("%w: domain_end (%v) must exceed domain_start (%v)", ErrInvalidConfig, c.DomainEnd, c.DomainStart)
	case c.Terms.Min < 1:
		return fmt.Errorf("%w: terms.min must be >= 1: %d", ErrInvalidConfig, c.Terms.Min)
	case c.Terms.Max < c.Terms.Min:
		return fmt.Errorf("%w: terms.max (%d) below terms.min (%d)", ErrInvalidConfig, c.Terms.Max, c.Terms.Min)
	case c.Terms.Default < c.Terms.Min || c.Terms.Default > c.Terms.Max:
		return fmt.Errorf("%w: terms.default %d outside [%d, %d]", ErrInvalidConfig, c.Terms.Default, c.Terms.Min, c.Terms.Max)
	case c.Chart.Width <= 0 || c.Chart.Height <= 0:
		return fmt.Errorf("%w: chart size must be positive: %vx%v", ErrInvalidConfig, c.Chart.Width, c.Chart.Height)
	}

	switch c.Chart.Format {
	case "svg", "png":
	default:
		return fmt.Errorf("%w: unsupported chart format %q", ErrInvalidConfig, c.Chart.Format)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unsupported log format %q", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// ClampTerms keeps n inside the configured slider range
func (c *Config) ClampTerms(n int) int {
	return common.ClampInt(n, c.Terms.Min, c.Terms.Max)
}
