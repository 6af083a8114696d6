package chart

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/RyanBlaney/sonido-fourier/algorithms/common"
	"github.com/RyanBlaney/sonido-fourier/algorithms/series"
)

func testComparison(n int) series.Comparison {
	a := series.NewApproximator(common.Linspace(-math.Pi, math.Pi, 200), 1, 50)
	return a.Compare(n)
}

func TestRenderSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, testComparison(5), DefaultOptions()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Fatalf("output is not SVG: %.80q", out)
	}
	for _, want := range []string{
		"Fourier Series Approximation with n = 5 for Square Wave",
		"Fourier Approximation",
		"Actual Waveform",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestRenderPNG(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{Width: 320, Height: 240, Format: "PNG"}
	if err := Render(&buf, testComparison(3), opts); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Fatalf("output is not PNG: % x", buf.Bytes()[:8])
	}
	if opts.ContentType() != "image/png" {
		t.Fatalf("ContentType = %q", opts.ContentType())
	}
}

func TestRenderRejectsNonFinite(t *testing.T) {
	c := testComparison(2)
	c.Approximation[10] = math.NaN()

	if err := Render(&bytes.Buffer{}, c, DefaultOptions()); err == nil {
		t.Fatal("expected error for NaN sample")
	}
}

func TestRenderRejectsMismatchedLengths(t *testing.T) {
	c := testComparison(2)
	c.Reference = c.Reference[:5]

	if err := Render(&bytes.Buffer{}, c, DefaultOptions()); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
	if err := Render(&bytes.Buffer{}, series.Comparison{}, DefaultOptions()); err == nil {
		t.Fatal("expected error for empty domain")
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	if err := Render(&bytes.Buffer{}, testComparison(1), Options{Width: 100, Height: 100, Format: "bmp"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
