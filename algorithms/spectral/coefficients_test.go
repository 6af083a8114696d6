package spectral

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/RyanBlaney/sonido-fourier/algorithms/common"
	"github.com/RyanBlaney/sonido-fourier/algorithms/series"
)

func TestSeriesCoefficientsPureTones(t *testing.T) {
	start := -math.Pi
	x := common.PeriodicSpace(start, 64)
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 0.75*math.Sin(3*v) + 0.25*math.Cos(5*v)
	}

	coeffs, err := SeriesCoefficients(y, start, 8)
	if err != nil {
		t.Fatalf("SeriesCoefficients() error = %v", err)
	}
	if len(coeffs) != 8 {
		t.Fatalf("len = %d, want 8", len(coeffs))
	}

	for _, c := range coeffs {
		wantSin, wantCos := 0.0, 0.0
		switch c.K {
		case 3:
			wantSin = 0.75
		case 5:
			wantCos = 0.25
		}
		if math.Abs(c.Sine-wantSin) > 1e-9 || math.Abs(c.Cosine-wantCos) > 1e-9 {
			t.Fatalf("k=%d: sine=%v cosine=%v, want %v %v", c.K, c.Sine, c.Cosine, wantSin, wantCos)
		}
	}
}

func TestSeriesCoefficientsRecoverSquareWaveTerms(t *testing.T) {
	const n = 5
	start := -math.Pi
	x := common.PeriodicSpace(start, 1000)
	y := series.SquareWaveApproximation(x, n)

	coeffs, err := SeriesCoefficients(y, start, 20)
	if err != nil {
		t.Fatalf("SeriesCoefficients() error = %v", err)
	}

	want := make(map[int]float64)
	for _, h := range series.Terms(n) {
		want[h.K] = h.Coefficient
	}

	for _, c := range coeffs {
		if math.Abs(c.Sine-want[c.K]) > 1e-9 {
			t.Fatalf("k=%d: sine = %v, want %v", c.K, c.Sine, want[c.K])
		}
		if math.Abs(c.Cosine) > 1e-9 {
			t.Fatalf("k=%d: cosine = %v, want 0", c.K, c.Cosine)
		}
	}
}

func TestSeriesCoefficientsAliasing(t *testing.T) {
	_, err := SeriesCoefficients(make([]float64, 16), 0, 8)
	if !errors.Is(err, ErrAliasing) {
		t.Fatalf("err = %v, want ErrAliasing", err)
	}
}

func TestSeriesCoefficientsEmpty(t *testing.T) {
	if _, err := SeriesCoefficients(nil, 0, 1); err == nil {
		t.Fatal("expected error for empty input")
	}

	coeffs, err := SeriesCoefficients([]float64{1, 2, 3}, 0, 0)
	if err != nil || len(coeffs) != 0 {
		t.Fatalf("maxHarmonic=0: coeffs=%v err=%v, want empty and nil", coeffs, err)
	}
}

func TestFFTCompute(t *testing.T) {
	f := NewFFT()
	in := []float64{1, -2, 0.5, 3, 0, -1}

	out := f.Compute(in)
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	// bin 0 is the plain sum of the samples
	if math.Abs(real(out[0])-1.5) > 1e-12 || math.Abs(imag(out[0])) > 1e-12 {
		t.Fatalf("DC bin = %v, want 1.5", out[0])
	}
	// real input gives a conjugate-symmetric spectrum
	if d := out[1] - cmplx.Conj(out[5]); cmplx.Abs(d) > 1e-12 {
		t.Fatalf("bin 1 = %v, bin 5 = %v, want conjugates", out[1], out[5])
	}

	if got := f.Compute(nil); len(got) != 0 {
		t.Fatalf("Compute(nil) len = %d, want 0", len(got))
	}
}
