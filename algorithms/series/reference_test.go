package series

import (
	"math"
	"testing"

	"github.com/RyanBlaney/sonido-fourier/algorithms/common"
)

func TestActualSquareWave(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"zero crossing", 0, 0},
		{"positive half", math.Pi / 2, 1},
		{"just after zero", 1e-9, 1},
		{"just before pi", math.Pi - 1e-6, 1},
		{"negative half", -math.Pi / 2, -1},
		{"just before zero", -1e-9, -1},
		{"just after -pi", -math.Pi + 1e-6, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ActualSquareWave([]float64{tt.x})[0]
			if got != tt.want {
				t.Fatalf("ActualSquareWave(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestActualSquareWaveOnlyUnitValues(t *testing.T) {
	for i, v := range ActualSquareWave(common.Linspace(-math.Pi, math.Pi, 1000)) {
		if v != 1 && v != -1 && v != 0 {
			t.Fatalf("sample %d = %v, want -1, 0 or 1", i, v)
		}
	}
}

func TestActualTriangularWavePeriodic(t *testing.T) {
	x := common.Linspace(-3*math.Pi, 3*math.Pi, 601)
	shifted := make([]float64, len(x))
	for i, v := range x {
		shifted[i] = v + 2*math.Pi
	}

	requireNearlyEqual(t, ActualTriangularWave(shifted), ActualTriangularWave(x), 1e-9)
}

func TestActualTriangularWaveRange(t *testing.T) {
	y := ActualTriangularWave([]float64{math.Pi / 2, -math.Pi / 2, 0})
	requireNearlyEqual(t, y, []float64{-1, 1, 0}, 1e-12)

	for i, v := range ActualTriangularWave(common.Linspace(-math.Pi, math.Pi, 1000)) {
		if v < -1-1e-12 || v > 1+1e-12 {
			t.Fatalf("sample %d = %v outside [-1, 1]", i, v)
		}
	}
}

func TestCustomSawtoothResetPoint(t *testing.T) {
	if got := CustomSawtooth([]float64{0}, 1)[0]; got != 0.5 {
		t.Fatalf("CustomSawtooth(0, width=1) = %v, want 0.5", got)
	}
}

func TestCustomSawtoothHalfWidth(t *testing.T) {
	got := CustomSawtooth([]float64{1, 4, -1}, 0.5)
	want := []float64{
		1/math.Pi + 0.5,
		(4/math.Pi - 1) - 0.5,
		-1/math.Pi - 0.5,
	}
	requireNearlyEqual(t, got, want, 1e-12)
}

func TestCustomSawtoothClampsWidth(t *testing.T) {
	x := common.Linspace(-math.Pi, math.Pi, 64)
	requireNearlyEqual(t, CustomSawtooth(x, 3), CustomSawtooth(x, 1), 0)
}

// Width zero is not guarded and divides by zero. The output is expected to be
// non-finite rather than a clamped value.
func TestCustomSawtoothZeroWidthIsNonFinite(t *testing.T) {
	for _, width := range []float64{0, -0.5} {
		y := CustomSawtooth([]float64{-1, 0, 0.5, 2}, width)
		for i, v := range y {
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				t.Fatalf("width=%v sample %d = %v, want NaN or Inf", width, i, v)
			}
		}
	}
}
