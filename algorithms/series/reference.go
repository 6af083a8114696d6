package series

import (
	"math"

	"github.com/RyanBlaney/sonido-fourier/algorithms/common"
)

// ActualSquareWave returns sign(sin x) for each sample: +1 on (0, π), -1 on
// (-π, 0) and 0 exactly where sin x is zero.
func ActualSquareWave(domain []float64) []float64 {
	out := make([]float64, len(domain))
	for i, x := range domain {
		out[i] = common.Sign(math.Sin(x))
	}
	return out
}

// ActualTriangularWave returns the unit triangle wave in [-1, 1] with period
// 2π. It bottoms out at x = π/2 and peaks at x = -π/2.
func ActualTriangularWave(domain []float64) []float64 {
	out := make([]float64, len(domain))
	for i, x := range domain {
		u := (x - math.Pi/2) / (2 * math.Pi)
		out[i] = 2*math.Abs(2*(u-math.Floor(u+0.5))) - 1
	}
	return out
}

// CustomSawtooth generates a sawtooth with a variable reset point. width is
// clamped to [0, 1]; samples whose phase (t mod 2π) falls before 2π·width are
// lifted by 0.5, the rest lowered by 0.5.
//
// width == 0 is accepted and divides by zero: every sample comes out NaN or
// ±Inf.
func CustomSawtooth(domain []float64, width float64) []float64 {
	width = common.Clamp(width, 0, 1)
	period := 2 * math.Pi * width

	out := make([]float64, len(domain))
	for i, t := range domain {
		phase := t / period
		base := 2 * (phase - math.Floor(0.5+phase))

		if common.FloorMod(t, 2*math.Pi) < period {
			out[i] = base/2 + 0.5
		} else {
			out[i] = base/2 - 0.5
		}
	}
	return out
}
