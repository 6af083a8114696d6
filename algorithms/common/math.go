package common

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Domain and clamping helpers shared by the series algorithms. Vector work
// goes through gonum so the sampled domains behave like numpy arrays.

// Linspace returns n evenly spaced samples over [start, end], both ends included
func Linspace(start, end float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{start}
	}

	out := floats.Span(make([]float64, n), start, end)
	out[n-1] = end // pin the endpoint against accumulated rounding

	return out
}

// PeriodicSpace returns n samples covering exactly one 2π period starting at
// start. The endpoint start+2π is excluded so the samples tile without overlap.
func PeriodicSpace(start float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}

	step := 2 * math.Pi / float64(n)
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}

	return out
}

// MaxAbs returns the largest absolute value in data
func MaxAbs(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}

	peak := 0.0
	for _, v := range data {
		peak = math.Max(peak, math.Abs(v))
	}

	return peak
}

// Clamp constrains value to the range [min, max]
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampInt constrains value to the range [min, max]
func ClampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Sign returns -1, 0 or +1 according to the sign of x. NaN is passed through.
func Sign(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// FloorMod returns x modulo m with the sign of m, so FloorMod(-1, 2π) is
// 2π-1 rather than math.Mod's -1.
func FloorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}
	return r
}
