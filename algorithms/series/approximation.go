package series

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Harmonic is one term of a truncated sine series: Coefficient * sin(K x)
type Harmonic struct {
	K           int     `json:"k"`
	Coefficient float64 `json:"coefficient"`
}

// SquareWaveApproximation evaluates the n-term partial sum of the square wave
// series (4/π) Σ sin(kx)/k over the odd harmonics k = 1, 3, ..., 2n-1.
// n <= 0 yields all zeros.
func SquareWaveApproximation(domain []float64, n int) []float64 {
	sum := make([]float64, len(domain))
	if len(domain) == 0 {
		return sum
	}

	harmonic := make([]float64, len(domain))
	for k := 1; k < 2*n; k += 2 {
		sineHarmonic(harmonic, domain, k)
		floats.AddScaled(sum, 1/float64(k), harmonic)
	}

	floats.Scale(4/math.Pi, sum)
	return sum
}

// SawtoothWaveApproximation evaluates (2/π) Σ (-1)^(k+1) sin(kx)/k over every
// harmonic k = 1..n.
func SawtoothWaveApproximation(domain []float64, n int) []float64 {
	sum := make([]float64, len(domain))
	if len(domain) == 0 {
		return sum
	}

	harmonic := make([]float64, len(domain))
	for k := 1; k <= n; k++ {
		sign := 1.0
		if k%2 == 0 {
			sign = -1.0
		}
		sineHarmonic(harmonic, domain, k)
		floats.AddScaled(sum, sign/float64(k), harmonic)
	}

	floats.Scale(2/math.Pi, sum)
	return sum
}

// Terms lists the harmonics summed by SquareWaveApproximation for n terms
func Terms(n int) []Harmonic {
	if n <= 0 {
		return []Harmonic{}
	}

	terms := make([]Harmonic, 0, n)
	for k := 1; k < 2*n; k += 2 {
		terms = append(terms, Harmonic{
			K:           k,
			Coefficient: 4 / (math.Pi * float64(k)),
		})
	}

	return terms
}

// sineHarmonic fills dst with sin(k x) for every x in domain
func sineHarmonic(dst, domain []float64, k int) {
	kf := float64(k)
	for i, x := range domain {
		dst[i] = math.Sin(kf * x)
	}
}
