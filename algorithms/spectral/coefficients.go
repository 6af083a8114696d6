package spectral

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// ErrAliasing is returned when the requested harmonics do not fit below the
// Nyquist bin of the sampled period.
var ErrAliasing = errors.New("harmonic above nyquist")

// Coefficient holds the trigonometric series coefficients of harmonic K:
// Cosine*cos(Kx) + Sine*sin(Kx).
type Coefficient struct {
	K         int     `json:"k"`
	Cosine    float64 `json:"cosine"`
	Sine      float64 `json:"sine"`
	Magnitude float64 `json:"magnitude"`
}

// SeriesCoefficients recovers the Fourier series coefficients of a signal
// sampled over exactly one 2π period at start + 2πj/N, j = 0..N-1.
// Harmonics 1..maxHarmonic are returned; maxHarmonic must stay below N/2.
func SeriesCoefficients(samples []float64, start float64, maxHarmonic int) ([]Coefficient, error) {
	n := len(samples)
	if n == 0 {
		return nil, fmt.Errorf("series coefficients: empty input")
	}
	if maxHarmonic < 1 {
		return []Coefficient{}, nil
	}
	if 2*maxHarmonic >= n {
		return nil, fmt.Errorf("series coefficients: %d harmonics from %d samples: %w", maxHarmonic, n, ErrAliasing)
	}

	spectrum := NewFFT().Compute(samples)
	scale := 2 / float64(n)

	coeffs := make([]Coefficient, maxHarmonic)
	for k := 1; k <= maxHarmonic; k++ {
		// Undo the phase offset of the first sample so bins map onto sin(kx)
		// and cos(kx) of the original variable.
		c := spectrum[k] * complex(scale, 0) * cmplx.Exp(complex(0, -float64(k)*start))

		coeffs[k-1] = Coefficient{
			K:         k,
			Cosine:    real(c),
			Sine:      -imag(c),
			Magnitude: math.Hypot(real(c), imag(c)),
		}
	}

	return coeffs, nil
}
