package series

import (
	"github.com/RyanBlaney/sonido-fourier/algorithms/common"
)

// Comparison pairs a partial-sum approximation with the exact waveform it
// approximates, both sampled on the same domain.
type Comparison struct {
	Terms         int        `json:"n"`
	Domain        []float64  `json:"domain"`
	Approximation []float64  `json:"approximation"`
	Reference     []float64  `json:"reference"`
	Harmonics     []Harmonic `json:"harmonics"`
}

// Approximator evaluates square wave partial sums over a fixed domain. It
// holds no per-call state and is safe for concurrent use.
type Approximator struct {
	domain   []float64
	minTerms int
	maxTerms int
}

// NewApproximator creates an approximator over domain. Requested term counts
// are clamped to [minTerms, maxTerms].
func NewApproximator(domain []float64, minTerms, maxTerms int) *Approximator {
	if minTerms > maxTerms {
		minTerms, maxTerms = maxTerms, minTerms
	}

	d := make([]float64, len(domain))
	copy(d, domain)

	return &Approximator{
		domain:   d,
		minTerms: minTerms,
		maxTerms: maxTerms,
	}
}

// Compare recomputes the approximation and reference for n terms
func (a *Approximator) Compare(n int) Comparison {
	n = a.ClampTerms(n)

	domain := make([]float64, len(a.domain))
	copy(domain, a.domain)

	return Comparison{
		Terms:         n,
		Domain:        domain,
		Approximation: SquareWaveApproximation(domain, n),
		Reference:     ActualSquareWave(domain),
		Harmonics:     Terms(n),
	}
}

// ClampTerms limits n to the approximator's term range
func (a *Approximator) ClampTerms(n int) int {
	return common.ClampInt(n, a.minTerms, a.maxTerms)
}

// Domain returns a copy of the sample points
func (a *Approximator) Domain() []float64 {
	d := make([]float64, len(a.domain))
	copy(d, a.domain)
	return d
}
