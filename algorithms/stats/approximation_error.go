package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrLengthMismatch is returned when an approximation and its reference were
// sampled on different domains.
var ErrLengthMismatch = errors.New("length mismatch")

// ApproximationError summarizes how far a truncated series is from the exact
// waveform over a sampled domain
type ApproximationError struct {
	RMSE         float64 `json:"rmse"`
	MaxAbsError  float64 `json:"max_abs_error"`
	MeanAbsError float64 `json:"mean_abs_error"`
	PeakValue    float64 `json:"peak_value"` // max |approximation|
	Overshoot    float64 `json:"overshoot"`  // peak beyond the reference amplitude (Gibbs)
}

// CompareToReference measures approx against reference sample by sample
func CompareToReference(approx, reference []float64) (ApproximationError, error) {
	if len(approx) != len(reference) {
		return ApproximationError{}, fmt.Errorf("compare to reference: %d vs %d samples: %w",
			len(approx), len(reference), ErrLengthMismatch)
	}
	if len(approx) == 0 {
		return ApproximationError{}, nil
	}

	residual := make([]float64, len(approx))
	floats.SubTo(residual, approx, reference)

	absResidual := make([]float64, len(residual))
	for i, r := range residual {
		absResidual[i] = math.Abs(r)
	}

	n := float64(len(residual))
	peak := maxAbs(approx)

	return ApproximationError{
		RMSE:         floats.Norm(residual, 2) / math.Sqrt(n),
		MaxAbsError:  floats.Max(absResidual),
		MeanAbsError: stat.Mean(absResidual, nil),
		PeakValue:    peak,
		Overshoot:    peak - maxAbs(reference),
	}, nil
}

func maxAbs(data []float64) float64 {
	return math.Max(math.Abs(floats.Max(data)), math.Abs(floats.Min(data)))
}
