// Package formula builds the LaTeX and caption strings shown next to the
// chart. It is kept apart from the numeric code so the page can be restyled
// without touching the series evaluation.
package formula

import (
	"fmt"
	"strings"
)

// InfiniteSeries is the closed form of the square wave series
const InfiniteSeries = `f(x) = \frac{4}{\pi} \sum_{k=1,3,5,\ldots}^{\infty} \frac{\sin(kx)}{k}`

// PartialSum writes out the first n odd harmonics of the square wave series,
// one \frac{\sin(kx)}{k} per term.
func PartialSum(n int) string {
	terms := make([]string, 0, max(n, 0))
	for k := 1; k < 2*n; k += 2 {
		terms = append(terms, fmt.Sprintf(`\frac{\sin(%dx)}{%d}`, k, k))
	}

	return `f(x) = \frac{4}{\pi} \left(` + strings.Join(terms, " + ") + `\right)`
}

// Title is the chart caption for n terms
func Title(n int) string {
	return fmt.Sprintf("Fourier Series Approximation with n = %d for Square Wave", n)
}
