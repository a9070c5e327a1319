package testutil

import (
	"github.com/cwbudde/algo-vecmath"
)

// ReferenceConvolve computes the full linear convolution of a and b with the
// output-side method: each output bin sums the products of the overlapping
// input segment against the reversed kernel. This is deliberately a different
// iteration order than the input-side stepper, so tests can use it as an
// independent reference. Returns a slice of length len(a)+len(b)-1.
func ReferenceConvolve(a, b []float64) []float64 {
	n := len(a)
	m := len(b)
	if n == 0 || m == 0 {
		return nil
	}

	rev := make([]float64, m)
	for j := range b {
		rev[j] = b[m-1-j]
	}

	out := make([]float64, n+m-1)
	prod := make([]float64, m)
	for k := range out {
		lo := k - m + 1
		if lo < 0 {
			lo = 0
		}
		hi := k
		if hi > n-1 {
			hi = n - 1
		}

		// y[k] = sum_{i=lo..hi} a[i]*b[k-i]; b[k-i] == rev[m-1-k+i].
		span := hi - lo + 1
		start := m - 1 - k + lo
		vecmath.MulBlock(prod[:span], a[lo:hi+1], rev[start:start+span])

		sum := 0.0
		for _, v := range prod[:span] {
			sum += v
		}
		out[k] = sum
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}
