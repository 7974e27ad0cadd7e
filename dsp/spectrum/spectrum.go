// Package spectrum converts complex FFT bins into magnitude and power
// values, using SIMD-optimized block math where the platform provides it.
package spectrum

import (
	"github.com/cwbudde/algo-vecmath"
)

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	re := make([]float64, len(in))
	im := make([]float64, len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, len(in))
	vecmath.Magnitude(out, re, im)
	return out
}

// MagnitudeFromParts computes |X[k]| = sqrt(re[k]^2 + im[k]^2) into dst.
// This is the zero-allocation path for callers that already hold the
// real and imaginary parts.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	re := make([]float64, len(in))
	im := make([]float64, len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, len(in))
	vecmath.Power(out, re, im)
	return out
}
