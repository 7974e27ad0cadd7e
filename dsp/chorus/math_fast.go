//go:build fastmath

package chorus

import "github.com/meko-christian/algo-approx"

// mathSqrt computes sqrt(x) using fast approximation. The crossfade
// gains it feeds are recomputed only on parameter changes, but the
// hardware source used a fast inverse-sqrt here and the approximation
// error is inaudible.
func mathSqrt(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return approx.FastSqrt(x)
}
