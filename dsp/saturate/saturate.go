// Package saturate provides stateless nonlinear transfer curves used to
// model analog input stages.
package saturate

// SoftLimit applies a cubic soft-saturation curve:
//
//	f(x) = x * (27 + x^2) / (27 + 9*x^2)
//
// It is odd-symmetric, monotonic, close to identity near zero, and
// approaches +-1 for large |x|. In the chorus it shapes the mono sum
// before the delay line, standing in for the bucket-brigade input stage.
func SoftLimit(x float64) float64 {
	return x * (27 + x*x) / (27 + 9*x*x)
}
