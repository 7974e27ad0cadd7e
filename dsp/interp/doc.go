// Package interp provides interpolation primitives used by delay-based DSP blocks.
//
//   - [Linear2]:  2-point linear interpolation, the right kernel for
//     taps whose position moves every sample
//   - [Hermite4]: 4-point cubic Hermite, higher quality for slowly
//     moving or static taps
package interp
