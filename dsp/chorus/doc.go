// Package chorus emulates the bucket-brigade stereo chorus of the
// Juno-60, after the measurements published by Andy Harman.
//
// The signal path sums the input to mono, soft-limits and pre-filters
// it, and writes it into a single delay line. Two free-running triangle
// LFOs (0.513 Hz and 0.863 Hz) modulate four fractional read taps over
// the hardware's 1.66-5.35 ms delay range; the right channel reads with
// inverted LFO values, reproducing the dual-BBD stereo image from one
// shared buffer. Wet taps are combined per mode, post-filtered per
// channel, and mixed against the dry input with an equal-power
// crossfade.
//
// An Engine owns all of its DSP state and performs no locking: audio
// blocks and parameter updates must be serialized by the caller, with
// updates applied strictly between blocks. Processing paths do not
// allocate.
package chorus
