// Package delay implements a circular delay line with fractional read,
// sized for audio-rate modulated taps.
package delay

import (
	"fmt"
	"math"

	"github.com/cwbudde/junologue/dsp/interp"
)

// Line is a circular delay line. Its capacity is a power of two so index
// wrapping reduces to a bitmask.
//
// A fractional read at offset d uses the pair of samples written 1+⌊d⌋
// and 2+⌊d⌋ writes ago, so the line reserves two extra slots beyond the
// maximum delay it serves. Offsets are clamped to that maximum; the
// capacity invariant is checked once at construction, never in the
// processing path.
type Line struct {
	buffer   []float64
	mask     int
	writePos int
	maxDelay float64
}

// New returns a delay line able to serve fractional delays in
// [0, maxDelay] samples. The capacity is maxDelay plus the interpolation
// margin, rounded up to a power of two.
func New(maxDelay float64) (*Line, error) {
	if maxDelay <= 0 || math.IsNaN(maxDelay) || math.IsInf(maxDelay, 0) {
		return nil, fmt.Errorf("delay: max delay must be > 0 and finite: %f", maxDelay)
	}

	size := nextPowerOfTwo(int(math.Ceil(maxDelay)) + 2)
	if float64(size) < maxDelay+2 {
		return nil, fmt.Errorf("delay: capacity %d cannot cover max delay %f plus interpolation pair", size, maxDelay)
	}

	return &Line{
		buffer:   make([]float64, size),
		mask:     size - 1,
		maxDelay: maxDelay,
	}, nil
}

// Len returns internal buffer size.
func (d *Line) Len() int {
	return len(d.buffer)
}

// MaxDelay returns the largest fractional delay the line serves.
func (d *Line) MaxDelay() float64 {
	return d.maxDelay
}

// Write appends one sample and advances the write cursor.
func (d *Line) Write(sample float64) {
	d.buffer[d.writePos] = sample
	d.writePos = (d.writePos + 1) & d.mask
}

// Read returns the sample written delay+1 writes ago. A delay of 0 reads
// the most recent write.
func (d *Line) Read(delay int) float64 {
	return d.buffer[(d.writePos-1-delay)&d.mask]
}

// ReadFractional reads at a non-integer offset using two-point linear
// interpolation. The offset is clamped to [0, MaxDelay].
func (d *Line) ReadFractional(delay float64) float64 {
	if delay < 0 {
		delay = 0
	}
	if delay > d.maxDelay {
		delay = d.maxDelay
	}

	di := int(delay)
	frac := delay - float64(di)

	p0 := (d.writePos - 1 - di) & d.mask
	p1 := (p0 - 1) & d.mask
	return interp.Linear2(frac, d.buffer[p0], d.buffer[p1])
}

// Reset clears line state.
func (d *Line) Reset() {
	for i := range d.buffer {
		d.buffer[i] = 0
	}
	d.writePos = 0
}

func nextPowerOfTwo(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
