// Package onepole implements a single-state lowpass filter with a
// cutoff mapping that stays stable all the way to Nyquist.
package onepole

import (
	"fmt"
	"math"

	"github.com/cwbudde/junologue/dsp/core"
)

// Lowpass is a one-pole lowpass with unity DC gain:
//
//	y[n] = y[n-1] + alpha * (x[n] - y[n-1])
//
// with alpha = w/(1+w), w = 2*pi*fc/fs. Unlike the bilinear-transform
// design, this mapping never diverges as fc approaches Nyquist: it
// saturates toward pass-through instead.
type Lowpass struct {
	sampleRate float64
	alpha      float64
	state      float64
}

// NewLowpass creates a filter in pass-through state (alpha = 1).
func NewLowpass(sampleRate float64) (*Lowpass, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("onepole: sample rate must be > 0 and finite: %f", sampleRate)
	}
	return &Lowpass{sampleRate: sampleRate, alpha: 1}, nil
}

// SetCutoff updates the smoothing coefficient. A cutoff <= 0 freezes the
// filter on its last state; a cutoff at or above 0.49*fs is pass-through.
func (f *Lowpass) SetCutoff(hz float64) {
	if hz <= 0 {
		f.alpha = 0
		return
	}
	if hz >= 0.49*f.sampleRate {
		f.alpha = 1
		return
	}

	w := 2 * math.Pi * hz / f.sampleRate
	f.alpha = w / (1 + w)
}

// Alpha returns the current smoothing coefficient.
func (f *Lowpass) Alpha() float64 {
	return f.alpha
}

// ProcessSample filters one sample.
func (f *Lowpass) ProcessSample(x float64) float64 {
	f.state = core.FlushDenormals(f.state + f.alpha*(x-f.state))
	return f.state
}

// Reset clears the running state.
func (f *Lowpass) Reset() {
	f.state = 0
}
