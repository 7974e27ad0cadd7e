// Package lfo provides the low-frequency oscillators that modulate
// delay-tap positions.
package lfo

import (
	"fmt"
	"math"
)

// Triangle is a free-running unipolar triangle oscillator.
//
// The phase accumulates in [0, 1) with a fixed increment of
// rate/sampleRate; each tick folds the doubled phase into a triangle
// value in [0, 1]. The oscillator is never resynchronized during normal
// operation, so the relative phase of two instances is purely a function
// of elapsed samples.
type Triangle struct {
	phase    float64
	phaseInc float64
}

// NewTriangle creates a triangle LFO running at rateHz.
func NewTriangle(rateHz, sampleRate float64) (*Triangle, error) {
	if rateHz <= 0 || math.IsNaN(rateHz) || math.IsInf(rateHz, 0) {
		return nil, fmt.Errorf("lfo: rate must be > 0 and finite: %f", rateHz)
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("lfo: sample rate must be > 0 and finite: %f", sampleRate)
	}

	return &Triangle{phaseInc: rateHz / sampleRate}, nil
}

// Tick advances the phase by one sample and returns the triangle value
// in [0, 1].
func (l *Triangle) Tick() float64 {
	l.phase += l.phaseInc
	if l.phase >= 1 {
		l.phase -= 1
	}

	t := l.phase * 2
	if t > 1 {
		return 2 - t
	}
	return t
}

// Phase returns the current accumulator phase in [0, 1).
func (l *Triangle) Phase() float64 {
	return l.phase
}

// PhaseIncrement returns the per-sample phase step.
func (l *Triangle) PhaseIncrement() float64 {
	return l.phaseInc
}

// Reset rewinds the phase to zero.
func (l *Triangle) Reset() {
	l.phase = 0
}
