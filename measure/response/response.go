// Package response captures and analyzes the wet-path response of a
// chorus engine: impulse arrival windows and magnitude spectra.
package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/cwbudde/junologue/dsp/chorus"
	"github.com/cwbudde/junologue/dsp/spectrum"
)

// Errors returned by response analysis functions.
var (
	ErrEmptyResponse     = errors.New("response: response is empty")
	ErrSilentResponse    = errors.New("response: no sample exceeds the threshold")
	ErrInvalidFFTSize    = errors.New("response: fft size must be a power of two covering the input")
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
	ErrInvalidBand       = errors.New("response: band edges must satisfy 0 <= lo < hi")
)

// Analyzer captures engine responses at a fixed sample rate.
type Analyzer struct {
	SampleRate float64
}

// NewAnalyzer creates an analyzer for the given sample rate.
func NewAnalyzer(sampleRate float64) (*Analyzer, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	return &Analyzer{SampleRate: sampleRate}, nil
}

// CaptureImpulse feeds a unit impulse on both channels of a freshly
// reset engine and records length output frames per channel.
func (a *Analyzer) CaptureImpulse(e *chorus.Engine, length int) (left, right []float64, err error) {
	if length <= 0 {
		return nil, nil, fmt.Errorf("response: capture length must be > 0: %d", length)
	}

	e.Reset()
	left = make([]float64, length)
	right = make([]float64, length)
	for i := 0; i < length; i++ {
		in := 0.0
		if i == 0 {
			in = 1
		}
		left[i], right[i] = e.ProcessSample(in, in)
	}
	return left, right, nil
}

// ArrivalWindow returns the first and last index whose magnitude
// exceeds threshold.
func ArrivalWindow(x []float64, threshold float64) (first, last int, err error) {
	if len(x) == 0 {
		return 0, 0, ErrEmptyResponse
	}

	first = -1
	for i, v := range x {
		if math.Abs(v) > threshold {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return 0, 0, ErrSilentResponse
	}
	return first, last, nil
}

// MagnitudeSpectrum zero-pads x to fftSize and returns the one-sided
// magnitude spectrum, bins 0 through fftSize/2.
func MagnitudeSpectrum(x []float64, fftSize int) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyResponse
	}
	if fftSize < len(x) || fftSize&(fftSize-1) != 0 || fftSize < 2 {
		return nil, ErrInvalidFFTSize
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: fft plan: %w", err)
	}

	in := make([]complex128, fftSize)
	out := make([]complex128, fftSize)
	for i, v := range x {
		in[i] = complex(v, 0)
	}
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("response: forward fft: %w", err)
	}

	return spectrum.Magnitude(out[:fftSize/2+1]), nil
}

// BandEnergy sums squared magnitudes over [loHz, hiHz) of a one-sided
// spectrum produced by [MagnitudeSpectrum] with the given FFT size.
func (a *Analyzer) BandEnergy(mag []float64, fftSize int, loHz, hiHz float64) (float64, error) {
	if len(mag) == 0 {
		return 0, ErrEmptyResponse
	}
	if loHz < 0 || hiHz <= loHz {
		return 0, ErrInvalidBand
	}

	binHz := a.SampleRate / float64(fftSize)
	sum := 0.0
	for k, m := range mag {
		f := float64(k) * binHz
		if f >= loHz && f < hiHz {
			sum += m * m
		}
	}
	return sum, nil
}
