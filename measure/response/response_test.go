package response

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/junologue/dsp/chorus"
)

func TestNewAnalyzerValidation(t *testing.T) {
	if _, err := NewAnalyzer(0); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("NewAnalyzer(0) error = %v, want ErrInvalidSampleRate", err)
	}
	if _, err := NewAnalyzer(44100); err != nil {
		t.Fatalf("NewAnalyzer(44100) error = %v", err)
	}
}

func TestArrivalWindow(t *testing.T) {
	x := []float64{0, 0, 0.5, 0.1, 0, 0.2, 0}

	first, last, err := ArrivalWindow(x, 1e-9)
	if err != nil {
		t.Fatalf("ArrivalWindow() error = %v", err)
	}
	if first != 2 || last != 5 {
		t.Fatalf("ArrivalWindow() = (%d, %d), want (2, 5)", first, last)
	}

	if _, _, err := ArrivalWindow([]float64{0, 0}, 1e-9); !errors.Is(err, ErrSilentResponse) {
		t.Fatalf("silent input error = %v, want ErrSilentResponse", err)
	}
	if _, _, err := ArrivalWindow(nil, 1e-9); !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("empty input error = %v, want ErrEmptyResponse", err)
	}
}

func TestMagnitudeSpectrumValidation(t *testing.T) {
	if _, err := MagnitudeSpectrum(nil, 64); !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("empty input error = %v, want ErrEmptyResponse", err)
	}
	if _, err := MagnitudeSpectrum(make([]float64, 100), 64); !errors.Is(err, ErrInvalidFFTSize) {
		t.Fatalf("short fft error = %v, want ErrInvalidFFTSize", err)
	}
	if _, err := MagnitudeSpectrum(make([]float64, 10), 48); !errors.Is(err, ErrInvalidFFTSize) {
		t.Fatalf("non-power-of-two error = %v, want ErrInvalidFFTSize", err)
	}
}

func TestMagnitudeSpectrumOfSine(t *testing.T) {
	const (
		fftSize    = 4096
		sampleRate = 44100.0
	)

	// Pick a bin-centered frequency so leakage stays negligible.
	bin := 256
	freq := float64(bin) * sampleRate / fftSize
	x := make([]float64, fftSize)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
	}

	mag, err := MagnitudeSpectrum(x, fftSize)
	if err != nil {
		t.Fatalf("MagnitudeSpectrum() error = %v", err)
	}
	if len(mag) != fftSize/2+1 {
		t.Fatalf("spectrum length = %d, want %d", len(mag), fftSize/2+1)
	}

	peak := 0
	for k := 1; k < len(mag); k++ {
		if mag[k] > mag[peak] {
			peak = k
		}
	}
	if peak != bin {
		t.Fatalf("spectral peak at bin %d, want %d", peak, bin)
	}
}

func TestImpulseArrivalWindowMatchesDelayRange(t *testing.T) {
	e, err := chorus.New()
	if err != nil {
		t.Fatalf("chorus.New() error = %v", err)
	}
	e.SetMode(chorus.ModeI)
	e.SetMix(1)

	a, err := NewAnalyzer(e.SampleRate())
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}

	left, right, err := a.CaptureImpulse(e, 2048)
	if err != nil {
		t.Fatalf("CaptureImpulse() error = %v", err)
	}

	firstL, _, err := ArrivalWindow(left, 1e-9)
	if err != nil {
		t.Fatalf("ArrivalWindow(left) error = %v", err)
	}
	firstR, _, err := ArrivalWindow(right, 1e-9)
	if err != nil {
		t.Fatalf("ArrivalWindow(right) error = %v", err)
	}

	lo := int(e.MinDelaySamples()) - 1
	hi := int(e.MaxDelaySamples()) + 4
	if firstL < lo || firstL > hi {
		t.Fatalf("left arrival %d outside modulated delay window [%d, %d]", firstL, lo, hi)
	}
	if firstR < lo || firstR > hi {
		t.Fatalf("right arrival %d outside modulated delay window [%d, %d]", firstR, lo, hi)
	}
}

func TestBrightnessDarkensWetSpectrum(t *testing.T) {
	captureEnergy := func(brightness float64) float64 {
		e, err := chorus.New()
		if err != nil {
			t.Fatalf("chorus.New() error = %v", err)
		}
		e.SetMode(chorus.ModeIAndII)
		e.SetMix(1)
		e.SetBrightness(brightness)

		a, err := NewAnalyzer(e.SampleRate())
		if err != nil {
			t.Fatalf("NewAnalyzer() error = %v", err)
		}

		left, _, err := a.CaptureImpulse(e, 4096)
		if err != nil {
			t.Fatalf("CaptureImpulse() error = %v", err)
		}

		mag, err := MagnitudeSpectrum(left, 4096)
		if err != nil {
			t.Fatalf("MagnitudeSpectrum() error = %v", err)
		}

		hi, err := a.BandEnergy(mag, 4096, 8000, 20000)
		if err != nil {
			t.Fatalf("BandEnergy() error = %v", err)
		}
		return hi
	}

	bright := captureEnergy(1.0)
	dark := captureEnergy(0.2)
	if dark >= bright {
		t.Fatalf("high-band energy did not drop with brightness: bright=%v dark=%v", bright, dark)
	}
}

func TestBandEnergyValidation(t *testing.T) {
	a, err := NewAnalyzer(44100)
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}

	if _, err := a.BandEnergy(nil, 1024, 0, 100); !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("empty spectrum error = %v, want ErrEmptyResponse", err)
	}
	if _, err := a.BandEnergy([]float64{1}, 1024, 200, 100); !errors.Is(err, ErrInvalidBand) {
		t.Fatalf("inverted band error = %v, want ErrInvalidBand", err)
	}
}
