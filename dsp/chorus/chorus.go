package chorus

import (
	"fmt"
	"math"

	"github.com/cwbudde/junologue/dsp/core"
	"github.com/cwbudde/junologue/dsp/delay"
	"github.com/cwbudde/junologue/dsp/filter/onepole"
	"github.com/cwbudde/junologue/dsp/lfo"
	"github.com/cwbudde/junologue/dsp/saturate"
)

// Hardware constants from Harman's Juno-60 measurements.
const (
	// DefaultSampleRate is the operating rate of the original plugin.
	DefaultSampleRate = 44100.0

	delayMinSeconds = 0.00166
	delayMaxSeconds = 0.00535

	lfoRateIHz  = 0.513
	lfoRateIIHz = 0.863

	// The pre-delay filter models the dirtier analog front end, so its
	// range sits lower than the post-delay pair.
	preLowpassMinHz  = 2000.0
	preLowpassMaxHz  = 20000.0
	postLowpassMinHz = 6000.0
	postLowpassMaxHz = 20000.0
)

const (
	// DefaultMix is the factory dry/wet balance.
	DefaultMix = 0.5
	// DefaultBrightness leaves both filters fully open.
	DefaultBrightness = 1.0
)

// Option mutates engine construction parameters.
type Option func(*config) error

type config struct {
	sampleRate float64
}

func defaultConfig() config {
	return config{sampleRate: DefaultSampleRate}
}

// WithSampleRate sets the operating sample rate in Hz. Delay-range and
// cutoff constants are derived from it at construction.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *config) error {
		if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
			return fmt.Errorf("chorus: sample rate must be > 0 and finite: %f", sampleRate)
		}
		cfg.sampleRate = sampleRate
		return nil
	}
}

// Engine is one chorus instance. It owns its delay line, LFOs, filters,
// and parameters exclusively; see the package documentation for the
// serialization contract.
type Engine struct {
	sampleRate float64

	mode       Mode
	mix        float64
	brightness float64

	// Derived on every parameter change.
	gainA, gainB     float64
	dryGain, wetGain float64

	// Delay range in samples at the configured rate.
	dtMin, dtRange float64

	line  *delay.Line
	lfo1  *lfo.Triangle
	lfo2  *lfo.Triangle
	pre   *onepole.Lowpass
	postL *onepole.Lowpass
	postR *onepole.Lowpass
}

// New creates an engine with factory defaults: mode I+II, mix 0.5,
// brightness 1. All memory is allocated here; processing never
// allocates.
func New(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	e := &Engine{
		sampleRate: cfg.sampleRate,
		mode:       ModeIAndII,
		mix:        DefaultMix,
		brightness: DefaultBrightness,
		dtMin:      delayMinSeconds * cfg.sampleRate,
		dtRange:    (delayMaxSeconds - delayMinSeconds) * cfg.sampleRate,
	}

	line, err := delay.New(delayMaxSeconds * cfg.sampleRate)
	if err != nil {
		return nil, err
	}
	e.line = line

	if e.lfo1, err = lfo.NewTriangle(lfoRateIHz, cfg.sampleRate); err != nil {
		return nil, err
	}
	if e.lfo2, err = lfo.NewTriangle(lfoRateIIHz, cfg.sampleRate); err != nil {
		return nil, err
	}
	if e.pre, err = onepole.NewLowpass(cfg.sampleRate); err != nil {
		return nil, err
	}
	if e.postL, err = onepole.NewLowpass(cfg.sampleRate); err != nil {
		return nil, err
	}
	if e.postR, err = onepole.NewLowpass(cfg.sampleRate); err != nil {
		return nil, err
	}

	e.updateDerived()

	return e, nil
}

// SetMode selects the active voice combination. Out-of-range values are
// clamped to the nearest valid mode.
func (e *Engine) SetMode(mode Mode) {
	e.mode = ClampMode(int(mode))
	e.updateDerived()
}

// SetMix sets the dry/wet balance, clamped to [0, 1].
func (e *Engine) SetMix(mix float64) {
	if math.IsNaN(mix) {
		return
	}
	e.mix = core.Clamp(mix, 0, 1)
	e.updateDerived()
}

// SetBrightness sets the shared filter control, clamped to [0, 1].
func (e *Engine) SetBrightness(brightness float64) {
	if math.IsNaN(brightness) {
		return
	}
	e.brightness = core.Clamp(brightness, 0, 1)
	e.updateDerived()
}

// Mode returns the active mode.
func (e *Engine) Mode() Mode { return e.mode }

// Mix returns the dry/wet balance in [0, 1].
func (e *Engine) Mix() float64 { return e.mix }

// Brightness returns the filter control in [0, 1].
func (e *Engine) Brightness() float64 { return e.brightness }

// SampleRate returns the operating rate in Hz.
func (e *Engine) SampleRate() float64 { return e.sampleRate }

// MinDelaySamples returns the shortest modulated tap position.
func (e *Engine) MinDelaySamples() float64 { return e.dtMin }

// MaxDelaySamples returns the longest modulated tap position.
func (e *Engine) MaxDelaySamples() float64 { return e.dtMin + e.dtRange }

// Reset clears all transient DSP memory: delay history, filter states,
// and LFO phases. Parameters are untouched.
func (e *Engine) Reset() {
	e.line.Reset()
	e.pre.Reset()
	e.postL.Reset()
	e.postR.Reset()
	e.lfo1.Reset()
	e.lfo2.Reset()
}

// updateDerived recomputes everything that depends on parameters: mode
// tap gains, crossfade gains, and the three cutoffs driven by the
// quadratic brightness curve.
func (e *Engine) updateDerived() {
	e.gainA = modeGains[e.mode][0]
	e.gainB = modeGains[e.mode][1]

	e.dryGain = mathSqrt(1 - e.mix)
	e.wetGain = mathSqrt(e.mix)

	br := e.brightness * e.brightness
	e.pre.SetCutoff(preLowpassMinHz + br*(preLowpassMaxHz-preLowpassMinHz))
	postHz := postLowpassMinHz + br*(postLowpassMaxHz-postLowpassMinHz)
	e.postL.SetCutoff(postHz)
	e.postR.SetCutoff(postHz)
}

// ProcessSample runs one stereo frame, normalized to [-1, 1], through
// the full signal path and returns the mixed output pair.
func (e *Engine) ProcessSample(inL, inR float64) (outL, outR float64) {
	// Mono sum, saturation, pre-filter, then into the BBD model.
	mono := (inL + inR) * 0.5
	mono = e.pre.ProcessSample(saturate.SoftLimit(mono))
	e.line.Write(mono)

	v1 := e.lfo1.Tick()
	v2 := e.lfo2.Tick()

	// One buffer, four virtual taps. The right channel reads with the
	// inverted LFO values; that phase opposition is the sole source of
	// the stereo image.
	tap1L := e.line.ReadFractional(e.dtMin + e.dtRange*v1)
	tap1R := e.line.ReadFractional(e.dtMin + e.dtRange*(1-v1))
	tap2L := e.line.ReadFractional(e.dtMin + e.dtRange*v2)
	tap2R := e.line.ReadFractional(e.dtMin + e.dtRange*(1-v2))

	wetL := e.postL.ProcessSample(tap1L*e.gainA + tap2L*e.gainB)
	wetR := e.postR.ProcessSample(tap1R*e.gainA + tap2R*e.gainB)

	outL = inL*e.dryGain + wetL*e.wetGain
	outR = inR*e.dryGain + wetR*e.wetGain
	return outL, outR
}

// ProcessInterleaved processes interleaved L/R frames in place. A
// trailing unpaired sample is left untouched.
func (e *Engine) ProcessInterleaved(buf []float64) {
	frames := len(buf) / 2
	for i := 0; i < frames; i++ {
		buf[2*i], buf[2*i+1] = e.ProcessSample(buf[2*i], buf[2*i+1])
	}
}

// ProcessInt16 processes interleaved signed 16-bit stereo frames in
// place, the wire format of the plugin boundary. Output is hard-clamped
// to full scale before requantization.
func (e *Engine) ProcessInt16(buf []int16) {
	frames := len(buf) / 2
	for i := 0; i < frames; i++ {
		inL := float64(buf[2*i]) / 32768.0
		inR := float64(buf[2*i+1]) / 32768.0

		outL, outR := e.ProcessSample(inL, inR)

		buf[2*i] = int16(core.Clamp(outL, -1, 1) * 32767.0)
		buf[2*i+1] = int16(core.Clamp(outR, -1, 1) * 32767.0)
	}
}
