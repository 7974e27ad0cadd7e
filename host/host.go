// Package host exposes the chorus engine through the string-keyed
// instance API an embedding audio host consumes: lifecycle, in-place
// 16-bit block processing, and parameter get/set with a JSON state
// payload.
//
// All string parsing and serialization lives here; the engine itself
// only ever sees typed values. Logging is an optional capability
// injected at construction.
package host

import (
	"fmt"

	"github.com/cwbudde/junologue/dsp/chorus"
)

// DisplayName is the fixed name reported for the "name" parameter.
const DisplayName = "Juno Chorus"

// Logger is the optional logging capability of the embedding host.
type Logger interface {
	Log(msg string)
}

// Option mutates Host construction parameters.
type Option func(*Host)

// WithLogger injects a logger. A nil logger disables logging.
func WithLogger(logger Logger) Option {
	return func(h *Host) {
		h.logger = logger
	}
}

// WithSampleRate sets the operating rate for instances created by this
// host. Non-positive values keep the default.
func WithSampleRate(sampleRate float64) Option {
	return func(h *Host) {
		if sampleRate > 0 {
			h.sampleRate = sampleRate
		}
	}
}

// Host creates and configures chorus instances for one embedding
// application.
type Host struct {
	logger     Logger
	sampleRate float64
}

// New creates a host with the hardware default sample rate.
func New(opts ...Option) *Host {
	h := &Host{sampleRate: chorus.DefaultSampleRate}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

func (h *Host) logf(format string, args ...any) {
	if h == nil || h.logger == nil {
		return
	}
	h.logger.Log("[junologue-chorus] " + fmt.Sprintf(format, args...))
}

// Instance is one live chorus engine plus its boundary state. The
// audio and control entry points must be externally serialized, with
// parameter updates applied strictly between blocks.
type Instance struct {
	host   *Host
	engine *chorus.Engine
}

// CreateInstance allocates one engine with default parameters. The
// config payload is accepted for forward compatibility and currently
// unused. Returns nil when the engine cannot be constructed; all
// operations on a nil or destroyed instance are no-ops or failures.
func (h *Host) CreateInstance(configJSON string) *Instance {
	engine, err := chorus.New(chorus.WithSampleRate(h.sampleRate))
	if err != nil {
		h.logf("create instance: %v", err)
		return nil
	}

	h.logf("instance created")
	return &Instance{host: h, engine: engine}
}

// Destroy releases the instance. Safe on nil and safe to call twice.
func (inst *Instance) Destroy() {
	if inst == nil || inst.engine == nil {
		return
	}
	inst.host.logf("instance destroyed")
	inst.engine = nil
}

// ProcessBlock transforms frames interleaved stereo frames of signed
// 16-bit samples in place. Absent instances, empty blocks, and frame
// counts beyond the slice are all tolerated.
func (inst *Instance) ProcessBlock(samples []int16, frames int) {
	if inst == nil || inst.engine == nil || frames <= 0 {
		return
	}
	if frames > len(samples)/2 {
		frames = len(samples) / 2
	}
	inst.engine.ProcessInt16(samples[:2*frames])
}
