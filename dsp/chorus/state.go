package chorus

import (
	"math"

	"github.com/cwbudde/junologue/dsp/core"
)

// State is a snapshot of the persisted parameters. Delay history and
// filter/LFO memory are transient and deliberately excluded.
type State struct {
	Mode       Mode
	Mix        float64
	Brightness float64
}

// State returns the current persisted parameters.
func (e *Engine) State() State {
	return State{Mode: e.mode, Mix: e.mix, Brightness: e.brightness}
}

// StateUpdate carries an optional new value per parameter; nil fields
// leave the current value untouched.
type StateUpdate struct {
	Mode       *Mode
	Mix        *float64
	Brightness *float64
}

// ApplyState applies every present field with the same clamping as the
// individual setters, then recomputes derived quantities once.
func (e *Engine) ApplyState(u StateUpdate) {
	if u.Mode != nil {
		e.mode = ClampMode(int(*u.Mode))
	}
	if u.Mix != nil && !math.IsNaN(*u.Mix) {
		e.mix = core.Clamp(*u.Mix, 0, 1)
	}
	if u.Brightness != nil && !math.IsNaN(*u.Brightness) {
		e.brightness = core.Clamp(*u.Brightness, 0, 1)
	}
	e.updateDerived()
}
