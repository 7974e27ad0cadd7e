package host

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/cwbudde/junologue/dsp/chorus"
)

// Parameter keys understood by SetParam and GetParam.
const (
	ParamMode        = "mode"
	ParamMix         = "mix"
	ParamBrightness  = "brightness"
	ParamState       = "state"
	ParamName        = "name"
	ParamUIHierarchy = "ui_hierarchy"
)

// Errors returned by GetParam.
var (
	ErrAbsentInstance = errors.New("host: absent instance")
	ErrUnknownParam   = errors.New("host: unknown parameter")
)

// statePayload is the persisted parameter blob. Pointer fields let a
// partial payload update only the parameters it names.
type statePayload struct {
	Mode       *float64 `json:"mode"`
	Mix        *float64 `json:"mix"`
	Brightness *float64 `json:"brightness"`
}

// stateDocument is the serialized form: integer mode, four fractional
// digits on the continuous parameters.
type stateDocument struct {
	Mode       int         `json:"mode"`
	Mix        json.Number `json:"mix"`
	Brightness json.Number `json:"brightness"`
}

type uiLevel struct {
	Children []string `json:"children"`
	Knobs    []string `json:"knobs"`
	Params   []string `json:"params"`
}

type uiHierarchy struct {
	Modes  []string           `json:"modes"`
	Levels map[string]uiLevel `json:"levels"`
}

// SetParam applies one string-keyed parameter update. Values are
// clamped into range; unparseable values and unknown keys are ignored
// and the instance keeps its last valid state.
func (inst *Instance) SetParam(key, value string) {
	if inst == nil || inst.engine == nil {
		return
	}

	switch key {
	case ParamState:
		inst.setState(value)
	case ParamMode:
		if mode, err := chorus.ParseMode(value); err == nil {
			inst.engine.SetMode(mode)
			return
		}
		if n, err := strconv.Atoi(value); err == nil {
			inst.engine.SetMode(chorus.ClampMode(n))
		} else {
			inst.host.logf("set mode: unrecognized value %q", value)
		}
	case ParamMix:
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			inst.engine.SetMix(v)
		} else {
			inst.host.logf("set mix: unparseable value %q", value)
		}
	case ParamBrightness:
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			inst.engine.SetBrightness(v)
		} else {
			inst.host.logf("set brightness: unparseable value %q", value)
		}
	default:
		inst.host.logf("set param: unknown key %q", key)
	}
}

func (inst *Instance) setState(value string) {
	var payload statePayload
	if err := json.Unmarshal([]byte(value), &payload); err != nil {
		inst.host.logf("set state: invalid payload: %v", err)
		return
	}

	var update chorus.StateUpdate
	if payload.Mode != nil {
		mode := chorus.ClampMode(int(*payload.Mode))
		update.Mode = &mode
	}
	update.Mix = payload.Mix
	update.Brightness = payload.Brightness
	inst.engine.ApplyState(update)
}

// GetParam returns the string form of one parameter. Unknown keys
// report ErrUnknownParam; a nil or destroyed instance reports
// ErrAbsentInstance.
func (inst *Instance) GetParam(key string) (string, error) {
	if inst == nil || inst.engine == nil {
		return "", ErrAbsentInstance
	}

	switch key {
	case ParamMode:
		return inst.engine.Mode().String(), nil
	case ParamMix:
		return strconv.FormatFloat(inst.engine.Mix(), 'f', 2, 64), nil
	case ParamBrightness:
		return strconv.FormatFloat(inst.engine.Brightness(), 'f', 2, 64), nil
	case ParamName:
		return DisplayName, nil
	case ParamState:
		s := inst.engine.State()
		doc := stateDocument{
			Mode:       int(s.Mode),
			Mix:        json.Number(strconv.FormatFloat(s.Mix, 'f', 4, 64)),
			Brightness: json.Number(strconv.FormatFloat(s.Brightness, 'f', 4, 64)),
		}
		b, err := json.Marshal(doc)
		if err != nil {
			return "", fmt.Errorf("host: marshal state: %w", err)
		}
		return string(b), nil
	case ParamUIHierarchy:
		controls := []string{ParamMode, ParamMix, ParamBrightness}
		b, err := json.Marshal(uiHierarchy{
			Levels: map[string]uiLevel{
				"root": {Knobs: controls, Params: controls},
			},
		})
		if err != nil {
			return "", fmt.Errorf("host: marshal ui hierarchy: %w", err)
		}
		return string(b), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownParam, key)
}
