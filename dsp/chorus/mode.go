package chorus

import "fmt"

// Mode selects which chorus voices contribute to the wet signal.
type Mode int

const (
	// ModeI uses voice I alone (0.513 Hz LFO).
	ModeI Mode = iota
	// ModeIAndII blends both voices at equal power.
	ModeIAndII
	// ModeII uses voice II alone (0.863 Hz LFO).
	ModeII
)

const invSqrt2 = 0.7071067811865476

// modeGains maps each mode to its (voice I, voice II) tap gains.
var modeGains = [3][2]float64{
	{1, 0},
	{invSqrt2, invSqrt2},
	{0, 1},
}

var modeNames = [3]string{"I", "I+II", "II"}

// String returns the front-panel name of the mode.
func (m Mode) String() string {
	if m < ModeI || m > ModeII {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode resolves a front-panel mode name.
func ParseMode(name string) (Mode, error) {
	for i, n := range modeNames {
		if name == n {
			return Mode(i), nil
		}
	}
	return ModeI, fmt.Errorf("chorus: unknown mode name %q", name)
}

// ClampMode limits an arbitrary integer to the valid mode range.
func ClampMode(m int) Mode {
	if m < int(ModeI) {
		return ModeI
	}
	if m > int(ModeII) {
		return ModeII
	}
	return Mode(m)
}
