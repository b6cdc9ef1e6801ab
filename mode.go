package rounding

import "github.com/heyvito/rounding/internal"

// Mode selects how the digit specification given to Round is interpreted.
type Mode = internal.Mode

const (
	// ModeFractional keeps digits digits after the decimal point. It is the
	// zero value of Mode.
	ModeFractional = internal.ModeFractional

	// ModePlace rounds to the 10^digits place: 0 is the ones place, 1 the
	// tens, 2 the hundreds.
	ModePlace = internal.ModePlace
)

// ModeFromFlag maps a "round fractional digits" flag to a Mode.
func ModeFromFlag(fractional bool) Mode {
	if fractional {
		return ModeFractional
	}
	return ModePlace
}
