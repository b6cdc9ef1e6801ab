package internal

import "fmt"

// Mode selects how a digit specification is interpreted.
type Mode uint8

const (
	// ModeFractional keeps the given amount of digits after the decimal
	// point. Zero rounds to a whole number, and negative values round to
	// tens, hundreds, and so on.
	ModeFractional Mode = iota

	// ModePlace rounds to the given power-of-ten place: 0 rounds to a whole
	// number, 1 to the nearest ten, 2 to the nearest hundred. Negative places
	// keep digits after the decimal point.
	ModePlace
)

func (m Mode) String() string {
	switch m {
	case ModeFractional:
		return "fractional"
	case ModePlace:
		return "place"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}
