package internal

import (
	"github.com/shopspring/decimal"
)

// Quantize rounds d to the nearest multiple of q, resolving ties away from
// zero. The result carries exactly Places(q) fractional digits.
func Quantize(d, q decimal.Decimal) decimal.Decimal {
	return d.Round(Places(q))
}

// RoundHalfUp parses value into an exact decimal and rounds it half-up to the
// quantum described by mode and digits.
func RoundHalfUp(value any, mode Mode, digits int) (decimal.Decimal, error) {
	q, err := Quantum(mode, digits)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := ParseLiteral(value)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return Quantize(d, q), nil
}

// RoundHalfUpFractional rounds value keeping digits digits after the decimal
// point.
func RoundHalfUpFractional(value any, digits int) (decimal.Decimal, error) {
	return RoundHalfUp(value, ModeFractional, digits)
}

// RoundHalfUpPlace rounds value to the 10^place place.
func RoundHalfUpPlace(value any, place int) (decimal.Decimal, error) {
	return RoundHalfUp(value, ModePlace, place)
}
