package internal

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/heyvito/rounding/errors"
	"github.com/heyvito/rounding/internal/metrics"
)

// MaxDigits bounds the magnitude of a digit specification. Quantizing to an
// exponent further away than this would require coefficients with thousands
// of digits.
const MaxDigits = 4096

type quantumKey struct {
	mode   Mode
	digits int
}

var quanta AtomicMap[quantumKey, decimal.Decimal]

// QuantumText renders the rounding quantum for a digit specification:
//
//	ModeFractional, 2  -> "0.01"
//	ModeFractional, 0  -> "0"
//	ModeFractional, -1 -> "1E1"
//	ModePlace, 2       -> "1E2"
//	ModePlace, 0       -> "1E0"
//	ModePlace, -2      -> "1E-2"
func QuantumText(mode Mode, digits int) string {
	if mode == ModePlace || digits < 0 {
		if mode == ModeFractional {
			digits = -digits
		}
		return fmt.Sprintf("1E%d", digits)
	}
	if digits == 0 {
		return "0"
	}
	return "0." + strings.Repeat("0", digits-1) + "1"
}

// Quantum returns the exact decimal step a value is rounded to. The result
// only depends on mode and digits, and is cached across calls.
func Quantum(mode Mode, digits int) (decimal.Decimal, error) {
	if mode != ModeFractional && mode != ModePlace {
		return decimal.Decimal{}, fmt.Errorf("unknown rounding mode %s", mode)
	}
	if digits > MaxDigits || digits < -MaxDigits {
		return decimal.Decimal{}, errors.InvalidDigitSpec{Digits: digits}
	}

	key := quantumKey{mode: mode, digits: digits}
	if q, ok := quanta.Load(key); ok {
		return q, nil
	}

	metrics.Simple(metrics.QuantumCacheMisses, 1)
	q, err := decimal.NewFromString(QuantumText(mode, digits))
	if err != nil {
		return decimal.Decimal{}, err
	}
	q, _ = quanta.LoadOrStore(key, q)
	return q, nil
}

// Places returns the amount of fractional digits a value quantized to q
// carries. It is negative when q is coarser than one.
func Places(q decimal.Decimal) int32 {
	return -q.Exponent()
}
