package internal

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/heyvito/rounding/errors"
)

var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

// ParseLiteral converts value into an exact decimal by way of its decimal
// text. Floating point values are formatted with the shortest representation
// that round-trips, so 2.675 is read as the decimal 2.675 rather than the
// binary value closest to it.
func ParseLiteral(value any) (decimal.Decimal, error) {
	return ParseValue(reflect.ValueOf(value))
}

// ParseValue is the reflect.Value counterpart of ParseLiteral. Interfaces and
// non-nil pointers are followed to the value they hold.
func ParseValue(v reflect.Value) (decimal.Decimal, error) {
	d, err := parseValue(v)
	if err != nil {
		return d, err
	}
	if !withinRange(d) {
		return invalidLiteral(d.Coefficient().String() + "E" + strconv.Itoa(int(d.Exponent())))
	}
	return normalizeZero(d), nil
}

func parseValue(v reflect.Value) (decimal.Decimal, error) {
	if !v.IsValid() {
		return invalidLiteral("<nil>")
	}
	if d, ok, err := parseExact(v.Interface()); ok {
		return d, err
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ParseText(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32:
		return parseFloat(v.Float(), 32)
	case reflect.Float64:
		return parseFloat(v.Float(), 64)
	case reflect.String:
		return ParseText(v.String())
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return invalidLiteral("<nil>")
		}
		if v.Kind() == reflect.Interface || !v.Type().Implements(stringerType) {
			return parseValue(v.Elem())
		}
	}

	if v.Type().Implements(stringerType) {
		return ParseText(v.Interface().(fmt.Stringer).String())
	}
	return invalidLiteral(fmt.Sprint(v.Interface()))
}

// parseExact handles types holding an exact value whose String method would
// not render every digit.
func parseExact(value any) (d decimal.Decimal, ok bool, err error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, true, nil
	case *decimal.Decimal:
		if v != nil {
			return *v, true, nil
		}
	case *big.Int:
		if v != nil {
			return decimal.NewFromBigInt(v, 0), true, nil
		}
	case *big.Float:
		if v != nil {
			if v.IsInf() {
				d, err = invalidLiteral(v.String())
			} else {
				d, err = ParseText(v.Text('g', -1))
			}
			return d, true, err
		}
	case *big.Rat:
		if v != nil {
			if n, exact := v.FloatPrec(); exact {
				d, err = ParseText(v.FloatString(n))
			} else {
				d, err = invalidLiteral(v.RatString())
			}
			return d, true, err
		}
	default:
		return d, false, nil
	}
	d, err = invalidLiteral("<nil>")
	return d, true, err
}

// ParseText parses a decimal literal such as "1.005", "-3", ".5" or "1E-7".
// Surrounding whitespace is ignored. NaN, infinities and values whose
// exponent lies beyond MaxDigits are rejected.
func ParseText(text string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil || !withinRange(d) {
		return invalidLiteral(text)
	}
	return normalizeZero(d), nil
}

// withinRange reports whether both the exponent and the position of the most
// significant digit of d are within MaxDigits of the decimal point. Rounding
// values beyond that would require coefficients of unbounded size.
func withinRange(d decimal.Decimal) bool {
	if d.IsZero() {
		return true
	}
	exp := int(d.Exponent())
	adjusted := exp + d.NumDigits() - 1
	return exp >= -MaxDigits && exp <= MaxDigits &&
		adjusted >= -MaxDigits && adjusted <= MaxDigits
}

func normalizeZero(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}
	return d
}

func parseFloat(f float64, bitSize int) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return invalidLiteral(strconv.FormatFloat(f, 'g', -1, bitSize))
	}
	return ParseText(strconv.FormatFloat(f, 'g', -1, bitSize))
}

func invalidLiteral(text string) (decimal.Decimal, error) {
	return decimal.Decimal{}, errors.InvalidNumericLiteral{Literal: text}
}
