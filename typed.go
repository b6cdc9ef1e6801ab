package rounding

import (
	"reflect"
	"strconv"

	"github.com/shopspring/decimal"
)

// Number is the set of Go numeric types accepted by the typed helpers.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Slice rounds every element of values and converts results back to T. A nil
// Rounder rounds on the calling goroutine. Results that do not fit T wrap, as
// with any Go conversion: uint8(250) rounded to the nearest hundred yields 44.
func Slice[T Number](r Rounder, values []T, digits int, mode Mode) ([]T, error) {
	if values == nil {
		return nil, nil
	}
	res, err := roundDecimals(r, values, digits, mode)
	if err != nil {
		return nil, err
	}
	return fromDecimals[T](res.([]decimal.Decimal)), nil
}

// Matrix rounds every element of a rectangular [][]T. Rows of different
// lengths yield a RaggedShape error. Results that do not fit T wrap, as in
// Slice.
func Matrix[T Number](r Rounder, values [][]T, digits int, mode Mode) ([][]T, error) {
	if values == nil {
		return nil, nil
	}
	res, err := roundDecimals(r, values, digits, mode)
	if err != nil {
		return nil, err
	}
	rows := res.([][]decimal.Decimal)
	out := make([][]T, len(rows))
	for i, row := range rows {
		out[i] = fromDecimals[T](row)
	}
	return out, nil
}

func roundDecimals(r Rounder, values any, digits int, mode Mode) (any, error) {
	if r == nil {
		r = defaultRounder
	}
	return r.Round(values, digits, OutputDecimal, mode)
}

func fromDecimals[T Number](ds []decimal.Decimal) []T {
	if ds == nil {
		return nil
	}
	var zero T
	kind := reflect.TypeOf(zero).Kind()
	out := make([]T, len(ds))
	for i, d := range ds {
		switch kind {
		case reflect.Float32:
			f, _ := strconv.ParseFloat(d.String(), 32)
			out[i] = T(f)
		case reflect.Float64:
			f, _ := d.Float64()
			out[i] = T(f)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			out[i] = T(d.BigInt().Uint64())
		default:
			out[i] = T(d.IntPart())
		}
	}
	return out
}
