package rounding

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/heyvito/rounding/errors"
)

// OutputType selects the Go type each rounded scalar is converted to.
type OutputType uint8

const (
	// OutputString renders the rounded value as decimal text. Fractional
	// rounding to n >= 0 digits always renders exactly n fractional digits,
	// so 1 rounded to 2 digits yields "1.00". Coarser quanta render plain
	// integers such as "100".
	OutputString OutputType = iota

	// OutputInteger converts the rounded value to an int64, discarding any
	// fractional digits. Values outside the int64 range wrap.
	OutputInteger

	// OutputFloat converts the rounded value to the nearest float64.
	OutputFloat

	// OutputFloat32 converts the rounded value to the nearest float32.
	OutputFloat32

	// OutputDecimal yields the exact decimal.Decimal.
	OutputDecimal
)

type outputVariant struct {
	name    string
	aliases []string
	goType  reflect.Type
	convert func(d decimal.Decimal, places int32) any
}

var outputVariants = [...]outputVariant{
	OutputString: {
		name:    "string",
		aliases: []string{"str", "text"},
		goType:  reflect.TypeOf(""),
		convert: func(d decimal.Decimal, places int32) any {
			return d.StringFixed(places)
		},
	},
	OutputInteger: {
		name:    "integer",
		aliases: []string{"int", "int64"},
		goType:  reflect.TypeOf(int64(0)),
		convert: func(d decimal.Decimal, _ int32) any {
			return d.IntPart()
		},
	},
	OutputFloat: {
		name:    "float",
		aliases: []string{"float64", "double"},
		goType:  reflect.TypeOf(float64(0)),
		convert: func(d decimal.Decimal, _ int32) any {
			f, _ := d.Float64()
			return f
		},
	},
	OutputFloat32: {
		name:    "float32",
		aliases: []string{"single"},
		goType:  reflect.TypeOf(float32(0)),
		convert: func(d decimal.Decimal, _ int32) any {
			f, _ := strconv.ParseFloat(d.String(), 32)
			return float32(f)
		},
	},
	OutputDecimal: {
		name:    "decimal",
		aliases: []string{"dec"},
		goType:  reflect.TypeOf(decimal.Decimal{}),
		convert: func(d decimal.Decimal, _ int32) any {
			return d
		},
	},
}

func (o OutputType) variant() (outputVariant, error) {
	if int(o) >= len(outputVariants) {
		return outputVariant{}, errors.UnsupportedOutputType{Type: o.String()}
	}
	return outputVariants[o], nil
}

func (o OutputType) String() string {
	if int(o) < len(outputVariants) {
		return outputVariants[o].name
	}
	return fmt.Sprintf("OutputType(%d)", uint8(o))
}

// GoType returns the type of the scalars produced for o.
func (o OutputType) GoType() (reflect.Type, error) {
	v, err := o.variant()
	if err != nil {
		return nil, err
	}
	return v.goType, nil
}

// ParseOutputType resolves an output type from its name or one of its
// aliases, ignoring case.
func ParseOutputType(name string) (OutputType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, v := range outputVariants {
		if v.name == name {
			return OutputType(i), nil
		}
		for _, a := range v.aliases {
			if a == name {
				return OutputType(i), nil
			}
		}
	}
	return 0, errors.UnsupportedOutputType{Type: strconv.Quote(name)}
}
