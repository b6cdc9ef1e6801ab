// Package rounding implements decimal-accurate "round half up" rounding of
// scalars and rectangular collections of scalars.
//
// Values are never rounded in binary floating point. Each value is first
// converted to its shortest decimal text (2.675 is read as "2.675"), parsed
// into an exact decimal, and rounded to a quantum derived from the digit
// specification alone. Ties are resolved away from zero, so 2.5 rounds to 3
// and -2.5 rounds to -3.
package rounding

import (
	"reflect"

	"github.com/go-stdlog/stdlog"
	"github.com/shopspring/decimal"

	"github.com/heyvito/rounding/internal"
	"github.com/heyvito/rounding/internal/metrics"
)

type Rounder interface {
	// Round rounds value, which is either a scalar or a slice or array
	// (nested to any depth) of scalars, and converts every rounded scalar to
	// out. Scalars yield a bare scalar, and collections yield a collection of
	// the same shape. Collections must be rectangular; a RaggedShape error is
	// returned otherwise. Any failing element aborts the whole call.
	Round(value any, digits int, out OutputType, mode Mode) (any, error)

	// RoundScalar rounds a single scalar and converts it to out. Collections
	// are rejected with an InvalidNumericLiteral error.
	RoundScalar(value any, digits int, out OutputType, mode Mode) (any, error)

	// Fractional returns value rounded half-up to digits digits after the
	// decimal point. Negative digits round to tens, hundreds, and so on.
	Fractional(value any, digits int) (decimal.Decimal, error)

	// Place returns value rounded half-up to the 10^place place.
	Place(value any, place int) (decimal.Decimal, error)
}

func New(config Config) (Rounder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	log := config.GetLogger()
	r := &rounder{
		concurrency: config.GetConcurrency(),
		threshold:   config.GetParallelThreshold(),
		log:         log,
	}
	log.Info("Rounder is initializing",
		"Concurrency", r.concurrency,
		"ParallelThreshold", r.threshold,
	)
	return r, nil
}

var defaultRounder = &rounder{
	concurrency: 1,
	threshold:   DefaultParallelThreshold,
	log:         stdlog.Discard,
}

// Round rounds value on the calling goroutine. See Rounder.Round.
func Round(value any, digits int, out OutputType, mode Mode) (any, error) {
	return defaultRounder.Round(value, digits, out, mode)
}

// Fractional rounds value half-up to digits digits after the decimal point.
func Fractional(value any, digits int) (decimal.Decimal, error) {
	return defaultRounder.Fractional(value, digits)
}

// Place rounds value half-up to the 10^place place.
func Place(value any, place int) (decimal.Decimal, error) {
	return defaultRounder.Place(value, place)
}

type rounder struct {
	concurrency int
	threshold   int
	log         stdlog.Logger
}

// measure records a call and starts timing it. The returned function records
// the latency, and a failure when *err is set.
func measure() func(err *error) {
	metrics.Simple(metrics.RoundCalls, 1)
	done := metrics.Measure(metrics.RoundLatency)
	return func(err *error) {
		done()
		if *err != nil {
			metrics.Simple(metrics.RoundFailures, 1)
		}
	}
}

func (r *rounder) Round(value any, digits int, out OutputType, mode Mode) (res any, err error) {
	defer measure()(&err)

	b, err := r.broadcaster(digits, out, mode)
	if err != nil {
		return nil, err
	}
	return b.Apply(value)
}

func (r *rounder) RoundScalar(value any, digits int, out OutputType, mode Mode) (res any, err error) {
	defer measure()(&err)

	leaf, _, err := r.leaf(digits, out, mode)
	if err != nil {
		return nil, err
	}
	v, err := leaf(reflect.ValueOf(value))
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

func (r *rounder) Fractional(value any, digits int) (decimal.Decimal, error) {
	return internal.RoundHalfUpFractional(value, digits)
}

func (r *rounder) Place(value any, place int) (decimal.Decimal, error) {
	return internal.RoundHalfUpPlace(value, place)
}

func (r *rounder) broadcaster(digits int, out OutputType, mode Mode) (*internal.Broadcaster, error) {
	leaf, leafType, err := r.leaf(digits, out, mode)
	if err != nil {
		return nil, err
	}
	return &internal.Broadcaster{
		Leaf:        leaf,
		LeafType:    leafType,
		Concurrency: r.concurrency,
		Threshold:   r.threshold,
		Log:         r.log,
	}, nil
}

// leaf builds the per-scalar conversion for a call. The quantum is resolved
// once, before any element is looked at.
func (r *rounder) leaf(digits int, out OutputType, mode Mode) (internal.LeafFunc, reflect.Type, error) {
	variant, err := out.variant()
	if err != nil {
		return nil, nil, err
	}
	q, err := internal.Quantum(mode, digits)
	if err != nil {
		return nil, nil, err
	}
	places := internal.Places(q)

	return func(v reflect.Value) (reflect.Value, error) {
		d, err := internal.ParseValue(v)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(variant.convert(internal.Quantize(d, q), places)), nil
	}, variant.goType, nil
}
