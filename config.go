package rounding

import (
	errs "errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-stdlog/stdlog"

	"github.com/heyvito/rounding/errors"
	"github.com/heyvito/rounding/internal/procutils"
)

// DefaultParallelThreshold is the collection size from which elements are
// rounded concurrently when Config.ParallelThreshold is left unset.
const DefaultParallelThreshold = 4096

var validate = validator.New()

type Config struct {
	// Concurrency defines the maximum amount of goroutines used to round the
	// elements of a single collection. Zero uses one goroutine per logical
	// CPU, and one rounds every element on the calling goroutine.
	Concurrency int `validate:"gte=0,lte=4096"`

	// ParallelThreshold indicates how many scalars a collection must hold
	// before its elements are rounded concurrently. Zero means
	// DefaultParallelThreshold.
	ParallelThreshold int `validate:"gte=0"`

	// Logger allows a given stdlog.Logger instance to be set as the system
	// logger. If unset, no logs will be generated.
	Logger stdlog.Logger `validate:"-"`
}

func (c Config) GetConcurrency() int {
	if c.Concurrency == 0 {
		return procutils.LogicalCPUs()
	}
	return c.Concurrency
}

func (c Config) GetParallelThreshold() int {
	if c.ParallelThreshold == 0 {
		return DefaultParallelThreshold
	}
	return c.ParallelThreshold
}

func (c Config) GetLogger() stdlog.Logger {
	if c.Logger != nil {
		return c.Logger.Named("rounding")
	}
	return stdlog.Discard
}

// Validate checks the configuration, returning an errors.InvalidConfig for
// the first offending field.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errs.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		reason := "must satisfy " + fe.Tag()
		if fe.Param() != "" {
			reason += "=" + fe.Param()
		}
		return errors.InvalidConfig{Field: fe.Field(), Reason: reason}
	}
	return err
}
