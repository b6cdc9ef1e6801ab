package errors

import (
	"fmt"
	"strings"
)

// Path renders an element index path as it would be written to index a nested
// Go slice, e.g. "[1][0]". The empty path renders as an empty string.
func Path(indexes []int) string {
	if len(indexes) == 0 {
		return ""
	}
	b := strings.Builder{}
	for _, i := range indexes {
		fmt.Fprintf(&b, "[%d]", i)
	}
	return b.String()
}

// InvalidNumericLiteral indicates that a value could not be converted into an
// exact decimal, either because its textual form is not a decimal literal
// (NaN, infinities, arbitrary text) or because its type has no numeric
// textual form at all. Index holds the position of the element within the
// input collection, and is empty for scalar inputs.
type InvalidNumericLiteral struct {
	Literal string
	Index   []int
}

func (i InvalidNumericLiteral) Error() string {
	if len(i.Index) == 0 {
		return fmt.Sprintf("invalid numeric literal %q", i.Literal)
	}
	return fmt.Sprintf("invalid numeric literal %q at %s", i.Literal, Path(i.Index))
}

// UnsupportedOutputType indicates that the requested output type is not one of
// the known variants.
type UnsupportedOutputType struct {
	Type string
}

func (u UnsupportedOutputType) Error() string {
	return fmt.Sprintf("unsupported output type %s", u.Type)
}

// RaggedShape indicates that a collection is not rectangular: an element at
// Index has a different length or nesting depth than its first sibling.
type RaggedShape struct {
	Index    []int
	Expected []int
	Found    []int
}

func (r RaggedShape) Error() string {
	return fmt.Sprintf("ragged collection at %s: expected shape %v, found %v", Path(r.Index), r.Expected, r.Found)
}

// InvalidDigitSpec indicates that a digit specification cannot be represented
// as a decimal exponent.
type InvalidDigitSpec struct {
	Digits int
}

func (i InvalidDigitSpec) Error() string {
	return fmt.Sprintf("digit specification %d is out of range", i.Digits)
}

// InvalidConfig wraps a configuration validation failure.
type InvalidConfig struct {
	Field  string
	Reason string
}

func (i InvalidConfig) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", i.Field, i.Reason)
}
