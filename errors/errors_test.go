package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath(t *testing.T) {
	assert.Equal(t, "", Path(nil))
	assert.Equal(t, "[3]", Path([]int{3}))
	assert.Equal(t, "[1][0][12]", Path([]int{1, 0, 12}))
}

func TestErrorMessages(t *testing.T) {
	assert.EqualError(t, InvalidNumericLiteral{Literal: "NaN"}, `invalid numeric literal "NaN"`)
	assert.EqualError(t, InvalidNumericLiteral{Literal: "x", Index: []int{0, 2}}, `invalid numeric literal "x" at [0][2]`)
	assert.EqualError(t, UnsupportedOutputType{Type: "OutputType(9)"}, "unsupported output type OutputType(9)")
	assert.EqualError(t, RaggedShape{Index: []int{1}, Expected: []int{2}, Found: []int{1}}, "ragged collection at [1]: expected shape [2], found [1]")
	assert.EqualError(t, InvalidDigitSpec{Digits: 5000}, "digit specification 5000 is out of range")
	assert.EqualError(t, InvalidConfig{Field: "Concurrency", Reason: "must satisfy gte=0"}, "invalid configuration: Concurrency must satisfy gte=0")
}
