package internal

import (
	errs "errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/go-stdlog/stdlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heyvito/rounding/errors"
)

// textBroadcaster renders every scalar rounded to two fractional digits.
func textBroadcaster(t *testing.T) *Broadcaster {
	t.Helper()
	q, err := Quantum(ModeFractional, 2)
	require.NoError(t, err)
	return &Broadcaster{
		Leaf: func(v reflect.Value) (reflect.Value, error) {
			d, err := ParseValue(v)
			if err != nil {
				return reflect.Value{}, err
			}
			return reflect.ValueOf(Quantize(d, q).StringFixed(Places(q))), nil
		},
		LeafType:    reflect.TypeOf(""),
		Concurrency: 1,
		Log:         stdlog.Discard,
	}
}

func TestBroadcastScalar(t *testing.T) {
	v, err := textBroadcaster(t).Apply(1.005)
	require.NoError(t, err)
	assert.Equal(t, "1.01", v)
}

func TestBroadcastPreservesShape(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  any
	}{
		{"single element", []float64{1.234}, []string{"1.23"}},
		{"flat", []float64{1, 2.5, -0.125}, []string{"1.00", "2.50", "-0.13"}},
		{
			"matrix",
			[][]float64{{1.111, 2.222, 3.335}, {4, 5.005, 6.9999}},
			[][]string{{"1.11", "2.22", "3.34"}, {"4.00", "5.01", "7.00"}},
		},
		{"array", [3]int{1, 2, 3}, [3]string{"1.00", "2.00", "3.00"}},
		{"slice of arrays", [][2]float32{{0.5, 1.5}}, [][2]string{{"0.50", "1.50"}}},
		{
			"dynamic",
			[]any{[]any{1, "2.345"}, []any{3.3, 4}},
			[]any{[]any{"1.00", "2.35"}, []any{"3.30", "4.00"}},
		},
		{
			"arrays behind interfaces",
			[]any{[2]int{1, 2}, [2]int{3, 4}},
			[]any{[2]string{"1.00", "2.00"}, [2]string{"3.00", "4.00"}},
		},
		{"empty", []float64{}, []string{}},
		{"nil", []float64(nil), []string(nil)},
		{"empty rows", [][]int{{}, {}}, [][]string{{}, {}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, err := textBroadcaster(t).Apply(c.value)
			require.NoError(t, err)
			assert.Equal(t, c.want, v)
		})
	}
}

func TestBroadcastDoesNotModifyInput(t *testing.T) {
	in := []any{[]any{1.005, 2.675}}
	_, err := textBroadcaster(t).Apply(in)
	require.NoError(t, err)
	assert.Equal(t, []any{[]any{1.005, 2.675}}, in)
}

func TestBroadcastReportsFailingIndex(t *testing.T) {
	_, err := textBroadcaster(t).Apply([][]any{{1, 2}, {"x", 3}})
	var lit errors.InvalidNumericLiteral
	require.True(t, errs.As(err, &lit))
	assert.Equal(t, "x", lit.Literal)
	assert.Equal(t, []int{1, 0}, lit.Index)
	assert.EqualError(t, err, `invalid numeric literal "x" at [1][0]`)
}

func TestBroadcastRejectsRaggedInput(t *testing.T) {
	v, err := textBroadcaster(t).Apply([][]float64{{1, 2}, {3}})
	assert.Nil(t, v)
	var rag errors.RaggedShape
	assert.True(t, errs.As(err, &rag))
}

func TestBroadcastRejectsNilElements(t *testing.T) {
	_, err := textBroadcaster(t).Apply([]any{1, nil})
	var lit errors.InvalidNumericLiteral
	require.True(t, errs.As(err, &lit))
	assert.Equal(t, "<nil>", lit.Literal)
	assert.Equal(t, []int{1}, lit.Index)
}

// TestBroadcastConcurrentMatchesSequential exercises the chunked worker path,
// making sure results and reported failures do not depend on scheduling.
func TestBroadcastConcurrentMatchesSequential(t *testing.T) {
	values := make([][]float64, 50)
	for i := range values {
		values[i] = make([]float64, 40)
		for j := range values[i] {
			values[i][j] = float64(i*40+j) / 1000
		}
	}

	seq := textBroadcaster(t)
	par := textBroadcaster(t)
	par.Concurrency = 7
	par.Threshold = 16
	assert.Equal(t, 7, par.workers(2000))
	assert.Equal(t, 1, par.workers(15))

	want, err := seq.Apply(values)
	require.NoError(t, err)
	got, err := par.Apply(values)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	broken := make([]any, 2000)
	for i := range broken {
		broken[i] = fmt.Sprintf("%d.005", i)
	}
	broken[1500] = "bad"
	broken[30] = "worse"

	for _, b := range []*Broadcaster{seq, par} {
		v, err := b.Apply(broken)
		assert.Nil(t, v)
		var lit errors.InvalidNumericLiteral
		require.True(t, errs.As(err, &lit))
		assert.Equal(t, "worse", lit.Literal)
		assert.Equal(t, []int{30}, lit.Index)
	}
}

func TestBroadcastWrapsOtherLeafErrors(t *testing.T) {
	b := &Broadcaster{
		Leaf: func(v reflect.Value) (reflect.Value, error) {
			return reflect.Value{}, fmt.Errorf("boom")
		},
		LeafType: reflect.TypeOf(""),
	}
	_, err := b.Apply([]int{1})
	assert.EqualError(t, err, "element [0]: boom")
}
