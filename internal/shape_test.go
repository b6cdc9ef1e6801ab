package internal

import (
	errs "errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heyvito/rounding/errors"
)

func TestShapeOf(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  Shape
	}{
		{"scalar", 1.5, Shape{}},
		{"flat", []float64{1, 2, 3}, Shape{3}},
		{"empty", []float64{}, Shape{0}},
		{"matrix", [][]float64{{1, 2, 3}, {4, 5, 6}}, Shape{2, 3}},
		{"array", [2][3]int{}, Shape{2, 3}},
		{"dynamic", []any{[]any{1, 2}, []any{"3", 4.5}}, Shape{2, 2}},
		{"mixed containers", []any{[]int{1, 2}, [2]float64{3, 4}}, Shape{2, 2}},
		{"empty rows", [][]int{{}, nil}, Shape{2, 0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := ShapeOf(reflect.ValueOf(c.value))
			require.NoError(t, err)
			assert.Equal(t, c.want, s)
		})
	}
}

func TestShapeOfRejectsRaggedCollections(t *testing.T) {
	cases := []struct {
		name     string
		value    any
		index    []int
		expected []int
		found    []int
	}{
		{"short row", [][]float64{{1, 2}, {3}}, []int{1}, []int{2}, []int{1}},
		{"empty row", [][]int{{1}, {}}, []int{1}, []int{1}, []int{0}},
		{"scalar beside collection", []any{1, []any{2}}, []int{1}, []int{}, []int{1}},
		{"deep", [][][]int{{{1}, {2}}, {{3}, {4, 5}}}, []int{1, 1}, []int{1}, []int{2}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ShapeOf(reflect.ValueOf(c.value))
			var rag errors.RaggedShape
			require.True(t, errs.As(err, &rag), "expected RaggedShape, got %v", err)
			assert.Equal(t, c.index, rag.Index)
			assert.Equal(t, c.expected, rag.Expected)
			assert.Equal(t, c.found, rag.Found)
		})
	}
}

func TestShapeUnravel(t *testing.T) {
	s := Shape{2, 3, 4}
	assert.Equal(t, 24, s.Size())
	assert.Equal(t, []int{0, 0, 0}, s.Unravel(0))
	assert.Equal(t, []int{0, 1, 2}, s.Unravel(6))
	assert.Equal(t, []int{1, 2, 3}, s.Unravel(23))
	assert.Equal(t, 1, Shape{}.Size())
}
