package internal

import (
	"reflect"
	"slices"

	"github.com/heyvito/rounding/errors"
)

// Shape holds the length of each dimension of a rectangular collection.
// Scalars have an empty shape.
type Shape []int

// Size returns the amount of scalars held by a collection of this shape.
func (s Shape) Size() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Unravel converts a row-major flat position into an index path.
func (s Shape) Unravel(pos int) []int {
	idx := make([]int, len(s))
	for d := len(s) - 1; d >= 0; d-- {
		if s[d] == 0 {
			continue
		}
		idx[d] = pos % s[d]
		pos /= s[d]
	}
	return idx
}

// IsCollection reports whether v is a slice or an array, looking through
// interfaces.
func IsCollection(v reflect.Value) bool {
	v = unwrapInterface(v)
	if !v.IsValid() {
		return false
	}
	k := v.Kind()
	return k == reflect.Slice || k == reflect.Array
}

// ShapeOf walks a collection and returns its shape. Every element of a
// dimension must itself have the same shape as its first sibling, otherwise
// RaggedShape is returned.
func ShapeOf(v reflect.Value) (Shape, error) {
	return shapeOf(v, nil)
}

func shapeOf(v reflect.Value, path []int) (Shape, error) {
	v = unwrapInterface(v)
	if !IsCollection(v) {
		return Shape{}, nil
	}

	n := v.Len()
	if n == 0 {
		return Shape{0}, nil
	}

	var inner Shape
	for i := 0; i < n; i++ {
		path = append(path, i)
		s, err := shapeOf(v.Index(i), path)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			inner = s
		} else if !slices.Equal(inner, s) {
			return nil, errors.RaggedShape{
				Index:    slices.Clone(path),
				Expected: inner,
				Found:    s,
			}
		}
		path = path[:len(path)-1]
	}

	return append(Shape{n}, inner...), nil
}

func unwrapInterface(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}
