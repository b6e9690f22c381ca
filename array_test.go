// File: array_test.go
// Author: momentics <momentics@gmail.com>
//
// Leaf variant behavior: identity, aliasing, wrapper adaptation.

package recarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/recarray"
	"github.com/momentics/recarray/api"
)

func TestEmptyIdentity(t *testing.T) {
	e := recarray.NewEmpty[int]()
	assert.Equal(t, 0, e.Len())
	assert.Empty(t, e.Slice())
	assert.Empty(t, e.Copy())
}

func TestSingleIdentity(t *testing.T) {
	s := recarray.NewSingle(42)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, []int{42}, s.Slice())
}

func TestSingleSliceAliases(t *testing.T) {
	s := recarray.NewSingle("a")
	view := s.Slice()
	view[0] = "b"
	assert.Equal(t, "b", *s.Item())

	*s.Item() = "c"
	assert.Equal(t, []string{"c"}, s.Slice())
}

func TestWrapArray(t *testing.T) {
	w := recarray.WrapArray[int]([4]int{1, 2, 3, 4})
	require.Equal(t, 4, w.Len())
	assert.Equal(t, []int{1, 2, 3, 4}, w.Slice())
	assert.Equal(t, [4]int{1, 2, 3, 4}, w.Unwrap())

	w.Slice()[2] = 99
	assert.Equal(t, [4]int{1, 2, 99, 4}, w.Unwrap())
}

func TestWrapMalformedPanics(t *testing.T) {
	// Not an array type at all.
	assert.Panics(t, func() { recarray.WrapArray[int]("not an array") })
	// Array of the wrong element type.
	assert.Panics(t, func() {
		var w recarray.Wrap[int, [3]string]
		w.Len()
	})
}

func TestStructElements(t *testing.T) {
	type point struct{ X, Y int32 }
	v := recarray.Of2(point{1, 2}, point{3, 4})
	require.Equal(t, 2, v.Len())
	assert.Equal(t, []point{{1, 2}, {3, 4}}, v.Slice())
}

func TestViewInterface(t *testing.T) {
	s := recarray.Of2("x", "y")
	var view api.Array[string] = &s
	require.Equal(t, 2, view.Len())

	snapshot := view.Copy()
	assert.Equal(t, []string{"x", "y"}, snapshot)
	snapshot[0] = "z"
	// Copy is standalone; the value is untouched.
	assert.Equal(t, []string{"x", "y"}, view.Slice())
}

func TestSliceLenMatchesLen(t *testing.T) {
	e := recarray.NewEmpty[byte]()
	s := recarray.NewSingle[byte](1)
	w := recarray.WrapArray[byte]([5]byte{})
	c := recarray.Of4[byte](1, 2, 3, 4)

	assert.Equal(t, e.Len(), len(e.Slice()))
	assert.Equal(t, s.Len(), len(s.Slice()))
	assert.Equal(t, w.Len(), len(w.Slice()))
	assert.Equal(t, c.Len(), len(c.Slice()))
}
