// File: composite_test.go
// Author: momentics <momentics@gmail.com>
//
// Composite variant behavior: concatenation order, repetition, deep nesting.

package recarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/recarray"
)

// pair is the Of2 result type: two singles concatenated.
type pair = recarray.Concat[int, recarray.Single[int], recarray.Single[int]]

func TestConcatOrder(t *testing.T) {
	a := recarray.Of2(1, 2)
	b := recarray.Of3(3, 4, 5)
	c := recarray.AppendBack[int](a, b)

	require.Equal(t, 5, c.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, c.Slice())
	assert.Equal(t, []int{1, 2}, c.Head().Slice())
	assert.Equal(t, []int{3, 4, 5}, c.Tail().Slice())
}

func TestConcatOperandViewsAlias(t *testing.T) {
	c := recarray.AppendBack[int](recarray.Of2(1, 2), recarray.NewSingle(3))
	c.Head().Slice()[0] = 10
	c.Tail().Slice()[0] = 30
	assert.Equal(t, []int{10, 2, 30}, c.Slice())
}

func TestRepeat(t *testing.T) {
	reps := [3]pair{recarray.Of2(1, 2), recarray.Of2(3, 4), recarray.Of2(5, 6)}
	r := recarray.NewRepeat[int, pair](reps)

	require.Equal(t, 6, r.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, r.Slice())
}

func TestRepeatOfSingles(t *testing.T) {
	var units [4]recarray.Single[string]
	for i, s := range []string{"a", "b", "c", "d"} {
		units[i] = recarray.NewSingle(s)
	}
	r := recarray.NewRepeat[string, recarray.Single[string]](units)
	assert.Equal(t, []string{"a", "b", "c", "d"}, r.Slice())
}

func TestRepeatMalformedPanics(t *testing.T) {
	// NA element type must be exactly the operand type.
	assert.Panics(t, func() {
		var r recarray.Repeat[int, recarray.Single[int], [2]int]
		r.Len()
	})
}

// padded is a composite whose physical size exceeds its logical one: the
// trailing Empty field forces end padding.
type padded = recarray.Concat[int64, recarray.Single[int64], recarray.Empty[int64]]

func TestConcatPaddedHeadPanics(t *testing.T) {
	assert.Panics(t, func() {
		recarray.NewConcat[int64](recarray.PushFront(recarray.Of0[int64](), 1), recarray.NewSingle[int64](2))
	})
	// A zero value of such a type never passes through a constructor, so the
	// view itself repeats the check.
	assert.Panics(t, func() {
		var c recarray.Concat[int64, padded, recarray.Single[int64]]
		c.Slice()
	})
}

func TestRepeatPaddedOperandPanics(t *testing.T) {
	assert.Panics(t, func() {
		var reps [2]padded
		recarray.NewRepeat[int64, padded](reps)
	})
	assert.Panics(t, func() {
		var r recarray.Repeat[int64, padded, [2]padded]
		r.Slice()
	})
}

func TestDeepNesting(t *testing.T) {
	// ((1 2) (3)) ((4 5) (6)) via mixed wrappers and leaves.
	left := recarray.AppendBack[int](recarray.WrapArray[int]([2]int{1, 2}), recarray.NewSingle(3))
	right := recarray.AppendBack[int](recarray.WrapArray[int]([2]int{4, 5}), recarray.NewSingle(6))
	whole := recarray.AppendBack[int](left, right)

	require.Equal(t, 6, whole.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, whole.Slice())
}

func TestBuilderOrder(t *testing.T) {
	one := recarray.Of1(1)
	five := recarray.Of5(1, 2, 3, 4, 5)
	eight := recarray.Of8(1, 2, 3, 4, 5, 6, 7, 8)

	assert.Equal(t, []int{1}, one.Slice())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, five.Slice())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, eight.Slice())

	e := recarray.Of0[int]()
	assert.Equal(t, 0, e.Len())
}
