// File: convert.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Checked zero-copy conversions between recursive arrays, slices and native
// fixed arrays. The length check is the one runtime gate protecting the
// otherwise-unchecked layout assumption; the byte-size gate defends against
// a variant whose declared length and physical size have diverged.

package recarray

import (
	"fmt"

	"github.com/momentics/recarray/api"
	"github.com/momentics/recarray/internal/layout"
)

// FromSlice reinterprets xs as a *S without copying. The returned pointer
// aliases the slice storage: writes through either are visible in both.
//
// Reports api.ErrLengthMismatch when len(xs) != S's length, and
// api.ErrSizeMismatch when S's byte size disagrees with that many elements.
// Both type arguments are explicit:
//
//	v, err := recarray.FromSlice[int, recarray.Single[int]](xs)
func FromSlice[T any, S Operand[T]](xs []T) (*S, error) {
	var zero S
	want := zero.Len()
	if len(xs) != want {
		return nil, fmt.Errorf("%w: slice has %d elements, %T holds %d",
			api.ErrLengthMismatch, len(xs), zero, want)
	}
	return layout.SliceAs[S](xs, want)
}

// ToArray converts a recursive array into the native fixed array A = [N]T by
// a same-size transmute of the moved value. Reports api.ErrNotArrayType when
// A is not an array of T, api.ErrLengthMismatch when N differs from s's
// length, and api.ErrSizeMismatch when the byte sizes diverge.
//
//	native, err := recarray.ToArray[[4]int, int](arr)
func ToArray[A any, T any, S Operand[T]](s S) (A, error) {
	var zero A
	n, err := layout.ArrayLen[T, A]()
	if err != nil {
		return zero, err
	}
	if got := s.Len(); n != got {
		return zero, fmt.Errorf("%w: %T holds %d elements, %T wants %d",
			api.ErrLengthMismatch, s, got, zero, n)
	}
	out, err := layout.Cast[A](&s)
	if err != nil {
		return zero, err
	}
	return *out, nil
}

// FromArray converts a native fixed array A = [N]T into the recursive array
// type S by a same-size transmute of the moved value. Error conditions
// mirror ToArray.
//
//	v, err := recarray.FromArray[recarray.Wrap[int, [4]int], int]([4]int{...})
func FromArray[S Operand[T], T any, A any](arr A) (S, error) {
	var zero S
	n, err := layout.ArrayLen[T, A]()
	if err != nil {
		return zero, err
	}
	if want := zero.Len(); n != want {
		return zero, fmt.Errorf("%w: %T has %d elements, %T holds %d",
			api.ErrLengthMismatch, arr, n, zero, want)
	}
	out, err := layout.Cast[S](&arr)
	if err != nil {
		return zero, err
	}
	return *out, nil
}
