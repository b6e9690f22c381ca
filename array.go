// File: array.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Sealed capability constraint and the leaf variants: Empty, Single, Wrap.

package recarray

import (
	"unsafe"

	"github.com/momentics/recarray/api"
	"github.com/momentics/recarray/internal/layout"
)

// Operand is the capability constraint satisfied by every recursive-array
// variant: the value's storage is exactly Len() contiguous elements of T.
//
// The constraint is sealed. Satisfying it asserts a layout that downstream
// views reinterpret without rechecking, so new variants are a privileged
// addition to this package, never a third-party extension point.
type Operand[T any] interface {
	// Len reports the element count. Pure; derived from the type alone.
	Len() int

	isRecursive(T)
}

// Conformance: pointers to every variant satisfy the public view contract.
var (
	_ api.Array[int] = (*Empty[int])(nil)
	_ api.Array[int] = (*Single[int])(nil)
	_ api.Array[int] = (*Wrap[int, [4]int])(nil)
	_ api.Array[int] = (*Concat[int, Single[int], Single[int]])(nil)
	_ api.Array[int] = (*Repeat[int, Single[int], [4]Single[int]])(nil)
)

// Empty is the zero-length leaf. It stores nothing and costs nothing; it
// serves as the unit of composition and the result of Of0.
type Empty[T any] struct{}

// NewEmpty returns the empty array.
func NewEmpty[T any]() Empty[T] { return Empty[T]{} }

// Len reports 0.
func (Empty[T]) Len() int { return 0 }

func (Empty[T]) isRecursive(T) {}

// Slice returns the empty view.
func (e *Empty[T]) Slice() []T { return nil }

// Copy returns nil; there are no elements to copy.
func (e *Empty[T]) Copy() []T { return nil }

// Single is the one-element leaf. It owns exactly one T.
type Single[T any] struct {
	item T
}

// NewSingle wraps item in a one-element array, taking ownership of the value.
func NewSingle[T any](item T) Single[T] { return Single[T]{item: item} }

// Len reports 1.
func (Single[T]) Len() int { return 1 }

func (Single[T]) isRecursive(T) {}

// Slice returns a one-element view aliasing the wrapped item.
func (s *Single[T]) Slice() []T {
	return layout.View[T](unsafe.Pointer(s), 1)
}

// Copy returns a standalone copy of the element.
func (s *Single[T]) Copy() []T { return append([]T(nil), s.Slice()...) }

// Item returns a pointer to the wrapped element.
func (s *Single[T]) Item() *T { return &s.item }

// Wrap adapts a native fixed-size array A = [N]T to the capability without
// adding a single byte. It lets plain arrays participate in composite trees
// as one operand instead of being decomposed element by element.
//
// A must be an array type with element type exactly T. Instantiating Wrap
// with anything else is a capability-contract violation: Len and the views
// panic rather than guess at a layout.
type Wrap[T any, A any] struct {
	arr A
}

// WrapArray wraps a native fixed array, taking ownership of the whole array.
// The element type is given explicitly, the array type is inferred:
//
//	w := recarray.WrapArray[int]([2]int{1, 2})
func WrapArray[T any, A any](arr A) Wrap[T, A] {
	layout.MustArrayLen[T, A]()
	return Wrap[T, A]{arr: arr}
}

// Len reports the native array's length.
func (Wrap[T, A]) Len() int { return layout.MustArrayLen[T, A]() }

func (Wrap[T, A]) isRecursive(T) {}

// Slice returns a view aliasing the wrapped array.
func (w *Wrap[T, A]) Slice() []T {
	return layout.View[T](unsafe.Pointer(w), w.Len())
}

// Copy returns a standalone copy of the elements.
func (w *Wrap[T, A]) Copy() []T { return append([]T(nil), w.Slice()...) }

// Unwrap returns the wrapped native array.
func (w *Wrap[T, A]) Unwrap() A { return w.arr }
