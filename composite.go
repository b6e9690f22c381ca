// File: composite.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Composite variants: Concat and Repeat. Both hold their operands inline so
// composition never copies element data into a fresh flat buffer.

package recarray

import (
	"fmt"
	"unsafe"

	"github.com/momentics/recarray/internal/layout"
)

// Concat lays out one A immediately followed by one B. Logical element order
// is all of A's elements, then all of B's.
//
// The layout contract requires sizeof(Concat) == sizeof(A) + sizeof(B).
// Go holds this for the sealed operand set with one exception: the compiler
// pads a struct whose final field is zero-sized, so a Concat with a trailing
// Empty operand is physically larger than its logical length. Such a value
// stays view-safe on its own (the padding sits after every element), but it
// must never precede other elements: as a head operand its padding would
// displace the tail. Constructors and views enforce that with assertExact,
// and the size gate on every slice/array conversion rejects diverged totals.
type Concat[T any, A Operand[T], B Operand[T]] struct {
	head A
	tail B
}

// assertExact panics unless A's physical size equals its logical element
// count. Only a composite carrying a trailing Empty operand can diverge;
// placing one before other elements (concat head, repeat operand) would read
// its padding as elements, so that composition is a contract violation.
func assertExact[T any, A Operand[T]]() {
	var unit A
	if err := layout.CheckSize[T, A](unit.Len()); err != nil {
		panic(fmt.Sprintf("recarray: operand cannot precede other elements: %v", err))
	}
}

// NewConcat concatenates two recursive arrays end to end, taking ownership
// of both operands. The element type is given explicitly:
//
//	c := recarray.NewConcat[int](a, b)
func NewConcat[T any, A Operand[T], B Operand[T]](head A, tail B) Concat[T, A, B] {
	assertExact[T, A]()
	return Concat[T, A, B]{head: head, tail: tail}
}

// Len reports the summed operand lengths.
func (c Concat[T, A, B]) Len() int { return c.head.Len() + c.tail.Len() }

func (Concat[T, A, B]) isRecursive(T) {}

// Slice returns a view aliasing both operands' elements in order.
func (c *Concat[T, A, B]) Slice() []T {
	assertExact[T, A]()
	return layout.View[T](unsafe.Pointer(c), c.Len())
}

// Copy returns a standalone copy of the elements.
func (c *Concat[T, A, B]) Copy() []T { return append([]T(nil), c.Slice()...) }

// Head returns a pointer to the first operand.
func (c *Concat[T, A, B]) Head() *A { return &c.head }

// Tail returns a pointer to the second operand.
func (c *Concat[T, A, B]) Tail() *B { return &c.tail }

// Repeat lays out N contiguous copies of operand A, held as the native array
// NA = [N]A. Logical order is copy 0's elements, then copy 1's, and so on.
//
// NA must be an array type with element type exactly A; anything else is a
// capability-contract violation and panics.
type Repeat[T any, A Operand[T], NA any] struct {
	reps NA
}

// NewRepeat builds a repetition from a native array of already-built operand
// values, taking ownership of the array. Element and operand types are given
// explicitly, the array type is inferred:
//
//	r := recarray.NewRepeat[int, recarray.Single[int]]([3]recarray.Single[int]{...})
func NewRepeat[T any, A Operand[T], NA any](reps NA) Repeat[T, A, NA] {
	layout.MustArrayLen[A, NA]()
	assertExact[T, A]()
	return Repeat[T, A, NA]{reps: reps}
}

// Len reports the repetition count times the operand length.
func (Repeat[T, A, NA]) Len() int {
	var unit A
	return layout.MustArrayLen[A, NA]() * unit.Len()
}

func (Repeat[T, A, NA]) isRecursive(T) {}

// Slice returns a view aliasing all copies' elements in order.
func (r *Repeat[T, A, NA]) Slice() []T {
	assertExact[T, A]()
	return layout.View[T](unsafe.Pointer(r), r.Len())
}

// Copy returns a standalone copy of the elements.
func (r *Repeat[T, A, NA]) Copy() []T { return append([]T(nil), r.Slice()...) }
