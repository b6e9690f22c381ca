// File: ops.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Structural composition. Every operation here is type construction, not
// value mutation: length is fixed per type, so growing an array means
// building a value of a new, longer type around the moved operands.

package recarray

// PushBack appends one element after s's elements. s must not carry a
// trailing Empty operand; see Concat.
func PushBack[T any, S Operand[T]](s S, item T) Concat[T, S, Single[T]] {
	assertExact[T, S]()
	return Concat[T, S, Single[T]]{head: s, tail: NewSingle(item)}
}

// PushFront prepends one element before s's elements.
func PushFront[T any, S Operand[T]](s S, item T) Concat[T, Single[T], S] {
	return Concat[T, Single[T], S]{head: NewSingle(item), tail: s}
}

// AppendBack concatenates other after s: the result's elements are s's
// followed by other's. The element type is given explicitly:
//
//	c := recarray.AppendBack[int](s, other)
//
// s must not carry a trailing Empty operand; see Concat.
func AppendBack[T any, S Operand[T], R Operand[T]](s S, other R) Concat[T, S, R] {
	assertExact[T, S]()
	return Concat[T, S, R]{head: s, tail: other}
}

// AppendFront concatenates other before s: the result's elements are other's
// followed by s's. other must not carry a trailing Empty operand; see Concat.
func AppendFront[T any, S Operand[T], R Operand[T]](s S, other R) Concat[T, R, S] {
	assertExact[T, R]()
	return Concat[T, R, S]{head: other, tail: s}
}
