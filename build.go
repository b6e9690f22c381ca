// File: build.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Variadic instantiation helpers. Go cannot express "a type that depends on
// the argument count", so the builder is an overload set: OfN folds its N
// arguments into nested Single/Concat construction, left-associated, and the
// resulting Slice() order equals the argument order. For more elements,
// chain PushBack or AppendBack on an Of8 result.

package recarray

// Of0 returns the empty array.
func Of0[T any]() Empty[T] { return Empty[T]{} }

// Of1 builds a one-element array.
func Of1[T any](v0 T) Single[T] { return NewSingle(v0) }

// Of2 builds a two-element array.
func Of2[T any](v0, v1 T) Concat[T, Single[T], Single[T]] {
	return PushBack(Of1(v0), v1)
}

// Of3 builds a three-element array.
func Of3[T any](v0, v1, v2 T) Concat[T, Concat[T, Single[T], Single[T]], Single[T]] {
	return PushBack(Of2(v0, v1), v2)
}

// Of4 builds a four-element array.
func Of4[T any](v0, v1, v2, v3 T) Concat[T, Concat[T, Concat[T, Single[T], Single[T]], Single[T]], Single[T]] {
	return PushBack(Of3(v0, v1, v2), v3)
}

// Of5 builds a five-element array.
func Of5[T any](v0, v1, v2, v3, v4 T) Concat[T, Concat[T, Concat[T, Concat[T, Single[T], Single[T]], Single[T]], Single[T]], Single[T]] {
	return PushBack(Of4(v0, v1, v2, v3), v4)
}

// Of6 builds a six-element array.
func Of6[T any](v0, v1, v2, v3, v4, v5 T) Concat[T, Concat[T, Concat[T, Concat[T, Concat[T, Single[T], Single[T]], Single[T]], Single[T]], Single[T]], Single[T]] {
	return PushBack(Of5(v0, v1, v2, v3, v4), v5)
}

// Of7 builds a seven-element array.
func Of7[T any](v0, v1, v2, v3, v4, v5, v6 T) Concat[T, Concat[T, Concat[T, Concat[T, Concat[T, Concat[T, Single[T], Single[T]], Single[T]], Single[T]], Single[T]], Single[T]], Single[T]] {
	return PushBack(Of6(v0, v1, v2, v3, v4, v5), v6)
}

// Of8 builds an eight-element array.
func Of8[T any](v0, v1, v2, v3, v4, v5, v6, v7 T) Concat[T, Concat[T, Concat[T, Concat[T, Concat[T, Concat[T, Concat[T, Single[T], Single[T]], Single[T]], Single[T]], Single[T]], Single[T]], Single[T]], Single[T]] {
	return PushBack(Of7(v0, v1, v2, v3, v4, v5, v6), v7)
}
