// File: api/array.go
// Author: momentics <momentics@gmail.com>
//
// View contract for recursive arrays. All operations must be zero-copy
// unless Copy is explicitly called.

package api

// Array describes a zero-copy view over a recursive array of T.
//
// Implementations guarantee that the underlying value occupies exactly
// Len() contiguous elements of T, element i at byte offset i*sizeof(T).
// That guarantee is an obligation of the implementing package, not
// something callers can or should reverify.
type Array[T any] interface {
	// Len reports the element count. Pure; derived from the type alone.
	Len() int

	// Slice returns a view of the current element storage.
	// The view aliases the value; writes through it are visible in the
	// value and vice versa. No copy, no allocation.
	Slice() []T

	// Copy returns a deep copy of the elements as a standalone slice.
	Copy() []T
}
