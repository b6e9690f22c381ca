// File: internal/layout/layout.go
// Package layout centralizes all raw memory reinterpretation for recarray.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Preconditions are the capability contract: a conforming value occupies
// exactly n contiguous elements of T. The functions here trust that contract
// for views and gate it with byte-size checks at every conversion boundary.

package layout

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"github.com/momentics/recarray/api"
)

// SizeOf reports the byte size of T without needing a value.
func SizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// View reinterprets n elements of T starting at base as a slice.
// base must point to storage holding at least n valid T values.
func View[T any](base unsafe.Pointer, n int) []T {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(base), n)
}

// ArrayLen validates that A is a native fixed-size array with element type E
// and returns its length. A wrong kind or element type reports ErrNotArrayType.
func ArrayLen[E any, A any]() (int, error) {
	at := reflect.TypeOf((*A)(nil)).Elem()
	if at.Kind() != reflect.Array {
		return 0, api.NewError(api.ErrCodeNotArrayType, "type argument is not an array").
			WithContext("type", at.String())
	}
	et := reflect.TypeOf((*E)(nil)).Elem()
	if at.Elem() != et {
		return 0, api.NewError(api.ErrCodeNotArrayType, "array element type disagrees").
			WithContext("type", at.String()).
			WithContext("want_elem", et.String())
	}
	return at.Len(), nil
}

// arrayKey identifies one validated (element, array) instantiation.
type arrayKey struct {
	elem reflect.Type
	arr  reflect.Type
}

// arrayLens caches validated lengths. Len sits on hot view paths, so the
// reflect walk runs once per instantiation; only successes are cached.
var arrayLens sync.Map // arrayKey -> int

// MustArrayLen is ArrayLen for contexts where a malformed type argument is a
// capability-contract violation rather than a user input error: it panics.
func MustArrayLen[E any, A any]() int {
	key := arrayKey{elem: reflect.TypeOf((*E)(nil)).Elem(), arr: reflect.TypeOf((*A)(nil)).Elem()}
	if n, ok := arrayLens.Load(key); ok {
		return n.(int)
	}
	n, err := ArrayLen[E, A]()
	if err != nil {
		panic(fmt.Sprintf("recarray: broken capability instantiation: %v", err))
	}
	arrayLens.Store(key, n)
	return n
}

// CheckSize verifies that S's byte size is exactly n elements of T.
// A divergence means the declared length and the physical layout disagree.
func CheckSize[T any, S any](n int) error {
	want := uintptr(n) * SizeOf[T]()
	if got := SizeOf[S](); got != want {
		return api.NewError(api.ErrCodeSizeMismatch, "declared length disagrees with physical size").
			WithContext("type", reflect.TypeOf((*S)(nil)).Elem().String()).
			WithContext("size", got).
			WithContext("elements", n).
			WithContext("elem_size", SizeOf[T]())
	}
	return nil
}

// Cast reinterprets *Src as *Dst. The byte sizes must agree exactly; this is
// the mandatory gate guarding every array conversion.
func Cast[Dst any, Src any](src *Src) (*Dst, error) {
	if SizeOf[Dst]() != SizeOf[Src]() {
		return nil, api.NewError(api.ErrCodeSizeMismatch, "cast between types of different size").
			WithContext("src", reflect.TypeOf((*Src)(nil)).Elem().String()).
			WithContext("src_size", SizeOf[Src]()).
			WithContext("dst", reflect.TypeOf((*Dst)(nil)).Elem().String()).
			WithContext("dst_size", SizeOf[Dst]())
	}
	return (*Dst)(unsafe.Pointer(src)), nil
}

// Elements reinterprets the front of buf as as many T values as fit,
// skipping leading bytes when the base address is not aligned for T.
func Elements[T any](buf []byte) []T {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 || len(buf) == 0 {
		return nil
	}
	align := unsafe.Alignof(zero)
	base := unsafe.Pointer(unsafe.SliceData(buf))
	skip := uintptr(0)
	if rem := uintptr(base) % align; rem != 0 {
		skip = align - rem
	}
	if skip >= uintptr(len(buf)) {
		return nil
	}
	n := (uintptr(len(buf)) - skip) / size
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Add(base, skip)), n)
}

// SliceAs reinterprets the storage of xs as a *S. The caller has already
// verified len(xs) == n; SliceAs enforces that S's byte size matches those n
// elements, so the returned pointer never spans past the slice.
func SliceAs[S any, T any](xs []T, n int) (*S, error) {
	if err := CheckSize[T, S](n); err != nil {
		return nil, err
	}
	if SizeOf[S]() == 0 {
		// Zero-sized composite: nothing to alias.
		return new(S), nil
	}
	return (*S)(unsafe.Pointer(unsafe.SliceData(xs))), nil
}
