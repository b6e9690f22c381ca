// File: pool/scratch.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"

	"github.com/momentics/recarray"
)

// ArrayPool recycles pointers to values of one recursive-array type S.
// Safe for concurrent use.
type ArrayPool[T any, S recarray.Operand[T]] struct {
	pool *sync.Pool
}

// NewArrayPool creates a pool for the composite array type S:
//
//	p := pool.NewArrayPool[int, recarray.Wrap[int, [1024]int]]()
func NewArrayPool[T any, S recarray.Operand[T]]() *ArrayPool[T, S] {
	return &ArrayPool[T, S]{
		pool: &sync.Pool{New: func() any { return new(S) }},
	}
}

// Get returns an available instance from the pool. All elements are zero.
func (p *ArrayPool[T, S]) Get() *S {
	return p.pool.Get().(*S)
}

// Put zeroes the value and returns it for reuse.
func (p *ArrayPool[T, S]) Put(s *S) {
	var zero S
	*s = zero
	p.pool.Put(s)
}

// Len reports the element count of the pooled array type.
func (p *ArrayPool[T, S]) Len() int {
	var zero S
	return zero.Len()
}
