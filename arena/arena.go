// File: arena/arena.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Region lifecycle. Platform-specific allocation lives in alloc_unix.go and
// alloc_stub.go behind build tags.

package arena

import (
	"fmt"
	"os"

	"github.com/momentics/recarray/api"
	"github.com/momentics/recarray/internal/layout"
)

// Region is a contiguous byte region with page-aligned base address.
// It is not safe for concurrent Release with other use.
type Region struct {
	buf      []byte
	mapped   bool
	released bool
}

// Reserve allocates a region of at least size bytes, rounded up to the
// platform page size.
func Reserve(size int) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("arena: region size must be positive, got %d", size)
	}
	page := os.Getpagesize()
	if rem := size % page; rem != 0 {
		size += page - rem
	}
	buf, mapped, err := sysAlloc(size)
	if err != nil {
		return nil, err
	}
	return &Region{buf: buf, mapped: mapped}, nil
}

// Bytes returns the raw region storage.
func (r *Region) Bytes() []byte { return r.buf }

// Size reports the region size in bytes.
func (r *Region) Size() int { return len(r.buf) }

// Mapped reports whether the region lives outside the Go heap.
func (r *Region) Mapped() bool { return r.mapped }

// Release returns the region to the OS. The region and every view derived
// from it must not be used afterwards.
func (r *Region) Release() error {
	if r.released {
		return api.NewError(api.ErrCodeRegionReleased, "double release of arena region")
	}
	r.released = true
	buf := r.buf
	r.buf = nil
	if !r.mapped {
		return nil
	}
	return sysFree(buf)
}

// Elements views the region as as many T values as fit, skipping leading
// bytes if needed to satisfy T's alignment. The slice aliases the region;
// it is invalid after Release.
func Elements[T any](r *Region) []T {
	if r.released {
		return nil
	}
	return layout.Elements[T](r.buf)
}
