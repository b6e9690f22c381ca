//go:build unix

// File: arena/alloc_unix.go
// Author: momentics <momentics@gmail.com>
//
// Unix region allocator: anonymous private mappings via mmap.

package arena

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func sysAlloc(size int) ([]byte, bool, error) {
	buf, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, false, fmt.Errorf("arena: mmap of %d bytes failed: %w", size, err)
	}
	return buf, true, nil
}

func sysFree(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	return unix.Munmap(buf)
}
