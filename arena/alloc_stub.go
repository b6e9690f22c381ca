//go:build !unix

// File: arena/alloc_stub.go
// Author: momentics <momentics@gmail.com>
//
// Heap-backed region allocator for platforms without mmap support.

package arena

func sysAlloc(size int) ([]byte, bool, error) {
	return make([]byte, size), false, nil
}

func sysFree([]byte) error { return nil }
