// Package arena
// Author: momentics <momentics@gmail.com>
//
// Page-aligned backing regions for large recursive arrays. On Unix platforms
// regions are anonymous private mappings outside the Go heap; elsewhere a
// heap-backed fallback keeps the same API. Regions are handed out as typed
// element slices and viewed, zero-copy, through recarray.FromSlice.
package arena
