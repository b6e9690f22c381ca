// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts for the recarray library: the read/view interface satisfied
// by every recursive-array variant, and the error taxonomy shared by all
// conversion operations.
//
// The capability itself (the guarantee that a value's storage is exactly
// Len() contiguous elements of T) is a sealed constraint owned by the root
// package; api only exposes the safe outward surface.
package api
