// Package layout
// Author: momentics <momentics@gmail.com>
//
// The single unsafe surface of the recarray library. Every raw
// reinterpretation (slice views, pointer casts, slice-to-composite casts)
// lives in this package so the unsafe code is auditable in one place.
// Callers outside internal/ never touch package unsafe directly.
package layout
