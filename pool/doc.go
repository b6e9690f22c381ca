// Package pool
// Author: momentics <momentics@gmail.com>
//
// Reuse of large composite recursive-array values. Deeply nested composite
// types can be expensive to zero-allocate per call in hot paths; ArrayPool
// recycles them while guaranteeing a pooled value never leaks a previous
// caller's elements.
package pool
