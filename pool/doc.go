// Package pool
// Author: momentics <momentics@gmail.com>
//
// Fixed-block memory pooling for hioload-mempool.
// One contiguous region is partitioned into equal-size blocks served in
// O(1) through an intrusive free list threaded through the unused blocks
// themselves. Designed for targets without a general-purpose heap; the
// raw region comes from a pluggable api.RawAllocator backend.
// See blockpool.go, rawalloc.go, manager.go for implementation details.
package pool
