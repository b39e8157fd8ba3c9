// File: pool/rawalloc.go
// Author: momentics <momentics@gmail.com>
//
// Hosted raw-memory backend. Platform-specific page-backed allocators
// reside in rawalloc_unix.go and rawalloc_windows.go.

package pool

import "github.com/momentics/hioload-mempool/api"

// HeapAllocator serves regions from the Go heap. It is the default
// backend on hosted targets.
type HeapAllocator struct{}

// Allocate returns a fresh region of exactly size bytes.
func (HeapAllocator) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument,
			"region size must be positive").
			WithContext("size", size)
	}
	return make([]byte, size), nil
}

// Release hands the region back to the garbage collector.
func (HeapAllocator) Release(region []byte) error {
	return nil
}

var _ api.RawAllocator = HeapAllocator{}
