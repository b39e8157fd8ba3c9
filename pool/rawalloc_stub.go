//go:build !unix && !windows

// File: pool/rawalloc_stub.go
// Author: momentics <momentics@gmail.com>
//
// Fallback for platforms without a page-backed allocator: MmapAllocator
// degrades to heap-served regions so callers keep one spelling.

package pool

import "github.com/momentics/hioload-mempool/api"

// MmapAllocator on this platform delegates to HeapAllocator.
type MmapAllocator struct{}

func (MmapAllocator) Allocate(size int) ([]byte, error) {
	return HeapAllocator{}.Allocate(size)
}

func (MmapAllocator) Release(region []byte) error {
	return HeapAllocator{}.Release(region)
}

var _ api.RawAllocator = MmapAllocator{}
