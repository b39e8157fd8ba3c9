//go:build unix

// File: pool/rawalloc_unix.go
// Author: momentics <momentics@gmail.com>
//
// Unix page-backed raw allocator using anonymous private mappings.

package pool

import (
	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-mempool/api"
)

// MmapAllocator serves regions as anonymous mmap'd pages, off the Go
// heap. Release unmaps the exact region returned by Allocate; passing
// anything else is undefined.
type MmapAllocator struct{}

func (MmapAllocator) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument,
			"region size must be positive").
			WithContext("size", size)
	}
	b, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, api.NewError(api.ErrCodeResourceExhausted,
			"mmap failed").
			WithContext("size", size).
			WithContext("errno", err.Error())
	}
	return b, nil
}

func (MmapAllocator) Release(region []byte) error {
	if region == nil {
		return nil
	}
	return unix.Munmap(region)
}

var _ api.RawAllocator = MmapAllocator{}
