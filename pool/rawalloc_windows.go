//go:build windows
// +build windows

// File: pool/rawalloc_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows page-backed raw allocator over VirtualAlloc/VirtualFree.

package pool

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/momentics/hioload-mempool/api"
)

// MmapAllocator serves regions as committed pages, off the Go heap.
// Release decommits the exact region returned by Allocate; passing
// anything else is undefined.
type MmapAllocator struct{}

func (MmapAllocator) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument,
			"region size must be positive").
			WithContext("size", size)
	}
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, api.NewError(api.ErrCodeResourceExhausted,
			"VirtualAlloc failed").
			WithContext("size", size).
			WithContext("cause", err.Error())
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func (MmapAllocator) Release(region []byte) error {
	if region == nil {
		return nil
	}
	return windows.VirtualFree(uintptr(unsafe.Pointer(&region[0])), 0, windows.MEM_RELEASE)
}

var _ api.RawAllocator = MmapAllocator{}
