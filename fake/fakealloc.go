// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"fmt"

	"github.com/momentics/hioload-mempool/api"
)

// RawAllocator is a recording, fault-injectable raw-memory double.
// It tracks every region it hands out so tests can assert exact
// acquisition/release pairing.
type RawAllocator struct {
	// FailAfter makes every Allocate fail once this many allocations
	// have succeeded. Zero means never fail.
	FailAfter int

	regions  [][]byte
	released []bool
}

func (f *RawAllocator) Allocate(size int) ([]byte, error) {
	if f.FailAfter > 0 && len(f.regions) >= f.FailAfter {
		return nil, api.NewError(api.ErrCodeResourceExhausted,
			"injected allocation failure").
			WithContext("size", size)
	}
	if size <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument,
			"region size must be positive")
	}
	region := make([]byte, size)
	f.regions = append(f.regions, region)
	f.released = append(f.released, false)
	return region, nil
}

func (f *RawAllocator) Release(region []byte) error {
	if len(region) == 0 {
		return fmt.Errorf("fake: release of empty region")
	}
	for i := range f.regions {
		if &f.regions[i][0] == &region[0] {
			if f.released[i] {
				return fmt.Errorf("fake: double release of region %d", i)
			}
			f.released[i] = true
			return nil
		}
	}
	return fmt.Errorf("fake: release of unknown region")
}

// Allocated returns the number of successful Allocate calls.
func (f *RawAllocator) Allocated() int { return len(f.regions) }

// Live returns how many regions are allocated and not yet released.
func (f *RawAllocator) Live() int {
	live := 0
	for _, done := range f.released {
		if !done {
			live++
		}
	}
	return live
}

// Released reports whether the i-th allocated region was released.
func (f *RawAllocator) Released(i int) bool { return f.released[i] }

var _ api.RawAllocator = (*RawAllocator)(nil)
