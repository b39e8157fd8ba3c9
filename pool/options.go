// File: pool/options.go
// Package pool defines functional options for pool construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "github.com/momentics/hioload-mempool/api"

// Option customizes pool construction.
type Option func(*config)

type config struct {
	raw        api.RawAllocator
	zeroOnFree bool
}

func defaultConfig() config {
	return config{raw: HeapAllocator{}}
}

// WithRawAllocator selects the raw memory backend. Defaults to
// HeapAllocator; pass MmapAllocator to keep the region off the Go heap.
func WithRawAllocator(raw api.RawAllocator) Option {
	return func(c *config) {
		if raw != nil {
			c.raw = raw
		}
	}
}

// WithZeroOnFree scrubs a block's payload when it is freed. Off by
// default; a debug hardening knob, not part of the allocation contract.
func WithZeroOnFree(enable bool) Option {
	return func(c *config) {
		c.zeroOnFree = enable
	}
}
