// File: pool/guard.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Explicit mutual-exclusion wrapper for pools shared across goroutines.
// Locking lives here, outside the core, so embedded-style deployments
// can substitute their own primitive instead.

package pool

import (
	"sync"

	"github.com/momentics/hioload-mempool/api"
)

// Guarded serializes access to a FixedPool with a mutex.
//
// Blocks allocated through a Guarded pool must be returned through
// Guarded.Free; Block.Release bypasses the lock.
type Guarded struct {
	mu   sync.Mutex
	pool api.FixedPool
}

// NewGuarded wraps an existing pool.
func NewGuarded(p api.FixedPool) *Guarded {
	return &Guarded{pool: p}
}

func (g *Guarded) Alloc() (api.Block, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pool.Alloc()
}

func (g *Guarded) Free(b api.Block) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pool.Free(b)
}

func (g *Guarded) Stats() api.FixedPoolStats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pool.Stats()
}

func (g *Guarded) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pool.Close()
}

var _ api.FixedPool = (*Guarded)(nil)
