// File: pool/manager.go
// Author: momentics <momentics@gmail.com>
//
// Cross-platform pool manager with one cached pool per size class.
// The manager's lock covers only the class map; pools it hands out stay
// unsynchronized.

package pool

import (
	"sync"
)

type poolClass struct {
	blockSize int
	poolSize  int
}

// Manager provides one BlockPool per (blockSize, poolSize) class.
type Manager struct {
	mu    sync.RWMutex
	pools map[poolClass]*BlockPool
	opts  []Option
}

// NewManager creates and initializes a new manager. The options are
// applied to every pool the manager constructs.
func NewManager(opts ...Option) *Manager {
	return &Manager{
		pools: make(map[poolClass]*BlockPool),
		opts:  opts,
	}
}

// GetPool obtains or creates the pool for a size class.
func (m *Manager) GetPool(blockSize, poolSize int) (*BlockPool, error) {
	class := poolClass{blockSize, poolSize}
	m.mu.RLock()
	p, ok := m.pools[class]
	m.mu.RUnlock()
	if ok {
		return p, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.pools[class]; ok {
		return p, nil
	}
	p, err := New(blockSize, poolSize, m.opts...)
	if err != nil {
		return nil, err
	}
	m.pools[class] = p
	return p, nil
}

// CloseAll releases every cached pool and empties the manager.
// The first release error is returned; teardown still visits all pools.
func (m *Manager) CloseAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var err error
	for class, p := range m.pools {
		if cerr := p.Close(); err == nil {
			err = cerr
		}
		delete(m.pools, class)
	}
	return err
}
