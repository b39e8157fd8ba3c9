package pool

import "sync"

var (
	defaultOnce sync.Once
	defaultMgr  *Manager
)

// Default returns a process-wide Manager so components that share size
// classes reuse the same pools instead of fragmenting raw allocations.
func Default() *Manager {
	defaultOnce.Do(func() {
		defaultMgr = NewManager()
	})
	return defaultMgr
}
