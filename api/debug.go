// Package api
// Author: momentics
//
// Live debug and state introspection support.

package api

// Debug exposes runtime introspection of allocator internals.
type Debug interface {
	// DumpState emits a snapshot of internal state for diagnostics.
	DumpState() map[string]any
}
