// File: api/alloc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Raw memory provider boundary. The pool layer never reaches for the
// platform directly; everything it owns comes through this interface.

package api

// RawAllocator supplies contiguous raw regions for pool backing storage.
//
// Implementations make no zeroing guarantee and no alignment guarantee
// beyond the platform default. Ownership of a returned region transfers
// to the caller until Release.
type RawAllocator interface {
	// Allocate returns a contiguous, uninitialized region of at least
	// size bytes, or an error when the request cannot be satisfied.
	Allocate(size int) ([]byte, error)

	// Release returns a region previously obtained from Allocate.
	// Releasing a foreign or already-released region is undefined.
	Release(region []byte) error
}
