// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Defines the fixed-block pooling API: constant-time block allocation
// over a single pre-reserved region.

package api

// Block is one fixed-size slice of a pool's backing region.
//
// While held by the caller the entire byte range belongs to the caller;
// the pool does not touch it again until the block is freed.
type Block interface {
	// Bytes returns the block's full byte range.
	Bytes() []byte

	// Offset returns the block's byte offset from the start of the
	// backing region. Always a multiple of the pool's block size.
	Offset() int

	// Size returns the block size of the owning pool.
	Size() int

	// Release returns the block to its pool. Shorthand for
	// FixedPool.Free; after Release the block must not be used.
	Release()
}

// FixedPool hands out fixed-size blocks from one contiguous region.
//
// Implementations are not internally synchronized. A pool shared across
// goroutines must be wrapped by the caller in an explicit mutual
// exclusion primitive.
type FixedPool interface {
	// Alloc pops a free block in O(1). The second result is false when
	// the pool is exhausted; exhaustion is an expected steady-state
	// condition, not an error.
	Alloc() (Block, bool)

	// Free pushes a block back in O(1), LIFO. The very next Alloc
	// returns this block. A nil block is a no-op. Double-free and
	// freeing a foreign block are undefined.
	Free(Block)

	// Stats exposes block accounting for observability.
	Stats() FixedPoolStats

	// Close releases the backing region and descriptor to the raw
	// allocator. Every block the pool ever issued becomes invalid.
	Close() error
}

// FixedPoolStats aggregates a pool's block accounting.
type FixedPoolStats struct {
	Capacity    int64 // bytes in the backing region
	BlockSize   int64
	TotalBlocks int64
	FreeBlocks  int64
	InUse       int64
}
