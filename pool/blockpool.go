// File: pool/blockpool.go
// Package pool implements constant-time fixed-block allocation.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This implementation is NOT thread-safe and avoids mutex in hot-path.
// Wrap a shared pool in Guarded (or an application-level primitive).

package pool

import (
	"encoding/binary"
	"fmt"

	"github.com/momentics/hioload-mempool/api"
)

// linkWord is the size of one free-list link. Each free block stores the
// index of the next free block in its own leading bytes; an allocated
// block's full range belongs to the caller.
const linkWord = 8

// nilLink terminates the free list.
const nilLink = ^uint64(0)

// BlockPool serves fixed-size blocks from one pre-reserved region.
//
// The free list lives inside the region: no bookkeeping is allocated per
// block, and Alloc/Free never touch the raw allocator.
type BlockPool struct {
	raw    api.RawAllocator
	region []byte // backing storage, first poolSize bytes are blocks
	header []byte // one link word: the free-list head

	blocks     []block
	blockSize  int
	poolSize   int
	freeBlocks int
	zeroOnFree bool
}

type block struct {
	pool *BlockPool
	buf  []byte
	idx  int
}

// Bytes returns the block's byte range.
func (b *block) Bytes() []byte { return b.buf }

// Offset returns the block's byte offset from the region start.
func (b *block) Offset() int { return b.idx * b.pool.blockSize }

// Size returns the owning pool's block size.
func (b *block) Size() int { return b.pool.blockSize }

// Release returns the block to its pool.
func (b *block) Release() { b.pool.Free(b) }

// New reserves poolSize bytes from the configured raw allocator and
// partitions them into poolSize/blockSize blocks. Remainder bytes are
// never handed out.
//
// blockSize must be at least one link word (8 bytes, which also covers
// platform alignment) and poolSize must exceed blockSize. Construction
// pushes blocks onto the free list in ascending index order, so the
// first Alloc returns the highest-index block and the list drains
// toward block 0.
//
// Exactly two raw allocations are made: the region and the one-word
// pool descriptor. If the second fails the first is released before
// returning, so a failed New never retains memory.
func New(blockSize, poolSize int, opts ...Option) (*BlockPool, error) {
	if blockSize < linkWord {
		return nil, api.NewError(api.ErrCodeInvalidArgument,
			"block size cannot hold a free-list link").
			WithContext("block_size", blockSize).
			WithContext("min_block_size", linkWord)
	}
	if poolSize <= blockSize {
		return nil, api.NewError(api.ErrCodeInvalidArgument,
			"pool size must exceed block size").
			WithContext("block_size", blockSize).
			WithContext("pool_size", poolSize)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	region, err := cfg.raw.Allocate(poolSize)
	if err != nil {
		return nil, api.NewError(api.ErrCodeResourceExhausted,
			"region allocation failed").
			WithContext("pool_size", poolSize).
			WithContext("cause", err.Error())
	}
	header, err := cfg.raw.Allocate(linkWord)
	if err != nil {
		_ = cfg.raw.Release(region)
		return nil, api.NewError(api.ErrCodeResourceExhausted,
			"descriptor allocation failed").
			WithContext("cause", err.Error())
	}

	n := poolSize / blockSize
	p := &BlockPool{
		raw:        cfg.raw,
		region:     region,
		header:     header,
		blocks:     make([]block, n),
		blockSize:  blockSize,
		poolSize:   poolSize,
		zeroOnFree: cfg.zeroOnFree,
	}
	p.storeHead(nilLink)
	for i := 0; i < n; i++ {
		off := i * blockSize
		p.blocks[i] = block{pool: p, buf: region[off : off+blockSize : off+blockSize], idx: i}
		p.pushFree(i)
	}
	return p, nil
}

// Alloc pops the free-list head in O(1).
//
// The false result signals pool exhaustion, an expected steady-state
// condition the caller branches on; it is not an error.
func (p *BlockPool) Alloc() (api.Block, bool) {
	head := p.loadHead()
	if head == nilLink {
		return nil, false
	}
	b := &p.blocks[head]
	p.storeHead(binary.LittleEndian.Uint64(b.buf))
	p.freeBlocks--
	return b, true
}

// Free pushes a block back onto the free-list head in O(1), so the very
// next Alloc returns it (LIFO discipline). A nil block is a no-op.
// The block's address is never inspected or bounds-checked; double-free
// is undefined.
func (p *BlockPool) Free(blk api.Block) {
	if blk == nil {
		return
	}
	b, ok := blk.(*block)
	if !ok || b.pool != p {
		return
	}
	if p.zeroOnFree {
		clear(b.buf)
	}
	p.pushFree(b.idx)
}

// Stats implements api.FixedPool.
func (p *BlockPool) Stats() api.FixedPoolStats {
	return api.FixedPoolStats{
		Capacity:    int64(p.poolSize),
		BlockSize:   int64(p.blockSize),
		TotalBlocks: int64(len(p.blocks)),
		FreeBlocks:  int64(p.freeBlocks),
		InUse:       int64(len(p.blocks) - p.freeBlocks),
	}
}

// Close releases the region and then the descriptor back to the raw
// allocator. Every block the pool ever issued becomes invalid. Closing
// a nil or already-closed pool is a no-op.
func (p *BlockPool) Close() error {
	if p == nil || p.region == nil {
		return nil
	}
	err := p.raw.Release(p.region)
	if err2 := p.raw.Release(p.header); err == nil {
		err = err2
	}
	p.region, p.header, p.blocks = nil, nil, nil
	p.freeBlocks = 0
	return err
}

// BlockSize returns the fixed block size in bytes.
func (p *BlockPool) BlockSize() int { return p.blockSize }

// NumBlocks returns poolSize / blockSize.
func (p *BlockPool) NumBlocks() int { return len(p.blocks) }

// DumpState implements api.Debug.
func (p *BlockPool) DumpState() map[string]any {
	state := map[string]any{
		"block_size":   p.blockSize,
		"pool_size":    p.poolSize,
		"total_blocks": len(p.blocks),
		"free_blocks":  p.freeBlocks,
		"closed":       p.region == nil,
	}
	if p.region != nil {
		state["region_start"] = fmt.Sprintf("%p", p.region)
	}
	return state
}

func (p *BlockPool) loadHead() uint64 {
	return binary.LittleEndian.Uint64(p.header)
}

func (p *BlockPool) storeHead(v uint64) {
	binary.LittleEndian.PutUint64(p.header, v)
}

func (p *BlockPool) pushFree(i int) {
	binary.LittleEndian.PutUint64(p.blocks[i].buf, p.loadHead())
	p.storeHead(uint64(i))
	p.freeBlocks++
}

var (
	_ api.FixedPool = (*BlockPool)(nil)
	_ api.Debug     = (*BlockPool)(nil)
	_ api.Block     = (*block)(nil)
)
