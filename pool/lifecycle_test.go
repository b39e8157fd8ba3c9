// Package pool_test covers creation/teardown contracts against a
// recording raw-allocator double.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-mempool/api"
	"github.com/momentics/hioload-mempool/fake"
	"github.com/momentics/hioload-mempool/pool"
)

// TestCreateRejectsBadGeometry: precondition failures surface before
// any raw allocation happens.
func TestCreateRejectsBadGeometry(t *testing.T) {
	raw := &fake.RawAllocator{}

	_, err := pool.New(16, 16, pool.WithRawAllocator(raw))
	require.Error(t, err, "poolSize must exceed blockSize")
	assert.True(t, errors.Is(err, api.ErrInvalidArgument))

	_, err = pool.New(4, 64, pool.WithRawAllocator(raw))
	require.Error(t, err, "blockSize must hold a link word")
	assert.True(t, errors.Is(err, api.ErrInvalidArgument))

	assert.Equal(t, 0, raw.Allocated(), "rejected before any raw allocation")
}

// TestCreateRegionFailure: raw exhaustion on the first allocation is
// surfaced and nothing is retained.
func TestCreateRegionFailure(t *testing.T) {
	raw := &fake.RawAllocator{FailAfter: 1}
	_, err := raw.Allocate(1) // consume the one allowed success
	require.NoError(t, err)

	_, err = pool.New(16, 128, pool.WithRawAllocator(raw))
	require.Error(t, err)
	assert.True(t, errors.Is(err, api.ErrResourceExhausted))
	assert.Equal(t, 1, raw.Live(), "only the pre-consumed region may remain")
}

// TestCreateDescriptorFailure: if the descriptor allocation fails after
// the region allocation succeeded, the region must be released before
// New returns.
func TestCreateDescriptorFailure(t *testing.T) {
	raw := &fake.RawAllocator{FailAfter: 1}

	_, err := pool.New(16, 128, pool.WithRawAllocator(raw))
	require.Error(t, err)
	assert.True(t, errors.Is(err, api.ErrResourceExhausted))
	assert.Equal(t, 1, raw.Allocated(), "exactly the region was acquired")
	assert.Equal(t, 0, raw.Live(), "region released on the failure path")
}

// TestTeardown: Close releases the region and the descriptor exactly
// once, in that order, and repeated Close stays a no-op.
func TestTeardown(t *testing.T) {
	raw := &fake.RawAllocator{}

	p, err := pool.New(16, 128, pool.WithRawAllocator(raw))
	require.NoError(t, err)
	require.Equal(t, 2, raw.Allocated(), "region + descriptor")

	require.NoError(t, p.Close())
	assert.Equal(t, 0, raw.Live())
	assert.True(t, raw.Released(0), "region released")
	assert.True(t, raw.Released(1), "descriptor released")

	// The fake errors on double release, so a clean second Close
	// proves it never reaches the raw allocator again.
	assert.NoError(t, p.Close())

	var nilPool *pool.BlockPool
	assert.NoError(t, nilPool.Close(), "nil handle is a no-op")
}

// TestScenarioBlockTraffic is the reference walk-through: a 16/128 pool
// yields 8 blocks, three allocations are distinct, freeing the second
// hands it straight back.
func TestScenarioBlockTraffic(t *testing.T) {
	p, err := pool.New(16, 128)
	require.NoError(t, err)
	defer p.Close()

	require.Equal(t, 8, p.NumBlocks())

	a, ok := p.Alloc()
	require.True(t, ok)
	b, ok := p.Alloc()
	require.True(t, ok)
	c, ok := p.Alloc()
	require.True(t, ok)
	assert.NotEqual(t, a.Offset(), b.Offset())
	assert.NotEqual(t, b.Offset(), c.Offset())

	p.Free(b)
	again, ok := p.Alloc()
	require.True(t, ok)
	assert.Equal(t, b.Offset(), again.Offset(), "LIFO returns the freed block")
}

// TestScenarioExhaustion: drain all 8 blocks, observe the empty signal,
// then a single free admits exactly one more allocation.
func TestScenarioExhaustion(t *testing.T) {
	p, err := pool.New(16, 128)
	require.NoError(t, err)
	defer p.Close()

	var held []api.Block
	for i := 0; i < 8; i++ {
		blk, ok := p.Alloc()
		require.True(t, ok, "block %d", i)
		held = append(held, blk)
	}

	_, ok := p.Alloc()
	assert.False(t, ok, "ninth allocation must report empty")

	p.Free(held[3])
	blk, ok := p.Alloc()
	require.True(t, ok, "one free admits one allocation")
	assert.Equal(t, held[3].Offset(), blk.Offset())

	_, ok = p.Alloc()
	assert.False(t, ok, "pool is exhausted again")
}
