// Package pool_test tests the size-class pool manager.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool_test

import (
	"testing"

	"github.com/momentics/hioload-mempool/fake"
	"github.com/momentics/hioload-mempool/pool"
)

// TestManagerReusesClass verifies one pool per size class.
func TestManagerReusesClass(t *testing.T) {
	mgr := pool.NewManager()
	defer mgr.CloseAll()

	p1, err := mgr.GetPool(16, 128)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := mgr.GetPool(16, 128)
	if err != nil {
		t.Fatal(err)
	}
	if p1 != p2 {
		t.Error("same size class returned distinct pools")
	}

	p3, err := mgr.GetPool(32, 128)
	if err != nil {
		t.Fatal(err)
	}
	if p3 == p1 {
		t.Error("distinct size classes share a pool")
	}
}

// TestManagerPropagatesError: construction failures reach the caller
// and nothing is cached.
func TestManagerPropagatesError(t *testing.T) {
	mgr := pool.NewManager()
	if _, err := mgr.GetPool(16, 16); err == nil {
		t.Fatal("expected geometry rejection")
	}
}

// TestManagerCloseAll releases every cached pool through the raw
// allocator and empties the manager.
func TestManagerCloseAll(t *testing.T) {
	raw := &fake.RawAllocator{}
	mgr := pool.NewManager(pool.WithRawAllocator(raw))

	if _, err := mgr.GetPool(16, 128); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.GetPool(32, 256); err != nil {
		t.Fatal(err)
	}
	if raw.Allocated() != 4 {
		t.Fatalf("allocated %d regions, want 4 (2 pools x region+descriptor)", raw.Allocated())
	}

	if err := mgr.CloseAll(); err != nil {
		t.Fatal(err)
	}
	if raw.Live() != 0 {
		t.Errorf("%d regions still live after CloseAll", raw.Live())
	}

	// The manager is reusable after teardown.
	if _, err := mgr.GetPool(16, 128); err != nil {
		t.Fatal(err)
	}
	mgr.CloseAll()
}

// TestDefaultManager is a singleton accessor smoke test.
func TestDefaultManager(t *testing.T) {
	if pool.Default() != pool.Default() {
		t.Error("Default() must return the process-wide manager")
	}
}
