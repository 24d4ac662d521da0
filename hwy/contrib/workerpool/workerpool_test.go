// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelRows_Alignment(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	for _, n := range []int{1, 3, 4, 5, 13, 64, 101} {
		var mu sync.Mutex
		covered := make([]int, n)
		pool.ParallelRows(n, 4, func(start, end int) {
			if start%4 != 0 {
				t.Errorf("n=%d: range [%d, %d) starts off a 4-row boundary", n, start, end)
			}
			if end != n && end%4 != 0 {
				t.Errorf("n=%d: range [%d, %d) ends off a 4-row boundary", n, start, end)
			}
			mu.Lock()
			for i := start; i < end; i++ {
				covered[i]++
			}
			mu.Unlock()
		})
		for i, c := range covered {
			if c != 1 {
				t.Errorf("n=%d: row %d covered %d times", n, i, c)
			}
		}
	}
}

func TestParallelRows_Ranges(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var ranges atomic.Int32
	pool.ParallelRows(32, 4, func(start, end int) {
		ranges.Add(1)
		if end-start != 8 {
			t.Errorf("range [%d, %d): want 8 rows", start, end)
		}
	})
	if ranges.Load() != 4 {
		t.Errorf("ranges = %d, want 4", ranges.Load())
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	// Test with n smaller than workers
	n := 3
	var count atomic.Int32

	pool.ParallelFor(n, func(start, end int) {
		count.Add(int32(end - start))
	})

	if count.Load() != int32(n) {
		t.Errorf("count = %d, want %d", count.Load(), n)
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.ParallelRows(0, 4, func(start, end int) {
		called = true
	})

	if called {
		t.Error("ParallelRows with n=0 should not call fn")
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // Should not panic
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 100
	var calls int

	// Should still work (sequential fallback)
	pool.ParallelRows(n, 4, func(start, end int) {
		calls++
		if start != 0 || end != n {
			t.Errorf("closed pool range [%d, %d), want [0, %d)", start, end, n)
		}
	})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func BenchmarkParallelRows(b *testing.B) {
	pool := New(0) // Use GOMAXPROCS
	defer pool.Close()

	n := 1000

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ParallelRows(n, 4, func(start, end int) {
			// Simulate work
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}

// BenchmarkPoolOverhead measures the overhead of dispatching a tiny pass.
func BenchmarkPoolOverhead(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	b.Run("Pool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			pool.ParallelRows(16, 4, func(start, end int) {
				// Minimal work
			})
		}
	})
}
