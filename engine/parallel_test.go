package engine

import (
	"sync/atomic"
	"testing"
)

func checkCoverage(t *testing.T, workers, n int) {
	t.Helper()
	hits := make([]int32, n)
	ParallelFor(workers, n, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	})
	for i := range hits {
		if hits[i] != 1 {
			t.Fatal("workers:", workers, "n:", n, "index", i, "visited", hits[i], "times")
		}
	}
}

func TestParallelForCoverage(t *testing.T) {
	for _, workers := range []int{1, 2, 3, 7, 16} {
		for _, n := range []int{1, 2, 5, 16, 100} {
			checkCoverage(t, workers, n)
		}
	}
}

func TestParallelForMoreWorkersThanWork(t *testing.T) {
	checkCoverage(t, 64, 3)
}

func TestParallelForEmptyRange(t *testing.T) {
	called := false
	ParallelFor(4, 0, func(start, end int) { called = true })
	if called {
		t.Fatal("fn must not run for an empty range")
	}
}

func TestParallelForIsBarrier(t *testing.T) {
	// Writes made inside the fan-out must be visible after the join.
	const n = 1000
	vals := make([]int, n)
	ParallelFor(8, n, func(start, end int) {
		for i := start; i < end; i++ {
			vals[i] = i * i
		}
	})
	for i := range vals {
		if vals[i] != i*i {
			t.Fatal("write from span not visible after join at", i)
		}
	}
}
