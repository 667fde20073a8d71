// Package engine provides three interchangeable all-pairs shortest-path
// engines over a dense.Graph: a sequential reference, a naive parallel
// fan-out, and a cache-blocked parallel variant. All three implement the
// Floyd-Warshall recurrence and converge to identical matrices.
package engine

import "github.com/apsplab/blockfw/dense"

// Engine relaxes a graph's weight matrix in place until every entry holds
// the shortest-path distance. The engine owns the graph for the duration of
// Run; no other goroutine may touch it. Preconditions (n >= 1, and for the
// blocked engine a block size that divides n) are the caller's to enforce
// before Run is invoked.
type Engine interface {
	Name() string
	Run(g *dense.Graph)
}

// relaxRow updates row i of w for intermediate vertex k, guarded against the
// Inf sentinel. Shared inner loop of the serial and naive engines.
func relaxRow(w []int32, n, i, k int) {
	ik := w[i*n+k]
	if ik == dense.Inf {
		return
	}
	for j := 0; j < n; j++ {
		if kj := w[k*n+j]; kj != dense.Inf && w[i*n+j] > ik+kj {
			w[i*n+j] = ik + kj
		}
	}
}
