package engine

import "github.com/apsplab/blockfw/dense"

// Naive keeps the strict ordering on k but fans the (i,j) iteration space for
// each k across Threads workers, split by row. For a fixed k every task
// writes only its own rows, so no locking is needed; the ParallelFor join is
// the barrier that makes iteration k's writes visible before k+1 begins.
type Naive struct {
	Threads int
}

func (Naive) Name() string { return "naive-parallel" }

func (e Naive) Run(g *dense.Graph) {
	n := g.N
	for k := 0; k < n; k++ {
		ParallelFor(e.Threads, n, func(start, end int) {
			for i := start; i < end; i++ {
				relaxRow(g.W, n, i, k)
			}
		})
	}
}
