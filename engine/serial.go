package engine

import "github.com/apsplab/blockfw/dense"

// Serial is the reference engine: the textbook O(n^3) triple loop with the
// intermediate vertex k outermost. Iteration k+1 reads the fully materialized
// result of iteration k, so there is nothing to parallelize without care;
// the other engines exist to do exactly that.
type Serial struct{}

func (Serial) Name() string { return "sequential" }

func (Serial) Run(g *dense.Graph) {
	n := g.N
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			relaxRow(g.W, n, i, k)
		}
	}
}
