package engine

import (
	"fmt"

	"github.com/apsplab/blockfw/dense"
)

// Blocked tiles the matrix into a BxB grid of b x b blocks (B = n/b) and
// processes the outer block index K sequentially, three phases per K:
//
//  1. diagonal: block (K,K) is a self-contained b-vertex shortest-path
//     problem; relax it against itself. Everything else for this K depends
//     on the refreshed diagonal, so this phase runs alone.
//  2. cross: row blocks (K,J) take the diagonal as left operand, column
//     blocks (J,K) take it as right operand. Distinct J touch disjoint
//     memory, so the phase fans out across J.
//  3. update: every remaining block (I,J) is relaxed with the refreshed
//     (I,K) and (K,J) from phase 2. All targets are disjoint, so the fan-out
//     covers both indices.
//
// The ParallelFor join between phases is the only synchronization: within a
// phase the write-sets are provably disjoint, so no locks are taken anywhere.
//
// Unguarded switches to relaxBlockDense, which skips the sentinel checks.
// That is only sound when the matrix holds no dense.Inf entries at all
// (a complete graph, or one pre-filled with large finite weights); leave it
// off otherwise.
type Blocked struct {
	Threads   int
	BlockSize int
	Unguarded bool
}

func (Blocked) Name() string { return "block-parallel" }

// Validate reports whether the engine can run on an n-vertex graph.
func (e Blocked) Validate(n int) error {
	if e.BlockSize < 1 {
		return fmt.Errorf("block length %d must be at least 1", e.BlockSize)
	}
	if e.BlockSize > n {
		return fmt.Errorf("block length %d cannot be greater than number of vertices %d", e.BlockSize, n)
	}
	if n%e.BlockSize != 0 {
		return fmt.Errorf("vertices %d must be divisible by block length %d", n, e.BlockSize)
	}
	return nil
}

func (e Blocked) Run(g *dense.Graph) {
	b := e.BlockSize
	B := g.N / b
	relax := relaxBlock
	if e.Unguarded {
		relax = relaxBlockDense
	}

	diag := make([]int32, b*b)
	for K := 0; K < B; K++ {
		// Diagonal phase.
		g.FillBlock(diag, K, K, b)
		relax(diag, diag, diag, b)
		g.StoreBlock(diag, K, K, b)

		// Cross phase: indices [0,B) are row blocks (K,J), [B,2B) are column
		// blocks (J-B,K). Each task snapshots its own block so the relax
		// reads a frozen right/left operand while writing the scratch copy.
		ParallelFor(e.Threads, 2*B, func(start, end int) {
			frozen := make([]int32, b*b)
			scratch := make([]int32, b*b)
			for idx := start; idx < end; idx++ {
				if idx < B { // row block (K,J)
					J := idx
					if J == K {
						continue
					}
					g.FillBlock(frozen, K, J, b)
					copy(scratch, frozen)
					relax(scratch, diag, frozen, b)
					g.StoreBlock(scratch, K, J, b)
				} else { // column block (J,K)
					J := idx - B
					if J == K {
						continue
					}
					g.FillBlock(frozen, J, K, b)
					copy(scratch, frozen)
					relax(scratch, frozen, diag, b)
					g.StoreBlock(scratch, J, K, b)
				}
			}
		})

		// Update phase: all blocks off row K and column K, in parallel over
		// the flattened (I,J) pair space. Operands (I,K) and (K,J) were
		// finalized by the cross phase and are read-only here.
		ParallelFor(e.Threads, B*B, func(start, end int) {
			target := make([]int32, b*b)
			left := make([]int32, b*b)
			right := make([]int32, b*b)
			for idx := start; idx < end; idx++ {
				I, J := idx/B, idx%B
				if I == K || J == K {
					continue
				}
				g.FillBlock(target, I, J, b)
				g.FillBlock(left, I, K, b)
				g.FillBlock(right, K, J, b)
				relax(target, left, right, b)
				g.StoreBlock(target, I, J, b)
			}
		})
	}
}

// relaxBlock runs the block-local Floyd-Warshall recurrence
// dst[i][j] = min(dst[i][j], left[i][k] + right[k][j]) over three b x b
// buffers, guarded against the Inf sentinel. The local k loop is outermost:
// a block is itself a shortest-path problem over b intermediate vertices and
// carries the same ordering dependency as the full matrix. Aliasing dst with
// either operand is allowed (the diagonal phase passes the same buffer three
// times).
func relaxBlock(dst, left, right []int32, b int) {
	for k := 0; k < b; k++ {
		for i := 0; i < b; i++ {
			lik := left[i*b+k]
			if lik == dense.Inf {
				continue
			}
			for j := 0; j < b; j++ {
				if rkj := right[k*b+j]; rkj != dense.Inf && dst[i*b+j] > lik+rkj {
					dst[i*b+j] = lik + rkj
				}
			}
		}
	}
}

// relaxBlockDense is relaxBlock without the sentinel guards, for matrices
// known to hold only finite weights: a complete graph, or one whose missing
// edges were pre-filled with a large finite weight instead of dense.Inf.
// Sentinel entries are out of contract here; callers opt in through
// Blocked.Unguarded and own that guarantee.
func relaxBlockDense(dst, left, right []int32, b int) {
	for k := 0; k < b; k++ {
		for i := 0; i < b; i++ {
			lik := left[i*b+k]
			for j := 0; j < b; j++ {
				if v := lik + right[k*b+j]; dst[i*b+j] > v {
					dst[i*b+j] = v
				}
			}
		}
	}
}
