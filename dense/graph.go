package dense

import (
	"math"
	"strconv"
	"strings"
)

// Inf marks a pair with no known path. Half of MaxInt32 leaves headroom so
// that Inf+Inf still fits in an int32 and never beats a real finite path.
const Inf int32 = math.MaxInt32 / 2

// Graph is a dense directed graph held as a flattened n x n weight matrix,
// row-major: entry (i,j) lives at W[i*N+j]. The diagonal is always 0.
// Exactly one engine may mutate a Graph at a time; engines relax it in place.
type Graph struct {
	N int     // vertices per side
	W []int32 // length N*N
}

// New returns an n-vertex graph with zero diagonal and every other pair Inf.
func New(n int) *Graph {
	g := &Graph{N: n, W: make([]int32, n*n)}
	for i := range g.W {
		g.W[i] = Inf
	}
	for i := 0; i < n; i++ {
		g.W[i*n+i] = 0
	}
	return g
}

func (g *Graph) At(i, j int) int32 {
	return g.W[i*g.N+j]
}

func (g *Graph) Set(i, j int, w int32) {
	g.W[i*g.N+j] = w
}

func (g *Graph) Clone() *Graph {
	w := make([]int32, len(g.W))
	copy(w, g.W)
	return &Graph{N: g.N, W: w}
}

func (g *Graph) Equal(other *Graph) bool {
	if g.N != other.N {
		return false
	}
	for i := range g.W {
		if g.W[i] != other.W[i] {
			return false
		}
	}
	return true
}

// FootprintBytes reports the size of the weight buffer, for run summaries.
func (g *Graph) FootprintBytes() int {
	return len(g.W) * 4
}

// String renders the matrix row per line, with Inf shown as N.
func (g *Graph) String() string {
	var sb strings.Builder
	for i := 0; i < g.N; i++ {
		for j := 0; j < g.N; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if w := g.W[i*g.N+j]; w == Inf {
				sb.WriteByte('N')
			} else {
				sb.WriteString(strconv.Itoa(int(w)))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
