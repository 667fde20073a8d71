package engine

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/apsplab/blockfw/dense"
)

// Cross-checks our engines against gonum's independent Floyd-Warshall.
func TestGonumOracle(t *testing.T) {
	const v, e = 30, 170
	rng := rand.New(rand.NewSource(99))
	base, err := dense.Generate(v, e, rng)
	if err != nil {
		t.Fatal(err)
	}

	oracle := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i := 0; i < v; i++ {
		oracle.AddNode(simple.Node(i))
	}
	for i := 0; i < v; i++ {
		for j := 0; j < v; j++ {
			if i != j && base.At(i, j) != dense.Inf {
				oracle.SetWeightedEdge(simple.WeightedEdge{
					F: simple.Node(i),
					T: simple.Node(j),
					W: float64(base.At(i, j)),
				})
			}
		}
	}
	paths, ok := path.FloydWarshall(oracle)
	if !ok {
		t.Fatal("oracle reported a negative cycle in a non-negative graph")
	}

	for _, eng := range allEngines(4, 5) {
		g := base.Clone()
		eng.Run(g)

		for i := 0; i < v; i++ {
			for j := 0; j < v; j++ {
				want := paths.Weight(int64(i), int64(j))
				got := g.At(i, j)
				if math.IsInf(want, 1) {
					if got != dense.Inf {
						t.Fatal(eng.Name(), ": dist[", i, "][", j, "] =", got, "but oracle says unreachable")
					}
					continue
				}
				if float64(got) != want {
					t.Fatal(eng.Name(), ": dist[", i, "][", j, "] =", got, "oracle:", want)
				}
			}
		}
	}
}
