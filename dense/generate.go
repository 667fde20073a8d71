package dense

import (
	"errors"
	"math/rand"

	"github.com/yourbasic/bit"
)

var ErrTooManyEdges = errors.New("edge count exceeds maximum possible for vertex count")

// Generate builds a random directed graph with the given number of vertices
// and exactly edges distinct unit-weight edges, no self loops, no duplicates.
// Fails with ErrTooManyEdges when more than vertices*(vertices-1) edges are
// requested. The caller owns the rng; pass a seeded one for reproducible runs.
func Generate(vertices, edges int, rng *rand.Rand) (*Graph, error) {
	if edges > vertices*(vertices-1) {
		return nil, ErrTooManyEdges
	}
	g := New(vertices)

	// Rejection-sample edge slots, deduped with a bitset over i*n+j.
	used := bit.New()
	for placed := 0; placed < edges; {
		src := rng.Intn(vertices)
		dst := rng.Intn(vertices)
		if src == dst {
			continue
		}
		slot := src*vertices + dst
		if used.Contains(slot) {
			continue
		}
		used.Add(slot)
		g.Set(src, dst, 1)
		placed++
	}
	return g, nil
}
