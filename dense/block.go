package dense

// A block is a b x b tile of the weight matrix, addressed by block-row and
// block-column indices; tile (bi,bj) covers rows [bi*b, bi*b+b) and columns
// [bj*b, bj*b+b). Blocks have no storage of their own: they are copied into
// flat scratch buffers for localized relaxation and written back afterwards.
// Callers must ensure b divides N.

// FillBlock copies tile (bi,bj) into dst, which must have length b*b.
func (g *Graph) FillBlock(dst []int32, bi, bj, b int) {
	base := bi*b*g.N + bj*b
	for r := 0; r < b; r++ {
		copy(dst[r*b:r*b+b], g.W[base+r*g.N:base+r*g.N+b])
	}
}

// StoreBlock writes src, of length b*b, back over tile (bi,bj).
func (g *Graph) StoreBlock(src []int32, bi, bj, b int) {
	base := bi*b*g.N + bj*b
	for r := 0; r < b; r++ {
		copy(g.W[base+r*g.N:base+r*g.N+b], src[r*b:r*b+b])
	}
}
