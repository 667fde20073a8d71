package dense

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g := New(4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i == j {
				require.EqualValues(t, 0, g.At(i, j))
			} else {
				require.EqualValues(t, Inf, g.At(i, j))
			}
		}
	}
	require.Equal(t, 4*4*4, g.FootprintBytes())
}

func TestCloneEqual(t *testing.T) {
	g := New(3)
	g.Set(0, 2, 7)

	c := g.Clone()
	require.True(t, g.Equal(c))

	c.Set(2, 0, 1)
	require.False(t, g.Equal(c))
	require.EqualValues(t, Inf, g.At(2, 0), "clone must not share storage")

	require.False(t, g.Equal(New(4)))
}

func TestString(t *testing.T) {
	g := New(2)
	g.Set(0, 1, 5)
	require.Equal(t, "0 5\nN 0\n", g.String())
}

func TestBlockRoundTrip(t *testing.T) {
	const n, b = 6, 2
	g := New(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			g.Set(i, j, int32(i*n+j))
		}
	}

	buf := make([]int32, b*b)
	g.FillBlock(buf, 2, 1, b)
	// Tile (2,1) covers rows 4-5, columns 2-3.
	require.Equal(t, []int32{4*n + 2, 4*n + 3, 5*n + 2, 5*n + 3}, buf)

	for i := range buf {
		buf[i] = -buf[i]
	}
	g.StoreBlock(buf, 2, 1, b)
	require.EqualValues(t, -(4*n + 2), g.At(4, 2))
	require.EqualValues(t, -(5*n + 3), g.At(5, 3))
	require.EqualValues(t, 4*n+1, g.At(4, 1), "neighbouring column untouched")
	require.EqualValues(t, 3*n+2, g.At(3, 2), "neighbouring row untouched")
}
