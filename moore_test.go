package hilbert

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

// The second order loop starts one cell below and left of centre and returns
// to its neighbour, so distance 15 touches distance 0:
//
//	y
//	3 |  5   6   9  10
//	2 |  4   7   8  11
//	1 |  3   0  15  12
//	0 |  2   1  14  13
//	  +----------------
//	     0   1   2   3  x
func TestMooreOrder2Walk(t *testing.T) {
	walk := [16][2]uint8{
		{1, 1}, {1, 0}, {0, 0}, {0, 1},
		{0, 2}, {0, 3}, {1, 3}, {1, 2},
		{2, 2}, {2, 3}, {3, 3}, {3, 2},
		{3, 1}, {3, 0}, {2, 0}, {2, 1},
	}
	for h, cell := range walk {
		x, y := DecodeMoore[uint16, uint8](uint16(h), 2)
		assert.Equal(t, cell[0], x, "x at distance %d", h)
		assert.Equal(t, cell[1], y, "y at distance %d", h)
		assert.Equal(t, uint16(h), EncodeMoore[uint8, uint16](cell[0], cell[1], 2), "distance of (%d,%d)", cell[0], cell[1])
	}
}

// Unlike the open curve the loop has no loose ends: every pair of consecutive
// distances shares an edge, including the pair that wraps around.
func TestMooreClosedLoop(t *testing.T) {
	for _, order := range []uint8{2, 4, 6} {
		cells := uint64(1) << (2 * uint(order))
		px, py := DecodeMoore[uint64, uint32](cells-1, order)
		for h := uint64(0); h < cells; h++ {
			x, y := DecodeMoore[uint64, uint32](h, order)
			require.Equal(t, uint32(1), stepDistance(px, x)+stepDistance(py, y),
				"order %d: distance %d does not touch its predecessor", order, h)
			px, py = x, y
		}
	}
}

func TestMooreBijectionOrder8(t *testing.T) {
	var seen [1 << 16]bool
	for x := uint32(0); x < 256; x++ {
		for y := uint32(0); y < 256; y++ {
			h := EncodeMoore[uint8, uint16](uint8(x), uint8(y), 8)
			require.False(t, seen[h], "distance %d hit twice, second at (%d,%d)", h, x, y)
			seen[h] = true
		}
	}
}

// The quarters are visited anticlockwise from the bottom left. At order 4
// each holds 64 consecutive distances.
func TestMooreQuadrantCycle(t *testing.T) {
	quadrants := [4][2]uint32{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	for p := uint64(0); p < 4; p++ {
		for h := p * 64; h < (p+1)*64; h++ {
			x, y := DecodeMoore[uint64, uint32](h, 4)
			assert.Equal(t, quadrants[p][0], x>>3, "x quadrant of distance %d", h)
			assert.Equal(t, quadrants[p][1], y>>3, "y quadrant of distance %d", h)
		}
	}
}

// The loop enters each order at the cell just below and left of centre.
func TestMooreStartsNearCentre(t *testing.T) {
	for _, order := range []uint8{2, 4, 6, 8} {
		x, y := DecodeMoore[uint64, uint32](0, order)
		want := uint32(1)<<(order-1) - 1
		assert.Equal(t, want, x, "order %d", order)
		assert.Equal(t, want, y, "order %d", order)
	}
	x, y := Decode64Moore(uint128.Zero, 64)
	assert.Equal(t, uint64(1)<<63-1, x)
	assert.Equal(t, uint64(1)<<63-1, y)
}

func TestMoorePinned(t *testing.T) {
	assert.Equal(t, uint16(50896), EncodeMoore[uint8, uint16](200, 100, 8))
	assert.Equal(t, uint64(3448006966244918802), EncodeMoore[uint32, uint64](123456789, 987654321, 32))

	got := Encode64Moore(0xDEADBEEFCAFEBABE, 0x123456789ABCDEF0, 64)
	assert.Equal(t, uint128.New(0xb92210061e98b056, 0xd8f261e174e86b3f), got)

	x, y := Decode64Moore(uint128.From64(12345678901234567890), 64)
	assert.Equal(t, uint64(9223372032844721097), x)
	assert.Equal(t, uint64(9223372032810024133), y)
}

// At a fixed order the distance does not depend on the coordinate width used
// to carry it.
func TestMooreCrossWidthConsistency(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	for i := 0; i < 500; i++ {
		x := uint8(rnd.Uint32())
		y := uint8(rnd.Uint32())
		h8 := EncodeMoore[uint8, uint16](x, y, 8)
		assert.Equal(t, uint32(h8), EncodeMoore[uint16, uint32](uint16(x), uint16(y), 8))
		assert.Equal(t, uint64(h8), EncodeMoore[uint32, uint64](uint32(x), uint32(y), 8))
		assert.True(t, Encode64Moore(uint64(x), uint64(y), 8).Equals(uint128.From64(uint64(h8))))
	}
}

func TestMooreRoundTrip(t *testing.T) {
	for _, order := range []uint8{2, 4} {
		side := uint32(1) << order
		for x := uint32(0); x < side; x++ {
			for y := uint32(0); y < side; y++ {
				h := EncodeMoore[uint32, uint64](x, y, order)
				gx, gy := DecodeMoore[uint64, uint32](h, order)
				require.Equal(t, x, gx, "order %d x", order)
				require.Equal(t, y, gy, "order %d y", order)
			}
		}
		for h := uint64(0); h < uint64(side)*uint64(side); h++ {
			x, y := DecodeMoore[uint64, uint32](h, order)
			require.Equal(t, h, EncodeMoore[uint32, uint64](x, y, order), "order %d", order)
		}
	}

	rnd := rand.New(rand.NewSource(5))
	for i := 0; i < 2000; i++ {
		x, y := rnd.Uint32(), rnd.Uint32()
		h := EncodeMoore[uint32, uint64](x, y, 32)
		gx, gy := DecodeMoore[uint64, uint32](h, 32)
		require.Equal(t, x, gx)
		require.Equal(t, y, gy)
	}
	for i := 0; i < 2000; i++ {
		x, y := rnd.Uint64(), rnd.Uint64()
		h := Encode64Moore(x, y, 64)
		gx, gy := Decode64Moore(h, 64)
		require.Equal(t, x, gx)
		require.Equal(t, y, gy)
	}
}

// The full 64 bit loop closes too: the last distance and distance zero sit
// side by side at the centre seam.
func TestMooreWrapAdjacency64(t *testing.T) {
	lx, ly := Decode64Moore(uint128.Max, 64)
	assert.Equal(t, uint64(1)<<63, lx)
	assert.Equal(t, uint64(1)<<63-1, ly)
	fx, fy := Decode64Moore(uint128.Zero, 64)
	assert.Equal(t, uint64(1), lx-fx)
	assert.Equal(t, ly, fy)
}

// A requested order below two still serves the rounded second order square.
func TestMooreOrder1RoundsUp(t *testing.T) {
	for x := uint8(0); x < 4; x++ {
		for y := uint8(0); y < 4; y++ {
			assert.Equal(t, EncodeMoore[uint8, uint16](x, y, 2), EncodeMoore[uint8, uint16](x, y, 1))
		}
	}
	for h := uint16(0); h < 16; h++ {
		ex, ey := DecodeMoore[uint16, uint8](h, 2)
		ox, oy := DecodeMoore[uint16, uint8](h, 1)
		assert.Equal(t, ex, ox)
		assert.Equal(t, ey, oy)
	}
}

func TestMooreOrderZeroDegenerates(t *testing.T) {
	assert.Zero(t, EncodeMoore[uint8, uint16](0, 0, 0))
	x, y := DecodeMoore[uint16, uint8](0, 0)
	assert.Zero(t, x)
	assert.Zero(t, y)
	assert.True(t, Encode64Moore(0, 0, 0).IsZero())
}

func TestMoorePanics(t *testing.T) {
	assert.Panics(t, func() { _ = EncodeMoore[uint8, uint16](0, 0, 9) })
	assert.Panics(t, func() { DecodeMoore[uint16, uint8](0, 10) })
	assert.Panics(t, func() { _ = Encode64Moore(0, 0, 65) })
	assert.Panics(t, func() { Decode64Moore(uint128.Zero, 65) })
	assert.Panics(t, func() { _ = EncodeMoore[uint8, uint32](0, 0, 4) })
	assert.NotPanics(t, func() { _ = EncodeMoore[uint32, uint64](math.MaxUint32, math.MaxUint32, 32) })
}
