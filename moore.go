package hilbert

import "lukechampine.com/uint128"

// The Moore curve is the closed loop arrangement of the Hilbert curve: four
// Hilbert sub-curves, each one order down, oriented so the walk ends
// adjacent to where it began. It is not self similar at the top level, so the top level
// quadrant rule lives here, outside the chunk loop, and everything below it
// reuses the Hilbert tables. See doc.go for the geometry and the order 2
// grid.

// EncodeMoore returns the Moore curve distance of (x, y) at the given
// order. Order handling matches Encode: odd orders round up to even (the
// smallest reachable Moore walk is therefore the order 2 loop), order 0
// encodes to 0, and the rounded order must fit the coordinate bit width.
func EncodeMoore[T Coordinate, K Key](x, y T, order uint8) K {
	checkPair[T, K]()
	n := evenOrder(order)
	checkOrder(n, widthOf[T]())
	if n == 0 {
		return 0
	}
	return K(encodeMooreCore(uint64(x), uint64(y), n))
}

// DecodeMoore returns the coordinates at distance h along the Moore curve
// of the given order. It is the inverse of EncodeMoore at the same order.
func DecodeMoore[K Key, T Coordinate](h K, order uint8) (x, y T) {
	checkPair[T, K]()
	n := evenOrder(order)
	checkOrder(n, widthOf[T]())
	if n == 0 {
		return 0, 0
	}
	cx, cy := decodeMooreCore(uint64(h), n)
	return T(cx), T(cy)
}

// Encode64Moore is EncodeMoore for 64 bit axes.
func Encode64Moore(x, y uint64, order uint8) uint128.Uint128 {
	n := evenOrder(order)
	checkOrder(n, 64)
	if n == 0 {
		return uint128.Zero
	}
	m := n - 1
	prefix, state := mooreQuadrant(x, y, m)
	return uint128.From64(prefix).Lsh(uint(2 * m)).Or(encodeWide(x, y, m, state))
}

// Decode64Moore is DecodeMoore for 64 bit axes.
func Decode64Moore(h uint128.Uint128, order uint8) (x, y uint64) {
	n := evenOrder(order)
	checkOrder(n, 64)
	if n == 0 {
		return 0, 0
	}
	m := n - 1
	sx, sy := decodeWide(h, m, 0)
	return moorePlace(h.Rsh(uint(2*m)).Lo&0b11, sx, sy, m)
}

// encodeMooreCore folds the top level rule and defers the remaining bit
// levels, one fewer than the order, to the shared engine. The engine windows never reach bit m, so
// the quadrant bits ride along unmasked.
func encodeMooreCore(x, y uint64, order int) uint64 {
	m := order - 1
	prefix, state := mooreQuadrant(x, y, m)
	return prefix<<(2*m) | encodeCore(x, y, m, state)
}

// decodeMooreCore runs the engine from state 0 regardless of quadrant and
// reflects the result into place, the counterpart of encode deriving its
// state from the coordinates. The prefix bits sit above every window the
// engine reads, so h needs no masking either.
func decodeMooreCore(h uint64, order int) (x, y uint64) {
	m := order - 1
	sx, sy := decodeCore(h, m, 0)
	return moorePlace(h>>(2*m)&0b11, sx, sy, m)
}

// mooreQuadrant returns the distance prefix and sub-curve orientation for
// the top level quadrant holding (x, y):
//
//	(qx,qy)  prefix  orientation
//	(0,0)    0       3
//	(0,1)    1       0
//	(1,1)    2       0
//	(1,0)    3       3
//
// The lower quadrants get orientation 3 (runs from its quadrant's top right
// corner to its top left), the upper quadrants orientation 0 (bottom left
// to bottom right), which makes every hand off between consecutive
// sub-curves grid adjacent, including the wrap from prefix 3 back to
// prefix 0. The default arm cannot be reached with a well formed bit pair
// and guards the invariant.
func mooreQuadrant(x, y uint64, m int) (prefix uint64, state byte) {
	switch (x>>m&1)<<1 | y>>m&1 {
	case 0b00:
		return 0, 3 << 6
	case 0b01:
		return 1, 0
	case 0b11:
		return 2, 0
	case 0b10:
		return 3, 3 << 6
	default:
		panic("hilbert: moore quadrant: top bit pair out of range")
	}
}

// moorePlace maps a fixed state sub-curve decode into the quadrant named by
// the 2 bit distance prefix. Orientation 3 is the 180 degree image of
// orientation 0, so the prefix 0 and 3 quadrants complement both axes
// within the sub-curve before offsetting.
func moorePlace(prefix, x, y uint64, m int) (uint64, uint64) {
	side := uint64(1) << m
	switch prefix {
	case 0:
		return side - 1 - x, side - 1 - y
	case 1:
		return x, side | y
	case 2:
		return side | x, side | y
	case 3:
		return side<<1 - 1 - x, side - 1 - y
	default:
		panic("hilbert: moore quadrant: distance prefix out of range")
	}
}
