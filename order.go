package hilbert

import "math/bits"

// Coordinate constrains the axis type of the generic entry points to the
// widths whose doubled key width is still a native Go integer. 64 bit axes
// are served by the Encode64/Decode64 family, where the key is a
// uint128.Uint128.
type Coordinate interface {
	~uint8 | ~uint16 | ~uint32
}

// Key constrains the curve distance type of the generic entry points. A Key
// must be exactly double the width of the Coordinate it is instantiated
// with: uint8 pairs with uint16, uint16 with uint32, uint32 with uint64.
// The pairing is checked at runtime and any other combination panics.
type Key interface {
	~uint16 | ~uint32 | ~uint64
}

type unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// widthOf returns the bit width of U. ^U(0) is the all ones value of U, so
// its bit length is the width; the whole thing folds to a constant once
// instantiated.
func widthOf[U unsigned]() int { return bits.Len64(uint64(^U(0))) }

// coordOrder returns the smallest even order whose grid covers coordinates
// with the given OR of the two axis values.
func coordOrder(v uint64) int { return (bits.Len64(v) + 1) &^ 1 }

// keyOrder returns the smallest even order whose curve contains a distance
// of the given bit length. Two distance bits per order level, then round up
// to even, mirroring coordOrder on the other side of the bijection.
func keyOrder(length int) int { return ((length+1)/2 + 1) &^ 1 }

// evenOrder rounds a requested order up to even, which keeps the explicit
// order entry points consistent with the auto detected ones (detection
// always lands on an even order).
func evenOrder(order uint8) int { return (int(order) + 1) &^ 1 }

// checkOrder panics when the order does not fit the coordinate width. An
// oversized order would walk bit levels the key type cannot hold, silently
// corrupting the bijection, so this is treated as a programming error.
func checkOrder(order, width int) {
	if order > width {
		panic("hilbert: order exceeds the coordinate bit width")
	}
}

// checkPair panics unless K is exactly twice the width of T. Type sets
// cannot tie the two parameters together, so the supported pairings are
// enforced here instead.
func checkPair[T Coordinate, K Key]() {
	if widthOf[K]() != 2*widthOf[T]() {
		panic("hilbert: key width must be double the coordinate width")
	}
}
