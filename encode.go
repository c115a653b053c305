package hilbert

import "lukechampine.com/uint128"

// EncodeAuto returns the Hilbert curve distance of (x, y), inferring the
// smallest even order that covers both coordinates. The distance of a pair
// is stable under widening (EncodeAuto of the same values as uint8 or
// uint32 agree numerically) because the inferred order depends only on the
// magnitudes.
func EncodeAuto[T Coordinate, K Key](x, y T) K {
	checkPair[T, K]()
	return K(encodeCore(uint64(x), uint64(y), coordOrder(uint64(x|y)), 0))
}

// Encode returns the Hilbert curve distance of (x, y) on the curve of the
// given order. Odd orders are rounded up to even. Encode panics if the
// rounded order exceeds the coordinate bit width. Order 0 is the single
// cell curve and encodes to 0.
//
// ** Note ** coordinates at or above 2^order are not masked; supplying them
// yields nonsense results, and the error is not detected.
func Encode[T Coordinate, K Key](x, y T, order uint8) K {
	checkPair[T, K]()
	n := evenOrder(order)
	checkOrder(n, widthOf[T]())
	return K(encodeCore(uint64(x), uint64(y), n, 0))
}

// Encode64Auto is EncodeAuto for 64 bit axes. The distance occupies up to
// 128 bits.
func Encode64Auto(x, y uint64) uint128.Uint128 {
	return encodeWide(x, y, coordOrder(x|y), 0)
}

// Encode64 is Encode for 64 bit axes.
func Encode64(x, y uint64, order uint8) uint128.Uint128 {
	n := evenOrder(order)
	checkOrder(n, 64)
	return encodeWide(x, y, n, 0)
}

// encodeCore walks the pair most significant chunk first, one forward table
// lookup per 3 bits of each axis, ORing each 6 bit payload into place. The
// shift turns negative once fewer than 3 bits remain; the inputs are then
// shifted left into the top of the window and the payload shifted right by
// the matching amount, so the short tail reuses the same lookup instead of
// needing its own path. Serves orders up to 32; beyond that the accumulator
// would overflow and encodeWide takes over.
func encodeCore(x, y uint64, order int, state byte) uint64 {
	var h uint64
	shift := order - 3
	for shift > 0 {
		r := lutEncode[state|byte(x>>shift&0b111)<<3|byte(y>>shift&0b111)]
		state = r & stateMask
		h |= uint64(r&payloadMask) << (2 * shift)
		shift -= 3
	}
	shift = -shift
	r := lutEncode[state|byte(x<<shift&0b111)<<3|byte(y<<shift&0b111)]
	return h | uint64(r&payloadMask)>>(2*shift)
}

// encodeWide is encodeCore with a 128 bit accumulator, for orders up to 64.
// The window arithmetic stays in uint64; only the accumulation widens.
func encodeWide(x, y uint64, order int, state byte) uint128.Uint128 {
	var h uint128.Uint128
	shift := order - 3
	for shift > 0 {
		r := lutEncode[state|byte(x>>shift&0b111)<<3|byte(y>>shift&0b111)]
		state = r & stateMask
		h = h.Or(uint128.From64(uint64(r & payloadMask)).Lsh(uint(2 * shift)))
		shift -= 3
	}
	shift = -shift
	r := lutEncode[state|byte(x<<shift&0b111)<<3|byte(y<<shift&0b111)]
	return h.Or(uint128.From64(uint64(r&payloadMask) >> (2 * shift)))
}
