package hilbert

import (
	"math/bits"

	"lukechampine.com/uint128"
)

// DecodeAuto returns the coordinates at curve distance h, inferring the
// order from the magnitude of h. It is the inverse of EncodeAuto: for any
// pair, DecodeAuto(EncodeAuto(x, y)) == (x, y).
func DecodeAuto[K Key, T Coordinate](h K) (x, y T) {
	checkPair[T, K]()
	cx, cy := decodeCore(uint64(h), keyOrder(bits.Len64(uint64(h))), 0)
	return T(cx), T(cy)
}

// Decode returns the coordinates at distance h along the Hilbert curve of
// the given order. Odd orders are rounded up to even, matching Encode, and
// the rounded order must fit the coordinate bit width. Distances at or
// above 4^order are not masked and yield nonsense results.
func Decode[K Key, T Coordinate](h K, order uint8) (x, y T) {
	checkPair[T, K]()
	n := evenOrder(order)
	checkOrder(n, widthOf[T]())
	cx, cy := decodeCore(uint64(h), n, 0)
	return T(cx), T(cy)
}

// Decode64Auto is DecodeAuto for 128 bit distances and 64 bit axes.
func Decode64Auto(h uint128.Uint128) (x, y uint64) {
	return decodeWide(h, keyOrder(h.Len()), 0)
}

// Decode64 is Decode for 128 bit distances and 64 bit axes.
func Decode64(h uint128.Uint128, order uint8) (x, y uint64) {
	n := evenOrder(order)
	checkOrder(n, 64)
	return decodeWide(h, n, 0)
}

// decodeCore mirrors encodeCore with the reverse table: 6 bits of h per
// lookup, most significant chunk first, each entry contributing 3 bits to
// each axis. The negative shift tail handles orders that are not a multiple
// of 3, exactly as on the encode side.
func decodeCore(h uint64, order int, state byte) (x, y uint64) {
	shift := order - 3
	for shift > 0 {
		r := lutDecode[state|byte(h>>(2*shift)&payloadMask)]
		state = r & stateMask
		x |= uint64(r>>3&0b111) << shift
		y |= uint64(r&0b111) << shift
		shift -= 3
	}
	shift = -shift
	r := lutDecode[state|byte(h<<(2*shift)&payloadMask)]
	x |= uint64(r>>3&0b111) >> shift
	y |= uint64(r&0b111) >> shift
	return x, y
}

// decodeWide is decodeCore over a 128 bit distance, for orders up to 64.
func decodeWide(h uint128.Uint128, order int, state byte) (x, y uint64) {
	shift := order - 3
	for shift > 0 {
		r := lutDecode[state|byte(h.Rsh(uint(2*shift)).Lo&payloadMask)]
		state = r & stateMask
		x |= uint64(r>>3&0b111) << shift
		y |= uint64(r&0b111) << shift
		shift -= 3
	}
	shift = -shift
	r := lutDecode[state|byte(h.Lsh(uint(2*shift)).Lo&payloadMask)]
	x |= uint64(r>>3&0b111) >> shift
	y |= uint64(r&0b111) >> shift
	return x, y
}
