// Package hilbert converts between 2D coordinates and their distance along a
// Hilbert space filling curve, in both directions, for unsigned coordinate
// widths up to 64 bits per axis. A Moore curve variant (the closed loop form
// of the Hilbert curve) is provided alongside.
package hilbert

/*

# Motivation

A Hilbert curve visits every cell of a 2^order x 2^order grid exactly once,
and it does so such that cells which are close together on the curve are
close together in the plane. Mapping (x, y) to the distance h along the curve
therefore gives a single sortable key that preserves spatial locality, which
is what makes it useful as an index key for spatial data, tile addressing and
range queries over coordinates. The mapping is a bijection: h recovers
exactly the (x, y) that produced it.

The classic way to compute the mapping walks the coordinates one bit per axis
at a time, rotating and reflecting a quadrant pattern as it recurses. That
works, but it costs a handful of branches and swaps per bit. This
implementation instead drives the whole recursion through two precomputed
transition tables of 256 bytes each. Each lookup consumes 3 bits of x and 3
bits of y (or 6 bits of h on the way back) and carries just 2 bits of
automaton state between lookups, so a full 64 bit per axis conversion is 22
table reads and some shifts. Both tables together fit comfortably alongside
each other in a single cache line pair, which is the property that motivates
the whole design.

# The four orientation automaton

At every level of the recursion a quadrant is traversed in one of four
orientations. Numbering the orientations 0..3, one step of the recursion maps
(state, x bit, y bit) to (next state, 2 bits of h):

	state 0          state 1          state 2          state 3
	(x,y)->h s'      (x,y)->h s'      (x,y)->h s'      (x,y)->h s'
	(0,0)  0 1       (0,0)  0 0       (0,0)  2 2       (0,0)  2 3
	(0,1)  1 0       (0,1)  3 3       (0,1)  1 2       (0,1)  3 1
	(1,0)  3 2       (1,0)  1 1       (1,0)  3 0       (1,0)  1 3
	(1,1)  2 0       (1,1)  2 1       (1,1)  0 3       (1,1)  0 2

Drawn as 2x2 grids with the cell labelled by its h value (y increasing
upwards), the four orientations are the four rotations and reflections of the
same U shape:

	state 0   state 1   state 2   state 3

	 1 2       3 2       1 0       3 0
	 0 3       0 1       2 3       2 1

The reverse direction is the same automaton read the other way, mapping
(state, 2 bits of h) to (next state, x bit, y bit). Both directions are kept
as canonical 16 entry tables in lutgen.go, and the 256 entry tables used at
runtime are derived from them by composing three consecutive steps into one
(see lutgen.go). The embedded copies in lut.go are what the hot path reads;
the derivation exists so tests can regenerate them and prove the constants
were not fat fingered.

# Table packing

A table entry is one byte. The next state lives in the top two bits for both
tables, and the index into either table places the current state in those
same two bits. That alignment is deliberate: the state emerging from one
lookup is masked once and OR'd straight into the next index without any
re-shifting.

	forward index  state<<6 | x3<<3 | y3      entry  state'<<6 | h6
	reverse index  state<<6 | h6              entry  state'<<6 | x3<<3 | y3

# Chunking, order and the short final chunk

The engine processes the most significant chunk first, 3 bits per axis per
step. The order of the walk (bits per axis) is auto detected from the operand
magnitudes in the Auto entry points, and caller supplied otherwise. Orders
are even: odd requested orders are rounded up, and auto detection always
lands on an even order, so a 1 bit pair is processed at order 2 and yields
the base mapping (0,0)->0 (1,0)->1 (1,1)->2 (0,1)->3.

When order is not a multiple of 3 the final chunk covers fewer than 3 bits.
Rather than a separate code path, the remaining input bits are shifted left
into the top of a 3 bit window, the lookup proceeds as normal, and the
output is shifted right by the matching amount. The one loop body therefore
serves every order from 0 to 64.

# The Moore variant

A Moore curve of order n is four Hilbert sub-curves of order n-1 arranged so
the whole walk forms a closed loop (the last cell is adjacent to the first).
Unlike the Hilbert curve it is not self similar at the top level, and no
assignment of the four orientations above can express its top level rule, so
the top level is handled outside the chunk loop and the interior reuses the
Hilbert tables unchanged. Encoding derives an index prefix and a sub-curve
orientation from the top bit of each axis:

	quadrant (qx,qy)  prefix  sub-curve state
	(0,0)             0       3
	(0,1)             1       0
	(1,1)             2       0
	(1,0)             3       3

Decoding runs the engine from state 0 regardless of quadrant and then
reflects the result into place. That works because rotating the plane 180
degrees swaps orientations 0 and 3 (and 1 and 2), so a state 3 sub-curve
decode is exactly the complement, on both axes, of the state 0 decode of the
same bits. The asymmetry between encode (state derived from coordinates) and
decode (state fixed) is intentional.

The order 2 grids for both variants, cells labelled with h, y increasing
upwards:

	Hilbert          Moore

	 5  6  9 10       5  6  9 10
	 4  7  8 11       4  7  8 11
	 3  2 13 12       3  0 15 12
	 0  1 14 15       2  1 14 13

The upper halves agree because both variants cover the upper quadrants with
state 0 sub-curves in the same h ranges; the Moore curve differs only in the
lower half, where its loop closes. The order 2 Moore walk is the smallest
reachable one (requested order 1 rounds up to 2).

# Widths and keys

Coordinate widths pair with a double width key for the curve distance: 8->16,
16->32, 32->64 and 64->128 bits. The first three pairs are served by the
generic entry points over the Coordinate and Key type sets; Go has no native
128 bit integer, so the 64 bit axis pair is served by the Encode64/Decode64
family over lukechampine.com/uint128 values. All entry points are pure
functions over immutable tables and are safe for concurrent use.

# Sources

The table driven formulation, including the packing of state and payload into
one byte and the short final chunk trick, follows the rust fast_hilbert
crate. The orientation automaton is the standard rotate and reflect recursion
described on wikipedia.

* https://github.com/becheran/fast-hilbert
* https://en.wikipedia.org/wiki/Hilbert_curve
* https://en.wikipedia.org/wiki/Moore_curve
* https://github.com/rawrunprotected/hilbert_curves for the wider family of
  branchless formulations.

*/
