package hilbert

// Derivation of the 256 entry runtime tables from the canonical one bit per
// axis automaton. Nothing here runs on the encode/decode path; the derived
// tables are embedded in lut.go as literal data and the tests regenerate them
// with these functions to prove the constants match.

// The canonical automata. One entry per (state, 2 bit input), with the state
// in bits [3:2] of both index and value.
//
//	canonEncode: state<<2 | x<<1 | y  ->  state'<<2 | h2
//	canonDecode: state<<2 | h2        ->  state'<<2 | x<<1 | y
var canonEncode = [16]byte{
	4, 1, 11, 2,
	0, 15, 5, 6,
	10, 9, 3, 12,
	14, 7, 13, 8,
}

var canonDecode = [16]byte{
	4, 1, 3, 10,
	0, 6, 7, 13,
	15, 9, 8, 2,
	11, 14, 12, 5,
}

// tableEntry is the unpacked form of a runtime table entry, used only while
// composing. pack produces the byte layout lut.go stores.
type tableEntry struct {
	state   byte // successor orientation, 0..3
	payload byte // h6 for the forward table, x3<<3|y3 for the reverse
}

func (e tableEntry) pack() byte { return e.state<<6 | e.payload }

// deriveEncodeTable composes three consecutive steps of the given forward
// automaton into one 3 bit step for every (state, x3, y3) triple. The input
// bits are consumed most significant first and the 2 bit outputs accumulate
// in the same direction, matching the engine's most significant chunk first
// walk. It works for any four orientation automaton in the canonical
// layout, though only one is embedded.
func deriveEncodeTable(canon [16]byte) [256]byte {
	var lut [256]byte
	for i := range lut {
		e := tableEntry{state: byte(i >> 6)}
		for step := 2; step >= 0; step-- {
			xb := byte(i>>(3+step)) & 1
			yb := byte(i>>step) & 1
			r := canon[e.state<<2|xb<<1|yb]
			e.state = r >> 2
			e.payload = e.payload<<2 | r&0b11
		}
		lut[i] = e.pack()
	}
	return lut
}

// deriveDecodeTable is the reverse composition, replaying the given reverse
// automaton over the three 2 bit groups of every 6 bit h chunk.
func deriveDecodeTable(canon [16]byte) [256]byte {
	var lut [256]byte
	for i := range lut {
		e := tableEntry{state: byte(i >> 6)}
		var x3, y3 byte
		for step := 2; step >= 0; step-- {
			h2 := byte(i>>(2*step)) & 0b11
			r := canon[e.state<<2|h2]
			e.state = r >> 2
			x3 = x3<<1 | r>>1&1
			y3 = y3<<1 | r&1
		}
		e.payload = x3<<3 | y3
		lut[i] = e.pack()
	}
	return lut
}
