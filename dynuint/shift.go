// SPDX-License-Identifier: MIT

// Package dynuint - bit shifts.
//
// Left shifts may add limbs; right shifts never do and drop limbs that end up
// entirely zero. ShiftGrow is the packing primitive: it reserves storage for
// the freshly opened low-order field before shifting, so a value assembled by
// repeated "shift, then OR the next field" ends up with room for the whole
// packed width.
//
// Shift counts split into a limb part (n >> 6) and a bit part (n & 63); Go
// defines x >> 64 == 0 for unsigned x, which removes the bit-part == 0 case.

package dynuint

// Lsh returns x << n.
func (x Uint) Lsh(n uint) Uint {
	if len(x.limbs) == 0 {
		return Uint{}
	}
	words, s := int(n>>limbLog), n&(limbBits-1)
	z := make([]uint64, len(x.limbs)+words+1)
	shlTo(z, x.limbs, words, s)

	return Uint{limbs: norm(z)}
}

// LshAssign sets x to x << n. The result lives in fresh storage with at
// least x's capacity.
func (x *Uint) LshAssign(n uint) {
	x.lshReserve(n, cap(x.limbs))
}

// lshReserve shifts x left by n into new storage of at least reserve limbs.
func (x *Uint) lshReserve(n uint, reserve int) {
	if len(x.limbs) == 0 {
		if reserve > cap(x.limbs) {
			x.limbs = make([]uint64, 0, reserve)
		}
		return
	}
	words, s := int(n>>limbLog), n&(limbBits-1)
	need := len(x.limbs) + words + 1
	z := make([]uint64, need, max(need, reserve))
	shlTo(z, x.limbs, words, s)
	x.limbs = norm(z)
}

// shlTo writes src << (words*64 + s) into a zeroed dst.
func shlTo(dst, src []uint64, words int, s uint) {
	for i, v := range src {
		dst[i+words] |= v << s
		dst[i+words+1] = v >> (limbBits - s)
	}
}

// Rsh returns x >> n. Bits shifted past position zero are lost.
func (x Uint) Rsh(n uint) Uint {
	words, s := int(n>>limbLog), n&(limbBits-1)
	if words >= len(x.limbs) {
		return Uint{}
	}
	z := make([]uint64, len(x.limbs)-words)
	shrTo(z, x.limbs, words, s)

	return Uint{limbs: norm(z)}
}

// RshAssign sets x to x >> n. The limb count never grows and the capacity
// is kept.
func (x *Uint) RshAssign(n uint) {
	words, s := int(n>>limbLog), n&(limbBits-1)
	if words >= len(x.limbs) {
		x.limbs = x.limbs[:0]
		return
	}
	z := make([]uint64, len(x.limbs)-words, cap(x.limbs))
	shrTo(z, x.limbs, words, s)
	x.limbs = norm(z)
}

// shrTo writes src >> (words*64 + s) into dst[:len(src)-words].
func shrTo(dst, src []uint64, words int, s uint) {
	last := len(src) - words
	for i := 0; i < last; i++ {
		v := src[i+words] >> s
		if i+words+1 < len(src) {
			v |= src[i+words+1] << (limbBits - s)
		}
		dst[i] = v
	}
}

// ShiftGrow reserves storage for n more bits and then shifts x left by n.
//
// The reservation is cumulative: capacity grows by ceil(n/64) limbs on top
// of what x already reserved (never less than one limb past its length), also
// when x is zero. A zero built up through
// ShiftGrow therefore remembers the full packed width, and Empty on it
// yields zero values sized for any packed weight.
func (x *Uint) ShiftGrow(n uint) {
	x.lshReserve(n, max(cap(x.limbs), len(x.limbs)+1)+limbsFor(n))
}
