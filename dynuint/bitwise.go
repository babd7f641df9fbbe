// SPDX-License-Identifier: MIT

package dynuint

// Or returns x | y. The shorter operand is zero-extended.
func (x Uint) Or(y Uint) Uint {
	a, b := x.limbs, y.limbs
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(a) == 0 {
		return Uint{}
	}
	z := make([]uint64, len(a))
	copy(z, a)
	for i := range b {
		z[i] |= b[i]
	}

	return Uint{limbs: z} // top limb of a is non-zero, so z is canonical
}

// OrUint64 returns x | v.
func (x Uint) OrUint64(v uint64) Uint {
	return x.Or(New(v))
}

// OrAssign sets x to x | y.
func (x *Uint) OrAssign(y Uint) {
	if len(y.limbs) == 0 {
		return
	}
	z := detach(x.limbs, max(len(x.limbs), len(y.limbs)))
	for i := range y.limbs {
		z[i] |= y.limbs[i]
	}
	x.limbs = z
}

// OrAssignUint64 sets x to x | v.
func (x *Uint) OrAssignUint64(v uint64) {
	if v == 0 {
		return
	}
	z := detach(x.limbs, max(len(x.limbs), 1))
	z[0] |= v
	x.limbs = z
}

// And returns x & y. The result is never longer than the shorter operand.
func (x Uint) And(y Uint) Uint {
	n := min(len(x.limbs), len(y.limbs))
	if n == 0 {
		return Uint{}
	}
	z := make([]uint64, n)
	for i := range z {
		z[i] = x.limbs[i] & y.limbs[i]
	}

	return Uint{limbs: norm(z)}
}

// AndUint64 returns x & v.
func (x Uint) AndUint64(v uint64) Uint {
	if len(x.limbs) == 0 {
		return Uint{}
	}

	return New(x.limbs[0] & v)
}

// AndAssign sets x to x & y.
func (x *Uint) AndAssign(y Uint) {
	n := min(len(x.limbs), len(y.limbs))
	z := detach(x.limbs[:n], n)
	for i := range z {
		z[i] &= y.limbs[i]
	}
	x.limbs = norm(z)
}

// AndAssignUint64 sets x to x & v. AndAssignUint64(0) clears x but keeps its
// capacity, which is how a reusable buffer is reset.
func (x *Uint) AndAssignUint64(v uint64) {
	if len(x.limbs) == 0 {
		return
	}
	z := detach(x.limbs[:1], 1)
	z[0] &= v
	x.limbs = norm(z)
}
