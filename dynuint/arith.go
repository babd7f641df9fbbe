// SPDX-License-Identifier: MIT

// Package dynuint - addition and subtraction.
//
// Purpose:
//   - Provide pure (value-returning) and in-place (*Assign) forms of + and −.
//   - Refuse to wrap: subtraction below zero reports ErrUnderflow and leaves
//     the receiver untouched.
//
// Complexity quicksheet:
//   - Add/Sub: O(max(len x, len y)) time, one allocation for the pure forms.
//   - *Assign: O(max(len x, len y)), one allocation that keeps x's capacity.

package dynuint

import (
	"math/bits"

	"github.com/cockroachdb/errors"
)

// addTo writes x + y into z and returns the carry out of the top limb.
// Requires len(x) >= len(y) and len(z) >= len(x); z may alias x.
func addTo(z, x, y []uint64) uint64 {
	var carry uint64
	i := 0
	for ; i < len(y); i++ {
		z[i], carry = bits.Add64(x[i], y[i], carry)
	}
	for ; i < len(x); i++ {
		z[i], carry = bits.Add64(x[i], 0, carry)
	}

	return carry
}

// subFrom writes x − y into z and returns the borrow out of the top limb.
// Requires len(x) >= len(y) and len(z) >= len(x); z may alias x.
func subFrom(z, x, y []uint64) uint64 {
	var borrow uint64
	i := 0
	for ; i < len(y); i++ {
		z[i], borrow = bits.Sub64(x[i], y[i], borrow)
	}
	for ; i < len(x); i++ {
		z[i], borrow = bits.Sub64(x[i], 0, borrow)
	}

	return borrow
}

// Add returns x + y.
func (x Uint) Add(y Uint) Uint {
	a, b := x.limbs, y.limbs
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(a) == 0 {
		return Uint{}
	}
	z := make([]uint64, len(a)+1)
	z[len(a)] = addTo(z, a, b)

	return Uint{limbs: norm(z)}
}

// AddUint64 returns x + v.
func (x Uint) AddUint64(v uint64) Uint {
	return x.Add(New(v))
}

// AddAssign sets x to x + y. The result lives in fresh storage with at least
// x's capacity, so copies of x are unaffected.
func (x *Uint) AddAssign(y Uint) {
	n := max(len(x.limbs), len(y.limbs))
	if n == 0 {
		return
	}
	// detach zero-extends x to n limbs plus one for the carry.
	z := detach(x.limbs, n+1)
	z[n] = addTo(z[:n], z[:n], y.limbs)
	x.limbs = norm(z)
}

// AddAssignUint64 sets x to x + v.
func (x *Uint) AddAssignUint64(v uint64) {
	if v == 0 {
		return
	}
	x.AddAssign(New(v))
}

// Sub returns x − y, or ErrUnderflow when y > x.
func (x Uint) Sub(y Uint) (Uint, error) {
	if x.Cmp(y) < 0 {
		return Uint{}, underflowf(x, y)
	}
	if len(x.limbs) == 0 {
		return Uint{}, nil
	}
	z := make([]uint64, len(x.limbs))
	subFrom(z, x.limbs, y.limbs)

	return Uint{limbs: norm(z)}, nil
}

// SubUint64 returns x − v, or ErrUnderflow when v > x.
func (x Uint) SubUint64(v uint64) (Uint, error) {
	return x.Sub(New(v))
}

// SubAssign sets x to x − y. On ErrUnderflow x is left unchanged.
func (x *Uint) SubAssign(y Uint) error {
	if x.Cmp(y) < 0 {
		return underflowf(*x, y)
	}
	if len(y.limbs) == 0 {
		return nil
	}
	z := detach(x.limbs, len(x.limbs))
	subFrom(z, z, y.limbs)
	x.limbs = norm(z)

	return nil
}

// SubAssignUint64 sets x to x − v. On ErrUnderflow x is left unchanged.
func (x *Uint) SubAssignUint64(v uint64) error {
	return x.SubAssign(New(v))
}

// underflowf attaches operand widths to ErrUnderflow.
func underflowf(x, y Uint) error {
	return errors.Wrapf(ErrUnderflow, "minuend has %d bits, subtrahend has %d bits", x.BitLen(), y.BitLen())
}
