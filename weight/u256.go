// SPDX-License-Identifier: MIT

package weight

import (
	"github.com/cockroachdb/errors"
	"github.com/holiman/uint256"
)

// U256 is a 256-bit unsigned weight.
//
// It suits rule sets whose packed criteria are known to fit in 256 bits:
// arithmetic stays allocation-free, unlike dynuint.Uint. The zero value is 0.
// Edge weights must stay below 2^255 because the matching engine doubles
// them; larger ones make ComputeMatching fail with ErrOverflow
// (marked as matching.ErrInvariant).
type U256 struct {
	v uint256.Int
}

// NewU256 returns a U256 holding v.
func NewU256(v uint64) U256 {
	var w U256
	w.v.SetUint64(v)

	return w
}

// U256FromInt copies x into a U256.
func U256FromInt(x *uint256.Int) U256 {
	var w U256
	w.v.Set(x)

	return w
}

// Int returns a copy of the underlying uint256 value.
func (w U256) Int() *uint256.Int {
	return new(uint256.Int).Set(&w.v)
}

// Lsh returns w << n; bits shifted past 256 are lost.
func (w U256) Lsh(n uint) U256 {
	var out U256
	out.v.Lsh(&w.v, n)

	return out
}

// Or returns w | v.
func (w U256) Or(v U256) U256 {
	var out U256
	out.v.Or(&w.v, &v.v)

	return out
}

// Cmp compares w and v.
func (w U256) Cmp(v U256) int { return w.v.Cmp(&v.v) }

// IsZero reports whether w == 0.
func (w U256) IsZero() bool { return w.v.IsZero() }

// Plus returns w + v or ErrOverflow.
func (w U256) Plus(v U256) (U256, error) {
	var out U256
	if _, overflow := out.v.AddOverflow(&w.v, &v.v); overflow {
		return U256{}, errors.Wrapf(ErrOverflow, "%s + %s", w.v.Hex(), v.v.Hex())
	}

	return out, nil
}

// Minus returns w − v or ErrUnderflow.
func (w U256) Minus(v U256) (U256, error) {
	var out U256
	if _, underflow := out.v.SubOverflow(&w.v, &v.v); underflow {
		return U256{}, errors.Wrapf(ErrUnderflow, "%s - %s", w.v.Hex(), v.v.Hex())
	}

	return out, nil
}

// Halve returns w >> 1.
func (w U256) Halve() U256 {
	var out U256
	out.v.Rsh(&w.v, 1)

	return out
}

// String renders w in decimal.
func (w U256) String() string { return w.v.Dec() }
