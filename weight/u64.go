// SPDX-License-Identifier: MIT

package weight

import (
	"math/bits"
	"strconv"

	"github.com/cockroachdb/errors"
)

// U64 is a 64-bit unsigned weight with checked arithmetic.
// It is the natural choice for validity weights (0/1 feasibility flags and
// other small bounded scores).
//
// The matching engine works on doubled weights, so edge weights must stay
// below 2^63; larger ones make ComputeMatching fail with ErrOverflow
// (marked as matching.ErrInvariant).
type U64 uint64

// Cmp compares w and v.
func (w U64) Cmp(v U64) int {
	switch {
	case w < v:
		return -1
	case w > v:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether w == 0.
func (w U64) IsZero() bool { return w == 0 }

// Plus returns w + v or ErrOverflow.
func (w U64) Plus(v U64) (U64, error) {
	s, carry := bits.Add64(uint64(w), uint64(v), 0)
	if carry != 0 {
		return 0, errors.Wrapf(ErrOverflow, "%d + %d", uint64(w), uint64(v))
	}

	return U64(s), nil
}

// Minus returns w − v or ErrUnderflow.
func (w U64) Minus(v U64) (U64, error) {
	if v > w {
		return 0, errors.Wrapf(ErrUnderflow, "%d - %d", uint64(w), uint64(v))
	}

	return w - v, nil
}

// Halve returns w / 2.
func (w U64) Halve() U64 { return w >> 1 }

// String renders w in decimal.
func (w U64) String() string { return strconv.FormatUint(uint64(w), 10) }
