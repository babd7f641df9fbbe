// SPDX-License-Identifier: MIT

package dynuint

import "math/bits"

// Cmp compares x and y and returns -1, 0 or +1.
//
// Canonical form makes the limb count decisive: a longer value is larger.
// Equal lengths are compared from the most significant limb down.
func (x Uint) Cmp(y Uint) int {
	if len(x.limbs) != len(y.limbs) {
		if len(x.limbs) < len(y.limbs) {
			return -1
		}
		return 1
	}
	for i := len(x.limbs) - 1; i >= 0; i-- {
		switch {
		case x.limbs[i] < y.limbs[i]:
			return -1
		case x.limbs[i] > y.limbs[i]:
			return 1
		}
	}

	return 0
}

// Equal reports whether x == y.
func (x Uint) Equal(y Uint) bool { return x.Cmp(y) == 0 }

// Less reports whether x < y.
func (x Uint) Less(y Uint) bool { return x.Cmp(y) < 0 }

// IsZero reports whether x == 0.
func (x Uint) IsZero() bool { return len(x.limbs) == 0 }

// Bool reports whether x is non-zero.
func (x Uint) Bool() bool { return len(x.limbs) != 0 }

// BitLen returns the number of bits needed to represent x (0 for zero).
func (x Uint) BitLen() int {
	n := len(x.limbs)
	if n == 0 {
		return 0
	}

	return (n-1)*limbBits + bits.Len64(x.limbs[n-1])
}

// Bit returns the value of bit i (0 or 1).
func (x Uint) Bit(i uint) uint {
	w := int(i >> limbLog)
	if w >= len(x.limbs) {
		return 0
	}

	return uint(x.limbs[w]>>(i&(limbBits-1))) & 1
}
