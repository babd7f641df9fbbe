// SPDX-License-Identifier: MIT

package dynuint

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// ErrUnderflow is returned when a subtraction would produce a negative value.
var ErrUnderflow = errors.New("dynuint: subtraction underflow")

const (
	limbBits = 64 // width of one limb in bits
	limbLog  = 6  // log2(limbBits), used to split shift amounts
)

// Uint is a non-negative integer of unbounded width.
//
// limbs holds the value least-significant first and is always canonical:
// either empty (zero) or with a non-zero last element.
type Uint struct {
	limbs []uint64
}

// Zero returns the canonical zero value. It is equivalent to Uint{}.
func Zero() Uint { return Uint{} }

// New returns a Uint holding v.
func New(v uint64) Uint {
	if v == 0 {
		return Uint{}
	}

	return Uint{limbs: []uint64{v}}
}

// FromUnsigned converts any fixed-width unsigned primitive into a Uint.
func FromUnsigned[T constraints.Unsigned](v T) Uint {
	return New(uint64(v))
}

// FromLimbs builds a Uint from little-endian limbs.
// The input is copied and trimmed, so callers may pass non-canonical data.
func FromLimbs(limbs []uint64) Uint {
	n := trimmedLen(limbs)
	if n == 0 {
		return Uint{}
	}
	z := make([]uint64, n)
	copy(z, limbs[:n])

	return Uint{limbs: z}
}

// Clone returns a deep copy of x that shares no storage with it.
// The copy keeps x's spare capacity.
func (x Uint) Clone() Uint {
	if cap(x.limbs) == 0 {
		return Uint{}
	}
	z := make([]uint64, len(x.limbs), cap(x.limbs))
	copy(z, x.limbs)

	return Uint{limbs: z}
}

// Empty returns a zero Uint whose storage capacity matches x.
// Use it to start a value that will grow to roughly x's width; in-place
// operations carry that capacity forward.
func (x Uint) Empty() Uint {
	if cap(x.limbs) == 0 {
		return Uint{}
	}

	return Uint{limbs: make([]uint64, 0, cap(x.limbs))}
}

// Limbs returns a copy of the little-endian limb sequence (nil for zero).
func (x Uint) Limbs() []uint64 {
	if len(x.limbs) == 0 {
		return nil
	}
	out := make([]uint64, len(x.limbs))
	copy(out, x.limbs)

	return out
}

// Len reports the number of significant limbs (0 for zero).
func (x Uint) Len() int { return len(x.limbs) }

// Cap reports the limb capacity reserved by x's storage.
func (x Uint) Cap() int { return cap(x.limbs) }

// Uint64 returns x as a uint64 and whether the conversion was exact.
func (x Uint) Uint64() (uint64, bool) {
	switch len(x.limbs) {
	case 0:
		return 0, true
	case 1:
		return x.limbs[0], true
	default:
		return x.limbs[0], false
	}
}

// trimmedLen returns the length of z without its high zero limbs.
func trimmedLen(z []uint64) int {
	n := len(z)
	for n > 0 && z[n-1] == 0 {
		n--
	}

	return n
}

// norm restores canonical form by dropping high zero limbs.
func norm(z []uint64) []uint64 {
	return z[:trimmedLen(z)]
}

// detach returns fresh storage holding z zero-extended to n limbs. The
// capacity never drops below cap(z), so reservations survive every in-place
// operation, and the old backing array is never written.
func detach(z []uint64, n int) []uint64 {
	nz := make([]uint64, n, max(cap(z), n))
	copy(nz, z)

	return nz
}

// limbsFor returns how many limbs are needed to hold bits bits.
func limbsFor(bits uint) int {
	return int((bits + limbBits - 1) >> limbLog)
}
