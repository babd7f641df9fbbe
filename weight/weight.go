// SPDX-License-Identifier: MIT

package weight

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvmatch/dynuint"
)

// Sentinel errors for fixed-width arithmetic.
var (
	// ErrOverflow indicates a sum that does not fit the weight's width.
	ErrOverflow = errors.New("weight: addition overflow")

	// ErrUnderflow indicates a difference that would be negative.
	ErrUnderflow = errors.New("weight: subtraction underflow")
)

// Weight is the contract of the matching engine's weight type parameter.
// The zero value of W must be the additive identity.
type Weight[W any] interface {
	Cmp(W) int
	IsZero() bool
	Plus(W) (W, error)
	Minus(W) (W, error)
	Halve() W
}

// Compile-time conformance of every shipped instantiation.
var (
	_ Weight[U64]          = U64(0)
	_ Weight[U256]         = U256{}
	_ Weight[dynuint.Uint] = dynuint.Uint{}
)

// Max returns the largest of ws, or the zero value when ws is empty.
func Max[W Weight[W]](ws ...W) W {
	var best W
	for i, w := range ws {
		if i == 0 || w.Cmp(best) > 0 {
			best = w
		}
	}

	return best
}

// Sum folds ws with Plus, stopping at the first error.
func Sum[W Weight[W]](ws ...W) (W, error) {
	var (
		acc W
		err error
	)
	for _, w := range ws {
		if acc, err = acc.Plus(w); err != nil {
			var zero W
			return zero, err
		}
	}

	return acc, nil
}

// Double returns w + w.
func Double[W Weight[W]](w W) (W, error) {
	return w.Plus(w)
}

// FromUnsigned converts any unsigned primitive into a U64.
func FromUnsigned[T constraints.Unsigned](v T) U64 {
	return U64(v)
}
