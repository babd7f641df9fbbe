// SPDX-License-Identifier: MIT

// Package weight defines the algebra an edge weight must provide to drive the
// generic matching engine, plus fixed-width instantiations of it.
//
// A weight type W is a totally ordered commutative monoid whose Go zero value
// is the neutral element, with a checked difference and an exact halving:
//
//	Cmp(W) int          strict total order
//	IsZero() bool       neutral element test
//	Plus(W) (W, error)  sum; fixed-width types report ErrOverflow
//	Minus(W) (W, error) difference; never wraps below zero
//	Halve() W           floor division by two
//
// Instantiations:
//
//   - U64: small fixed-width weight for feasibility ("validity") matchings.
//   - U256: 256-bit weight backed by github.com/holiman/uint256.
//   - dynuint.Uint: arbitrary precision, for packed tie-break ("optimality")
//     weights whose width grows with the tournament.
//
// The engine doubles weights internally, so fixed-width types must keep twice
// the largest edge weight plus the largest dual below their ceiling; the
// engine turns ErrOverflow into a computation error instead of wrapping.
package weight
