// SPDX-License-Identifier: MIT

// Package dynuint provides Uint, an arbitrary-precision unsigned integer
// stored as a growable little-endian sequence of 64-bit limbs.
//
// Uint exists so that several independently ranked tie-break criteria can be
// folded into a single scalar edge weight:
//
//	acc := dynuint.Zero()
//	acc.ShiftGrow(k1); acc.OrAssignUint64(c1) // highest priority first
//	acc.ShiftGrow(k2); acc.OrAssignUint64(c2)
//
// Every field shifted in later lands in strictly lower bits than all fields
// packed before it, so plain Cmp on the accumulator reproduces the
// lexicographic order of the criteria tuple as long as each value fits its
// declared width.
//
// Representation:
//
//   - limbs[0] is the least significant limb;
//   - the sequence is canonical: no high zero limb, zero is the empty sequence;
//   - the Go zero value Uint{} is a valid zero.
//
// Ordering compares limb counts first and then limbs from the most significant
// end, which is only correct because every operation restores canonical form.
//
// Value semantics:
//
// No operation ever writes into an existing limb array. Pure operations
// (Add, Sub, Or, Lsh, ...) return fresh storage; the *Assign forms and
// ShiftGrow build their result in a new array that carries the receiver's
// capacity forward. A Uint is therefore safe to share by plain copy, also
// across goroutines: after b := a, mutating b leaves a untouched. Only the
// receiver of an *Assign call needs exclusive access.
//
// Errors:
//
//	ErrUnderflow - subtraction whose subtrahend exceeds the minuend.
//
// Subtraction never wraps: a silent wraparound would corrupt the total order
// that matching correctness depends on.
package dynuint
