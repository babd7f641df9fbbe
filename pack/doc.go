// SPDX-License-Identifier: MIT

// Package pack folds ranked criteria into one dynuint.Uint weight.
//
// A Layout is an ordered list of named fixed-width fields, most significant
// first. Packing shifts each value in below everything packed before it:
//
//	acc = (acc << bits(f)) | value(f)
//
// so comparing two packed weights compares their criteria tuples
// lexicographically. A value that does not fit its field would spill into
// the next more significant field and is rejected with ErrFieldOverflow.
//
// Layout.Zero returns a zero already holding the layout's full width
// (built through ShiftGrow), and Uint.Empty on any packed weight gives the
// same, so per-edge weights never regrow while they are assembled.
//
// Errors:
//
//	ErrBadField      - empty or duplicate field name, width outside [1, 64].
//	ErrArity         - wrong number of values for the layout.
//	ErrFieldOverflow - value ≥ 2^bits of its field.
//	ErrUnknownField  - Extract on a name the layout does not declare.
package pack
