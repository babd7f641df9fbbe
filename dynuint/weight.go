// SPDX-License-Identifier: MIT

package dynuint

// The methods below let Uint instantiate weight.Weight, the contract of the
// generic matching engine. Uint never overflows, so Plus never fails.

// Plus returns x + y.
func (x Uint) Plus(y Uint) (Uint, error) { return x.Add(y), nil }

// Minus returns x − y or ErrUnderflow.
func (x Uint) Minus(y Uint) (Uint, error) { return x.Sub(y) }

// Halve returns x >> 1.
func (x Uint) Halve() Uint { return x.Rsh(1) }
