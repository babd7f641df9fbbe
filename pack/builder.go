// SPDX-License-Identifier: MIT

package pack

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvmatch/dynuint"
)

// Builder packs values field by field. The first error sticks; later Add
// calls are ignored and Result reports it.
type Builder struct {
	layout *Layout
	acc    dynuint.Uint
	next   int
	err    error
}

// NewBuilder starts an empty packed weight for l.
func (l *Layout) NewBuilder() *Builder {
	return &Builder{layout: l, acc: l.Zero()}
}

// Add shifts the next field's value in.
func (b *Builder) Add(v uint64) *Builder {
	if b.err != nil {
		return b
	}
	if b.next >= len(b.layout.fields) {
		b.err = errors.Wrapf(ErrArity, "layout has %d fields", len(b.layout.fields))
		return b
	}
	f := b.layout.fields[b.next]
	if v > mask(f.Bits) {
		b.err = errors.Wrapf(ErrFieldOverflow, "field %q: %d needs more than %d bits", f.Name, v, f.Bits)
		return b
	}
	b.acc.LshAssign(f.Bits)
	b.acc.OrAssignUint64(v)
	b.next++

	return b
}

// Result returns the packed weight once every field was added.
//
// Errors: ErrArity, ErrFieldOverflow.
func (b *Builder) Result() (dynuint.Uint, error) {
	if b.err != nil {
		return dynuint.Uint{}, b.err
	}
	if b.next != len(b.layout.fields) {
		return dynuint.Uint{}, errors.Wrapf(ErrArity, "%d of %d fields added", b.next, len(b.layout.fields))
	}

	return b.acc, nil
}
