// SPDX-License-Identifier: MIT

package pack

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvmatch/dynuint"
)

// Sentinel errors for layout construction and packing.
var (
	ErrBadField      = errors.New("pack: invalid field")
	ErrArity         = errors.New("pack: wrong number of values")
	ErrFieldOverflow = errors.New("pack: value does not fit its field")
	ErrUnknownField  = errors.New("pack: unknown field")
)

// MaxFieldBits is the widest field a Layout accepts.
const MaxFieldBits = 64

// Field is one criterion: a name and its width in bits.
type Field struct {
	Name string
	Bits uint
}

// Layout is an immutable ordered set of fields, most significant first.
type Layout struct {
	fields  []Field
	offsets []uint         // bit offset of each field's least significant bit
	index   map[string]int // name → position
	width   uint
}

// NewLayout validates fields and precomputes their bit offsets.
//
// Errors: ErrBadField.
func NewLayout(fields ...Field) (*Layout, error) {
	l := &Layout{
		fields:  make([]Field, len(fields)),
		offsets: make([]uint, len(fields)),
		index:   make(map[string]int, len(fields)),
	}
	copy(l.fields, fields)

	for i, f := range fields {
		if f.Name == "" {
			return nil, errors.Wrapf(ErrBadField, "field %d has no name", i)
		}
		if f.Bits == 0 || f.Bits > MaxFieldBits {
			return nil, errors.Wrapf(ErrBadField, "field %q: %d bits", f.Name, f.Bits)
		}
		if _, dup := l.index[f.Name]; dup {
			return nil, errors.Wrapf(ErrBadField, "field %q declared twice", f.Name)
		}
		l.index[f.Name] = i
		l.width += f.Bits
	}
	off := l.width
	for i, f := range fields {
		off -= f.Bits
		l.offsets[i] = off
	}

	return l, nil
}

// Width returns the total number of bits of a packed weight.
func (l *Layout) Width() uint { return l.width }

// Fields returns a copy of the field list.
func (l *Layout) Fields() []Field {
	out := make([]Field, len(l.fields))
	copy(out, l.fields)

	return out
}

// Offset returns the bit offset of the named field.
//
// Errors: ErrUnknownField.
func (l *Layout) Offset(name string) (uint, error) {
	i, ok := l.index[name]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownField, "%q", name)
	}

	return l.offsets[i], nil
}

// Zero returns a zero weight with storage reserved for the full width.
func (l *Layout) Zero() dynuint.Uint {
	z := dynuint.Zero()
	for _, f := range l.fields {
		z.ShiftGrow(f.Bits)
	}

	return z
}

// Max returns the weight with every field saturated; no packed weight of
// this layout exceeds it.
func (l *Layout) Max() dynuint.Uint {
	acc := dynuint.Zero()
	for _, f := range l.fields {
		acc.ShiftGrow(f.Bits)
		acc.OrAssignUint64(mask(f.Bits))
	}

	return acc
}

// Pack folds one value per field into a weight.
//
// Errors: ErrArity, ErrFieldOverflow.
func (l *Layout) Pack(values ...uint64) (dynuint.Uint, error) {
	if len(values) != len(l.fields) {
		return dynuint.Uint{}, errors.Wrapf(ErrArity, "got %d values for %d fields", len(values), len(l.fields))
	}
	b := l.NewBuilder()
	for _, v := range values {
		b.Add(v)
	}

	return b.Result()
}

// Extract returns the value of the named field in w.
//
// Errors: ErrUnknownField.
func (l *Layout) Extract(w dynuint.Uint, name string) (uint64, error) {
	i, ok := l.index[name]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownField, "%q", name)
	}
	v, _ := w.Rsh(l.offsets[i]).AndUint64(mask(l.fields[i].Bits)).Uint64()

	return v, nil
}

// Unpack returns every field value of w, most significant first.
func (l *Layout) Unpack(w dynuint.Uint) []uint64 {
	out := make([]uint64, len(l.fields))
	for i, f := range l.fields {
		out[i], _ = w.Rsh(l.offsets[i]).AndUint64(mask(f.Bits)).Uint64()
	}

	return out
}

// mask returns a value with the low bits bits set.
func mask(bits uint) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}

	return 1<<bits - 1
}
