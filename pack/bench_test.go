// SPDX-License-Identifier: MIT

package pack_test

import (
	"testing"

	"github.com/katalvlaran/lvmatch/pack"
)

// BenchmarkPack packs a twelve-criterion layout spanning three limbs.
func BenchmarkPack(b *testing.B) {
	fields := make([]pack.Field, 12)
	values := make([]uint64, 12)
	for i := range fields {
		fields[i] = pack.Field{Name: string(rune('a' + i)), Bits: 16}
		values[i] = uint64(i * 997)
	}
	l, err := pack.NewLayout(fields...)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = l.Pack(values...); err != nil {
			b.Fatal(err)
		}
	}
}
