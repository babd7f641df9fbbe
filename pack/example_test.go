// SPDX-License-Identifier: MIT

package pack_test

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/pack"
)

// ExampleLayout_Pack packs [5, 0, 3] into three 4-bit fields and reads the
// most significant one back.
func ExampleLayout_Pack() {
	l, _ := pack.NewLayout(
		pack.Field{Name: "score", Bits: 4},
		pack.Field{Name: "colour", Bits: 4},
		pack.Field{Name: "float", Bits: 4},
	)
	w, _ := l.Pack(5, 0, 3)
	top, _ := l.Extract(w, "score")
	fmt.Println(w.Binary(), top)
	fmt.Println(l.Max().Binary())
	// Output:
	// 10100000011 5
	// 111111111111
}

// ExampleBuilder assembles a weight one criterion at a time.
func ExampleBuilder() {
	l, _ := pack.NewLayout(pack.Field{Name: "a", Bits: 2}, pack.Field{Name: "b", Bits: 3})
	w, err := l.NewBuilder().Add(3).Add(1).Result()
	fmt.Println(w, err)

	_, err = l.NewBuilder().Add(4).Add(1).Result()
	fmt.Println(err != nil)
	// Output:
	// 11001 <nil>
	// true
}
