// SPDX-License-Identifier: MIT

package matching_test

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/dynuint"
	"github.com/katalvlaran/lvmatch/matching"
	"github.com/katalvlaran/lvmatch/weight"
)

// ExampleComputer pairs four players where (0, 1) and (2, 3) are the
// preferred games.
func ExampleComputer() {
	c, err := matching.New[weight.U64](4, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = c.SetEdgeWeight(0, 1, 10)
	_ = c.SetEdgeWeight(2, 3, 10)

	if err = c.ComputeMatching(); err != nil {
		fmt.Println("error:", err)
		return
	}
	m, _ := c.Matching()
	total, _ := c.TotalWeight()
	fmt.Println(m, total)
	// Output:
	// [1 0 3 2] 20
}

// ExampleComputer_oddPlayers leaves one of three equally good players
// without an opponent.
func ExampleComputer_oddPlayers() {
	c, _ := matching.New[weight.U64](3, 1)
	_ = c.ComputeMatching()
	pairs, _ := c.MatchedPairs()
	fmt.Println(pairs)
	// Output:
	// 1
}

// ExampleComputer_recompute adjusts weights between two computations on
// the same instance, with packed multi-criteria weights.
func ExampleComputer_recompute() {
	// criteria: a 1-bit preference above a 10-bit score field, wide enough
	// for the summed scores of two games
	packed := func(pref, score uint64) dynuint.Uint {
		w := dynuint.New(pref)
		w.ShiftGrow(10)
		w.OrAssignUint64(score)
		return w
	}

	c, _ := matching.New[dynuint.Uint](4, packed(0, 1))
	_ = c.SetEdgeWeight(0, 1, packed(0, 200))
	_ = c.SetEdgeWeight(2, 3, packed(0, 200))
	_ = c.ComputeMatching()
	m, _ := c.Matching()
	fmt.Println(m)

	// a single preferred game outweighs any score
	_ = c.SetEdgeWeight(0, 2, packed(1, 0))
	_ = c.ComputeMatching()
	m, _ = c.Matching()
	fmt.Println(m)
	// Output:
	// [1 0 3 2]
	// [2 3 0 1]
}
