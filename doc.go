// Package lvmatch computes maximum-weight matchings on complete weighted
// graphs, the core step of Swiss tournament pairing: every player is a
// vertex, every admissible game an edge, and the engine picks the set of
// games with the largest total weight.
//
// 🚀 What is inside?
//
//   - matching/ - Computer[W]: weight store + primal-dual blossom engine, O(n³)
//   - dynuint/  - arbitrary-precision unsigned integer for packed weights
//   - weight/   - the weight contract plus U64 and U256 instantiations
//   - pack/     - fold ranked criteria into one comparable dynuint weight
//   - metrics/  - Prometheus observer for engine events
//
// ✨ Why lvmatch?
//
//   - Generic - one engine, any weight type satisfying weight.Weight
//   - Exact - doubled integer duals, no floating point anywhere
//   - Checkable - Computer.Verify re-proves optimality from the duals
//   - Observable - hooks, go-logging traces and Prometheus counters
//
// Quick example (criteria packed most significant first):
//
//	layout, _ := pack.NewLayout(
//		pack.Field{Name: "score", Bits: 8},
//		pack.Field{Name: "colour", Bits: 2},
//	)
//	c, _ := matching.New[dynuint.Uint](4, layout.Zero())
//	w, _ := layout.Pack(3, 1)
//	_ = c.SetEdgeWeight(0, 1, w)
//	_ = c.ComputeMatching()
//	partners, _ := c.Matching() // partners[v] == matching.Unmatched if exposed
//
//	go get github.com/katalvlaran/lvmatch
package lvmatch
