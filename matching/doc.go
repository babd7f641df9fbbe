// SPDX-License-Identifier: MIT

// Package matching computes maximum-weight matchings on complete, undirected,
// non-bipartite graphs with a pluggable weight type.
//
// The engine is the primal-dual weighted blossom method (Edmonds, in Galil's
// O(n³) formulation). It is written once against weight.Weight and
// instantiated at compile time, typically as
//
//	matching.Computer[weight.U64]     // validity: hard feasibility only
//	matching.Computer[dynuint.Uint]   // optimality: packed tie-break criteria
//
// Lifecycle:
//
//	c, _ := matching.New[weight.U64](4, 0) // 4 vertices, every edge weighs 0
//	_ = c.SetEdgeWeight(0, 1, 3)
//	_ = c.ComputeMatching()
//	mate, _ := c.Matching() // mate[v] is v's partner or Unmatched
//
// The graph is complete: every pair has a weight, defaulting to the value
// given to New. Infeasible pairings are encoded by the caller as weights
// dominated by every feasible alternative; the engine has no structural edge
// exclusion and no tie-break logic of its own. Ties are decided purely by
// weight comparisons, which is why multi-criteria weights are packed into one
// scalar (see package pack) rather than compared field by field here.
//
// Duals are kept doubled so every quantity stays a non-negative integer:
// vertex duals start at the largest edge weight, slack(u,v) is
// y(u)+y(v)−2·w(u,v), and half-slack steps are exact.
//
// Concurrency: a Computer is owned by one caller. It has no locks and no
// background work; ComputeMatching runs to completion before returning.
// Callers that need cancellation run it on a dedicated goroutine.
//
// Errors:
//
//	ErrBadSize         - negative vertex count passed to New.
//	ErrOutOfRange      - vertex index outside [0, Size()).
//	ErrSelfLoop        - SetEdgeWeight(u, u, ...).
//	ErrNotComputed     - result read before ComputeMatching (or after a mutation).
//	ErrInvariant       - internal invariant violation, an engine defect.
//	ErrOptionViolation - invalid Option value.
//
// ErrInvariant is attached as a cockroachdb/errors mark on top of the
// underlying cause (an arithmetic error or an assertion failure); match it
// with errors.Is from github.com/cockroachdb/errors.
package matching
