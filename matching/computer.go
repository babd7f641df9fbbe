// SPDX-License-Identifier: MIT

// Package matching - weight store and result accessors.
//
// Purpose:
//   - Keep a dense lower-triangular weight table over a complete graph.
//   - Grow it one vertex at a time at the default weight.
//   - Expose the computed matching as partner-per-vertex.
//
// Storage layout:
//   - rows[i][j] holds w(i, j) for j < i; the diagonal is never stored.
//   - AddVertex appends row n of length n, so growth is O(n) and never moves
//     existing rows.
//
// Result lifecycle:
//   - ComputeMatching freezes a result; repeated calls return it unchanged.
//   - Any mutation (AddVertex, SetEdgeWeight) discards the frozen result, so
//     a caller that tunes weights between runs recomputes on the same
//     instance.

package matching

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvmatch/weight"
)

// cloner is implemented by weight types with shared backing storage
// (dynuint.Uint); the store keeps its own copy of such values.
type cloner[W any] interface {
	Clone() W
}

// Computer owns a complete weighted graph and its maximum-weight matching.
// The zero value is not usable; construct with New.
type Computer[W weight.Weight[W]] struct {
	def  W     // weight of edges never set explicitly
	rows [][]W // rows[i][j] = w(i, j), j < i

	opts Options

	mate     []int      // partner per vertex; valid iff computed
	computed bool       // result is frozen and matches the current table
	state    *solver[W] // final solver state, kept for Verify
	stages   int        // stages run by the last computation
}

// New creates a Computer with size vertices and every edge at def.
//
// Errors: ErrBadSize for size < 0, ErrOptionViolation for invalid options.
// Complexity: O(size²) time and memory.
func New[W weight.Weight[W]](size int, def W, opts ...Option) (*Computer[W], error) {
	if size < 0 {
		return nil, errors.Wrapf(ErrBadSize, "size %d", size)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	c := &Computer[W]{
		def:  own(def),
		rows: make([][]W, 0, size),
		opts: o,
	}
	for i := 0; i < size; i++ {
		c.AddVertex()
	}

	return c, nil
}

// own returns a copy of w that shares no storage with the caller's value.
func own[W any](w W) W {
	if cw, ok := any(w).(cloner[W]); ok {
		return cw.Clone()
	}

	return w
}

// Size returns the current vertex count.
func (c *Computer[W]) Size() int { return len(c.rows) }

// AddVertex appends one vertex joined to every existing vertex at the default
// weight and returns its index. Any computed result is discarded.
//
// Complexity: O(Size()).
func (c *Computer[W]) AddVertex() int {
	n := len(c.rows)
	row := make([]W, n)
	for j := range row {
		row[j] = own(c.def)
	}
	c.rows = append(c.rows, row)
	c.invalidate()

	return n
}

// SetEdgeWeight overwrites the weight of the undirected edge (u, v).
// Any computed result is discarded.
//
// Errors: ErrOutOfRange if u or v ∉ [0, Size()), ErrSelfLoop if u == v.
func (c *Computer[W]) SetEdgeWeight(u, v int, w W) error {
	if err := c.checkPair(u, v); err != nil {
		return err
	}
	if u < v {
		u, v = v, u
	}
	c.rows[u][v] = own(w)
	c.invalidate()

	return nil
}

// EdgeWeight returns the weight of edge (u, v). Values with storage of
// their own are returned as clones, so the caller may mutate the result.
//
// Errors: ErrOutOfRange, ErrSelfLoop.
func (c *Computer[W]) EdgeWeight(u, v int) (W, error) {
	if err := c.checkPair(u, v); err != nil {
		var zero W
		return zero, err
	}
	if u < v {
		u, v = v, u
	}

	return own(c.rows[u][v]), nil
}

// checkPair validates an edge key.
func (c *Computer[W]) checkPair(u, v int) error {
	n := len(c.rows)
	if u < 0 || u >= n || v < 0 || v >= n {
		return errors.Wrapf(ErrOutOfRange, "edge (%d, %d) with %d vertices", u, v, n)
	}
	if u == v {
		return errors.Wrapf(ErrSelfLoop, "vertex %d", u)
	}

	return nil
}

// invalidate drops the frozen result after a mutation.
func (c *Computer[W]) invalidate() {
	c.computed = false
	c.mate = nil
	c.state = nil
	c.stages = 0
}

// ComputeMatching computes a maximum-weight matching of the current graph.
// Calling it again without an intervening mutation is a no-op.
//
// Errors: ErrInvariant (wrapping the arithmetic or structural cause) only if
// the engine breaks its own invariants, or if a fixed-width weight type
// overflows while duals are adjusted.
// Complexity: O(n³) weight operations.
func (c *Computer[W]) ComputeMatching() error {
	if c.computed {
		return nil
	}
	s := newSolver(c.rows, c.opts)
	stages, err := s.run()
	if err != nil {
		return err
	}
	mate := s.partners()
	if c.opts.CheckOptimum {
		if err = s.verify(); err != nil {
			return err
		}
	}

	c.mate, c.state, c.stages, c.computed = mate, s, stages, true
	pairs := 0
	for v, p := range mate {
		if p > v {
			pairs++
		}
	}
	c.opts.Observer.OnComplete(stages, pairs)
	if c.opts.Logger != nil {
		c.opts.Logger.Debugf("matching computed: %d vertices, %d pairs, %d stages", len(mate), pairs, stages)
	}

	return nil
}

// Matching returns a fresh slice of length Size(); entry v is the partner of
// vertex v or Unmatched. The result is symmetric and injective.
//
// Errors: ErrNotComputed.
func (c *Computer[W]) Matching() ([]int, error) {
	if !c.computed {
		return nil, ErrNotComputed
	}
	out := make([]int, len(c.mate))
	copy(out, c.mate)

	return out, nil
}

// Partner returns the partner of v, or Unmatched.
//
// Errors: ErrNotComputed, ErrOutOfRange.
func (c *Computer[W]) Partner(v int) (int, error) {
	if !c.computed {
		return Unmatched, ErrNotComputed
	}
	if v < 0 || v >= len(c.mate) {
		return Unmatched, errors.Wrapf(ErrOutOfRange, "vertex %d with %d vertices", v, len(c.mate))
	}

	return c.mate[v], nil
}

// MatchedPairs returns the number of matched edges.
//
// Errors: ErrNotComputed.
func (c *Computer[W]) MatchedPairs() (int, error) {
	if !c.computed {
		return 0, ErrNotComputed
	}
	pairs := 0
	for v, p := range c.mate {
		if p > v {
			pairs++
		}
	}

	return pairs, nil
}

// TotalWeight returns the summed weight of the matched edges.
//
// Errors: ErrNotComputed, or the weight type's overflow error.
func (c *Computer[W]) TotalWeight() (W, error) {
	var total W
	if !c.computed {
		return total, ErrNotComputed
	}
	var err error
	for v, p := range c.mate {
		if p <= v {
			continue
		}
		if total, err = total.Plus(c.rows[p][v]); err != nil {
			var zero W
			return zero, err
		}
	}

	return total, nil
}

// Stages returns the number of augmentation stages of the last computation.
//
// Errors: ErrNotComputed.
func (c *Computer[W]) Stages() (int, error) {
	if !c.computed {
		return 0, ErrNotComputed
	}

	return c.stages, nil
}

// Verify re-checks the computed matching against its dual certificate:
// symmetric and injective partners, non-negative slack on every edge, tight
// matched edges, zero dual on exposed vertices and fully matched blossoms
// with positive dual. A nil result proves the matching has maximum weight.
//
// Errors: ErrNotComputed, ErrInvariant.
func (c *Computer[W]) Verify() error {
	if !c.computed {
		return ErrNotComputed
	}

	return c.state.verify()
}
