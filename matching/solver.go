// SPDX-License-Identifier: MIT

// Package matching - primal-dual search driver.
//
// Arena layout (flat, index-addressed; no pointers between records):
//   - indices [0, n) are vertices, [n, 2n) are blossom slots;
//   - a blossom slot is live iff blossomBase[b] >= 0, free slots sit in unused;
//   - parent/child/base relations are plain indices, so contraction and
//     expansion only relabel integers.
//
// Edges of the complete graph are numbered k = i(i−1)/2 + j for j < i.
// Endpoint p = 2k+x names one end of edge k (x=0 → i, x=1 → j); p^1 is the
// other end. mate[v] holds the remote endpoint of v's matched edge.
//
// Labels: free (0), even/S (1), odd/T (2). scanBlossom temporarily ORs a
// breadcrumb bit (4) into even labels while it walks two alternating paths.
//
// Stage:
//  1. label every exposed top-level structure even and queue its vertices;
//  2. scan queued even vertices over tight edges: label a free neighbour odd,
//     contract an even–even edge inside one tree into a blossom, or augment
//     along an even–even edge joining two trees;
//  3. when the queue drains, take the smallest admissible dual step
//     (δ1 vertex dual, δ2 even–free slack, δ3 half even–even slack,
//     δ4 odd blossom dual) and continue; δ1 ends the computation.
//
// After an augmentation, even top-level blossoms whose dual reached zero are
// expanded, and the next stage starts from a fresh forest.

package matching

import (
	"github.com/cockroachdb/errors"
	"github.com/op/go-logging"

	"github.com/katalvlaran/lvmatch/weight"
)

const (
	labelFree  int8 = 0
	labelEven  int8 = 1
	labelOdd   int8 = 2
	labelCrumb int8 = 4
)

// noIndex marks an absent endpoint, edge, parent or base.
const noIndex = -1

// solver holds the complete state of one computation.
type solver[W weight.Weight[W]] struct {
	n     int   // vertex count
	edgeU []int // larger endpoint of edge k
	edgeV []int // smaller endpoint of edge k
	twice []W   // 2·w(k)

	endpoint  []int   // endpoint[p]: vertex at endpoint p
	neighbend [][]int // neighbend[v]: remote endpoints of edges at v

	mate          []int   // remote endpoint of v's matched edge, or noIndex
	label         []int8  // [2n] label of vertex / top-level blossom
	labelEnd      []int   // [2n] endpoint through which the label was reached
	inBlossom     []int   // [n] top-level blossom containing v
	blossomParent []int   // [2n] enclosing blossom, or noIndex
	blossomChilds [][]int // [2n] sub-structures, cyclic, base child first
	blossomEndps  [][]int // [2n] blossomEndps[b][i] joins child i to child i+1
	blossomBase   []int   // [2n] base vertex, noIndex for free slots
	bestEdge      []int   // [2n] least-slack edge to another even structure
	bestEdgesOf   [][]int // [2n] least-slack edges per neighbouring even blossom; nil = not tracked
	unused        []int   // free blossom slots
	dual          []W     // [2n] doubled dual values
	allowEdge     []bool  // edge known tight in this stage
	queue         []int   // even vertices waiting to be scanned

	obs       Observer
	log       *logging.Logger
	maxStages int

	err error // first failure; sticky
}

// newSolver snapshots the weight table into edge arrays and initialises the
// duals. rows is read, never written.
func newSolver[W weight.Weight[W]](rows [][]W, opts Options) *solver[W] {
	n := len(rows)
	m := n * (n - 1) / 2
	s := &solver[W]{
		n:         n,
		edgeU:     make([]int, 0, m),
		edgeV:     make([]int, 0, m),
		twice:     make([]W, 0, m),
		endpoint:  make([]int, 0, 2*m),
		neighbend: make([][]int, n),
		obs:       opts.Observer,
		log:       opts.Logger,
		maxStages: opts.MaxStages,
	}
	if s.obs == nil {
		s.obs = NopObserver{}
	}

	var maxWeight W
	for v := range s.neighbend {
		s.neighbend[v] = make([]int, 0, max(n-1, 0))
	}
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			w := rows[i][j]
			k := len(s.edgeU)
			s.edgeU = append(s.edgeU, i)
			s.edgeV = append(s.edgeV, j)
			s.twice = append(s.twice, s.plus(w, w))
			s.endpoint = append(s.endpoint, i, j)
			s.neighbend[i] = append(s.neighbend[i], 2*k+1)
			s.neighbend[j] = append(s.neighbend[j], 2*k)
			if w.Cmp(maxWeight) > 0 {
				maxWeight = w
			}
		}
	}

	s.mate = filled(n, noIndex)
	s.label = make([]int8, 2*n)
	s.labelEnd = filled(2*n, noIndex)
	s.inBlossom = make([]int, n)
	s.blossomParent = filled(2*n, noIndex)
	s.blossomChilds = make([][]int, 2*n)
	s.blossomEndps = make([][]int, 2*n)
	s.blossomBase = filled(2*n, noIndex)
	s.bestEdge = filled(2*n, noIndex)
	s.bestEdgesOf = make([][]int, 2*n)
	s.unused = make([]int, 0, n)
	s.dual = make([]W, 2*n)
	s.allowEdge = make([]bool, m)
	s.queue = make([]int, 0, n)
	for v := 0; v < n; v++ {
		s.inBlossom[v] = v
		s.blossomBase[v] = v
		s.dual[v] = maxWeight
	}
	for b := n; b < 2*n; b++ {
		s.unused = append(s.unused, b)
	}

	return s
}

// filled returns a slice of n copies of v.
func filled(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// run executes stages until no augmenting path is left and returns the
// number of stages taken.
func (s *solver[W]) run() (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	limit := s.n
	if s.maxStages > 0 && s.maxStages < limit {
		limit = s.maxStages
	}

	stages := 0
	for t := 0; t < limit; t++ {
		stages++
		s.obs.OnStage(t)
		s.resetStage()

		augmented := s.stage()
		if s.err != nil {
			return stages, s.err
		}
		if !augmented {
			break
		}

		// even top-level blossoms with zero dual are no longer needed
		for b := s.n; b < 2*s.n; b++ {
			if s.blossomParent[b] == noIndex && s.blossomBase[b] >= 0 &&
				s.label[b] == labelEven && s.dual[b].IsZero() {
				s.expandBlossom(b, true)
			}
		}
		if s.err != nil {
			return stages, s.err
		}
	}

	return stages, nil
}

// resetStage discards the previous forest and seeds a new one from every
// exposed vertex.
func (s *solver[W]) resetStage() {
	clear(s.label)
	for i := range s.bestEdge {
		s.bestEdge[i] = noIndex
	}
	for b := s.n; b < 2*s.n; b++ {
		s.bestEdgesOf[b] = nil
	}
	clear(s.allowEdge)
	s.queue = s.queue[:0]

	for v := 0; v < s.n; v++ {
		if s.mate[v] == noIndex && s.label[s.inBlossom[v]] == labelFree {
			s.assignLabel(v, labelEven, noIndex)
		}
	}
}

// stage grows the forest until an augmentation happens (true) or the dual
// step proves optimality (false).
func (s *solver[W]) stage() bool {
	for {
		if s.scanQueue() {
			return true
		}
		if s.err != nil {
			return false
		}
		if !s.dualStep() {
			return false
		}
		if s.err != nil {
			return false
		}
	}
}

// scanQueue drains the queue over tight edges. It returns true as soon as
// the matching was augmented.
func (s *solver[W]) scanQueue() bool {
	for len(s.queue) > 0 {
		v := s.queue[len(s.queue)-1]
		s.queue = s.queue[:len(s.queue)-1]
		if s.label[s.inBlossom[v]] != labelEven {
			s.failf("queued vertex %d is not even", v)
			return false
		}

		for _, p := range s.neighbend[v] {
			k := p >> 1
			w := s.endpoint[p]
			if s.inBlossom[v] == s.inBlossom[w] {
				continue
			}

			var kslack W
			if !s.allowEdge[k] {
				kslack = s.slack(k)
				if kslack.IsZero() {
					s.allowEdge[k] = true
				}
			}

			switch {
			case s.allowEdge[k]:
				switch s.label[s.inBlossom[w]] {
				case labelFree:
					s.assignLabel(w, labelOdd, p^1)
				case labelEven:
					if base := s.scanBlossom(v, w); base >= 0 {
						s.addBlossom(base, k)
					} else {
						s.augmentMatching(k)
						return true
					}
				default:
					// w sits in an odd blossom but is not labelled yet;
					// remember how it was reached for a later expansion
					if s.label[w] == labelFree {
						s.label[w] = labelOdd
						s.labelEnd[w] = p ^ 1
					}
				}
			case s.label[s.inBlossom[w]] == labelEven:
				b := s.inBlossom[v]
				if s.bestEdge[b] == noIndex || kslack.Cmp(s.slack(s.bestEdge[b])) < 0 {
					s.bestEdge[b] = k
				}
			case s.label[w] == labelFree:
				if s.bestEdge[w] == noIndex || kslack.Cmp(s.slack(s.bestEdge[w])) < 0 {
					s.bestEdge[w] = k
				}
			}
			if s.err != nil {
				return false
			}
		}
	}

	return false
}

// dualStep applies the smallest admissible dual change. It returns false
// when the δ1 bound was taken, i.e. the current matching is optimal.
func (s *solver[W]) dualStep() bool {
	step := StepOptimum
	delta := s.dual[0]
	for v := 1; v < s.n; v++ {
		if s.dual[v].Cmp(delta) < 0 {
			delta = s.dual[v]
		}
	}
	deltaEdge, deltaBlossom := noIndex, noIndex

	// δ2: free vertex with a slack edge to an even structure
	for v := 0; v < s.n; v++ {
		if s.label[s.inBlossom[v]] == labelFree && s.bestEdge[v] != noIndex {
			if d := s.slack(s.bestEdge[v]); d.Cmp(delta) < 0 {
				delta, step, deltaEdge = d, StepGrow, s.bestEdge[v]
			}
		}
	}
	// δ3: two even structures; slack is even, so halving is exact
	for b := 0; b < 2*s.n; b++ {
		if s.blossomParent[b] == noIndex && s.label[b] == labelEven && s.bestEdge[b] != noIndex {
			if d := s.slack(s.bestEdge[b]).Halve(); d.Cmp(delta) < 0 {
				delta, step, deltaEdge = d, StepBlossom, s.bestEdge[b]
			}
		}
	}
	// δ4: odd top-level blossom
	for b := s.n; b < 2*s.n; b++ {
		if s.blossomBase[b] >= 0 && s.blossomParent[b] == noIndex &&
			s.label[b] == labelOdd && s.dual[b].Cmp(delta) < 0 {
			delta, step, deltaBlossom = s.dual[b], StepExpand, b
		}
	}

	for v := 0; v < s.n; v++ {
		switch s.label[s.inBlossom[v]] {
		case labelEven:
			s.dual[v] = s.minus(s.dual[v], delta)
		case labelOdd:
			s.dual[v] = s.plus(s.dual[v], delta)
		}
	}
	for b := s.n; b < 2*s.n; b++ {
		if s.blossomBase[b] >= 0 && s.blossomParent[b] == noIndex {
			switch s.label[b] {
			case labelEven:
				s.dual[b] = s.plus(s.dual[b], delta)
			case labelOdd:
				s.dual[b] = s.minus(s.dual[b], delta)
			}
		}
	}
	s.obs.OnDualStep(step)
	s.debugf("dual step %s by %v", step, delta)

	switch step {
	case StepOptimum:
		return false
	case StepGrow:
		s.allowEdge[deltaEdge] = true
		i := s.edgeU[deltaEdge]
		if s.label[s.inBlossom[i]] == labelFree {
			i = s.edgeV[deltaEdge]
		}
		if s.label[s.inBlossom[i]] != labelEven {
			s.failf("grow edge %d has no even end", deltaEdge)
			return false
		}
		s.queue = append(s.queue, i)
	case StepBlossom:
		s.allowEdge[deltaEdge] = true
		i := s.edgeU[deltaEdge]
		if s.label[s.inBlossom[i]] != labelEven {
			s.failf("blossom edge %d has no even end", deltaEdge)
			return false
		}
		s.queue = append(s.queue, i)
	case StepExpand:
		s.expandBlossom(deltaBlossom, false)
	}

	return true
}

// slack returns y(u)+y(v)−2w for edge k. Blossom duals are not included;
// callers only ask for edges between different top-level structures.
func (s *solver[W]) slack(k int) W {
	return s.minus(s.plus(s.dual[s.edgeU[k]], s.dual[s.edgeV[k]]), s.twice[k])
}

// partners converts endpoint mates into vertex partners.
func (s *solver[W]) partners() []int {
	out := make([]int, s.n)
	for v, p := range s.mate {
		if p == noIndex {
			out[v] = Unmatched
			continue
		}
		out[v] = s.endpoint[p]
	}

	return out
}

// plus adds and records the first arithmetic failure.
func (s *solver[W]) plus(a, b W) W {
	r, err := a.Plus(b)
	if err != nil {
		s.fail(err)
	}

	return r
}

// minus subtracts and records the first arithmetic failure.
func (s *solver[W]) minus(a, b W) W {
	r, err := a.Minus(b)
	if err != nil {
		s.fail(err)
	}

	return r
}

// fail records err as an invariant violation unless a failure is recorded.
func (s *solver[W]) fail(err error) {
	if s.err == nil {
		s.err = errors.Mark(errors.Wrap(err, "matching: dual arithmetic"), ErrInvariant)
	}
}

// failf records a structural invariant violation.
func (s *solver[W]) failf(format string, args ...interface{}) {
	if s.err == nil {
		s.err = errors.Mark(errors.AssertionFailedf(format, args...), ErrInvariant)
	}
}

// debugf logs when a logger is configured.
func (s *solver[W]) debugf(format string, args ...interface{}) {
	if s.log != nil {
		s.log.Debugf(format, args...)
	}
}
