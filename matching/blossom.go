// SPDX-License-Identifier: MIT

package matching

// leaves appends every vertex contained in b (b itself if it is a vertex).
func (s *solver[W]) leaves(b int, out []int) []int {
	if b < s.n {
		return append(out, b)
	}
	for _, t := range s.blossomChilds[b] {
		out = s.leaves(t, out)
	}

	return out
}

// assignLabel labels w's top-level structure t, reached through endpoint p.
// An odd structure immediately passes an even label on to its mate.
func (s *solver[W]) assignLabel(w int, t int8, p int) {
	for {
		b := s.inBlossom[w]
		if s.label[w] != labelFree || s.label[b] != labelFree {
			s.failf("vertex %d is already labelled", w)
			return
		}
		s.label[w], s.label[b] = t, t
		s.labelEnd[w], s.labelEnd[b] = p, p
		s.bestEdge[w], s.bestEdge[b] = noIndex, noIndex

		if t == labelEven {
			s.queue = s.leaves(b, s.queue)
			return
		}
		base := s.blossomBase[b]
		if s.mate[base] == noIndex {
			s.failf("odd structure %d has an exposed base %d", b, base)
			return
		}
		w, t, p = s.endpoint[s.mate[base]], labelEven, s.mate[base]^1
	}
}

// scanBlossom walks back from v and w along their alternating trees. It
// returns the base of the first common structure (a new blossom), or
// noIndex when the paths reach two different roots (an augmenting path).
func (s *solver[W]) scanBlossom(v, w int) int {
	var path []int
	base := noIndex
	for v != noIndex || w != noIndex {
		b := s.inBlossom[v]
		if s.label[b]&labelCrumb != 0 {
			base = s.blossomBase[b]
			break
		}
		if s.label[b] != labelEven {
			s.failf("scan reached non-even structure %d", b)
			break
		}
		path = append(path, b)
		s.label[b] = labelEven | labelCrumb

		if s.labelEnd[b] == noIndex {
			v = noIndex // reached a root
		} else {
			v = s.endpoint[s.labelEnd[b]]
			b = s.inBlossom[v]
			if s.label[b] != labelOdd {
				s.failf("scan expected odd structure %d", b)
				break
			}
			v = s.endpoint[s.labelEnd[b]]
		}
		// alternate between the two paths
		if w != noIndex {
			v, w = w, v
		}
	}
	for _, b := range path {
		s.label[b] = labelEven
	}

	return base
}

// addBlossom contracts the odd cycle closed by edge k around base into a new
// even blossom with zero dual.
func (s *solver[W]) addBlossom(base, k int) {
	v, w := s.edgeU[k], s.edgeV[k]
	bb, bv, bw := s.inBlossom[base], s.inBlossom[v], s.inBlossom[w]

	if len(s.unused) == 0 {
		s.failf("no free blossom slot")
		return
	}
	b := s.unused[len(s.unused)-1]
	s.unused = s.unused[:len(s.unused)-1]
	s.blossomBase[b] = base
	s.blossomParent[b] = noIndex
	s.blossomParent[bb] = b

	// v's side, collected from v down to the base and then reversed
	var path, endps []int
	for bv != bb {
		s.blossomParent[bv] = b
		path = append(path, bv)
		endps = append(endps, s.labelEnd[bv])
		v = s.endpoint[s.labelEnd[bv]]
		bv = s.inBlossom[v]
	}
	path = append(path, bb)
	reverse(path)
	reverse(endps)
	endps = append(endps, 2*k)
	// w's side, from w down to the base
	for bw != bb {
		s.blossomParent[bw] = b
		path = append(path, bw)
		endps = append(endps, s.labelEnd[bw]^1)
		w = s.endpoint[s.labelEnd[bw]]
		bw = s.inBlossom[w]
	}

	s.blossomChilds[b] = path
	s.blossomEndps[b] = endps
	s.label[b] = labelEven
	s.labelEnd[b] = s.labelEnd[bb]
	var zero W
	s.dual[b] = zero

	// former odd vertices become even and must be scanned
	for _, lv := range s.leaves(b, nil) {
		if s.label[s.inBlossom[lv]] == labelOdd {
			s.queue = append(s.queue, lv)
		}
		s.inBlossom[lv] = b
	}

	// merge least-slack edges of the children, one per neighbouring even
	// structure
	bestTo := filled(2*s.n, noIndex)
	consider := func(k2 int) {
		j := s.edgeV[k2]
		if s.inBlossom[j] == b {
			j = s.edgeU[k2]
		}
		bj := s.inBlossom[j]
		if bj != b && s.label[bj] == labelEven &&
			(bestTo[bj] == noIndex || s.slack(k2).Cmp(s.slack(bestTo[bj])) < 0) {
			bestTo[bj] = k2
		}
	}
	for _, sub := range path {
		if s.bestEdgesOf[sub] == nil {
			for _, lv := range s.leaves(sub, nil) {
				for _, p := range s.neighbend[lv] {
					consider(p >> 1)
				}
			}
		} else {
			for _, k2 := range s.bestEdgesOf[sub] {
				consider(k2)
			}
		}
		s.bestEdgesOf[sub] = nil
		s.bestEdge[sub] = noIndex
	}

	best := make([]int, 0, len(path))
	for _, k2 := range bestTo {
		if k2 != noIndex {
			best = append(best, k2)
		}
	}
	s.bestEdgesOf[b] = best
	s.bestEdge[b] = noIndex
	for _, k2 := range best {
		if s.bestEdge[b] == noIndex || s.slack(k2).Cmp(s.slack(s.bestEdge[b])) < 0 {
			s.bestEdge[b] = k2
		}
	}

	s.obs.OnBlossom(base, len(path))
	s.debugf("blossom %d formed around base %d with %d children", b, base, len(path))
}

// expandBlossom dissolves b into its children. During a stage (endStage
// false) an odd b is relabelled so the alternating tree stays consistent;
// at stage end nested even blossoms with zero dual are dissolved as well.
func (s *solver[W]) expandBlossom(b int, endStage bool) {
	base := s.blossomBase[b]
	for _, sub := range s.blossomChilds[b] {
		s.blossomParent[sub] = noIndex
		switch {
		case sub < s.n:
			s.inBlossom[sub] = sub
		case endStage && s.dual[sub].IsZero():
			s.expandBlossom(sub, endStage)
		default:
			for _, v := range s.leaves(sub, nil) {
				s.inBlossom[v] = sub
			}
		}
	}

	if !endStage && s.label[b] == labelOdd {
		s.relabelExpanded(b)
	}

	s.label[b] = noIndex
	s.labelEnd[b] = noIndex
	s.blossomChilds[b] = nil
	s.blossomEndps[b] = nil
	s.blossomBase[b] = noIndex
	s.bestEdgesOf[b] = nil
	s.bestEdge[b] = noIndex
	s.unused = append(s.unused, b)

	s.obs.OnExpand(base, endStage)
	s.debugf("blossom %d expanded (base %d, stage end %t)", b, base, endStage)
}

// relabelExpanded restores labels after an odd blossom was dissolved: the
// even-length path from the entry child to the base gets alternating
// labels, the other children become free unless they were reached from
// outside.
func (s *solver[W]) relabelExpanded(b int) {
	childs, endps := s.blossomChilds[b], s.blossomEndps[b]
	size := len(childs)

	entry := s.inBlossom[s.endpoint[s.labelEnd[b]^1]]
	j := indexOf(childs, entry)
	if j < 0 {
		s.failf("entry child %d not found in blossom %d", entry, b)
		return
	}
	// walk towards the base along the even-length side
	jstep, trick := -1, 1
	if j&1 != 0 {
		j -= size
		jstep, trick = 1, 0
	}

	p := s.labelEnd[b]
	for j != 0 {
		s.label[s.endpoint[p^1]] = labelFree
		s.label[s.endpoint[endps[wrap(j-trick, size)]^trick^1]] = labelFree
		s.assignLabel(s.endpoint[p^1], labelOdd, p)
		s.allowEdge[endps[wrap(j-trick, size)]>>1] = true
		j += jstep
		p = endps[wrap(j-trick, size)] ^ trick
		s.allowEdge[p>>1] = true
		j += jstep
	}

	// the base child keeps an odd label without passing it on
	bv := childs[wrap(j, size)]
	s.label[s.endpoint[p^1]], s.label[bv] = labelOdd, labelOdd
	s.labelEnd[s.endpoint[p^1]], s.labelEnd[bv] = p, p
	s.bestEdge[bv] = noIndex

	j += jstep
	for childs[wrap(j, size)] != entry {
		bv = childs[wrap(j, size)]
		if s.label[bv] == labelEven {
			j += jstep
			continue
		}
		reached := noIndex
		for _, v := range s.leaves(bv, nil) {
			if s.label[v] != labelFree {
				reached = v
				break
			}
		}
		// a vertex of bv was reached from outside: label bv through it
		if reached != noIndex {
			if s.label[reached] != labelOdd || s.inBlossom[reached] != bv {
				s.failf("inconsistent label on vertex %d", reached)
				return
			}
			s.label[reached] = labelFree
			s.label[s.endpoint[s.mate[s.blossomBase[bv]]]] = labelFree
			s.assignLabel(reached, labelOdd, s.labelEnd[reached])
		}
		j += jstep
	}
}

// augmentBlossom flips matched and unmatched edges on the even-length path
// from v to the base of b, making v the new base.
func (s *solver[W]) augmentBlossom(b, v int) {
	t := v
	for s.blossomParent[t] != b {
		t = s.blossomParent[t]
	}
	if t >= s.n {
		s.augmentBlossom(t, v)
	}

	childs, endps := s.blossomChilds[b], s.blossomEndps[b]
	size := len(childs)
	i := indexOf(childs, t)
	if i < 0 {
		s.failf("child %d not found in blossom %d", t, b)
		return
	}
	j := i
	jstep, trick := -1, 1
	if i&1 != 0 {
		j -= size
		jstep, trick = 1, 0
	}

	for j != 0 {
		j += jstep
		t = childs[wrap(j, size)]
		p := endps[wrap(j-trick, size)] ^ trick
		if t >= s.n {
			s.augmentBlossom(t, s.endpoint[p])
		}
		j += jstep
		t = childs[wrap(j, size)]
		if t >= s.n {
			s.augmentBlossom(t, s.endpoint[p^1])
		}
		s.mate[s.endpoint[p]] = p ^ 1
		s.mate[s.endpoint[p^1]] = p
	}

	s.blossomChilds[b] = rotate(childs, i)
	s.blossomEndps[b] = rotate(endps, i)
	s.blossomBase[b] = s.blossomBase[s.blossomChilds[b][0]]
	if s.blossomBase[b] != v {
		s.failf("blossom %d rebased on %d, want %d", b, s.blossomBase[b], v)
	}
}

// augmentMatching flips the augmenting path through edge k back to the two
// roots of the trees it joins.
func (s *solver[W]) augmentMatching(k int) {
	v, w := s.edgeU[k], s.edgeV[k]
	s.obs.OnAugment(v, w)
	s.debugf("augment through edge (%d, %d)", v, w)

	for _, start := range [2][2]int{{v, 2*k + 1}, {w, 2 * k}} {
		sv, p := start[0], start[1]
		for {
			bs := s.inBlossom[sv]
			if s.label[bs] != labelEven || s.labelEnd[bs] != s.mate[s.blossomBase[bs]] {
				s.failf("augmenting path leaves even structure %d", bs)
				return
			}
			if bs >= s.n {
				s.augmentBlossom(bs, sv)
			}
			s.mate[sv] = p
			if s.labelEnd[bs] == noIndex {
				break // reached the root
			}
			t := s.endpoint[s.labelEnd[bs]]
			bt := s.inBlossom[t]
			if s.label[bt] != labelOdd || s.blossomBase[bt] != t {
				s.failf("augmenting path expects odd structure %d based at %d", bt, t)
				return
			}
			sv = s.endpoint[s.labelEnd[bt]]
			j := s.endpoint[s.labelEnd[bt]^1]
			if bt >= s.n {
				s.augmentBlossom(bt, j)
			}
			s.mate[j] = s.labelEnd[bt]
			p = s.labelEnd[bt] ^ 1
		}
	}
}

// wrap maps a possibly negative cyclic index into [0, size).
func wrap(i, size int) int {
	i %= size
	if i < 0 {
		i += size
	}

	return i
}

// indexOf returns the position of x in xs, or -1.
func indexOf(xs []int, x int) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}

	return -1
}

// reverse reverses xs in place.
func reverse(xs []int) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// rotate returns a new slice holding xs[i:] followed by xs[:i].
func rotate(xs []int, i int) []int {
	out := make([]int, 0, len(xs))
	out = append(out, xs[i:]...)

	return append(out, xs[:i]...)
}
