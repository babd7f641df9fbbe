// SPDX-License-Identifier: MIT

package matching

import (
	"github.com/cockroachdb/errors"
)

// verify checks the final primal and dual solution for complementary
// slackness. It reads the solver state and never changes it.
func (s *solver[W]) verify() error {
	if s.err != nil {
		return s.err
	}

	// partners: every matched endpoint points back
	for v, p := range s.mate {
		if p == noIndex {
			continue
		}
		u := s.endpoint[p]
		if u == v || s.mate[u] != p^1 {
			return violation("vertex %d: partner %d does not point back", v, u)
		}
	}

	// dual feasibility per edge, including enclosing blossom duals
	chains := make([][]int, s.n)
	for v := range chains {
		chains[v] = s.ancestors(v)
	}
	for k := range s.edgeU {
		i, j := s.edgeU[k], s.edgeV[k]
		sum, err := s.dual[i].Plus(s.dual[j])
		if err != nil {
			return errors.Mark(errors.Wrapf(err, "matching: edge (%d, %d)", i, j), ErrInvariant)
		}
		ci, cj := chains[i], chains[j]
		for x := 0; x < len(ci) && x < len(cj) && ci[x] == cj[x]; x++ {
			if sum, err = sum.Plus(s.dual[ci[x]]); err == nil {
				sum, err = sum.Plus(s.dual[ci[x]])
			}
			if err != nil {
				return errors.Mark(errors.Wrapf(err, "matching: edge (%d, %d)", i, j), ErrInvariant)
			}
		}

		c := sum.Cmp(s.twice[k])
		if c < 0 {
			return violation("edge (%d, %d) has negative slack", i, j)
		}
		mi, mj := s.mate[i] != noIndex && s.mate[i]>>1 == k, s.mate[j] != noIndex && s.mate[j]>>1 == k
		if mi || mj {
			if !mi || !mj {
				return violation("edge (%d, %d) is matched on one side only", i, j)
			}
			if c != 0 {
				return violation("matched edge (%d, %d) is not tight", i, j)
			}
		}
	}

	// exposed vertices carry zero dual
	for v := 0; v < s.n; v++ {
		if s.mate[v] == noIndex && !s.dual[v].IsZero() {
			return violation("exposed vertex %d has a positive dual", v)
		}
	}

	// blossoms with positive dual are fully matched
	for b := s.n; b < 2*s.n; b++ {
		if s.blossomBase[b] < 0 || s.dual[b].IsZero() {
			continue
		}
		endps := s.blossomEndps[b]
		if len(endps)%2 != 1 {
			return violation("blossom %d has an even cycle of %d edges", b, len(endps))
		}
		for x := 1; x < len(endps); x += 2 {
			p := endps[x]
			if s.mate[s.endpoint[p]] != p^1 || s.mate[s.endpoint[p^1]] != p {
				return violation("blossom %d has an unmatched cycle edge at position %d", b, x)
			}
		}
	}

	return nil
}

// ancestors returns the blossoms enclosing v, outermost first, followed by v.
func (s *solver[W]) ancestors(v int) []int {
	chain := []int{v}
	for b := s.blossomParent[v]; b != noIndex; b = s.blossomParent[b] {
		chain = append(chain, b)
	}
	reverse(chain)

	return chain
}

// violation builds a certificate failure.
func violation(format string, args ...interface{}) error {
	return errors.Mark(errors.AssertionFailedf("matching: "+format, args...), ErrInvariant)
}
