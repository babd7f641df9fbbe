// SPDX-License-Identifier: MIT

package matching_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvmatch/dynuint"
	"github.com/katalvlaran/lvmatch/matching"
	"github.com/katalvlaran/lvmatch/weight"
)

// ComputerSuite covers the store, lifecycle and accessor contract.
type ComputerSuite struct {
	suite.Suite
}

func TestComputerSuite(t *testing.T) {
	suite.Run(t, new(ComputerSuite))
}

// TestNew checks construction with the default weight on every edge.
func (s *ComputerSuite) TestNew() {
	c, err := matching.New[weight.U64](3, 7)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, c.Size())
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}} {
		w, err := c.EdgeWeight(e[0], e[1])
		require.NoError(s.T(), err)
		require.Equal(s.T(), weight.U64(7), w)
	}
}

// TestNewBadSize rejects negative sizes.
func (s *ComputerSuite) TestNewBadSize() {
	_, err := matching.New[weight.U64](-1, 0)
	require.True(s.T(), errors.Is(err, matching.ErrBadSize))
}

// TestEmptyGraph computes the empty matching of zero vertices.
func (s *ComputerSuite) TestEmptyGraph() {
	c, err := matching.New[weight.U64](0, 0)
	require.NoError(s.T(), err)
	require.NoError(s.T(), c.ComputeMatching())
	m, err := c.Matching()
	require.NoError(s.T(), err)
	require.Empty(s.T(), m)
	stages, err := c.Stages()
	require.NoError(s.T(), err)
	require.Zero(s.T(), stages)
}

// TestSingleVertex leaves the only vertex exposed.
func (s *ComputerSuite) TestSingleVertex() {
	c, err := matching.New[weight.U64](1, 0)
	require.NoError(s.T(), err)
	require.NoError(s.T(), c.ComputeMatching())
	m, err := c.Matching()
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{matching.Unmatched}, m)
}

// TestAddVertex grows the graph and returns sequential indices.
func (s *ComputerSuite) TestAddVertex() {
	c, err := matching.New[weight.U64](0, 4)
	require.NoError(s.T(), err)
	for want := 0; want < 4; want++ {
		require.Equal(s.T(), want, c.AddVertex())
	}
	require.Equal(s.T(), 4, c.Size())
	w, err := c.EdgeWeight(3, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), weight.U64(4), w)
}

// TestSetEdgeWeightSymmetric stores one value for both orientations.
func (s *ComputerSuite) TestSetEdgeWeightSymmetric() {
	c, err := matching.New[weight.U64](4, 0)
	require.NoError(s.T(), err)
	require.NoError(s.T(), c.SetEdgeWeight(1, 3, 9))
	a, err := c.EdgeWeight(1, 3)
	require.NoError(s.T(), err)
	b, err := c.EdgeWeight(3, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), weight.U64(9), a)
	require.Equal(s.T(), a, b)
}

// TestSetEdgeWeightErrors checks range and self-loop rejection.
func (s *ComputerSuite) TestSetEdgeWeightErrors() {
	c, err := matching.New[weight.U64](3, 0)
	require.NoError(s.T(), err)

	cases := []struct {
		name string
		u, v int
		want error
	}{
		{"NegativeU", -1, 0, matching.ErrOutOfRange},
		{"LargeV", 0, 3, matching.ErrOutOfRange},
		{"BothOut", 5, 7, matching.ErrOutOfRange},
		{"SelfLoop", 2, 2, matching.ErrSelfLoop},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			err := c.SetEdgeWeight(tc.u, tc.v, 1)
			require.True(s.T(), errors.Is(err, tc.want), "got %v", err)
			_, err = c.EdgeWeight(tc.u, tc.v)
			require.True(s.T(), errors.Is(err, tc.want), "got %v", err)
		})
	}
}

// TestNotComputed guards every result accessor.
func (s *ComputerSuite) TestNotComputed() {
	c, err := matching.New[weight.U64](2, 1)
	require.NoError(s.T(), err)

	_, err = c.Matching()
	require.ErrorIs(s.T(), err, matching.ErrNotComputed)
	_, err = c.Partner(0)
	require.ErrorIs(s.T(), err, matching.ErrNotComputed)
	_, err = c.MatchedPairs()
	require.ErrorIs(s.T(), err, matching.ErrNotComputed)
	_, err = c.TotalWeight()
	require.ErrorIs(s.T(), err, matching.ErrNotComputed)
	_, err = c.Stages()
	require.ErrorIs(s.T(), err, matching.ErrNotComputed)
	require.ErrorIs(s.T(), c.Verify(), matching.ErrNotComputed)
}

// TestMutationInvalidates discards the result on every mutation and
// recomputes on the same instance.
func (s *ComputerSuite) TestMutationInvalidates() {
	c, err := matching.New[weight.U64](4, 1)
	require.NoError(s.T(), err)
	require.NoError(s.T(), c.SetEdgeWeight(0, 1, 10))
	require.NoError(s.T(), c.SetEdgeWeight(2, 3, 10))
	require.NoError(s.T(), c.ComputeMatching())
	p, err := c.Partner(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, p)

	// re-weight so that (0, 2) and (1, 3) dominate
	require.NoError(s.T(), c.SetEdgeWeight(0, 2, 50))
	require.NoError(s.T(), c.SetEdgeWeight(1, 3, 50))
	_, err = c.Matching()
	require.ErrorIs(s.T(), err, matching.ErrNotComputed)

	require.NoError(s.T(), c.ComputeMatching())
	m, err := c.Matching()
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{2, 3, 0, 1}, m)

	c.AddVertex()
	_, err = c.Matching()
	require.ErrorIs(s.T(), err, matching.ErrNotComputed)
}

// TestIdempotent returns the same frozen result on repeated calls.
func (s *ComputerSuite) TestIdempotent() {
	c, err := matching.New[weight.U64](5, 3)
	require.NoError(s.T(), err)
	require.NoError(s.T(), c.ComputeMatching())
	first, err := c.Matching()
	require.NoError(s.T(), err)
	require.NoError(s.T(), c.ComputeMatching())
	second, err := c.Matching()
	require.NoError(s.T(), err)
	require.Equal(s.T(), first, second)
}

// TestMatchingIsCopy keeps the frozen result safe from caller edits.
func (s *ComputerSuite) TestMatchingIsCopy() {
	c, err := matching.New[weight.U64](2, 1)
	require.NoError(s.T(), err)
	require.NoError(s.T(), c.ComputeMatching())
	m, err := c.Matching()
	require.NoError(s.T(), err)
	m[0] = 42
	again, err := c.Matching()
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{1, 0}, again)
}

// TestPartnerOutOfRange rejects bad vertex indices after computation.
func (s *ComputerSuite) TestPartnerOutOfRange() {
	c, err := matching.New[weight.U64](2, 1)
	require.NoError(s.T(), err)
	require.NoError(s.T(), c.ComputeMatching())
	_, err = c.Partner(2)
	require.ErrorIs(s.T(), err, matching.ErrOutOfRange)
}

// TestStoreOwnsDynamicWeights detaches stored values from the caller's.
func (s *ComputerSuite) TestStoreOwnsDynamicWeights() {
	c, err := matching.New[dynuint.Uint](2, dynuint.Zero())
	require.NoError(s.T(), err)
	w := dynuint.New(6)
	require.NoError(s.T(), c.SetEdgeWeight(0, 1, w))
	w.AddAssignUint64(1)

	got, err := c.EdgeWeight(0, 1)
	require.NoError(s.T(), err)
	require.True(s.T(), got.Equal(dynuint.New(6)))
}

// TestEdgeWeightIsCopy keeps the stored table safe from edits to a
// returned dynamic weight.
func (s *ComputerSuite) TestEdgeWeightIsCopy() {
	c, err := matching.New[dynuint.Uint](3, dynuint.Zero())
	require.NoError(s.T(), err)
	stored := dynuint.FromLimbs([]uint64{0, 1})
	require.NoError(s.T(), c.SetEdgeWeight(0, 1, stored))

	got, err := c.EdgeWeight(0, 1)
	require.NoError(s.T(), err)
	require.NoError(s.T(), got.SubAssign(dynuint.New(1)))
	got.OrAssignUint64(2)

	again, err := c.EdgeWeight(1, 0)
	require.NoError(s.T(), err)
	require.True(s.T(), again.Equal(stored), "stored weight changed to %v", again.Limbs())
	require.Equal(s.T(), []uint64{0, 1}, again.Limbs())

	require.NoError(s.T(), c.ComputeMatching())
	total, err := c.TotalWeight()
	require.NoError(s.T(), err)
	require.True(s.T(), total.Equal(stored))
}

// TestOptionViolation surfaces invalid options from New.
func (s *ComputerSuite) TestOptionViolation() {
	_, err := matching.New[weight.U64](2, 0, matching.WithMaxStages(-1))
	require.ErrorIs(s.T(), err, matching.ErrOptionViolation)
	require.True(s.T(), errors.Is(err, matching.ErrOptionViolation))
	require.Contains(s.T(), err.Error(), "MaxStages cannot be negative (-1)")
}

// TestDefaultOptions documents the zero configuration.
func (s *ComputerSuite) TestDefaultOptions() {
	o := matching.DefaultOptions()
	require.Nil(s.T(), o.Logger)
	require.Equal(s.T(), matching.NopObserver{}, o.Observer)
	require.False(s.T(), o.CheckOptimum)
	require.Zero(s.T(), o.MaxStages)

	matching.WithObserver(nil)(&o)
	require.NotNil(s.T(), o.Observer)
}

// TestOverflowIsInvariant reports fixed-width overflow as ErrInvariant.
func (s *ComputerSuite) TestOverflowIsInvariant() {
	c, err := matching.New[weight.U64](2, 0)
	require.NoError(s.T(), err)
	require.NoError(s.T(), c.SetEdgeWeight(0, 1, weight.U64(1<<63)))
	err = c.ComputeMatching()
	require.True(s.T(), errors.Is(err, matching.ErrInvariant), "got %v", err)
	require.True(s.T(), errors.Is(err, weight.ErrOverflow), "got %v", err)
	_, err = c.Matching()
	require.ErrorIs(s.T(), err, matching.ErrNotComputed)
}

// TestLargestUsableWeights computes with the heaviest weights whose doubles
// still fit, and fails one bit above them.
func (s *ComputerSuite) TestLargestUsableWeights() {
	c64, err := matching.New[weight.U64](2, weight.U64(1<<63-1))
	require.NoError(s.T(), err)
	require.NoError(s.T(), c64.ComputeMatching())
	total64, err := c64.TotalWeight()
	require.NoError(s.T(), err)
	require.Equal(s.T(), weight.U64(1<<63-1), total64)

	top := weight.NewU256(1).Lsh(255)
	below, err := top.Minus(weight.NewU256(1))
	require.NoError(s.T(), err)
	c256, err := matching.New[weight.U256](2, below)
	require.NoError(s.T(), err)
	require.NoError(s.T(), c256.ComputeMatching())
	total256, err := c256.TotalWeight()
	require.NoError(s.T(), err)
	require.Zero(s.T(), below.Cmp(total256))

	require.NoError(s.T(), c256.SetEdgeWeight(0, 1, top))
	err = c256.ComputeMatching()
	require.True(s.T(), errors.Is(err, matching.ErrInvariant), "got %v", err)
	require.True(s.T(), errors.Is(err, weight.ErrOverflow), "got %v", err)
}
