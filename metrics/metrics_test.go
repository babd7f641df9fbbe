// SPDX-License-Identifier: MIT

package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/matching"
	"github.com/katalvlaran/lvmatch/metrics"
	"github.com/katalvlaran/lvmatch/weight"
)

// gather returns the named metric family from reg.
func gather(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	t.Fatalf("metric %s not gathered", name)
	return nil
}

// TestObserverCountsEvents drives the observer directly.
func TestObserverCountsEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	o := metrics.NewObserver(reg, "test")

	o.OnStage(0)
	o.OnStage(1)
	o.OnAugment(1, 0)
	o.OnBlossom(2, 3)
	o.OnExpand(2, false)
	o.OnExpand(4, true)
	o.OnExpand(5, true)
	o.OnDualStep(matching.StepGrow)
	o.OnDualStep(matching.StepGrow)
	o.OnDualStep(matching.StepOptimum)
	o.OnComplete(2, 1)

	stages := gather(t, reg, "test_matching_stages_total")
	require.Equal(t, 2.0, stages.GetMetric()[0].GetCounter().GetValue())

	exp := gather(t, reg, "test_matching_expansions_total")
	byPhase := map[string]float64{}
	for _, m := range exp.GetMetric() {
		byPhase[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
	}
	require.Equal(t, map[string]float64{metrics.PhaseSearch: 1, metrics.PhaseStageEnd: 2}, byPhase)

	steps := gather(t, reg, "test_matching_dual_steps_total")
	require.Len(t, steps.GetMetric(), 2)

	children := gather(t, reg, "test_matching_blossom_children")
	require.Equal(t, uint64(1), children.GetMetric()[0].GetHistogram().GetSampleCount())
	require.Equal(t, 3.0, children.GetMetric()[0].GetHistogram().GetSampleSum())

	pairs := gather(t, reg, "test_matching_matched_pairs")
	require.Equal(t, 1.0, pairs.GetMetric()[0].GetGauge().GetValue())
}

// TestObserverWithComputer wires the observer into a real computation.
func TestObserverWithComputer(t *testing.T) {
	reg := prometheus.NewRegistry()
	o := metrics.NewObserver(reg, "lvmatch")

	c, err := matching.New[weight.U64](6, 2, matching.WithObserver(o))
	require.NoError(t, err)
	require.NoError(t, c.ComputeMatching())

	augments := gather(t, reg, "lvmatch_matching_augmentations_total")
	require.Equal(t, 3.0, augments.GetMetric()[0].GetCounter().GetValue())
	runs := gather(t, reg, "lvmatch_matching_computations_total")
	require.Equal(t, 1.0, runs.GetMetric()[0].GetCounter().GetValue())
	pairs := gather(t, reg, "lvmatch_matching_matched_pairs")
	require.Equal(t, 3.0, pairs.GetMetric()[0].GetGauge().GetValue())

	n, err := testutil.GatherAndCount(reg, "lvmatch_matching_dual_steps_total")
	require.NoError(t, err)
	require.GreaterOrEqual(t, n, 1)
}

// TestNilRegisterer keeps the collectors usable without registration.
func TestNilRegisterer(t *testing.T) {
	o := metrics.NewObserver(nil, "")
	require.NotPanics(t, func() {
		o.OnStage(0)
		o.OnComplete(1, 0)
	})
}

// TestDuplicateRegistrationPanics mirrors promauto semantics.
func TestDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewObserver(reg, "dup")
	require.Panics(t, func() { metrics.NewObserver(reg, "dup") })
}
