// SPDX-License-Identifier: MIT

// Package metrics exports matching engine events as Prometheus metrics.
//
// Observer implements matching.Observer; pass it with matching.WithObserver.
// All metrics live under the configured namespace and the "matching"
// subsystem:
//
//	stages_total              counter    augmentation stages started
//	augmentations_total       counter    matchings grown by one edge
//	blossoms_total            counter    odd cycles contracted
//	blossom_children          histogram  sub-structures per contracted cycle
//	expansions_total{phase}   counter    blossoms dissolved (search, stage_end)
//	dual_steps_total{step}    counter    dual adjustments by limiting bound
//	computations_total        counter    successful computations
//	stages_per_computation    histogram  stages taken by one computation
//	matched_pairs             gauge      pairs in the latest result
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvmatch/matching"
)

const subsystem = "matching"

// Expansion phases.
const (
	PhaseSearch   = "search"
	PhaseStageEnd = "stage_end"
)

// Observer counts engine events. It is safe for concurrent use by several
// Computers because the underlying collectors are.
type Observer struct {
	stages          prometheus.Counter
	augmentations   prometheus.Counter
	blossoms        prometheus.Counter
	blossomChildren prometheus.Histogram
	expansions      *prometheus.CounterVec
	dualSteps       *prometheus.CounterVec
	computations    prometheus.Counter
	stagesPerRun    prometheus.Histogram
	matchedPairs    prometheus.Gauge
}

var _ matching.Observer = (*Observer)(nil)

// NewObserver creates the collectors and registers them with reg.
// A nil reg leaves them unregistered. Registering twice with the same
// namespace panics, as promauto does.
func NewObserver(reg prometheus.Registerer, namespace string) *Observer {
	f := promauto.With(reg)

	return &Observer{
		stages: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "stages_total",
			Help:      "Augmentation stages started",
		}),
		augmentations: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "augmentations_total",
			Help:      "Matchings grown along an augmenting path",
		}),
		blossoms: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "blossoms_total",
			Help:      "Odd cycles contracted into blossoms",
		}),
		blossomChildren: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "blossom_children",
			Help:      "Sub-structures per contracted blossom",
			Buckets:   []float64{3, 5, 7, 9, 15, 31, 63},
		}),
		expansions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "expansions_total",
			Help:      "Blossoms dissolved, by phase",
		}, []string{"phase"}),
		dualSteps: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "dual_steps_total",
			Help:      "Dual adjustments, by limiting bound",
		}, []string{"step"}),
		computations: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "computations_total",
			Help:      "Successful matching computations",
		}),
		stagesPerRun: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "stages_per_computation",
			Help:      "Stages taken by one computation",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		matchedPairs: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "matched_pairs",
			Help:      "Matched pairs in the latest result",
		}),
	}
}

// OnStage implements matching.Observer.
func (o *Observer) OnStage(int) { o.stages.Inc() }

// OnAugment implements matching.Observer.
func (o *Observer) OnAugment(int, int) { o.augmentations.Inc() }

// OnBlossom implements matching.Observer.
func (o *Observer) OnBlossom(_, children int) {
	o.blossoms.Inc()
	o.blossomChildren.Observe(float64(children))
}

// OnExpand implements matching.Observer.
func (o *Observer) OnExpand(_ int, endStage bool) {
	phase := PhaseSearch
	if endStage {
		phase = PhaseStageEnd
	}
	o.expansions.WithLabelValues(phase).Inc()
}

// OnDualStep implements matching.Observer.
func (o *Observer) OnDualStep(step matching.DualStep) {
	o.dualSteps.WithLabelValues(step.String()).Inc()
}

// OnComplete implements matching.Observer.
func (o *Observer) OnComplete(stages, matchedPairs int) {
	o.computations.Inc()
	o.stagesPerRun.Observe(float64(stages))
	o.matchedPairs.Set(float64(matchedPairs))
}
