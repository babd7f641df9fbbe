// SPDX-License-Identifier: MIT

package matching

//go:generate mockgen -source=observer.go -destination=observer_mock.go -package=matching

// DualStep identifies which bound limited a dual adjustment.
type DualStep int

const (
	// StepOptimum: a vertex dual reached zero; the matching is optimal.
	StepOptimum DualStep = iota + 1
	// StepGrow: an edge from an even vertex to a free vertex became tight.
	StepGrow
	// StepBlossom: an edge between two even structures became tight.
	StepBlossom
	// StepExpand: an odd blossom's dual reached zero.
	StepExpand
)

// String returns the step name.
func (s DualStep) String() string {
	switch s {
	case StepOptimum:
		return "optimum"
	case StepGrow:
		return "grow"
	case StepBlossom:
		return "blossom"
	case StepExpand:
		return "expand"
	default:
		return "unknown"
	}
}

// Observer receives engine events during ComputeMatching. Callbacks run
// synchronously on the computing goroutine and must not call back into the
// Computer.
type Observer interface {
	// OnStage is called at the start of each augmentation stage.
	OnStage(stage int)
	// OnAugment is called when the matching grows along the tight edge (u, v).
	OnAugment(u, v int)
	// OnBlossom is called when an odd cycle with the given number of
	// sub-structures is contracted around base.
	OnBlossom(base, children int)
	// OnExpand is called when a blossom is dissolved; endStage tells a
	// stage-end cleanup from an expansion during search.
	OnExpand(base int, endStage bool)
	// OnDualStep is called after each dual adjustment.
	OnDualStep(step DualStep)
	// OnComplete is called once the computation succeeded.
	OnComplete(stages, matchedPairs int)
}

// NopObserver ignores every event.
type NopObserver struct{}

var _ Observer = NopObserver{}

func (NopObserver) OnStage(int)         {}
func (NopObserver) OnAugment(int, int)  {}
func (NopObserver) OnBlossom(int, int)  {}
func (NopObserver) OnExpand(int, bool)  {}
func (NopObserver) OnDualStep(DualStep) {}
func (NopObserver) OnComplete(int, int) {}
