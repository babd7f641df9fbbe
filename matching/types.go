// SPDX-License-Identifier: MIT

package matching

import (
	"github.com/cockroachdb/errors"
	"github.com/op/go-logging"
)

// Unmatched marks an exposed vertex in the slice returned by Matching.
const Unmatched = -1

// Sentinel errors for matching operations.
var (
	// ErrBadSize indicates a negative vertex count.
	ErrBadSize = errors.New("matching: vertex count must be >= 0")

	// ErrOutOfRange indicates a vertex index outside [0, Size()).
	ErrOutOfRange = errors.New("matching: vertex index out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("matching: edge endpoints must differ")

	// ErrNotComputed indicates the result was read before a computation.
	ErrNotComputed = errors.New("matching: matching not computed")

	// ErrInvariant indicates the engine broke one of its own invariants.
	ErrInvariant = errors.New("matching: internal invariant violated")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("matching: invalid option supplied")
)

// Option configures a Computer via functional arguments.
// Invalid values are recorded and surfaced by New as ErrOptionViolation.
type Option func(*Options)

// Options holds the tunables of a Computer.
type Options struct {
	// Logger receives debug traces of stages, augmentations and blossom
	// events. Nil disables logging.
	Logger *logging.Logger

	// Observer receives structured engine events. Never nil after
	// DefaultOptions.
	Observer Observer

	// CheckOptimum runs Verify after every computation and fails the
	// computation with ErrInvariant if the certificate does not hold.
	CheckOptimum bool

	// MaxStages caps the number of augmentation stages; 0 means the natural
	// bound Size(). A computation that hits a positive cap returns the
	// matching reached so far, which is then not guaranteed optimal.
	MaxStages int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no logger, a no-op observer, no
// certificate check and no stage cap.
func DefaultOptions() Options {
	return Options{
		Logger:       nil,
		Observer:     NopObserver{},
		CheckOptimum: false,
		MaxStages:    0,
		err:          nil,
	}
}

// WithLogger enables debug tracing through l.
func WithLogger(l *logging.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithObserver registers an event observer. A nil observer is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithOptimumCheck toggles the post-computation optimality certificate.
func WithOptimumCheck(enabled bool) Option {
	return func(o *Options) {
		o.CheckOptimum = enabled
	}
}

// WithMaxStages caps augmentation stages.
//
//	n > 0: at most n stages
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxStages(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxStages cannot be negative (%d)", n)
			return
		}
		o.MaxStages = n
	}
}
