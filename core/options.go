package core

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Unbounded is the default maximum path length: no bound at all.
const Unbounded = math.MaxInt

// Option configures a single search call via functional arguments.
// An invalid Option (e.g. negative path length) is recorded and surfaced
// as ErrOptionViolation by Apply.
type Option func(*Options)

// Options holds the per-call parameters understood by every search.
type Options struct {
	// Ctx allows cancellation; it is checked once per expanded node.
	Ctx context.Context

	// MaxPathLength bounds the number of states on any considered path.
	// Nodes longer than this are never tested, nodes of exactly this length
	// are never expanded. Default Unbounded.
	MaxPathLength int

	// Logger receives one Debug entry per finished search.
	Logger logrus.FieldLogger

	// AssumeNoDuplicates disables the current-path cycle check of the
	// backtracking searches. Ignored by every other algorithm.
	AssumeNoDuplicates bool

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - MaxPathLength = Unbounded
//   - the logrus standard logger
//   - the backtracking cycle check enabled.
func DefaultOptions() Options {
	return Options{
		Ctx:                context.Background(),
		MaxPathLength:      Unbounded,
		Logger:             logrus.StandardLogger(),
		AssumeNoDuplicates: false,
	}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxPathLength bounds the number of states on a returned path.
//
//	n >= 1: paths hold at most n states
//	n == 0: only the start state is tested; the graph is never expanded
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxPathLength(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPathLength cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPathLength = n
	}
}

// WithLogger sets the logger used for completion diagnostics. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithAssumeNoDuplicates tells the backtracking searches that no path can
// revisit a state (e.g. combinations with strictly increasing indices), so
// the O(depth) current-path check is skipped.
func WithAssumeNoDuplicates() Option {
	return func(o *Options) {
		o.AssumeNoDuplicates = true
	}
}

// Apply builds Options from DefaultOptions and opts, returning the first
// recorded option error.
func Apply(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// Admissible reports whether a non-root node of the given length may be
// tested. Roots are always tested.
func (o Options) Admissible(length int) bool {
	return length <= o.MaxPathLength
}

// Expandable reports whether a node of the given length may be expanded.
func (o Options) Expandable(length int) bool {
	return length < o.MaxPathLength
}

// Cancelled returns the context error once Ctx is done, nil otherwise.
func (o Options) Cancelled() error {
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
		return nil
	}
}

// LogDone emits the completion entry of a search.
func (o Options) LogDone(algorithm string, expanded int, length int) {
	fields := logrus.Fields{
		"algorithm": algorithm,
		"found":     length > 0,
		"expanded":  expanded,
	}
	if length > 0 {
		fields["length"] = length
	}
	o.Logger.WithFields(fields).Debug("search finished")
}
