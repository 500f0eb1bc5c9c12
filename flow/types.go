package flow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrInvalidEndpoint is the root of every missing source/sink failure.
var ErrInvalidEndpoint = errors.New("flow: invalid endpoint")

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = fmt.Errorf("%w: source vertex not found", ErrInvalidEndpoint)

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = fmt.Errorf("%w: sink vertex not found", ErrInvalidEndpoint)

// ErrNegativeCapacity is wrapped by EdgeError.
var ErrNegativeCapacity = errors.New("flow: negative capacity")

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("flow: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("flow: invalid option supplied")

	// ErrNotSaturated is returned by MinCut while augmenting paths remain.
	ErrNotSaturated = errors.New("flow: engine not saturated")
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %g", e.From, e.To, e.Cap)
}

// Unwrap lets errors.Is match ErrNegativeCapacity.
func (e EdgeError) Unwrap() error { return ErrNegativeCapacity }

// Arc is one residual edge of an augmenting path.
type Arc struct {
	From, To string
}

func (a Arc) String() string {
	return "(" + a.From + ", " + a.To + ")"
}

// StepRecord is the immutable outcome of one augmentation.
//   - Index:      1-based ordinal of the augmentation within its engine.
//   - Path:       residual arcs from source to sink, in order.
//   - Bottleneck: minimum residual capacity on Path before the update.
//   - TotalFlow:  cumulative flow after applying Bottleneck.
type StepRecord struct {
	Index      int
	Path       []Arc
	Bottleneck float64
	TotalFlow  float64
}

// Vertices returns the vertex sequence source, ..., sink of the path.
func (r StepRecord) Vertices() []string {
	if len(r.Path) == 0 {
		return nil
	}
	out := make([]string, 0, len(r.Path)+1)
	out = append(out, r.Path[0].From)
	for _, a := range r.Path {
		out = append(out, a.To)
	}

	return out
}

// PathString renders the path as "[(S, A) (A, T)]".
func (r StepRecord) PathString() string {
	parts := make([]string, len(r.Path))
	for i, a := range r.Path {
		parts[i] = a.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// State is the lifecycle phase of an Engine.
type State int

const (
	// StateInitialized: residual freshly built, no step taken.
	StateInitialized State = iota
	// StateAugmenting: at least one augmentation applied.
	StateAugmenting
	// StateSaturated: no augmenting path remains; terminal.
	StateSaturated
)

func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateAugmenting:
		return "augmenting"
	case StateSaturated:
		return "saturated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Option configures an Engine via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by the constructor.
type Option func(*Options)

// Options holds engine parameters and callbacks.
//   - Epsilon:  residual capacities ≤ Epsilon are not traversable (default 0,
//     i.e. strictly positive capacity is required).
//   - Logger:   receives a Debug entry per augmentation (default logrus.StandardLogger()).
//   - OnStep:   called with every StepRecord right after it is applied.
//   - MaxSteps: if > 0, Run stops after this many augmentations per call.
type Options struct {
	Epsilon  float64
	Logger   logrus.FieldLogger
	OnStep   func(StepRecord)
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with zero epsilon, the standard logrus
// logger, a no-op OnStep hook and no step bound.
func DefaultOptions() Options {
	return Options{
		Epsilon:  0,
		Logger:   logrus.StandardLogger(),
		OnStep:   func(StepRecord) {},
		MaxSteps: 0,
	}
}

// WithEpsilon treats residual capacities ≤ eps as exhausted. Useful for real
// capacities where subtraction leaves rounding residue.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			o.err = fmt.Errorf("%w: Epsilon cannot be negative (%g)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithLogger sets the logger used for per-step debug entries.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnStep registers a callback invoked after each augmentation.
func WithOnStep(fn func(StepRecord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithMaxSteps bounds the number of augmentations a single Run call performs.
//
//	n > 0: stop Run after n steps
//	n == 0: no bound
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
