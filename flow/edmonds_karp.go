package flow

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/flowstep/core"
)

// Engine drives Edmonds–Karp one augmenting path at a time.
//
// It owns its residual network exclusively; Step mutates it in place without
// synchronization, so an Engine must not be used from several goroutines at once.
type Engine struct {
	residual *Residual
	source   string
	sink     string
	total    float64
	steps    int
	state    State
	opts     Options
	log      logrus.FieldLogger
}

// NewEdmondsKarp builds the residual network of g and returns an engine in
// StateInitialized with zero total flow.
//
// Errors: ErrGraphNil, ErrSourceNotFound, ErrSinkNotFound, EdgeError,
// ErrOptionViolation. On error no engine and no partial residual is returned.
func NewEdmondsKarp(g *core.Graph, source, sink string, opts ...Option) (*Engine, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	r, err := BuildResidual(g, source, sink)
	if err != nil {
		return nil, err
	}

	return &Engine{
		residual: r,
		source:   source,
		sink:     sink,
		state:    StateInitialized,
		opts:     o,
		log:      o.Logger.WithFields(logrus.Fields{"source": source, "sink": sink}),
	}, nil
}

// Step performs at most one augmentation.
//
// Steps:
//  1. Breadth-first search from source over arcs with capacity > Epsilon,
//     stopping as soon as sink is discovered.
//  2. No sink → engine becomes Saturated, returns (StepRecord{}, false).
//  3. Bottleneck = min capacity along the path, read before the update.
//  4. Every arc u→v loses the bottleneck and its reverse v→u gains it.
//  5. Total flow grows by the bottleneck; the record is returned.
//
// Once Saturated, Step returns false without searching.
// Complexity: O(V + E)
func (e *Engine) Step() (StepRecord, bool) {
	if e.state == StateSaturated {
		return StepRecord{}, false
	}

	// 1) Shortest augmenting path
	path := e.shortestAugmentingPath()
	// 2) Termination
	if len(path) == 0 {
		e.state = StateSaturated
		e.log.WithField("total_flow", e.total).Debug("no augmenting path, flow saturated")

		return StepRecord{}, false
	}

	// 3) Bottleneck on the pre-update residual
	bottle := e.residual.bottleneck(path)
	// 4) Residual update
	e.residual.augment(path, bottle)
	// 5) Accumulate
	e.total += bottle
	e.steps++
	e.state = StateAugmenting

	rec := StepRecord{
		Index:      e.steps,
		Path:       path,
		Bottleneck: bottle,
		TotalFlow:  e.total,
	}
	e.log.WithFields(logrus.Fields{
		"step":       rec.Index,
		"path":       rec.PathString(),
		"bottleneck": bottle,
		"total_flow": e.total,
	}).Debug("augmenting path applied")
	e.opts.OnStep(rec)

	return rec, true
}

// Run repeats Step until no augmenting path remains (or MaxSteps is hit)
// and returns every record produced, in order. The result is empty, not nil,
// when the engine is already saturated.
func (e *Engine) Run() []StepRecord {
	steps, _ := e.RunContext(context.Background())

	return steps
}

// RunContext is Run with a cancellation check before each step. A step in
// progress is never interrupted; on cancellation the records produced so far
// are returned together with ctx.Err().
func (e *Engine) RunContext(ctx context.Context) ([]StepRecord, error) {
	steps := make([]StepRecord, 0)
	for e.opts.MaxSteps == 0 || len(steps) < e.opts.MaxSteps {
		if err := ctx.Err(); err != nil {
			return steps, err
		}
		rec, ok := e.Step()
		if !ok {
			break
		}
		steps = append(steps, rec)
	}

	return steps, nil
}

// TotalFlow returns the flow pushed from source to sink so far.
func (e *Engine) TotalFlow() float64 { return e.total }

// State returns the current lifecycle phase.
func (e *Engine) State() State { return e.state }

// Saturated reports whether Step has observed that no augmenting path remains.
func (e *Engine) Saturated() bool { return e.state == StateSaturated }

// Steps returns the number of augmentations applied.
func (e *Engine) Steps() int { return e.steps }

// Source returns the source vertex ID.
func (e *Engine) Source() string { return e.source }

// Sink returns the sink vertex ID.
func (e *Engine) Sink() string { return e.sink }

// Residual returns a snapshot of the current residual network.
func (e *Engine) Residual() *Residual { return e.residual.Clone() }

// shortestAugmentingPath returns the fewest-arc source→sink path over arcs
// with capacity > Epsilon, or nil. source == sink yields nil: a zero-length
// path never augments.
func (e *Engine) shortestAugmentingPath() []Arc {
	r, eps := e.residual, e.opts.Epsilon
	if e.source == e.sink {
		return nil
	}

	// parent[v] = vertex v was first discovered from
	parent := make(map[string]string, len(r.vertices))
	visited := make(map[string]bool, len(r.vertices))
	visited[e.source] = true

	queue := []string{e.source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, a := range r.out[r.index[u]] {
			if a.capacity <= eps || visited[a.to] {
				continue
			}
			visited[a.to] = true
			parent[a.to] = u
			if a.to == e.sink {
				return reconstructPath(parent, e.source, e.sink)
			}
			queue = append(queue, a.to)
		}
	}

	return nil
}

// reconstructPath walks parent links back from sink and reverses them.
func reconstructPath(parent map[string]string, source, sink string) []Arc {
	var path []Arc
	for cur := sink; cur != source; {
		prev := parent[cur]
		path = append(path, Arc{From: prev, To: cur})
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// EdmondsKarp computes the maximum flow from source→sink in one call.
//
// It returns:
//   - maxFlow:  total flow value
//   - steps:    every augmentation, in order
//   - residual: residual network after the last step
//   - err:      ErrGraphNil, ErrSourceNotFound, ErrSinkNotFound, EdgeError,
//     ErrOptionViolation, or ctx.Err() (checked before every step).
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(
	ctx context.Context,
	g *core.Graph,
	source, sink string,
	opts ...Option,
) (maxFlow float64, steps []StepRecord, residual *Residual, err error) {
	e, err := NewEdmondsKarp(g, source, sink, opts...)
	if err != nil {
		return 0, nil, nil, err
	}
	steps, err = e.RunContext(ctx)
	if err != nil {
		return e.total, steps, nil, err
	}

	return e.total, steps, e.residual, nil
}
