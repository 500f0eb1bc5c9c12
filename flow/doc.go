// Package flow implements maximum flow by the Edmonds–Karp method as an
// observable, stepwise process over a capacitated *core.Graph.
//
// Unlike a one-shot max-flow routine, the Engine exposes its progress one
// augmenting path at a time, so a caller (a UI, a test harness, a tracer) can
// drive it step by step or run it to completion and replay the records.
//
// # Components
//
//   - Residual Graph Builder
//
//   - BuildResidual(g, source, sink) validates the endpoints and capacities.
//
//   - Every declared edge u→v gets residual capacity c; v→u is created with
//     capacity 0 unless it already exists. Antiparallel edges keep their own
//     capacities, tracked per direction.
//
//   - Adjacency is an explicit ordered slice per vertex, so traversal order is
//     deterministic for a fixed input.
//
//   - Augmentation Engine
//
//   - Step(): breadth-first search for the fewest-arc path with positive
//     residual capacity, bottleneck, paired residual update, StepRecord.
//
//   - Run(): Step until no augmenting path remains.
//
//   - Time:   O(V · E²) overall, O(V + E) per step.
//
// # Lifecycle
//
//	Initialized ──Step()──▶ Augmenting ──Step()=false──▶ Saturated
//	     └─────────────Step()=false──────────────────────────┘
//
// Saturated is terminal: every later Step returns false and the total flow no
// longer changes. source == sink is saturated from the start.
//
// # API
//
//	e, err := flow.NewEdmondsKarp(g, "S", "T",
//	    flow.WithLogger(logger),
//	    flow.WithOnStep(func(r flow.StepRecord) { ... }),
//	)
//	rec, ok := e.Step()   // ok == false: no augmenting path
//	recs := e.Run()       // remaining steps, possibly empty
//	total := e.TotalFlow()
//	cut, err := e.MinCut() // after saturation
//
// One-shot helpers share the engine's builder:
//
//	maxFlow, steps, residual, err := flow.EdmondsKarp(ctx, g, "S", "T")
//	maxFlow, residual, err := flow.Dinic(ctx, g, "S", "T")
//
// # Errors
//
//	ErrSourceNotFound / ErrSinkNotFound - endpoint missing (both wrap ErrInvalidEndpoint).
//	EdgeError                           - negative capacity (wraps ErrNegativeCapacity).
//	ErrGraphNil                         - nil graph.
//	ErrOptionViolation                  - invalid Option.
//	ErrNotSaturated                     - MinCut before saturation.
//
// "No augmenting path" is not an error: Step reports it with ok == false.
//
// # Concurrency
//
// An Engine mutates its residual network in place without locking; callers
// must serialize access. Engines share no state with each other.
package flow
