package flow

import (
	"context"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/flowstep/core"
)

// Dinic computes the maximum flow from source to sink with Dinic’s algorithm
// (level graph + blocking flows) over the same residual network the stepwise
// engine uses. It serves as an independent check of Edmonds–Karp results.
//
// It returns:
//   - maxFlow  : the total flow value
//   - residual : the residual network after the last blocking flow
//   - err      : ErrGraphNil, ErrSourceNotFound, ErrSinkNotFound, EdgeError,
//     ErrOptionViolation, or ctx.Err()
//
// Only Epsilon and Logger of the supplied options are used.
//
// Steps:
//  1. Build the residual network via BuildResidual (O(V + E)).
//  2. Repeat until sink is unreachable:
//     a. Check for cancellation.
//     b. BFS to assign levels from source over arcs with capacity > Epsilon.
//     c. DFS pushes along level+1 arcs with a per-vertex current-arc index
//     until no more flow can be sent.
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E · √V) on unit-capacity networks.
//	Memory: O(V + E).
func Dinic(
	ctx context.Context,
	g *core.Graph,
	source, sink string,
	opts ...Option,
) (maxFlow float64, residual *Residual, err error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, nil, err
	}
	// 1) Residual network
	residual, err = BuildResidual(g, source, sink)
	if err != nil {
		return 0, nil, err
	}
	if source == sink {
		return 0, residual, nil
	}
	d := &dinicState{r: residual, sink: sink, eps: o.Epsilon}

	// 2) Phases
	for {
		// 2a) Cancellation check before BFS
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}
		// 2b) Level graph
		if !d.buildLevels(source) {
			break
		}
		// 2c) Blocking flow
		d.iter = make([]int, len(residual.vertices))
		for {
			if err = ctx.Err(); err != nil {
				return maxFlow, nil, err
			}
			pushed := d.push(residual.index[source], math.Inf(1))
			if pushed <= d.eps {
				break
			}
			maxFlow += pushed
			o.Logger.WithFields(logrus.Fields{"pushed": pushed, "total_flow": maxFlow}).Debug("dinic: blocking flow push")
		}
	}

	return maxFlow, residual, nil
}

// dinicState carries one run's level graph and current-arc pointers,
// both indexed by vertex position in the residual network.
type dinicState struct {
	r     *Residual
	sink  string
	eps   float64
	level []int
	iter  []int
}

// buildLevels assigns BFS distances from source; reports whether sink was reached.
func (d *dinicState) buildLevels(source string) bool {
	r := d.r
	d.level = make([]int, len(r.vertices))
	for i := range d.level {
		d.level[i] = -1
	}
	s := r.index[source]
	d.level[s] = 0
	queue := []int{s}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, a := range r.out[u] {
			v := r.index[a.to]
			if a.capacity > d.eps && d.level[v] < 0 {
				d.level[v] = d.level[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return d.level[r.index[d.sink]] >= 0
}

// push recursively sends up to available units from u toward sink along the
// level graph, updating both arc directions, and returns the amount sent.
func (d *dinicState) push(u int, available float64) float64 {
	r := d.r
	if r.vertices[u] == d.sink {
		return available
	}
	for ; d.iter[u] < len(r.out[u]); d.iter[u]++ {
		a := r.out[u][d.iter[u]]
		v := r.index[a.to]
		if a.capacity <= d.eps || d.level[v] != d.level[u]+1 {
			continue
		}
		send := math.Min(available, a.capacity)
		if pushed := d.push(v, send); pushed > 0 {
			a.capacity -= pushed
			r.lookup[a.to][r.vertices[u]].capacity += pushed

			return pushed
		}
	}

	return 0
}
