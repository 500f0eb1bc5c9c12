package flow

import "github.com/katalvlaran/flowstep/core"

// Cut is an s-t cut read off a saturated residual network.
//   - SourceSide: vertices reachable from source over arcs with capacity > Epsilon.
//   - SinkSide:   every other vertex.
//   - Edges:      declared edges leaving SourceSide, with declared capacity.
//   - Capacity:   Σ Edges[i].Capacity; equals the max-flow value.
type Cut struct {
	SourceSide []string
	SinkSide   []string
	Edges      []core.Edge
	Capacity   float64
}

// MinCut returns the minimum cut once the engine is saturated, or
// ErrNotSaturated while augmenting paths may remain.
// Complexity: O(V + E)
func (e *Engine) MinCut() (Cut, error) {
	if e.state != StateSaturated {
		return Cut{}, ErrNotSaturated
	}
	r, eps := e.residual, e.opts.Epsilon

	reach := map[string]bool{e.source: true}
	queue := []string{e.source}
	for i := 0; i < len(queue); i++ {
		for _, a := range r.out[r.index[queue[i]]] {
			if a.capacity > eps && !reach[a.to] {
				reach[a.to] = true
				queue = append(queue, a.to)
			}
		}
	}

	var cut Cut
	for i, v := range r.vertices {
		if !reach[v] {
			cut.SinkSide = append(cut.SinkSide, v)
			continue
		}
		cut.SourceSide = append(cut.SourceSide, v)
		for _, a := range r.out[i] {
			if a.real && !reach[a.to] {
				cut.Edges = append(cut.Edges, core.Edge{From: v, To: a.to, Capacity: a.original})
				cut.Capacity += a.original
			}
		}
	}

	return cut, nil
}
