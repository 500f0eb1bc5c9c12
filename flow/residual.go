package flow

import (
	"github.com/katalvlaran/flowstep/core"
)

// residualArc is one direction of a vertex pair in the residual network.
// capacity is mutated by augmentations; original never changes.
type residualArc struct {
	to       string
	capacity float64
	original float64
	real     bool // declared by an input edge, not a synthesized reverse
}

// ResidualEdge is a read-only snapshot of one residual arc.
type ResidualEdge struct {
	From, To string
	Capacity float64 // remaining augmentable amount
	Original float64 // declared capacity, 0 for a synthesized reverse arc
	Real     bool    // true if the arc was declared in the input graph
}

// Residual is the residual network of a capacitated digraph.
//
// out[i] lists the arcs leaving vertices[i] in first-creation order, which
// fixes the breadth-first traversal order. lookup[u][v] points at the same
// arc for O(1) access. Both directions of a pair are tracked independently.
type Residual struct {
	vertices []string
	index    map[string]int
	out      [][]*residualArc
	lookup   map[string]map[string]*residualArc
}

// BuildResidual constructs the residual network of g for the given endpoints.
//
// Steps:
//  1. Validate g, source and sink (ErrGraphNil, ErrSourceNotFound, ErrSinkNotFound).
//  2. Register every vertex of g in insertion order.
//  3. For each edge (u,v,c) in insertion order:
//     a. c < 0 → EdgeError, nothing is returned.
//     b. self-loops are skipped.
//     c. arc u→v gets capacity c (replacing a zero reverse synthesized earlier).
//     d. arc v→u is created with capacity 0 unless it already exists.
//
// The input graph is not mutated.
// Complexity: O(V + E)
func BuildResidual(g *core.Graph, source, sink string) (*Residual, error) {
	// 1) Validate inputs
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return nil, ErrSinkNotFound
	}

	// 2) Vertices
	vertices := g.Vertices()
	r := &Residual{
		vertices: make([]string, 0, len(vertices)),
		index:    make(map[string]int, len(vertices)),
		out:      make([][]*residualArc, 0, len(vertices)),
		lookup:   make(map[string]map[string]*residualArc, len(vertices)),
	}
	for _, v := range vertices {
		r.addVertex(v)
	}

	// 3) Arcs
	for _, e := range g.Edges() {
		if e.Capacity < 0 {
			return nil, EdgeError{From: e.From, To: e.To, Cap: e.Capacity}
		}
		if e.From == e.To {
			continue
		}
		fwd := r.ensureArc(e.From, e.To)
		fwd.capacity = e.Capacity
		fwd.original = e.Capacity
		fwd.real = true
		r.ensureArc(e.To, e.From)
	}

	return r, nil
}

// Vertices returns all vertex IDs in insertion order.
func (r *Residual) Vertices() []string {
	out := make([]string, len(r.vertices))
	copy(out, r.vertices)

	return out
}

// HasVertex reports whether id is part of the network.
func (r *Residual) HasVertex(id string) bool {
	_, ok := r.index[id]

	return ok
}

// Neighbors returns the heads of all residual arcs leaving u, including
// exhausted ones, in traversal order.
func (r *Residual) Neighbors(u string) []string {
	i, ok := r.index[u]
	if !ok {
		return nil
	}
	out := make([]string, len(r.out[i]))
	for j, a := range r.out[i] {
		out[j] = a.to
	}

	return out
}

// Capacity returns the remaining capacity of u→v and whether the arc exists.
func (r *Residual) Capacity(u, v string) (float64, bool) {
	a, ok := r.lookup[u][v]
	if !ok {
		return 0, false
	}

	return a.capacity, true
}

// Original returns the declared capacity of u→v (0 for a reverse or missing arc).
func (r *Residual) Original(u, v string) float64 {
	if a, ok := r.lookup[u][v]; ok {
		return a.original
	}

	return 0
}

// Flow returns the net flow pushed u→v: original(u→v) − capacity(u→v).
// It is negative when flow was cancelled back through a reverse arc.
func (r *Residual) Flow(u, v string) float64 {
	a, ok := r.lookup[u][v]
	if !ok {
		return 0
	}

	return a.original - a.capacity
}

// NetOutflow returns Σ Flow(u,w) over the arcs leaving u.
// It is 0 for every vertex except source (+total) and sink (−total).
func (r *Residual) NetOutflow(u string) float64 {
	i, ok := r.index[u]
	if !ok {
		return 0
	}
	var sum float64
	for _, a := range r.out[i] {
		sum += a.original - a.capacity
	}

	return sum
}

// Arcs returns a snapshot of every residual arc, grouped by tail vertex in
// insertion order.
func (r *Residual) Arcs() []ResidualEdge {
	var out []ResidualEdge
	for i, arcs := range r.out {
		for _, a := range arcs {
			out = append(out, ResidualEdge{
				From:     r.vertices[i],
				To:       a.to,
				Capacity: a.capacity,
				Original: a.original,
				Real:     a.real,
			})
		}
	}

	return out
}

// Clone returns a deep copy sharing no arcs with r.
// Complexity: O(V + E)
func (r *Residual) Clone() *Residual {
	c := &Residual{
		vertices: make([]string, 0, len(r.vertices)),
		index:    make(map[string]int, len(r.index)),
		out:      make([][]*residualArc, 0, len(r.out)),
		lookup:   make(map[string]map[string]*residualArc, len(r.lookup)),
	}
	for _, v := range r.vertices {
		c.addVertex(v)
	}
	for i, arcs := range r.out {
		from := r.vertices[i]
		for _, a := range arcs {
			cp := *a
			c.out[i] = append(c.out[i], &cp)
			c.lookup[from][a.to] = &cp
		}
	}

	return c
}

// bottleneck is the minimum residual capacity along path.
func (r *Residual) bottleneck(path []Arc) float64 {
	m := r.lookup[path[0].From][path[0].To].capacity
	for _, p := range path[1:] {
		if c := r.lookup[p.From][p.To].capacity; c < m {
			m = c
		}
	}

	return m
}

// augment pushes f along path: capacity(u→v) -= f and capacity(v→u) += f
// for every arc, as a pair.
func (r *Residual) augment(path []Arc, f float64) {
	for _, p := range path {
		r.lookup[p.From][p.To].capacity -= f
		r.lookup[p.To][p.From].capacity += f
	}
}

func (r *Residual) addVertex(id string) {
	if _, ok := r.index[id]; ok {
		return
	}
	r.index[id] = len(r.vertices)
	r.vertices = append(r.vertices, id)
	r.out = append(r.out, nil)
	r.lookup[id] = make(map[string]*residualArc)
}

// ensureArc returns u→v, creating it with zero capacity when absent.
func (r *Residual) ensureArc(u, v string) *residualArc {
	if a, ok := r.lookup[u][v]; ok {
		return a
	}
	a := &residualArc{to: v}
	i := r.index[u]
	r.out[i] = append(r.out[i], a)
	r.lookup[u][v] = a

	return a
}
