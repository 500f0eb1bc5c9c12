// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Vertex and edge lifecycle plus read-only queries.
// Determinism:
//   - Vertices() and Edges() return insertion order.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "math"

// AddVertex inserts a vertex with the given ID. Adding an existing ID is a no-op.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertexIndex[id]

	return ok
}

// AddEdge inserts the directed edge from→to with the given capacity,
// creating missing endpoints.
//
// Steps:
//  1. Validate IDs, loop policy and capacity.
//  2. Reject a second edge for the same ordered pair.
//  3. Register endpoints, then append the edge and index it.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, capacity float64) error {
	// 1) Input validation
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if err := g.checkCapacity(capacity); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Simple graph: one edge per ordered pair
	if _, ok := g.edgeIndex[from][to]; ok {
		return ErrMultiEdgeNotAllowed
	}

	// 3) Insert
	g.addVertexLocked(from)
	g.addVertexLocked(to)
	if g.edgeIndex[from] == nil {
		g.edgeIndex[from] = make(map[string]int)
	}
	g.edgeIndex[from][to] = len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Capacity: capacity})

	return nil
}

// SetCapacity replaces the capacity of the existing edge from→to.
func (g *Graph) SetCapacity(from, to string, capacity float64) error {
	if err := g.checkCapacity(capacity); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	i, ok := g.edgeIndex[from][to]
	if !ok {
		return ErrEdgeNotFound
	}
	g.edges[i].Capacity = capacity

	return nil
}

// RemoveEdge deletes the edge from→to. Endpoints stay in the graph.
// Complexity: O(E) because later edges are re-indexed to keep insertion order.
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	i, ok := g.edgeIndex[from][to]
	if !ok {
		return ErrEdgeNotFound
	}
	g.edges = append(g.edges[:i], g.edges[i+1:]...)
	delete(g.edgeIndex[from], to)
	if len(g.edgeIndex[from]) == 0 {
		delete(g.edgeIndex, from)
	}
	for j := i; j < len(g.edges); j++ {
		e := g.edges[j]
		g.edgeIndex[e.From][e.To] = j
	}

	return nil
}

// HasEdge reports whether the directed edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edgeIndex[from][to]

	return ok
}

// Capacity returns the capacity of from→to, or ErrEdgeNotFound.
func (g *Graph) Capacity(from, to string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.edgeIndex[from][to]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return g.edges[i].Capacity, nil
}

// Vertices returns a copy of all vertex IDs in insertion order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Clone returns a deep copy that shares no storage with g.
// Complexity: O(V+E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		allowLoops:    g.allowLoops,
		allowNegative: g.allowNegative,
		vertices:      make([]string, len(g.vertices)),
		vertexIndex:   make(map[string]int, len(g.vertexIndex)),
		edges:         make([]Edge, len(g.edges)),
		edgeIndex:     make(map[string]map[string]int, len(g.edgeIndex)),
	}
	copy(c.vertices, g.vertices)
	for id, i := range g.vertexIndex {
		c.vertexIndex[id] = i
	}
	copy(c.edges, g.edges)
	for from, inner := range g.edgeIndex {
		m := make(map[string]int, len(inner))
		for to, i := range inner {
			m[to] = i
		}
		c.edgeIndex[from] = m
	}

	return c
}

// addVertexLocked registers id if absent. Caller holds mu.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertexIndex[id]; ok {
		return
	}
	g.vertexIndex[id] = len(g.vertices)
	g.vertices = append(g.vertices, id)
}

// checkCapacity enforces the capacity policy; NaN and ±Inf are never valid.
func (g *Graph) checkCapacity(c float64) error {
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return ErrBadCapacity
	}
	if c < 0 && !g.allowNegative {
		return ErrBadCapacity
	}

	return nil
}
