// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex/Edge/Graph declarations, sentinel errors, GraphOption and NewGraph.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadCapacity indicates a negative or non-finite capacity.
	ErrBadCapacity = errors.New("core: bad edge capacity")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge for the same ordered pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is a directed, capacitated connection From→To.
type Edge struct {
	// From is the tail vertex ID.
	From string

	// To is the head vertex ID.
	To string

	// Capacity is the maximum amount of flow the edge can carry.
	Capacity float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithNegativeCapacities stores negative capacities instead of rejecting them.
func WithNegativeCapacities() GraphOption {
	return func(g *Graph) { g.allowNegative = true }
}

// Graph is the in-memory capacitated digraph.
//
// vertexIndex/edgeIndex map IDs to positions in the insertion-ordered slices.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowLoops    bool
	allowNegative bool

	// Storage
	vertices    []string
	vertexIndex map[string]int
	edges       []Edge
	edgeIndex   map[string]map[string]int // from → to → position in edges
}

// NewGraph creates an empty Graph.
// By default loops and negative capacities are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertexIndex: make(map[string]int),
		edgeIndex:   make(map[string]map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
