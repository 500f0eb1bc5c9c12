// Package core provides the capacitated, directed input graph consumed by the
// flow engine.
//
// A Graph G = (V,E) is simple and directed:
//
//   - Vertices are opaque string IDs; no attributes beyond identity.
//   - Each ordered pair (u,v) carries at most one edge with a float64 capacity.
//   - Antiparallel edges u→v and v→u are two independent edges.
//   - Self-loops are rejected unless WithLoops() is given.
//   - Negative capacities are rejected unless WithNegativeCapacities() is given.
//
// Iteration is deterministic: Vertices() and Edges() return items in insertion
// order, which fixes the adjacency order seen by every downstream traversal.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithNegativeCapacities()
//	    Stores capacities below zero verbatim so that a consumer can report them.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                      // O(1)
//	HasVertex(id string) bool                       // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, capacity float64) error     // O(1), adds endpoints
//	SetCapacity(from, to string, capacity float64) error // O(1)
//	RemoveEdge(from, to string) error                    // O(E) reindex
//	HasEdge(from, to string) bool                        // O(1)
//	Capacity(from, to string) (float64, error)           // O(1)
//
//	// Query
//	Vertices() []string   // O(V), insertion order
//	Edges() []Edge        // O(E), insertion order
//	VertexCount() int     // O(1)
//	EdgeCount() int       // O(1)
//	Clone() *Graph        // O(V+E)
//
// All methods are safe for concurrent use; a single sync.RWMutex guards the
// vertex and edge catalogs.
package core
