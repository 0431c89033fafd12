// Package graph provides the undirected simple graph underlying a Markov
// network, together with the chordal primitives needed for junction-tree
// construction: triangulation, maximal-clique enumeration, and a
// perfect-elimination chordality check.
//
// All read APIs return vertices and edges in sorted order, so every algorithm
// built on top of this package is deterministic for a given graph content.
// A single sync.RWMutex guards the adjacency maps; concurrent readers are
// safe, and mutation is an error only of the caller's making.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrSelfLoop       - edge with identical endpoints attempted.
package graph

import (
	"errors"
	"sort"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates that an empty string was used as a vertex ID.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrSelfLoop indicates an edge from a vertex to itself was attempted.
	// Markov networks are simple graphs; self-loops carry no information.
	ErrSelfLoop = errors.New("graph: self-loops not allowed")
)

// Edge is an undirected weighted edge in canonical orientation (U < V).
type Edge struct {
	// U is the lexicographically smaller endpoint.
	U string

	// V is the lexicographically larger endpoint.
	V string

	// Weight is the edge weight; zero for unweighted use.
	Weight int64
}

// Graph is an undirected simple graph with string vertex IDs and optional
// int64 edge weights. The zero value is not usable; construct with New.
type Graph struct {
	mu sync.RWMutex

	// adj[u][v] = weight of edge {u,v}; mirrored for both orientations.
	adj map[string]map[string]int64
}

// New creates an empty Graph.
// Complexity: O(1).
func New() *Graph {
	return &Graph{adj: make(map[string]map[string]int64)}
}

// AddVertex inserts a vertex with the given ID.
// Idempotent: inserting an existing vertex is a no-op.
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(id)

	return nil
}

// ensure creates the adjacency entry for id if absent. Caller holds mu.
func (g *Graph) ensure(id string) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]int64)
	}
}

// AddEdge inserts the undirected edge {u,v} with zero weight, auto-creating
// either endpoint if absent. Returns ErrSelfLoop when u == v and
// ErrEmptyVertexID when either ID is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string) error {
	return g.AddWeightedEdge(u, v, 0)
}

// AddWeightedEdge inserts the undirected edge {u,v} with the given weight,
// auto-creating either endpoint if absent. Re-inserting an existing edge
// overwrites its weight. Returns ErrSelfLoop when u == v.
// Complexity: O(1) amortized.
func (g *Graph) AddWeightedEdge(u, v string, weight int64) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return ErrSelfLoop
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(u)
	g.ensure(v)
	g.adj[u][v] = weight
	g.adj[v][u] = weight

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[id]

	return ok
}

// HasEdge reports whether the undirected edge {u,v} exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[u][v]

	return ok
}

// Weight returns the weight of edge {u,v}, or ErrVertexNotFound when the
// edge does not exist.
// Complexity: O(1).
func (g *Graph) Weight(u, v string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adj[u][v]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return w, nil
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.adj)
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// Neighbors returns the sorted neighbor IDs of the given vertex.
// Returns ErrVertexNotFound when the vertex does not exist.
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return sortedKeys(nbrs), nil
}

// Degree returns the number of neighbors of the given vertex.
// Returns ErrVertexNotFound when the vertex does not exist.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adj[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(nbrs), nil
}

// Edges returns every edge exactly once in canonical (U < V) orientation,
// sorted by (U, V).
// Complexity: O(V + E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var edges []Edge
	for u, nbrs := range g.adj {
		for v, w := range nbrs {
			if u < v {
				edges = append(edges, Edge{U: u, V: v, Weight: w})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}

		return edges[i].V < edges[j].V
	})

	return edges
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, nbrs := range g.adj {
		total += len(nbrs)
	}

	return total / 2
}

// Clone returns an independent deep copy of the graph.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := New()
	for u, nbrs := range g.adj {
		c.adj[u] = make(map[string]int64, len(nbrs))
		for v, w := range nbrs {
			c.adj[u][v] = w
		}
	}

	return c
}

// sortedKeys returns the keys of m in sorted order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
