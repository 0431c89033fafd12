// Package mst provides Kruskal's minimum spanning tree over a weighted
// undirected graph.Graph, used by the junction-tree builder to extract a
// clique tree from the negatively-weighted complete clique graph.
package mst

import (
	"errors"
	"sort"

	"github.com/abit2/pgmpy/graph"
)

// ErrNilGraph indicates that a nil *graph.Graph was passed in.
var ErrNilGraph = errors.New("mst: graph is nil")

// ErrDisconnected indicates that the graph has no vertices or is not fully
// connected, so no spanning tree covering all vertices exists.
var ErrDisconnected = errors.New("mst: graph is disconnected")

// Kruskal computes a minimum spanning tree of the given undirected weighted
// graph using a disjoint-set (union-find) structure with path compression
// and union by rank. Returns the tree edges, their total weight, and an
// error.
//
// Determinism: graph.Edges() returns edges sorted by endpoints; a stable
// sort by weight then breaks weight ties by that canonical edge order.
//
// Error conditions:
//   - ErrNilGraph      : graph is nil.
//   - ErrDisconnected  : |V| == 0, or |V| > 1 and no spanning tree exists.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(g *graph.Graph) ([]graph.Edge, int64, error) {
	// 1. Validate input.
	if g == nil {
		return nil, 0, ErrNilGraph
	}

	// 2. Retrieve vertex IDs in sorted order for determinism.
	vertices := g.Vertices()
	if len(vertices) == 0 {
		// No vertices: by convention a disconnected graph.
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		// A single vertex spans itself with no edges.
		return []graph.Edge{}, 0, nil
	}

	// 3. Collect and sort edges by ascending weight; sort.SliceStable keeps
	//    the canonical (U,V) order on equal weights.
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Initialize the disjoint-set forest: parent[v] = v, rank[v] = 0.
	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
		rank[v] = 0
	}

	// Iterative find with path compression.
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank.
	union := func(u, v string) {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	// 5. Greedily merge components over the sorted edge list.
	var (
		tree        []graph.Edge
		totalWeight int64
		numVerts    = len(vertices)
	)
	for _, e := range edges {
		if find(e.U) != find(e.V) {
			union(e.U, e.V)
			tree = append(tree, e)
			totalWeight += e.Weight
			if len(tree) == numVerts-1 {
				break
			}
		}
	}

	// 6. Fewer than |V|-1 edges means the graph was disconnected.
	if len(tree) < numVerts-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, totalWeight, nil
}
