// Package graph: chordal-completion and clique primitives.
//
// This file implements the three graph-theoretic operations the junction-tree
// pipeline is built on: Triangulate (min-fill vertex elimination),
// MaximalCliques (Bron–Kerbosch with pivoting), and IsChordal
// (maximum-cardinality-search perfect-elimination test).
//
// All three work on a private snapshot of the adjacency structure, so they
// never observe a concurrent mutation mid-run, and all tie-breaking is
// lexicographic on vertex IDs for deterministic output.

package graph

import "sort"

// Triangulate returns a chordal completion of the graph: a new graph on the
// same vertex set whose edge set is a superset of the receiver's and in which
// every cycle of length >= 4 has a chord.
//
// The heuristic is min-fill vertex elimination: repeatedly eliminate the
// vertex whose elimination adds the fewest fill-in edges (ties broken by
// lexicographic vertex ID), connecting its remaining neighbors pairwise.
// A chordal input gains no edges, since a graph is chordal iff it always has
// a simplicial vertex (zero fill-in).
//
// Complexity: O(V^2 * D^2) where D is the maximum degree during elimination.
func (g *Graph) Triangulate() *Graph {
	g.mu.RLock()
	// Working adjacency snapshot, destroyed by elimination.
	work := make(map[string]map[string]struct{}, len(g.adj))
	for u, nbrs := range g.adj {
		work[u] = make(map[string]struct{}, len(nbrs))
		for v := range nbrs {
			work[u][v] = struct{}{}
		}
	}
	g.mu.RUnlock()

	// Result starts as a copy of the original; fill edges are added to it.
	out := g.Clone()

	remaining := sortedKeys(work)
	for len(remaining) > 0 {
		// 1. Pick the vertex with minimum fill-in among remaining vertices.
		best, bestFill := "", -1
		for _, v := range remaining {
			f := fillIn(work, v)
			if bestFill == -1 || f < bestFill {
				best, bestFill = v, f
			}
			if f == 0 {
				// A simplicial vertex cannot be beaten; remaining candidates
				// are visited in sorted order, so the choice stays stable.
				break
			}
		}

		// 2. Connect the neighbors of the chosen vertex pairwise, recording
		//    each fill edge in both the working graph and the result.
		nbrs := sortedKeys(work[best])
		for i := 0; i < len(nbrs); i++ {
			for j := i + 1; j < len(nbrs); j++ {
				if _, ok := work[nbrs[i]][nbrs[j]]; !ok {
					work[nbrs[i]][nbrs[j]] = struct{}{}
					work[nbrs[j]][nbrs[i]] = struct{}{}
					_ = out.AddEdge(nbrs[i], nbrs[j])
				}
			}
		}

		// 3. Eliminate the vertex from the working graph.
		for _, n := range nbrs {
			delete(work[n], best)
		}
		delete(work, best)
		remaining = removeString(remaining, best)
	}

	return out
}

// fillIn counts the neighbor pairs of v that are not adjacent.
func fillIn(adj map[string]map[string]struct{}, v string) int {
	nbrs := make([]string, 0, len(adj[v]))
	for n := range adj[v] {
		nbrs = append(nbrs, n)
	}
	count := 0
	for i := 0; i < len(nbrs); i++ {
		for j := i + 1; j < len(nbrs); j++ {
			if _, ok := adj[nbrs[i]][nbrs[j]]; !ok {
				count++
			}
		}
	}

	return count
}

// removeString deletes the first occurrence of s from xs, preserving order.
func removeString(xs []string, s string) []string {
	for i, x := range xs {
		if x == s {
			return append(xs[:i], xs[i+1:]...)
		}
	}

	return xs
}

// MaximalCliques enumerates all maximal cliques of the graph using
// Bron–Kerbosch with pivoting. Each clique is returned sorted
// lexicographically, and the clique list itself is sorted, so output is
// deterministic for a given graph content.
//
// Complexity: O(3^(V/3)) worst case (Moon–Moser bound); far cheaper on the
// chordal graphs this package produces, which have at most V maximal cliques.
func (g *Graph) MaximalCliques() [][]string {
	g.mu.RLock()
	// Deep adjacency snapshot: the recursion below runs unlocked.
	adj := make(map[string]map[string]int64, len(g.adj))
	for u, nbrs := range g.adj {
		adj[u] = make(map[string]int64, len(nbrs))
		for v, w := range nbrs {
			adj[u][v] = w
		}
	}
	vertices := sortedKeys(g.adj)
	g.mu.RUnlock()

	if len(vertices) == 0 {
		return nil
	}

	p := make(map[string]struct{}, len(vertices))
	for _, v := range vertices {
		p[v] = struct{}{}
	}

	var cliques [][]string
	bronKerbosch(adj, nil, p, make(map[string]struct{}), &cliques)

	for _, c := range cliques {
		sort.Strings(c)
	}
	sort.Slice(cliques, func(i, j int) bool {
		return lessTuple(cliques[i], cliques[j])
	})

	return cliques
}

// bronKerbosch extends clique r using candidates p and excluded x,
// appending every maximal clique found to out.
func bronKerbosch(adj map[string]map[string]int64, r []string, p, x map[string]struct{}, out *[][]string) {
	if len(p) == 0 && len(x) == 0 {
		clique := make([]string, len(r))
		copy(clique, r)
		*out = append(*out, clique)

		return
	}

	// Pivot: vertex of p ∪ x with the most neighbors in p, shrinking the
	// candidate set as much as possible.
	pivot, best := "", -1
	for _, set := range []map[string]struct{}{p, x} {
		for u := range set {
			n := 0
			for v := range p {
				if _, ok := adj[u][v]; ok {
					n++
				}
			}
			if n > best {
				pivot, best = u, n
			}
		}
	}

	// Candidates outside the pivot's neighborhood, in sorted order for
	// deterministic recursion.
	var candidates []string
	for v := range p {
		if _, ok := adj[pivot][v]; !ok {
			candidates = append(candidates, v)
		}
	}
	sort.Strings(candidates)

	for _, v := range candidates {
		np := make(map[string]struct{})
		for u := range p {
			if _, ok := adj[v][u]; ok {
				np[u] = struct{}{}
			}
		}
		nx := make(map[string]struct{})
		for u := range x {
			if _, ok := adj[v][u]; ok {
				nx[u] = struct{}{}
			}
		}
		bronKerbosch(adj, append(r, v), np, nx, out)
		delete(p, v)
		x[v] = struct{}{}
	}
}

// lessTuple orders string slices lexicographically, shorter first on ties.
func lessTuple(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

// IsChordal reports whether every cycle of length >= 4 has a chord.
//
// Uses maximum cardinality search: vertices are numbered by repeatedly
// picking an unnumbered vertex with the most numbered neighbors; the graph
// is chordal iff the reverse numbering is a perfect elimination ordering,
// which holds iff for every vertex v, the earlier-numbered neighbors of v
// minus its latest such neighbor u are all adjacent to u (Tarjan–Yannakakis).
//
// Complexity: O(V^2 + V*E) with the simple selection loop used here.
func (g *Graph) IsChordal() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.adj)
	if n <= 3 {
		return true
	}

	// 1. Maximum cardinality search numbering.
	order := make([]string, 0, n)          // order[i] = i-th numbered vertex
	number := make(map[string]int, n)      // vertex → its MCS number
	weight := make(map[string]int, n)      // numbered-neighbor count
	unnumbered := sortedKeys(g.adj)        // sorted for deterministic ties
	for len(unnumbered) > 0 {
		best, bestW := "", -1
		for _, v := range unnumbered {
			if weight[v] > bestW {
				best, bestW = v, weight[v]
			}
		}
		number[best] = len(order)
		order = append(order, best)
		for u := range g.adj[best] {
			if _, done := number[u]; !done {
				weight[u]++
			}
		}
		unnumbered = removeString(unnumbered, best)
	}

	// 2. Perfect elimination check on the reverse order.
	for _, v := range order {
		// Earlier-numbered neighbors of v and the latest among them.
		parent, parentNum := "", -1
		var earlier []string
		for u := range g.adj[v] {
			if number[u] < number[v] {
				earlier = append(earlier, u)
				if number[u] > parentNum {
					parent, parentNum = u, number[u]
				}
			}
		}
		for _, u := range earlier {
			if u == parent {
				continue
			}
			if _, ok := g.adj[parent][u]; !ok {
				return false
			}
		}
	}

	return true
}
