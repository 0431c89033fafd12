// Package model: junction-tree construction.

package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abit2/pgmpy/factor"
	"github.com/abit2/pgmpy/graph"
	"github.com/abit2/pgmpy/mst"
)

// cliqueKeySep joins sorted clique members into a tree-node key. Variable
// IDs containing the separator would collide; keep IDs comma-free.
const cliqueKeySep = ","

// CliqueKey returns the canonical key of a clique: its members sorted and
// joined with a comma. The same members in any order yield the same key.
func CliqueKey(clique []string) string {
	sorted := append([]string(nil), clique...)
	sort.Strings(sorted)

	return strings.Join(sorted, cliqueKeySep)
}

// JunctionTree is a clique tree over a Markov network: nodes are the maximal
// cliques of the triangulated network graph, edges form a spanning tree
// chosen to maximize separator overlap, and each clique carries the global
// joint marginalized onto its variables. Built by ToJunctionTree; satisfies
// the running intersection property by construction.
type JunctionTree struct {
	cliques    map[string][]string // key → sorted member tuple
	keys       []string            // sorted keys
	edges      [][2]string         // tree edges as key pairs
	potentials map[string]*factor.Factor
}

// ToJunctionTree builds the junction tree of the model.
//
// Pipeline:
//  1. Triangulate the network graph to chordality.
//  2. Enumerate the maximal cliques of the chordal graph.
//  3. Build the complete clique graph: every clique pair (A, B) is weighted
//     by -|A∩B|, the negated sepset size, so that a minimum spanning tree
//     maximizes the total separator overlap — the clique-tree criterion
//     that guarantees the running intersection property over a chordal
//     graph.
//  4. Extract the spanning tree with Kruskal.
//  5. Multiply all registered potentials into the global joint, then attach
//     to each clique the joint marginalized onto that clique's variables.
//
// Error conditions:
//   - ErrNoFactors               : the model has no registered potentials.
//   - ErrIncompleteFactorization : the joint's scope misses a model variable.
//   - factor errors from Product : shared variables with unequal cardinality.
//
// Complexity: dominated by triangulation and clique enumeration, worst-case
// exponential in the model's treewidth; the remainder is O(C^2·S + J) for C
// cliques of max size S and a joint table of size J.
func (m *MarkovModel) ToJunctionTree() (*JunctionTree, error) {
	// 1. The factor list is consumed in step 5; fail fast when empty.
	if len(m.factors) == 0 {
		return nil, ErrNoFactors
	}

	// 2. Chordal completion of the network graph.
	triangulated := m.g.Triangulate()

	// 3. Maximal cliques of the chordal graph, each a sorted tuple.
	cliques := triangulated.MaximalCliques()

	jt := &JunctionTree{
		cliques:    make(map[string][]string, len(cliques)),
		keys:       make([]string, 0, len(cliques)),
		potentials: make(map[string]*factor.Factor, len(cliques)),
	}
	for _, c := range cliques {
		key := CliqueKey(c)
		jt.cliques[key] = c
		jt.keys = append(jt.keys, key)
	}
	sort.Strings(jt.keys)

	// 4. Complete clique graph weighted by negated sepset size, so the
	//    minimum spanning tree below maximizes total separator overlap.
	cliqueGraph := graph.New()
	for _, key := range jt.keys {
		if err := cliqueGraph.AddVertex(key); err != nil {
			return nil, err
		}
	}
	for i := 0; i < len(jt.keys); i++ {
		for j := i + 1; j < len(jt.keys); j++ {
			w := -int64(sepsetSize(jt.cliques[jt.keys[i]], jt.cliques[jt.keys[j]]))
			if err := cliqueGraph.AddWeightedEdge(jt.keys[i], jt.keys[j], w); err != nil {
				return nil, err
			}
		}
	}

	// 5. Spanning tree over the clique graph. Weight ties break by the
	//    spanning-tree algorithm's stable edge order; any such tree is a
	//    valid junction tree of the chordal graph.
	treeEdges, _, err := mst.Kruskal(cliqueGraph)
	if err != nil {
		return nil, err
	}
	for _, e := range treeEdges {
		jt.edges = append(jt.edges, [2]string{e.U, e.V})
	}

	// 6. Global joint: left-to-right product of all registered factors.
	joint := m.factors[0]
	for _, f := range m.factors[1:] {
		joint, err = joint.Product(f)
		if err != nil {
			return nil, err
		}
	}
	allVars := m.Nodes()
	if !coversAll(joint, allVars) {
		return nil, ErrIncompleteFactorization
	}

	// 7. Attach to each clique the joint marginalized onto its members.
	for _, key := range jt.keys {
		member := make(map[string]struct{}, len(jt.cliques[key]))
		for _, v := range jt.cliques[key] {
			member[v] = struct{}{}
		}
		var outside []string
		for _, v := range allVars {
			if _, in := member[v]; !in {
				outside = append(outside, v)
			}
		}
		marginal, err := joint.Marginalize(outside...)
		if err != nil {
			return nil, err
		}
		jt.potentials[key] = marginal
	}

	return jt, nil
}

// sepsetSize counts the variables shared by two cliques.
func sepsetSize(a, b []string) int {
	inB := make(map[string]struct{}, len(b))
	for _, v := range b {
		inB[v] = struct{}{}
	}
	n := 0
	for _, v := range a {
		if _, ok := inB[v]; ok {
			n++
		}
	}

	return n
}

// coversAll reports whether the factor's scope contains every variable.
func coversAll(f *factor.Factor, variables []string) bool {
	for _, v := range variables {
		if !f.InScope(v) {
			return false
		}
	}

	return true
}

// Cliques returns the clique tuples in sorted key order; each tuple is a
// fresh sorted copy.
func (jt *JunctionTree) Cliques() [][]string {
	out := make([][]string, 0, len(jt.keys))
	for _, key := range jt.keys {
		c := make([]string, len(jt.cliques[key]))
		copy(c, jt.cliques[key])
		out = append(out, c)
	}

	return out
}

// CliqueCount returns the number of tree nodes.
func (jt *JunctionTree) CliqueCount() int {
	return len(jt.keys)
}

// Edges returns the tree edges as pairs of clique keys.
func (jt *JunctionTree) Edges() [][2]string {
	out := make([][2]string, len(jt.edges))
	copy(out, jt.edges)

	return out
}

// EdgeCount returns the number of tree edges, always CliqueCount()-1 for a
// successfully built tree.
func (jt *JunctionTree) EdgeCount() int {
	return len(jt.edges)
}

// Potential returns the clique's attached potential: the global joint
// marginalized onto the clique's variables. The clique may be given in any
// member order. Returns ErrCliqueNotFound for an unknown clique.
func (jt *JunctionTree) Potential(clique []string) (*factor.Factor, error) {
	f, ok := jt.potentials[CliqueKey(clique)]
	if !ok {
		return nil, fmt.Errorf("%q: %w", CliqueKey(clique), ErrCliqueNotFound)
	}

	return f, nil
}
