// Package model: bipartite factor-graph construction.

package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abit2/pgmpy/factor"
	"github.com/abit2/pgmpy/graph"
)

// factorNodePrefix keeps synthetic factor-node IDs disjoint from variable
// IDs, which never start with "phi_" by convention of the naming scheme.
const factorNodePrefix = "phi_"

// FactorGraph is a bipartite graph with one node per model variable and one
// synthetic node per registered potential; edges connect each potential node
// to exactly its scope. It is a snapshot: mutating the source model after
// construction does not propagate.
type FactorGraph struct {
	g          *graph.Graph
	variables  map[string]struct{}
	potentials map[string]*factor.Factor
	order      []string // factor-node IDs in registration order
}

// ToFactorGraph converts the model into its factor graph.
//
// Each potential becomes a factor-node whose ID is "phi_" followed by the
// potential's sorted scope joined with "_"; when several potentials share an
// identical scope signature, the second and later ones get a "#<k>" suffix
// (k = occurrence index), keeping IDs deterministic and distinct.
//
// Error conditions:
//   - ErrNoFactors : the model has no registered potentials.
//
// Complexity: O(F·S log S + V) for F factors of max scope size S.
func (m *MarkovModel) ToFactorGraph() (*FactorGraph, error) {
	if len(m.factors) == 0 {
		return nil, ErrNoFactors
	}

	fg := &FactorGraph{
		g:          graph.New(),
		variables:  make(map[string]struct{}),
		potentials: make(map[string]*factor.Factor),
	}

	// 1. Variable side: every current model node.
	for _, v := range m.Nodes() {
		if err := fg.g.AddVertex(v); err != nil {
			return nil, err
		}
		fg.variables[v] = struct{}{}
	}

	// 2. Factor side: one node per potential, connected to its scope.
	seen := make(map[string]int)
	for _, f := range m.factors {
		scope := f.Scope()
		sorted := append([]string(nil), scope...)
		sort.Strings(sorted)

		id := factorNodePrefix + strings.Join(sorted, "_")
		sig := id
		if k := seen[sig]; k > 0 {
			id = fmt.Sprintf("%s#%d", id, k)
		}
		seen[sig]++

		for _, v := range scope {
			if err := fg.g.AddEdge(v, id); err != nil {
				return nil, err
			}
		}
		fg.potentials[id] = f
		fg.order = append(fg.order, id)
	}

	return fg, nil
}

// VariableNodes returns the variable-side node IDs in sorted order.
func (fg *FactorGraph) VariableNodes() []string {
	out := make([]string, 0, len(fg.variables))
	for v := range fg.variables {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// FactorNodes returns the factor-side node IDs in registration order.
func (fg *FactorGraph) FactorNodes() []string {
	out := make([]string, len(fg.order))
	copy(out, fg.order)

	return out
}

// IsVariableNode reports whether the ID names a variable-side node.
func (fg *FactorGraph) IsVariableNode(id string) bool {
	_, ok := fg.variables[id]

	return ok
}

// Potential returns the potential registered on the given factor-node.
// Returns ErrFactorNodeNotFound for an unknown ID.
func (fg *FactorGraph) Potential(factorNode string) (*factor.Factor, error) {
	f, ok := fg.potentials[factorNode]
	if !ok {
		return nil, fmt.Errorf("%q: %w", factorNode, ErrFactorNodeNotFound)
	}

	return f, nil
}

// Neighbors returns the sorted neighbor IDs of any node of the bipartite
// graph. For a factor-node this equals its potential's scope exactly.
func (fg *FactorGraph) Neighbors(id string) ([]string, error) {
	return fg.g.Neighbors(id)
}

// Nodes returns all node IDs, variables and factor-nodes alike, sorted.
func (fg *FactorGraph) Nodes() []string {
	return fg.g.Vertices()
}

// Edges returns every bipartite edge in canonical sorted order.
func (fg *FactorGraph) Edges() []graph.Edge {
	return fg.g.Edges()
}
