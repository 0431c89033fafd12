// Package model: MarkovModel container and validation.

package model

import (
	"fmt"

	"github.com/abit2/pgmpy/factor"
	"github.com/abit2/pgmpy/graph"
)

// MarkovModel is an undirected graphical model: a simple graph over discrete
// random variables plus the potentials (factors) associated with subsets of
// them. Nodes and edges are added incrementally; factors are appended and
// never removed. Construct with NewMarkovModel.
type MarkovModel struct {
	g       *graph.Graph
	factors []*factor.Factor
}

// NewMarkovModel creates an empty Markov network.
func NewMarkovModel() *MarkovModel {
	return &MarkovModel{g: graph.New()}
}

// AddNode inserts a variable node. Idempotent for existing nodes.
// Returns graph.ErrEmptyVertexID for an empty ID.
func (m *MarkovModel) AddNode(id string) error {
	return m.g.AddVertex(id)
}

// AddNodesFrom inserts every given variable node, stopping at the first
// failure.
func (m *MarkovModel) AddNodesFrom(ids ...string) error {
	for _, id := range ids {
		if err := m.AddNode(id); err != nil {
			return err
		}
	}

	return nil
}

// AddEdge inserts the undirected edge {u,v}, auto-creating either endpoint
// if absent. Returns graph.ErrSelfLoop when u == v: a variable cannot
// neighbor itself, and there is no add-but-ignore mode.
func (m *MarkovModel) AddEdge(u, v string) error {
	return m.g.AddEdge(u, v)
}

// AddEdgesFrom inserts every given edge pair, stopping at the first failure.
func (m *MarkovModel) AddEdgesFrom(pairs ...[2]string) error {
	for _, p := range pairs {
		if err := m.AddEdge(p[0], p[1]); err != nil {
			return err
		}
	}

	return nil
}

// HasNode reports whether the variable is a node of the model.
func (m *MarkovModel) HasNode(id string) bool {
	return m.g.HasVertex(id)
}

// HasEdge reports whether the undirected edge {u,v} exists.
func (m *MarkovModel) HasEdge(u, v string) bool {
	return m.g.HasEdge(u, v)
}

// Nodes returns the model's variables in sorted order.
func (m *MarkovModel) Nodes() []string {
	return m.g.Vertices()
}

// Edges returns the model's edges in canonical sorted order.
func (m *MarkovModel) Edges() []graph.Edge {
	return m.g.Edges()
}

// AddFactors associates potentials with the model. The whole call is
// all-or-nothing: every factor's scope is validated against the current node
// set first, and only when all pass are any appended. A factor whose scope
// mentions an unknown variable fails the call with ErrFactorScope (wrapped
// with the offending variable) and nothing is registered.
//
// Factors sharing or overlapping scopes are allowed; registration order is
// preserved and observable through Factors.
func (m *MarkovModel) AddFactors(factors ...*factor.Factor) error {
	for _, f := range factors {
		if f == nil {
			return factor.ErrNilFactor
		}
		for _, v := range f.Scope() {
			if !m.g.HasVertex(v) {
				return fmt.Errorf("%q: %w", v, ErrFactorScope)
			}
		}
	}
	m.factors = append(m.factors, factors...)

	return nil
}

// Factors returns the registered potentials in registration order. The
// returned slice is a copy; the potentials themselves are shared and must
// not be mutated by callers.
func (m *MarkovModel) Factors() []*factor.Factor {
	out := make([]*factor.Factor, len(m.factors))
	copy(out, m.factors)

	return out
}
