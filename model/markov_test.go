package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abit2/pgmpy/factor"
	"github.com/abit2/pgmpy/graph"
	"github.com/abit2/pgmpy/model"
)

// mustFactor builds a factor or fails the test.
func mustFactor(t *testing.T, vars []string, card []int, values []float64) *factor.Factor {
	t.Helper()
	f, err := factor.New(vars, card, values)
	require.NoError(t, err)

	return f
}

// edgeFactor builds a uniform binary pairwise potential over {u,v}.
func edgeFactor(t *testing.T, u, v string) *factor.Factor {
	t.Helper()

	return mustFactor(t, []string{u, v}, []int{2, 2}, []float64{1, 1, 1, 1})
}

func TestAddEdgeAutoAddsNodes(t *testing.T) {
	m := model.NewMarkovModel()
	require.NoError(t, m.AddEdge("Alice", "Bob"))

	assert.True(t, m.HasNode("Alice"))
	assert.True(t, m.HasNode("Bob"))
	assert.True(t, m.HasEdge("Alice", "Bob"))
}

func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	m := model.NewMarkovModel()
	assert.ErrorIs(t, m.AddEdge("Alice", "Alice"), graph.ErrSelfLoop)
}

func TestAddEdgesFrom(t *testing.T) {
	m := model.NewMarkovModel()
	require.NoError(t, m.AddEdgesFrom([2]string{"A", "B"}, [2]string{"B", "C"}))

	assert.Equal(t, []string{"A", "B", "C"}, m.Nodes())
	assert.Len(t, m.Edges(), 2)
}

func TestAddFactorsValidScope(t *testing.T) {
	m := model.NewMarkovModel()
	require.NoError(t, m.AddEdge("A", "B"))

	phi := edgeFactor(t, "A", "B")
	require.NoError(t, m.AddFactors(phi))

	factors := m.Factors()
	require.Len(t, factors, 1)
	assert.Same(t, phi, factors[0])
}

func TestAddFactorsRejectsUnknownVariable(t *testing.T) {
	m := model.NewMarkovModel()
	require.NoError(t, m.AddEdge("A", "B"))

	err := m.AddFactors(edgeFactor(t, "A", "Z"))
	assert.ErrorIs(t, err, model.ErrFactorScope)
	assert.Empty(t, m.Factors())
}

func TestAddFactorsAllOrNothing(t *testing.T) {
	m := model.NewMarkovModel()
	require.NoError(t, m.AddEdge("A", "B"))

	good := edgeFactor(t, "A", "B")
	bad := edgeFactor(t, "B", "Z")

	err := m.AddFactors(good, bad)
	assert.ErrorIs(t, err, model.ErrFactorScope)
	assert.Empty(t, m.Factors(), "a failing call must register none of its factors")
}

func TestAddFactorsNil(t *testing.T) {
	m := model.NewMarkovModel()
	assert.ErrorIs(t, m.AddFactors(nil), factor.ErrNilFactor)
}

func TestFactorsOverlappingScopesAllowed(t *testing.T) {
	m := model.NewMarkovModel()
	require.NoError(t, m.AddEdge("A", "B"))

	require.NoError(t, m.AddFactors(edgeFactor(t, "A", "B"), edgeFactor(t, "A", "B")))
	assert.Len(t, m.Factors(), 2)
}

func TestFactorsReturnsViewCopy(t *testing.T) {
	m := model.NewMarkovModel()
	require.NoError(t, m.AddEdge("A", "B"))
	require.NoError(t, m.AddFactors(edgeFactor(t, "A", "B")))

	view := m.Factors()
	view[0] = nil

	require.Len(t, m.Factors(), 1)
	assert.NotNil(t, m.Factors()[0], "mutating the returned slice must not reach the model")
}
