package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abit2/pgmpy/model"
)

// TestCliqueTreeMaximizesSepsetOverlap pins the clique-graph weighting down
// to the negated sepset size: for a clique pair (A, B) the weight is -|A∩B|,
// so the minimum spanning tree keeps the edges with the largest separator
// overlap. A one-directional set-difference weighting would pick a different
// tree on this model, so the chosen edges reveal which rule is in effect.
//
// The model is chordal with three maximal cliques of unequal sizes:
//
//	C1 = {A,B}, C2 = {B,C,D,E}, C3 = {D,E,F}
//	w(C1,C2) = -|C1∩C2| = -1
//	w(C1,C3) = -|C1∩C3| =  0
//	w(C2,C3) = -|C2∩C3| = -2
//
// Minimizing keeps C2—C3 (sepset {D,E}) and C1—C2 (sepset {B}) for a total
// of -3, and rejects the empty-sepset pair C1—C3; a difference-based
// weighting -|Ci∖Cj| would instead rank C1—C3 at -2 and break the
// connected-subtree invariant for B.
func TestCliqueTreeMaximizesSepsetOverlap(t *testing.T) {
	m := model.NewMarkovModel()
	require.NoError(t, m.AddEdgesFrom(
		[2]string{"A", "B"},
		// Complete clique on {B,C,D,E}.
		[2]string{"B", "C"}, [2]string{"B", "D"}, [2]string{"B", "E"},
		[2]string{"C", "D"}, [2]string{"C", "E"}, [2]string{"D", "E"},
		// Triangle {D,E,F}.
		[2]string{"D", "F"}, [2]string{"E", "F"},
	))
	for _, e := range m.Edges() {
		require.NoError(t, m.AddFactors(edgeFactor(t, e.U, e.V)))
	}

	jt, err := m.ToJunctionTree()
	require.NoError(t, err)

	require.Equal(t, [][]string{{"A", "B"}, {"B", "C", "D", "E"}, {"D", "E", "F"}}, jt.Cliques())
	assert.Equal(t, [][2]string{
		{"B,C,D,E", "D,E,F"},
		{"A,B", "B,C,D,E"},
	}, jt.Edges())
	assert.True(t, hasRunningIntersection(jt))
}

// TestFiveCycleRunningIntersection fixes the smallest cycle on which a
// separator-minimizing tree goes wrong: the triangulated 5-cycle has three
// triangle cliques, and the middle variable of the chain must lie on the
// path between the two cliques that share it.
func TestFiveCycleRunningIntersection(t *testing.T) {
	jt, err := cycleModel(1, 5).ToJunctionTree()
	require.NoError(t, err)

	require.Equal(t, [][]string{
		{"X0", "X1", "X4"},
		{"X1", "X2", "X4"},
		{"X2", "X3", "X4"},
	}, jt.Cliques())
	assert.Equal(t, 2, jt.EdgeCount())

	// The two triangles sharing {X2,X4} and the two sharing {X1,X4} must be
	// directly joined; the weak {X4} pairing stays out.
	assert.Equal(t, [][2]string{
		{"X0,X1,X4", "X1,X2,X4"},
		{"X1,X2,X4", "X2,X3,X4"},
	}, jt.Edges())
	assert.True(t, hasRunningIntersection(jt))
}
