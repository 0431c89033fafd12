package model_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/abit2/pgmpy/factor"
	"github.com/abit2/pgmpy/model"
)

// randomChainModel builds a connected model on n binary variables: a chain
// guaranteeing connectivity and joint coverage, plus random extra edges,
// every edge carrying a random positive pairwise potential.
func randomChainModel(seed int64, n int) *model.MarkovModel {
	r := rand.New(rand.NewSource(seed))
	m := model.NewMarkovModel()

	vars := make([]string, n)
	for i := range vars {
		vars[i] = fmt.Sprintf("X%d", i)
	}
	var pairs [][2]string
	for i := 1; i < n; i++ {
		pairs = append(pairs, [2]string{vars[i-1], vars[i]})
	}
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if r.Intn(3) == 0 {
				pairs = append(pairs, [2]string{vars[i], vars[j]})
			}
		}
	}
	for _, p := range pairs {
		_ = m.AddEdge(p[0], p[1])
		phi, _ := factor.New([]string{p[0], p[1]}, []int{2, 2}, []float64{
			1 + r.Float64(), 1 + r.Float64(), 1 + r.Float64(), 1 + r.Float64(),
		})
		_ = m.AddFactors(phi)
	}

	return m
}

// cycleModel builds the n-cycle with a pairwise potential per edge. Every
// maximal clique of a triangulated cycle is a triangle, so the clique-tree
// construction is on its best-understood ground here.
func cycleModel(seed int64, n int) *model.MarkovModel {
	r := rand.New(rand.NewSource(seed))
	m := model.NewMarkovModel()
	for i := 0; i < n; i++ {
		u := fmt.Sprintf("X%d", i)
		v := fmt.Sprintf("X%d", (i+1)%n)
		_ = m.AddEdge(u, v)
		phi, _ := factor.New([]string{u, v}, []int{2, 2}, []float64{
			1 + r.Float64(), 1 + r.Float64(), 1 + r.Float64(), 1 + r.Float64(),
		})
		_ = m.AddFactors(phi)
	}

	return m
}

// hasRunningIntersection verifies that for every variable, the cliques
// containing it induce a connected subtree.
func hasRunningIntersection(jt *model.JunctionTree) bool {
	adj := make(map[string][]string)
	for _, e := range jt.Edges() {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}

	occurrence := make(map[string][]string) // variable → clique keys
	for _, c := range jt.Cliques() {
		key := model.CliqueKey(c)
		for _, v := range c {
			occurrence[v] = append(occurrence[v], key)
		}
	}

	for _, keys := range occurrence {
		member := make(map[string]bool, len(keys))
		for _, k := range keys {
			member[k] = true
		}
		// BFS restricted to cliques containing the variable.
		reached := map[string]bool{keys[0]: true}
		queue := []string{keys[0]}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, next := range adj[cur] {
				if member[next] && !reached[next] {
					reached[next] = true
					queue = append(queue, next)
				}
			}
		}
		if len(reached) != len(keys) {
			return false
		}
	}

	return true
}

func TestJunctionTreeStructuralProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("tree has cliqueCount-1 edges, clique-scoped potentials, running intersection", prop.ForAll(
		func(seed int64, n int) bool {
			jt, err := randomChainModel(seed, n).ToJunctionTree()
			if err != nil {
				return false
			}
			if jt.EdgeCount() != jt.CliqueCount()-1 {
				return false
			}
			for _, c := range jt.Cliques() {
				phi, err := jt.Potential(c)
				if err != nil {
					return false
				}
				if !sameSet(phi.Scope(), c) {
					return false
				}
			}

			return hasRunningIntersection(jt)
		},
		gen.Int64(),
		gen.IntRange(2, 6),
	))

	properties.Property("cycle models satisfy running intersection", prop.ForAll(
		func(seed int64, n int) bool {
			jt, err := cycleModel(seed, n).ToJunctionTree()
			if err != nil {
				return false
			}

			return hasRunningIntersection(jt)
		},
		gen.Int64(),
		gen.IntRange(4, 8),
	))

	properties.TestingRun(t)
}

// sameSet reports set equality of two string slices without duplicates.
func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	in := make(map[string]struct{}, len(a))
	for _, v := range a {
		in[v] = struct{}{}
	}
	for _, v := range b {
		if _, ok := in[v]; !ok {
			return false
		}
	}

	return true
}
