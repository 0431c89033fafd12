package model_test

import (
	"fmt"
	"strings"

	"github.com/abit2/pgmpy/factor"
	"github.com/abit2/pgmpy/model"
)

// ExampleMarkovModel_ToJunctionTree builds the 4-cycle network on
// {A,B,C,D} and converts it into its junction tree: triangulation adds one
// chord, giving two 3-cliques joined by a single edge.
func ExampleMarkovModel_ToJunctionTree() {
	// 1. The cycle A—B—C—D—A with a uniform binary potential per edge.
	m := model.NewMarkovModel()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		_ = m.AddEdge(e[0], e[1])
		phi, _ := factor.New([]string{e[0], e[1]}, []int{2, 2}, []float64{1, 1, 1, 1})
		_ = m.AddFactors(phi)
	}

	// 2. Build the junction tree.
	jt, err := m.ToJunctionTree()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3. Print its structure.
	fmt.Printf("cliques: %d, edges: %d\n", jt.CliqueCount(), jt.EdgeCount())
	for _, c := range jt.Cliques() {
		fmt.Println("clique:", strings.Join(c, " "))
	}
	for _, e := range jt.Edges() {
		fmt.Printf("edge: [%s] - [%s]\n", e[0], e[1])
	}
	// Output:
	// cliques: 2, edges: 1
	// clique: A B D
	// clique: B C D
	// edge: [A,B,D] - [B,C,D]
}

// ExampleMarkovModel_ToFactorGraph converts a small chain network into its
// bipartite factor graph.
func ExampleMarkovModel_ToFactorGraph() {
	m := model.NewMarkovModel()
	_ = m.AddEdge("Alice", "Bob")
	_ = m.AddEdge("Bob", "Charles")
	phi1, _ := factor.New([]string{"Alice", "Bob"}, []int{3, 2}, make([]float64, 6))
	phi2, _ := factor.New([]string{"Bob", "Charles"}, []int{2, 2}, make([]float64, 4))
	_ = m.AddFactors(phi1, phi2)

	fg, err := m.ToFactorGraph()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, id := range fg.FactorNodes() {
		nbrs, _ := fg.Neighbors(id)
		fmt.Printf("%s: %s\n", id, strings.Join(nbrs, " "))
	}
	// Output:
	// phi_Alice_Bob: Alice Bob
	// phi_Bob_Charles: Bob Charles
}
