// Package model implements discrete Markov networks and the two secondary
// structures used for exact inference: the bipartite factor graph and the
// junction (clique) tree.
//
// # What & Why
//
// A Markov network is an undirected graph over random variables together
// with a set of potentials (factors), each defined on a subset of the
// variables; their product, up to normalization, is the joint distribution.
// Exact inference does not run on the network directly but on a secondary
// structure:
//
//   - FactorGraph — a bipartite graph with one node per variable and one per
//     potential, connecting each potential to exactly its scope. The natural
//     host for message-passing formulations.
//
//   - JunctionTree — a tree whose nodes are the maximal cliques of a chordal
//     completion of the network, satisfying the running intersection
//     property: every variable's occurrence set induces a connected subtree.
//     Each clique carries the global joint marginalized onto its variables.
//
// # Junction-tree pipeline
//
// ToJunctionTree composes five steps, each delegated to a dedicated package:
//
//  1. Triangulate the network graph to chordality (graph.Triangulate,
//     min-fill elimination).
//  2. Enumerate the maximal cliques of the chordal graph
//     (graph.MaximalCliques, Bron–Kerbosch).
//  3. Build the complete clique graph, weighting each pair (A, B) by the
//     negated sepset size -|A∩B|, so that a minimum spanning tree maximizes
//     the total separator overlap.
//  4. Extract the spanning tree (mst.Kruskal).
//  5. Multiply all registered potentials into the global joint
//     (factor.Product) and attach to each clique the joint marginalized onto
//     that clique's variables (factor.Marginalize).
//
// Triangulation and clique enumeration are worst-case exponential in the
// network's treewidth; callers needing bounded latency must bound the model.
package model
