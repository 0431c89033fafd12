// Package pgmpy builds and manipulates probabilistic graphical models over
// discrete random variables: undirected Markov networks annotated with
// factor potentials, and their conversion into the two canonical secondary
// structures used for exact inference — the bipartite factor graph and the
// junction (clique) tree.
//
// Everything is organized under five subpackages:
//
//	graph/     — undirected simple graph container plus the chordal
//	             primitives (triangulation, maximal cliques, chordality)
//	mst/       — Kruskal spanning tree over weighted graphs
//	factor/    — dense discrete potential tables with product and
//	             marginalization
//	model/     — MarkovModel, FactorGraph, JunctionTree and the builders
//	             connecting them
//	estimator/ — state counting over tabular sample data
//
// Start at model.NewMarkovModel: add edges, register factors, then call
// ToFactorGraph or ToJunctionTree.
package pgmpy
