// Package search implements bidirectional breadth-first path discovery
// between two nodes of the remote concept graph.
//
// The Engine grows one frontier from the start node and one from the end
// node, expanding a single node per side per iteration through an
// Adjacency source, and stops as soon as a node is visited by both sides.
// Reconstruct then splices the two recorded half-paths into one chain of
// steps reading from start to end. Remote failures never abort a search:
// a node that cannot be fetched simply stops expanding.
package search
