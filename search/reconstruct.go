package search

import (
	"github.com/c360/sempath/graph"
)

// Reconstruct merges the two half-paths recorded at an intersection into a
// single chain of steps reading from the search's start node to its end
// node. The forward half walks from start to the meeting node and is
// emitted verbatim.
//
// The backward half walks from end to the meeting node, so it is replayed
// in reverse with each step's direction flipped. Reversing also changes
// which node a step arrives at: the backward half's steps name the node
// reached walking away from end, but read toward end each reversed step
// arrives at the node its predecessor was expanded from. That predecessor
// is the previous backward step's neighbor, and for the oldest step it is
// end itself.
func Reconstruct(end graph.NodeID, forward, backward graph.Path) graph.Path {
	merged := make(graph.Path, 0, len(forward)+len(backward))
	merged = append(merged, forward...)

	for i := len(backward) - 1; i >= 0; i-- {
		arrival := end
		if i > 0 {
			arrival = backward[i-1].Neighbor
		}
		merged = append(merged, graph.Edge{
			Rel:       backward[i].Rel,
			Neighbor:  arrival,
			Direction: backward[i].Direction.Flip(),
		})
	}

	return merged
}
