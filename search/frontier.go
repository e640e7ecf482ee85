package search

import (
	"github.com/c360/sempath/graph"
)

// frontierEntry is a node awaiting expansion together with the path that
// reached it from the frontier's origin.
type frontierEntry struct {
	node graph.NodeID
	path graph.Path
}

// frontier tracks one search direction: the nodes already visited from its
// origin, keyed to the path that first reached them, and a FIFO queue of
// entries still to expand. A node entered into visited is never re-enqueued.
type frontier struct {
	origin  graph.NodeID
	visited map[graph.NodeID]graph.Path
	queue   []frontierEntry
}

// newFrontier seeds a frontier at origin with an empty path, so the origin
// itself counts as visited and an intersection on the opposite origin is
// detected without expanding it.
func newFrontier(origin graph.NodeID) *frontier {
	f := &frontier{
		origin:  origin,
		visited: make(map[graph.NodeID]graph.Path),
		queue:   make([]frontierEntry, 0, 16),
	}
	f.visited[origin] = graph.Path{}
	f.queue = append(f.queue, frontierEntry{node: origin, path: graph.Path{}})
	return f
}

// empty reports whether no entries remain to expand.
func (f *frontier) empty() bool {
	return len(f.queue) == 0
}

// dequeue removes and returns the oldest pending entry.
func (f *frontier) dequeue() frontierEntry {
	entry := f.queue[0]
	f.queue = f.queue[1:]
	return entry
}

// seen reports whether node was already visited and returns the path that
// reached it.
func (f *frontier) seen(node graph.NodeID) (graph.Path, bool) {
	path, ok := f.visited[node]
	return path, ok
}

// visit records node as reached by path and enqueues it for expansion.
// Callers must check seen first.
func (f *frontier) visit(node graph.NodeID, path graph.Path) {
	f.visited[node] = path
	f.queue = append(f.queue, frontierEntry{node: node, path: path})
}

// size returns the number of visited nodes.
func (f *frontier) size() int {
	return len(f.visited)
}
