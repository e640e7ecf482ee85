package main

import (
	"fmt"
	"io"

	"github.com/c360/sempath/graph"
	"github.com/c360/sempath/search"
	"github.com/c360/sempath/vocabulary"
)

// renderResult writes a search outcome as a readable relation chain. Each
// step shows the relation phrase and an arrow for its recorded direction;
// symmetric relations render without an arrowhead.
func renderResult(w io.Writer, start, end graph.NodeID, result *search.Result) {
	if result.State != search.StateFound {
		_, _ = fmt.Fprintf(w, "No path found between %s and %s\n", start, end)
		return
	}

	if result.Path.Len() == 0 {
		_, _ = fmt.Fprintf(w, "%s and %s are the same node\n", start, end)
		return
	}

	_, _ = fmt.Fprintf(w, "Path from %s to %s (%d steps):\n", start, end, result.Path.Len())
	_, _ = fmt.Fprintf(w, "  %s\n", start)
	for _, step := range result.Path {
		_, _ = fmt.Fprintf(w, "    %s %s\n", renderArrow(step), step.Neighbor)
	}
}

// renderArrow formats one step's relation and direction.
func renderArrow(step graph.Edge) string {
	meta := vocabulary.Lookup(step.Rel)
	if meta.Symmetric {
		return fmt.Sprintf("--[%s]--", meta.Phrase)
	}
	if step.Direction == graph.DirectionOutgoing {
		return fmt.Sprintf("--[%s]-->", meta.Phrase)
	}
	return fmt.Sprintf("<--[%s]--", meta.Phrase)
}
