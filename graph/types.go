// Package graph provides the core data model for semantic path discovery:
// node identifiers, directed labeled edges, and walk paths.
package graph

import (
	"encoding/json"
	"fmt"
)

// NodeID identifies a concept in the remote graph, e.g. "/c/en/dog".
// IDs are opaque: equality is exact string equality and no normalization
// is performed anywhere in the core.
type NodeID string

// String returns the string representation of the NodeID.
func (n NodeID) String() string {
	return string(n)
}

// Direction records whether an edge's neighbor was the end or the start
// endpoint relative to the node the edge was queried for. It is required
// to orient reconstructed paths correctly.
type Direction int

const (
	// DirectionOutgoing means the queried node is the edge's start
	// endpoint and the neighbor is its end endpoint.
	DirectionOutgoing Direction = iota

	// DirectionIncoming means the queried node is the edge's end
	// endpoint and the neighbor is its start endpoint.
	DirectionIncoming
)

// Persisted direction markers. These are part of the on-disk cache format
// and must not change.
const (
	markerOutgoing = "outgoing"
	markerIncoming = "incoming"
)

// String returns the persisted marker for the direction.
func (d Direction) String() string {
	if d == DirectionIncoming {
		return markerIncoming
	}
	return markerOutgoing
}

// Flip returns the opposite direction. Used when a path recorded walking
// away from one origin is replayed walking toward it.
func (d Direction) Flip() Direction {
	if d == DirectionIncoming {
		return DirectionOutgoing
	}
	return DirectionIncoming
}

// ParseDirection converts a persisted marker back to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case markerOutgoing:
		return DirectionOutgoing, nil
	case markerIncoming:
		return DirectionIncoming, nil
	default:
		return DirectionOutgoing, fmt.Errorf("unknown direction marker %q", s)
	}
}

// MarshalJSON implements json.Marshaler so Direction serializes as its marker.
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler for the persisted marker form.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Edge is a labeled relation step to a neighbor node. Neighbor names the
// node reached by taking the step away from the walk's origin.
type Edge struct {
	Rel       string    `json:"rel"`
	Neighbor  NodeID    `json:"neighbor"`
	Direction Direction `json:"direction"`
}

// Path is an ordered sequence of edges interpreted as steps taken from
// some fixed origin node. An empty path means no steps taken.
type Path []Edge

// Extend returns a new path with edge appended. The receiver is never
// mutated: frontier entries share path prefixes.
func (p Path) Extend(edge Edge) Path {
	extended := make(Path, len(p), len(p)+1)
	copy(extended, p)
	return append(extended, edge)
}

// Len returns the number of edges in the path.
func (p Path) Len() int {
	return len(p)
}
