// Package sempath discovers chains of labeled semantic relations between
// two concepts in a remote concept graph.
//
// # Architecture
//
// A search is a bidirectional breadth-first walk: one frontier expands from
// the start concept and one from the end concept, and the search terminates
// the instant a concept is visited by both sides. Every adjacency list the
// walk needs flows through a durable cache, so repeated runs grow a local
// snapshot of the remote graph instead of re-fetching it.
//
//	┌──────────────┐
//	│ search.Engine│  frontier management, intersection
//	│              │  detection, path reconstruction
//	└──────┬───────┘
//	       ↓ GetOrFetch
//	┌──────────────┐
//	│ adjacency    │  in-memory map + JSON cache file,
//	│ .Store       │  saved once per search
//	└──────┬───────┘
//	       ↓ Fetch (cache miss only)
//	┌──────────────┐
//	│ conceptnet   │  throttled HTTP client, direction
//	│ .Client      │  classification, error taxonomy
//	└──────┬───────┘
//	       ↓ Wait
//	┌──────────────┐
//	│ throttle     │  token bucket, one request per
//	│ .Throttle    │  configured interval
//	└──────────────┘
//
// # Packages
//
// Core:
//   - graph: node IDs, directed labeled edges, walk paths
//   - search: bidirectional BFS engine and path reconstruction
//   - adjacency: durable node-to-edges cache
//   - conceptnet: remote graph HTTP client
//   - throttle: outbound request rate gate
//   - vocabulary: relation labels, symmetry, rendering phrases
//
// Infrastructure:
//   - config: JSON configuration with defaults and validation
//   - errors: classified error handling
//   - metric: Prometheus metrics registration and exposition
//   - pkg/retry: backoff/retry policies
//
// # Failure Philosophy
//
// Remote and storage failures never abort a search. A node whose fetch
// fails is a dead end for this run and stays uncached so the next run can
// retry it; a corrupt cache file degrades to an empty cache; a failed
// cache save is logged. The only user-visible negative outcome is "no path
// found", which is a normal terminal state, not an error.
//
// # Binary
//
// Build and run sempath:
//
//	go build -o bin/sempath ./cmd/sempath
//	./bin/sempath -from=/c/en/dog -to=/c/en/philosophy
package sempath
