// Package adjacency provides the durable node-to-edges cache that fronts the
// remote graph service.
//
// The Store keeps the full adjacency map in memory and persists it as a
// single JSON file: node ID to a list of [relation, neighbor, direction]
// triples. A search loads the file once at startup, reads and fetches
// through GetOrFetch while expanding, and saves exactly once when it
// terminates. Fetch failures are surfaced to the caller and never recorded,
// so a node that failed once is retried on the next run.
package adjacency
