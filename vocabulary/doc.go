// Package vocabulary describes the relation labels used by the remote
// concept graph.
//
// Relations are registered with metadata: a human-readable phrase for
// rendering path steps, a symmetry flag, and the remote service's relation
// URI. The registry is open — labels the remote service returns that were
// never registered still work everywhere, they just render with generic
// metadata. Lookups never fail for that reason.
package vocabulary
