package vocabulary

import (
	"strings"
	"sync"
)

// RelationMetadata describes one relation label of the remote graph.
type RelationMetadata struct {
	Label       string // Relation label as returned by the remote service, e.g. "IsA"
	Description string // Human-readable description
	Phrase      string // Rendering phrase, e.g. "is a" for IsA
	Symmetric   bool   // True when the relation reads the same in both directions
	IRI         string // Remote relation URI, e.g. "/r/IsA"
}

// Global relation registry
var (
	registryMu       sync.RWMutex
	relationRegistry = make(map[string]RelationMetadata)
)

// Option is a functional option for configuring relation registration.
type Option func(*RelationMetadata)

// WithDescription sets the human-readable description of the relation.
func WithDescription(desc string) Option {
	return func(m *RelationMetadata) {
		m.Description = desc
	}
}

// WithPhrase sets the phrase used when rendering a path step.
func WithPhrase(phrase string) Option {
	return func(m *RelationMetadata) {
		m.Phrase = phrase
	}
}

// Symmetric marks the relation as reading identically in both directions,
// so renderers need not distinguish incoming from outgoing steps.
func Symmetric() Option {
	return func(m *RelationMetadata) {
		m.Symmetric = true
	}
}

// WithIRI sets the remote service's URI for the relation.
func WithIRI(iri string) Option {
	return func(m *RelationMetadata) {
		m.IRI = iri
	}
}

// Register adds or replaces a relation label in the registry.
func Register(label string, opts ...Option) {
	m := RelationMetadata{Label: label}
	for _, opt := range opts {
		opt(&m)
	}
	if m.Phrase == "" {
		m.Phrase = defaultPhrase(label)
	}
	if m.IRI == "" {
		m.IRI = "/r/" + label
	}

	registryMu.Lock()
	relationRegistry[label] = m
	registryMu.Unlock()
}

// Lookup returns the metadata for label. Unregistered labels get generic
// metadata derived from the label itself, so callers can always render.
func Lookup(label string) RelationMetadata {
	registryMu.RLock()
	m, ok := relationRegistry[label]
	registryMu.RUnlock()

	if ok {
		return m
	}
	return RelationMetadata{
		Label:  label,
		Phrase: defaultPhrase(label),
		IRI:    "/r/" + label,
	}
}

// IsSymmetric reports whether label names a direction-free relation.
// Unregistered labels are treated as directional.
func IsSymmetric(label string) bool {
	return Lookup(label).Symmetric
}

// Labels returns all registered relation labels.
func Labels() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	labels := make([]string, 0, len(relationRegistry))
	for label := range relationRegistry {
		labels = append(labels, label)
	}
	return labels
}

// defaultPhrase splits a CamelCase label into lowercase words:
// "HasSubevent" becomes "has subevent".
func defaultPhrase(label string) string {
	var b strings.Builder
	for i, r := range label {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
