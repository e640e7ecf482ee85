package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup_RegisteredRelation(t *testing.T) {
	m := Lookup("IsA")

	assert.Equal(t, "IsA", m.Label)
	assert.Equal(t, "is a", m.Phrase)
	assert.Equal(t, "/r/IsA", m.IRI)
	assert.False(t, m.Symmetric)
}

func TestLookup_UnregisteredRelationStillRenders(t *testing.T) {
	m := Lookup("NotARealRelation")

	assert.Equal(t, "NotARealRelation", m.Label)
	assert.Equal(t, "not a real relation", m.Phrase)
	assert.Equal(t, "/r/NotARealRelation", m.IRI)
	assert.False(t, m.Symmetric)
}

func TestIsSymmetric(t *testing.T) {
	tests := []struct {
		label     string
		symmetric bool
	}{
		{"RelatedTo", true},
		{"Synonym", true},
		{"Antonym", true},
		{"LocatedNear", true},
		{"IsA", false},
		{"Causes", false},
		{"UnknownRel", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.symmetric, IsSymmetric(tt.label))
		})
	}
}

func TestRegister_CustomRelation(t *testing.T) {
	Register("TestOnlyRel",
		WithDescription("registered by a test"),
		WithPhrase("test-relates to"),
		WithIRI("/r/TestOnlyRel"),
		Symmetric())

	m := Lookup("TestOnlyRel")
	assert.Equal(t, "test-relates to", m.Phrase)
	assert.True(t, m.Symmetric)
}

func TestDefaultPhrase(t *testing.T) {
	assert.Equal(t, "has subevent", defaultPhrase("HasSubevent"))
	assert.Equal(t, "is a", defaultPhrase("IsA"))
	assert.Equal(t, "causes", defaultPhrase("Causes"))
}

func TestLabels_IncludesCoreCatalog(t *testing.T) {
	labels := Labels()
	assert.Contains(t, labels, "IsA")
	assert.Contains(t, labels, "RelatedTo")
}
