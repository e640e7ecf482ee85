package vocabulary

// Core relation registration with metadata and rendering phrases.
// This file registers the relation labels the public concept graph is
// known to return. See https://github.com/commonsense/conceptnet5/wiki/Relations
// for the upstream catalog.

func init() {
	Register("RelatedTo",
		WithDescription("General undirected association between concepts"),
		WithPhrase("is related to"),
		Symmetric())

	Register("IsA",
		WithDescription("Taxonomic subtype (subject is a kind of object)"),
		WithPhrase("is a"))

	Register("PartOf",
		WithDescription("Meronymy (subject is a part of object)"),
		WithPhrase("is part of"))

	Register("HasA",
		WithDescription("Possession or containment (subject has object)"),
		WithPhrase("has"))

	Register("UsedFor",
		WithDescription("Typical purpose (subject is used for object)"),
		WithPhrase("is used for"))

	Register("CapableOf",
		WithDescription("Typical capability (subject can do object)"),
		WithPhrase("is capable of"))

	Register("AtLocation",
		WithDescription("Typical location (subject is found at object)"),
		WithPhrase("is at"))

	Register("Causes",
		WithDescription("Causation (subject causes object)"),
		WithPhrase("causes"))

	Register("HasSubevent",
		WithDescription("Event decomposition (object happens during subject)"),
		WithPhrase("has subevent"))

	Register("HasPrerequisite",
		WithDescription("Dependency (subject requires object first)"),
		WithPhrase("requires"))

	Register("HasProperty",
		WithDescription("Attribution (subject has property object)"),
		WithPhrase("has property"))

	Register("MotivatedByGoal",
		WithDescription("Motivation (subject is done to achieve object)"),
		WithPhrase("is motivated by"))

	Register("ObstructedBy",
		WithDescription("Obstacle (subject is prevented by object)"),
		WithPhrase("is obstructed by"))

	Register("Desires",
		WithDescription("Typical desire (subject wants object)"),
		WithPhrase("desires"))

	Register("CreatedBy",
		WithDescription("Provenance (subject is created by object)"),
		WithPhrase("is created by"))

	Register("Synonym",
		WithDescription("Same or near-same meaning"),
		WithPhrase("is a synonym of"),
		Symmetric())

	Register("Antonym",
		WithDescription("Opposite meaning"),
		WithPhrase("is an antonym of"),
		Symmetric())

	Register("DistinctFrom",
		WithDescription("Mutually exclusive alternatives"),
		WithPhrase("is distinct from"),
		Symmetric())

	Register("DerivedFrom",
		WithDescription("Word derivation (subject derives from object)"),
		WithPhrase("is derived from"))

	Register("SymbolOf",
		WithDescription("Symbolism (subject represents object)"),
		WithPhrase("is a symbol of"))

	Register("DefinedAs",
		WithDescription("Definition (subject is defined as object)"),
		WithPhrase("is defined as"))

	Register("MannerOf",
		WithDescription("Manner specialization (subject is a way of doing object)"),
		WithPhrase("is a manner of"))

	Register("LocatedNear",
		WithDescription("Spatial proximity"),
		WithPhrase("is located near"),
		Symmetric())

	Register("SimilarTo",
		WithDescription("Similarity between concepts"),
		WithPhrase("is similar to"),
		Symmetric())

	Register("EtymologicallyRelatedTo",
		WithDescription("Shared word origin"),
		WithPhrase("is etymologically related to"),
		Symmetric())

	Register("FormOf",
		WithDescription("Inflection (subject is a form of root word object)"),
		WithPhrase("is a form of"))

	Register("HasContext",
		WithDescription("Usage context (subject is used in the context of object)"),
		WithPhrase("is used in the context of"))

	Register("ReceivesAction",
		WithDescription("Typical patient (object is done to subject)"),
		WithPhrase("receives action"))

	Register("ExternalURL",
		WithDescription("Link to an external resource about the concept"),
		WithPhrase("is described at"))
}
