package ir

// PriorityKey orders sibling endpoints within a namespace for
// presentation. It never selects between endpoints; ties keep their
// encounter order (callers must sort stably).
type PriorityKey struct {
	// Literals counts the literal path segments from the owning
	// directory's segment onward.
	Literals int

	// VerbRank is 0 for GET, 1 for POST; unknown verbs sort after both.
	VerbRank int

	// Plural is 0 for singular endpoints, 1 otherwise.
	Plural int
}

// Less reports whether k orders before other, comparing fields in order.
func (k PriorityKey) Less(other PriorityKey) bool {
	if k.Literals != other.Literals {
		return k.Literals < other.Literals
	}
	if k.VerbRank != other.VerbRank {
		return k.VerbRank < other.VerbRank
	}
	return k.Plural < other.Plural
}

// NamedEndpoint is the naming output for one normalized route: everything
// the renderer needs to emit a documented method stanza. Immutable once
// produced.
type NamedEndpoint struct {
	// MethodName is the generated method identifier.
	MethodName string

	// AlternateName is the list_ alias, empty when none applies.
	AlternateName string

	// Parameters are the call-signature parameter names, in input order.
	Parameters []string

	// DocLines are the documentation lines, without comment markers.
	DocLines []string

	// Priority orders this endpoint among its namespace siblings.
	Priority PriorityKey
}
