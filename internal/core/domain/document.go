package domain

// DocumentClass is the structural classification of an input document.
type DocumentClass int

const (
	// StringDocument contains localized string entries (id/name/body nodes).
	StringDocument DocumentClass = iota

	// ItemDocument contains item definitions (client_item nodes).
	ItemDocument

	// OtherDocument is everything else. Other documents are inspected
	// again during the entity pass and routed to the NPC, quest or
	// generic extractor, or ignored.
	OtherDocument
)

// String returns a human-readable class name.
func (c DocumentClass) String() string {
	switch c {
	case StringDocument:
		return "string"
	case ItemDocument:
		return "item"
	case OtherDocument:
		return "other"
	default:
		return "unknown"
	}
}

// ClassifiedBatch holds the per-class file lists produced by the
// classification pass. Order within each list is the order the files
// were presented, which later passes depend on (last-write-wins).
type ClassifiedBatch struct {
	// StringDocs are paths classified as string documents.
	StringDocs []string

	// ItemDocs are paths classified as item documents.
	ItemDocs []string

	// OtherDocs are paths classified as neither.
	OtherDocs []string

	// Malformed counts documents that failed to parse. They belong to
	// no class and do not count toward any total.
	Malformed int
}
