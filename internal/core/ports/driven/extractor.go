package driven

import (
	"github.com/ant-admin92/AionDataExtractor/internal/core/domain"
	"github.com/ant-admin92/AionDataExtractor/internal/xmldoc"
)

// ExtractionStats summarizes one extractor pass over one document.
type ExtractionStats struct {
	// Processed counts records accepted into the result set.
	Processed int

	// Failed counts nodes rejected for a missing identifier or an
	// extraction error. Failures never abort the document.
	Failed int
}

// Extractor converts the entity nodes of one kind within a parsed
// document into resolved records.
type Extractor interface {
	// Kind is the record kind this extractor produces.
	Kind() domain.RecordKind

	// Detect reports whether the document contains this extractor's
	// entity shape. Used for lazy routing of other-documents during
	// the entity pass.
	Detect(root *xmldoc.Node) bool

	// Extract resolves every matching node against the string table.
	// Nodes without a mandatory identifier are skipped and counted as
	// failures; optional fields default to domain.Unknown.
	Extract(root *xmldoc.Node, docName string, strings *domain.StringTable) ([]domain.Record, ExtractionStats)
}

// ExtractorRegistry routes a document to the first extractor whose
// shape it contains.
type ExtractorRegistry interface {
	// Route returns the matching extractor, or false when the document
	// contains no recognized entity shape and should be ignored.
	Route(root *xmldoc.Node) (Extractor, bool)
}
