package extractors

import (
	"github.com/ant-admin92/AionDataExtractor/internal/core/domain"
	"github.com/ant-admin92/AionDataExtractor/internal/core/ports/driven"
	"github.com/ant-admin92/AionDataExtractor/internal/xmldoc"
)

// genericShapes are the remaining entity elements the client data set
// carries. They share the common id/name/desc layout and need no
// kind-specific handling beyond the element name itself.
var genericShapes = []string{
	"client_pet",
	"client_skill",
	"client_title",
	"client_housing",
}

// Ensure GenericExtractor implements the interface.
var _ driven.Extractor = (*GenericExtractor)(nil)

// GenericExtractor extracts the entity shapes that have no dedicated
// extractor (pets, skills, titles, housing objects). They all land in
// the "other" category.
type GenericExtractor struct{}

// NewGenericExtractor creates a generic extractor.
func NewGenericExtractor() *GenericExtractor {
	return &GenericExtractor{}
}

// Kind returns the record kind this extractor produces.
func (e *GenericExtractor) Kind() domain.RecordKind {
	return domain.KindGeneric
}

// Detect reports whether the document contains any generic entity shape.
func (e *GenericExtractor) Detect(root *xmldoc.Node) bool {
	for _, shape := range genericShapes {
		if root.Find(shape) != nil {
			return true
		}
	}
	return false
}

// Extract resolves every node of every generic shape, in shape order.
func (e *GenericExtractor) Extract(root *xmldoc.Node, docName string, table *domain.StringTable) ([]domain.Record, driven.ExtractionStats) {
	var records []domain.Record
	var stats driven.ExtractionStats

	for _, shape := range genericShapes {
		for _, node := range root.FindAll(shape) {
			id, ok := node.ChildText("id")
			if !ok {
				stats.Failed++
				continue
			}

			rec := domain.Record{
				Kind:           domain.KindGeneric,
				ID:             id,
				SourceDocument: docName,
				Generic: &domain.GenericDetails{
					Icon:       childOr(node, "icon_name"),
					EntityType: shape,
				},
			}
			resolveCommon(&rec, node, table)

			records = append(records, rec)
			stats.Processed++
		}
	}

	return records, stats
}
