package extractors

import (
	"github.com/ant-admin92/AionDataExtractor/internal/core/domain"
	"github.com/ant-admin92/AionDataExtractor/internal/core/ports/driven"
	"github.com/ant-admin92/AionDataExtractor/internal/xmldoc"
)

// Ensure ItemExtractor implements the interface.
var _ driven.Extractor = (*ItemExtractor)(nil)

// ItemExtractor extracts <client_item> definitions.
type ItemExtractor struct{}

// NewItemExtractor creates an item extractor.
func NewItemExtractor() *ItemExtractor {
	return &ItemExtractor{}
}

// Kind returns the record kind this extractor produces.
func (e *ItemExtractor) Kind() domain.RecordKind {
	return domain.KindItem
}

// Detect reports whether the document contains item definitions.
func (e *ItemExtractor) Detect(root *xmldoc.Node) bool {
	return root.Find("client_item") != nil
}

// Extract resolves every <client_item> node. A node without an id child
// is rejected and counted as a failure; every optional field defaults to
// the Unknown sentinel.
func (e *ItemExtractor) Extract(root *xmldoc.Node, docName string, table *domain.StringTable) ([]domain.Record, driven.ExtractionStats) {
	var records []domain.Record
	var stats driven.ExtractionStats

	for _, node := range root.FindAll("client_item") {
		id, ok := node.ChildText("id")
		if !ok {
			stats.Failed++
			continue
		}

		rec := domain.Record{
			Kind:           domain.KindItem,
			ID:             id,
			SourceDocument: docName,
			Item: &domain.ItemDetails{
				Icon:           childOr(node, "icon_name"),
				ItemType:       childOr(node, "item_type"),
				Quality:        childOr(node, "quality"),
				Level:          childOr(node, "level"),
				EquipmentSlots: childOr(node, "equipment_slots"),
				Category:       childOr(node, "category"),
			},
		}
		resolveCommon(&rec, node, table)

		records = append(records, rec)
		stats.Processed++
	}

	return records, stats
}
