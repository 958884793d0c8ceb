package extractors

import (
	"github.com/ant-admin92/AionDataExtractor/internal/core/domain"
	"github.com/ant-admin92/AionDataExtractor/internal/core/ports/driven"
	"github.com/ant-admin92/AionDataExtractor/internal/logger"
	"github.com/ant-admin92/AionDataExtractor/internal/xmldoc"
)

// Ensure QuestExtractor implements the interface.
var _ driven.Extractor = (*QuestExtractor)(nil)

// QuestExtractor extracts <quest> definitions. The quest identifier is
// an attribute on the quest node, not a child element; this matches the
// client data format and differs from every other entity kind.
type QuestExtractor struct{}

// NewQuestExtractor creates a quest extractor.
func NewQuestExtractor() *QuestExtractor {
	return &QuestExtractor{}
}

// Kind returns the record kind this extractor produces.
func (e *QuestExtractor) Kind() domain.RecordKind {
	return domain.KindQuest
}

// Detect reports whether the document contains quest definitions.
func (e *QuestExtractor) Detect(root *xmldoc.Node) bool {
	return root.Find("quest") != nil
}

// Extract resolves every <quest> node.
func (e *QuestExtractor) Extract(root *xmldoc.Node, docName string, table *domain.StringTable) ([]domain.Record, driven.ExtractionStats) {
	var records []domain.Record
	var stats driven.ExtractionStats

	for _, node := range root.FindAll("quest") {
		id, ok := node.Attr("id")
		if !ok || id == "" {
			logger.Warn("quest without id attribute in %s, skipping", docName)
			stats.Failed++
			continue
		}

		rec := domain.Record{
			Kind:           domain.KindQuest,
			ID:             id,
			SourceDocument: docName,
			Quest: &domain.QuestDetails{
				Category: childOr(node, "category"),
				Level:    childOr(node, "level"),
			},
		}
		resolveCommon(&rec, node, table)

		records = append(records, rec)
		stats.Processed++
	}

	return records, stats
}
