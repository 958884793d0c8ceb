package extractors

import (
	"github.com/ant-admin92/AionDataExtractor/internal/core/domain"
	"github.com/ant-admin92/AionDataExtractor/internal/core/ports/driven"
	"github.com/ant-admin92/AionDataExtractor/internal/logger"
	"github.com/ant-admin92/AionDataExtractor/internal/xmldoc"
)

// Ensure NpcExtractor implements the interface.
var _ driven.Extractor = (*NpcExtractor)(nil)

// NpcExtractor extracts <client_npc> definitions. The NPC identifier
// comes from the id child element, unlike quests.
type NpcExtractor struct{}

// NewNpcExtractor creates an NPC extractor.
func NewNpcExtractor() *NpcExtractor {
	return &NpcExtractor{}
}

// Kind returns the record kind this extractor produces.
func (e *NpcExtractor) Kind() domain.RecordKind {
	return domain.KindNpc
}

// Detect reports whether the document contains NPC definitions.
func (e *NpcExtractor) Detect(root *xmldoc.Node) bool {
	return root.Find("client_npc") != nil
}

// Extract resolves every <client_npc> node.
func (e *NpcExtractor) Extract(root *xmldoc.Node, docName string, table *domain.StringTable) ([]domain.Record, driven.ExtractionStats) {
	var records []domain.Record
	var stats driven.ExtractionStats

	for _, node := range root.FindAll("client_npc") {
		id, ok := node.ChildText("id")
		if !ok {
			logger.Warn("npc without id in %s, skipping", docName)
			stats.Failed++
			continue
		}

		rec := domain.Record{
			Kind:           domain.KindNpc,
			ID:             id,
			SourceDocument: docName,
			Npc: &domain.NpcDetails{
				Title:   childOr(node, "title"),
				Icon:    childOr(node, "icon_name"),
				NpcType: childOr(node, "npc_type"),
			},
		}
		resolveCommon(&rec, node, table)

		records = append(records, rec)
		stats.Processed++
	}

	return records, stats
}
