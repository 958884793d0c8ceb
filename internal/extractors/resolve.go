package extractors

import (
	"github.com/ant-admin92/AionDataExtractor/internal/core/domain"
	"github.com/ant-admin92/AionDataExtractor/internal/xmldoc"
)

// childOr returns the trimmed text of a direct child, or the Unknown
// sentinel when the child is absent or empty.
func childOr(node *xmldoc.Node, name string) string {
	text, ok := node.ChildText(name)
	if !ok {
		return domain.Unknown
	}
	return text
}

// resolveCommon fills a record's name/desc codes and resolved texts from
// the entity node, plus the provenance of whichever code resolved: the
// name entry's source document, else the desc entry's, else Unknown.
func resolveCommon(rec *domain.Record, node *xmldoc.Node, table *domain.StringTable) {
	rec.NameCode = childOr(node, "name")
	rec.DescCode = childOr(node, "desc")
	rec.NameText = table.Resolve(rec.NameCode)
	rec.DescText = table.Resolve(rec.DescCode)

	rec.StringSourceDocument = domain.Unknown
	if entry, ok := table.Lookup(rec.NameCode); ok {
		rec.StringSourceDocument = entry.Source
	} else if entry, ok := table.Lookup(rec.DescCode); ok {
		rec.StringSourceDocument = entry.Source
	}
}
