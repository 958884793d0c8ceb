package extractors

import (
	"github.com/ant-admin92/AionDataExtractor/internal/core/domain"
	"github.com/ant-admin92/AionDataExtractor/internal/xmldoc"
)

// Classify assigns a parsed document to exactly one class by structural
// shape. Rules apply in priority order; first match wins.
func Classify(root *xmldoc.Node) domain.DocumentClass {
	switch {
	case root.Find("string") != nil:
		return domain.StringDocument
	case root.Find("client_item") != nil:
		return domain.ItemDocument
	default:
		return domain.OtherDocument
	}
}
