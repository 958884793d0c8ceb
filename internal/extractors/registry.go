package extractors

import (
	"github.com/ant-admin92/AionDataExtractor/internal/core/ports/driven"
	"github.com/ant-admin92/AionDataExtractor/internal/xmldoc"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry routes an other-document to the first extractor whose entity
// shape it contains. Routing order is fixed: NPC, quest, generic.
type Registry struct {
	extractors []driven.Extractor
}

// NewRegistry creates a registry with the default extractor routing.
func NewRegistry() *Registry {
	return &Registry{
		extractors: []driven.Extractor{
			NewNpcExtractor(),
			NewQuestExtractor(),
			NewGenericExtractor(),
		},
	}
}

// Route returns the matching extractor, or false when the document
// contains no recognized entity shape.
func (r *Registry) Route(root *xmldoc.Node) (driven.Extractor, bool) {
	for _, e := range r.extractors {
		if e.Detect(root) {
			return e, true
		}
	}
	return nil, false
}
