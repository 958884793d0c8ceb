package extractors

import (
	"github.com/ant-admin92/AionDataExtractor/internal/core/domain"
	"github.com/ant-admin92/AionDataExtractor/internal/xmldoc"
)

// BuildStrings adds every complete <string> entry in the document to
// the table and returns the number added. An entry needs id, name and
// body children; incomplete entries are skipped silently and do not
// count toward the total. A name code seen again overwrites the earlier
// entry, including its provenance (last-write-wins).
func BuildStrings(root *xmldoc.Node, docName string, table *domain.StringTable) int {
	count := 0
	for _, node := range root.FindAll("string") {
		if _, ok := node.ChildText("id"); !ok {
			continue
		}
		name, ok := node.ChildText("name")
		if !ok {
			continue
		}
		body, ok := node.ChildText("body")
		if !ok {
			continue
		}
		table.Add(name, body, docName)
		count++
	}
	return count
}
