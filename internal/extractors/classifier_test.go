package extractors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ant-admin92/AionDataExtractor/internal/core/domain"
	"github.com/ant-admin92/AionDataExtractor/internal/xmldoc"
)

func parseDoc(t *testing.T, src string) *xmldoc.Node {
	t.Helper()
	root, err := xmldoc.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return root
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want domain.DocumentClass
	}{
		{
			"string document",
			`<strings><string><id>1</id><name>N</name><body>B</body></string></strings>`,
			domain.StringDocument,
		},
		{
			"item document",
			`<client_items><client_item><id>700000</id></client_item></client_items>`,
			domain.ItemDocument,
		},
		{
			"npc is other",
			`<npcs><client_npc><id>1</id></client_npc></npcs>`,
			domain.OtherDocument,
		},
		{
			"empty root is other",
			`<data/>`,
			domain.OtherDocument,
		},
		{
			// A document carrying both shapes classifies by priority.
			"string beats item",
			`<mixed><string><id>1</id><name>N</name><body>B</body></string><client_item><id>2</id></client_item></mixed>`,
			domain.StringDocument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(parseDoc(t, tt.src)))
		})
	}
}
