package extractors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ant-admin92/AionDataExtractor/internal/core/domain"
)

func TestBuildStrings(t *testing.T) {
	root := parseDoc(t, `<strings>
		<string><id>1</id><name>ITEM_SWORD_NAME</name><body>Iron Sword</body></string>
		<string><id>2</id><name>ITEM_SWORD_DESC</name><body>A plain iron sword.</body></string>
	</strings>`)

	table := domain.NewStringTable()
	count := BuildStrings(root, "client_strings_item.xml", table)

	assert.Equal(t, 2, count)
	assert.Equal(t, "Iron Sword", table.Resolve("ITEM_SWORD_NAME"))

	entry, ok := table.Lookup("ITEM_SWORD_DESC")
	require.True(t, ok)
	assert.Equal(t, "client_strings_item.xml", entry.Source)
}

func TestBuildStrings_SkipsIncompleteEntries(t *testing.T) {
	root := parseDoc(t, `<strings>
		<string><name>NO_ID</name><body>text</body></string>
		<string><id>2</id><body>no name</body></string>
		<string><id>3</id><name>NO_BODY</name></string>
		<string><id>4</id><name>COMPLETE</name><body>kept</body></string>
	</strings>`)

	table := domain.NewStringTable()
	count := BuildStrings(root, "doc.xml", table)

	assert.Equal(t, 1, count)
	assert.Equal(t, 1, table.Len())
	assert.Equal(t, "kept", table.Resolve("COMPLETE"))
}

func TestBuildStrings_LastWriteWinsAcrossDocuments(t *testing.T) {
	table := domain.NewStringTable()

	first := parseDoc(t, `<strings><string><id>1</id><name>CODE</name><body>old</body></string></strings>`)
	second := parseDoc(t, `<strings><string><id>1</id><name>CODE</name><body>new</body></string></strings>`)

	BuildStrings(first, "a.xml", table)
	BuildStrings(second, "b.xml", table)

	assert.Equal(t, "new", table.Resolve("CODE"))
	entry, ok := table.Lookup("CODE")
	require.True(t, ok)
	assert.Equal(t, "b.xml", entry.Source)
}
