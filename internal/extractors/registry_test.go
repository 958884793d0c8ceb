package extractors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ant-admin92/AionDataExtractor/internal/core/domain"
)

func TestNpcExtractor_IDFromChildElement(t *testing.T) {
	root := parseDoc(t, `<npcs>
		<client_npc>
			<id>203001</id>
			<name>NPC_GUARD</name>
			<title>STR_TITLE_GUARD</title>
			<npc_type>guard</npc_type>
		</client_npc>
		<client_npc><name>NO_ID</name></client_npc>
	</npcs>`)

	table := domain.NewStringTable()
	table.Add("NPC_GUARD", "Sanctum Guard", "client_strings_npc.xml")

	records, stats := NewNpcExtractor().Extract(root, "client_npc.xml", table)
	require.Len(t, records, 1)
	assert.Equal(t, 1, stats.Failed)

	rec := records[0]
	assert.Equal(t, domain.KindNpc, rec.Kind)
	assert.Equal(t, "203001", rec.ID)
	assert.Equal(t, "Sanctum Guard", rec.NameText)
	require.NotNil(t, rec.Npc)
	assert.Equal(t, "STR_TITLE_GUARD", rec.Npc.Title)
	assert.Equal(t, "guard", rec.Npc.NpcType)
}

func TestQuestExtractor_IDFromAttribute(t *testing.T) {
	root := parseDoc(t, `<quests>
		<quest id="1001">
			<name>QUEST_FIRST</name>
			<category>sanctum</category>
			<level>10</level>
		</quest>
		<quest><name>NO_ID_ATTR</name><id>9999</id></quest>
	</quests>`)

	records, stats := NewQuestExtractor().Extract(root, "quest_q.xml", domain.NewStringTable())
	require.Len(t, records, 1)
	// An id child element does not substitute for the attribute.
	assert.Equal(t, 1, stats.Failed)

	rec := records[0]
	assert.Equal(t, domain.KindQuest, rec.Kind)
	assert.Equal(t, "1001", rec.ID)
	require.NotNil(t, rec.Quest)
	assert.Equal(t, "sanctum", rec.Quest.Category)
	assert.Equal(t, "10", rec.Quest.Level)
}

func TestGenericExtractor(t *testing.T) {
	root := parseDoc(t, `<pets>
		<client_pet><id>5001</id><name>PET_NAME</name><icon_name>icon_pet</icon_name></client_pet>
	</pets>`)

	ext := NewGenericExtractor()
	assert.True(t, ext.Detect(root))
	assert.Equal(t, domain.KindGeneric, ext.Kind())

	records, stats := ext.Extract(root, "client_pets.xml", domain.NewStringTable())
	require.Len(t, records, 1)
	assert.Equal(t, 1, stats.Processed)
	require.NotNil(t, records[0].Generic)
	assert.Equal(t, "client_pet", records[0].Generic.EntityType)
	assert.Equal(t, "icon_pet", records[0].Generic.Icon)
}

func TestRegistry_Route(t *testing.T) {
	reg := NewRegistry()

	npcDoc := parseDoc(t, `<npcs><client_npc><id>1</id></client_npc></npcs>`)
	questDoc := parseDoc(t, `<quests><quest id="1"/></quests>`)
	skillDoc := parseDoc(t, `<skills><client_skill><id>1</id></client_skill></skills>`)
	unknownDoc := parseDoc(t, `<world_map><zone>abyss</zone></world_map>`)

	ext, ok := reg.Route(npcDoc)
	require.True(t, ok)
	assert.Equal(t, domain.KindNpc, ext.Kind())

	ext, ok = reg.Route(questDoc)
	require.True(t, ok)
	assert.Equal(t, domain.KindQuest, ext.Kind())

	ext, ok = reg.Route(skillDoc)
	require.True(t, ok)
	assert.Equal(t, domain.KindGeneric, ext.Kind())

	_, ok = reg.Route(unknownDoc)
	assert.False(t, ok)
}

func TestRegistry_NpcBeatsQuest(t *testing.T) {
	mixed := parseDoc(t, `<mixed><quest id="1"/><client_npc><id>2</id></client_npc></mixed>`)

	ext, ok := NewRegistry().Route(mixed)
	require.True(t, ok)
	assert.Equal(t, domain.KindNpc, ext.Kind())
}
