package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemRecord(itemType, category string) *Record {
	return &Record{
		Kind: KindItem,
		ID:   "700000",
		Item: &ItemDetails{ItemType: itemType, Category: category},
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name     string
		itemType string
		category string
		want     BucketKey
		bucketed bool
	}{
		{"armor", "heavy_armor", "", BucketKey{CategoryEquipment, BucketArmor}, true},
		{"shield counts as armor", "shield", "", BucketKey{CategoryEquipment, BucketArmor}, true},
		{"weapon", "weapon_sword", "", BucketKey{CategoryEquipment, BucketWeapon}, true},
		{"accessory", "accessory_ring", "", BucketKey{CategoryEquipment, BucketAccessory}, true},
		{"wing", "wing", "", BucketKey{CategoryEquipment, BucketWing}, true},
		{"potion", "potion", "", BucketKey{CategoryConsumable, BucketPotion}, true},
		{"scroll", "scroll", "", BucketKey{CategoryConsumable, BucketScroll}, true},
		{"food", "food", "", BucketKey{CategoryConsumable, BucketFood}, true},
		{"material craft", "material", "craft_stone", BucketKey{CategoryMaterial, BucketCraft}, true},
		{"material enchant", "material", "enchant", BucketKey{CategoryMaterial, BucketEnchant}, true},
		{"material quest", "material", "quest_drop", BucketKey{CategoryMaterial, BucketQuest}, true},
		{"quest item", "etc", "quest", BucketKey{CategoryMisc, BucketQuest}, true},
		{"event item", "etc", "event_coin", BucketKey{CategoryMisc, BucketEvent}, true},
		{"default misc", "etc", "junk", BucketKey{CategoryMisc, BucketOther}, true},
		{"case insensitive", "WEAPON_POLEARM", "", BucketKey{CategoryEquipment, BucketWeapon}, true},
		// "armor" appears before "weapon" in the rule order, so a type
		// containing both matches armor.
		{"armor beats weapon", "armor_weapon", "craft", BucketKey{CategoryEquipment, BucketArmor}, true},
		// A material item whose category matches no sub-rule goes nowhere.
		{"material fall-through", "material_x", "misc", BucketKey{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := Categorize(itemRecord(tt.itemType, tt.category))
			assert.Equal(t, tt.bucketed, ok)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestCategorize_NonItem(t *testing.T) {
	_, ok := Categorize(&Record{Kind: KindNpc, ID: "1", Npc: &NpcDetails{}})
	assert.False(t, ok)
}

func TestTaxonomy_AssignOrder(t *testing.T) {
	tax := NewTaxonomy()
	key := BucketKey{CategoryEquipment, BucketWeapon}
	tax.Assign(key, "700000")
	tax.Assign(key, "700001")
	tax.Assign(key, "700000")

	// Assignments are appended, not deduplicated.
	require.Equal(t, []string{"700000", "700001", "700000"}, tax.Bucket(key))
	assert.Empty(t, tax.Bucket(BucketKey{CategoryEquipment, BucketArmor}))
}

func TestTaxonomyLayout_QuestLeafUnderTwoRoots(t *testing.T) {
	roots := make(map[RootCategory]bool)
	for _, node := range TaxonomyLayout {
		for _, leaf := range node.Leaves {
			if leaf == BucketQuest {
				roots[node.Root] = true
			}
		}
	}
	assert.True(t, roots[CategoryMaterial])
	assert.True(t, roots[CategoryMisc])
}
