package domain

import "strings"

// RootCategory is the first level of the item taxonomy.
type RootCategory string

const (
	// CategoryEquipment groups wearable items.
	CategoryEquipment RootCategory = "equipment"
	// CategoryConsumable groups single-use items.
	CategoryConsumable RootCategory = "consumable"
	// CategoryMaterial groups crafting and enhancement inputs.
	CategoryMaterial RootCategory = "material"
	// CategoryMisc groups everything else.
	CategoryMisc RootCategory = "other"
)

// LeafBucket is the second level of the item taxonomy.
type LeafBucket string

const (
	BucketArmor     LeafBucket = "armor"
	BucketWeapon    LeafBucket = "weapon"
	BucketAccessory LeafBucket = "accessory"
	BucketWing      LeafBucket = "wing"
	BucketPotion    LeafBucket = "potion"
	BucketScroll    LeafBucket = "scroll"
	BucketFood      LeafBucket = "food"
	BucketCraft     LeafBucket = "craft"
	BucketEnchant   LeafBucket = "enchant"
	BucketQuest     LeafBucket = "quest"
	BucketEvent     LeafBucket = "event"
	BucketOther     LeafBucket = "misc"
)

// BucketKey identifies one taxonomy leaf. The same leaf name can appear
// under different roots (material/quest vs other/quest).
type BucketKey struct {
	Root RootCategory
	Leaf LeafBucket
}

// TaxonomyLayout is the fixed tree shape, in report order.
var TaxonomyLayout = []struct {
	Root   RootCategory
	Leaves []LeafBucket
}{
	{CategoryEquipment, []LeafBucket{BucketArmor, BucketWeapon, BucketAccessory, BucketWing}},
	{CategoryConsumable, []LeafBucket{BucketPotion, BucketScroll, BucketFood}},
	{CategoryMaterial, []LeafBucket{BucketCraft, BucketEnchant, BucketQuest}},
	{CategoryMisc, []LeafBucket{BucketQuest, BucketEvent, BucketOther}},
}

// Categorize assigns an item record to its taxonomy leaf using ordered
// case-insensitive substring rules over item_type and category. First
// match wins. A material item whose category matches none of
// craft/enchant/quest is assigned nowhere and false is returned; this
// fall-through mirrors the game client's own data and is deliberate.
func Categorize(r *Record) (BucketKey, bool) {
	if r.Kind != KindItem || r.Item == nil {
		return BucketKey{}, false
	}
	itemType := strings.ToLower(r.Item.ItemType)
	category := strings.ToLower(r.Item.Category)

	switch {
	case strings.Contains(itemType, "armor") || strings.Contains(itemType, "shield"):
		return BucketKey{CategoryEquipment, BucketArmor}, true
	case strings.Contains(itemType, "weapon"):
		return BucketKey{CategoryEquipment, BucketWeapon}, true
	case strings.Contains(itemType, "accessory"):
		return BucketKey{CategoryEquipment, BucketAccessory}, true
	case strings.Contains(itemType, "wing"):
		return BucketKey{CategoryEquipment, BucketWing}, true
	case strings.Contains(itemType, "potion"):
		return BucketKey{CategoryConsumable, BucketPotion}, true
	case strings.Contains(itemType, "scroll"):
		return BucketKey{CategoryConsumable, BucketScroll}, true
	case strings.Contains(itemType, "food"):
		return BucketKey{CategoryConsumable, BucketFood}, true
	case strings.Contains(itemType, "material"):
		switch {
		case strings.Contains(category, "craft"):
			return BucketKey{CategoryMaterial, BucketCraft}, true
		case strings.Contains(category, "enchant"):
			return BucketKey{CategoryMaterial, BucketEnchant}, true
		case strings.Contains(category, "quest"):
			return BucketKey{CategoryMaterial, BucketQuest}, true
		}
		// Unmatched material items fall through unbucketed.
		return BucketKey{}, false
	case strings.Contains(category, "quest"):
		return BucketKey{CategoryMisc, BucketQuest}, true
	case strings.Contains(category, "event"):
		return BucketKey{CategoryMisc, BucketEvent}, true
	default:
		return BucketKey{CategoryMisc, BucketOther}, true
	}
}

// Taxonomy holds bucket assignments for one run. Buckets reference
// records by ID; the records themselves are owned by the ResultSet.
type Taxonomy struct {
	buckets map[BucketKey][]string
}

// NewTaxonomy creates an empty taxonomy.
func NewTaxonomy() *Taxonomy {
	return &Taxonomy{buckets: make(map[BucketKey][]string)}
}

// Assign appends a record ID to a bucket.
func (t *Taxonomy) Assign(key BucketKey, recordID string) {
	t.buckets[key] = append(t.buckets[key], recordID)
}

// Bucket returns the record IDs assigned to a leaf, in assignment order.
func (t *Taxonomy) Bucket(key BucketKey) []string {
	return t.buckets[key]
}
