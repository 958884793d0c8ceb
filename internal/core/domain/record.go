package domain

// Unknown is the sentinel used for absent optional fields and for
// provenance that could not be determined. Downstream reporting and
// search treat it as literal displayable text, never as null.
const Unknown = "Unknown"

// RecordKind discriminates the Record variants.
type RecordKind int

const (
	// KindItem is an item definition.
	KindItem RecordKind = iota

	// KindNpc is an NPC definition.
	KindNpc

	// KindQuest is a quest definition.
	KindQuest

	// KindGeneric is any other recognized entity (pet, skill, title,
	// housing object).
	KindGeneric
)

// String returns a human-readable kind name.
func (k RecordKind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindNpc:
		return "npc"
	case KindQuest:
		return "quest"
	case KindGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// Record is a resolved game entity. Exactly one of Item, Npc and Quest
// is set according to Kind; a generic record carries only Generic.
type Record struct {
	// Kind selects the variant.
	Kind RecordKind

	// ID is the entity identifier. A record without one is never created.
	ID string

	// NameCode is the symbolic string code for the name, or Unknown.
	NameCode string

	// NameText is the resolved name. When the code is not in the string
	// table this is the code itself (identity fallback), never empty.
	NameText string

	// DescCode is the symbolic string code for the description, or Unknown.
	DescCode string

	// DescText is the resolved description, identity fallback applies.
	DescText string

	// SourceDocument is the document this record was extracted from.
	SourceDocument string

	// StringSourceDocument is the provenance of the resolved name, or of
	// the resolved description when the name code was not in the table,
	// or Unknown when neither was.
	StringSourceDocument string

	// Item holds item-only fields when Kind == KindItem.
	Item *ItemDetails

	// Npc holds NPC-only fields when Kind == KindNpc.
	Npc *NpcDetails

	// Quest holds quest-only fields when Kind == KindQuest.
	Quest *QuestDetails

	// Generic holds generic-only fields when Kind == KindGeneric.
	Generic *GenericDetails
}

// ItemDetails are the item-only record fields.
type ItemDetails struct {
	Icon           string
	ItemType       string
	Quality        string
	Level          string
	EquipmentSlots string
	Category       string
}

// NpcDetails are the NPC-only record fields.
type NpcDetails struct {
	Title   string
	Icon    string
	NpcType string
}

// QuestDetails are the quest-only record fields.
type QuestDetails struct {
	Category string
	Level    string
}

// GenericDetails are the fields of a generic entity record.
type GenericDetails struct {
	Icon string

	// EntityType is the element name the record came from, e.g.
	// "client_pet" or "client_skill".
	EntityType string
}

// Field is a key/value pair for report output.
type Field struct {
	Key   string
	Value string
}

// ExtraFields returns the kind-specific fields in report order, after
// the common id/name/description block.
func (r *Record) ExtraFields() []Field {
	var fields []Field
	switch r.Kind {
	case KindItem:
		fields = []Field{
			{"icon", r.Item.Icon},
			{"type", r.Item.ItemType},
			{"quality", r.Item.Quality},
			{"level", r.Item.Level},
			{"equipment_slots", r.Item.EquipmentSlots},
			{"category", r.Item.Category},
		}
	case KindNpc:
		fields = []Field{
			{"title", r.Npc.Title},
			{"icon", r.Npc.Icon},
			{"type", r.Npc.NpcType},
		}
	case KindQuest:
		fields = []Field{
			{"category", r.Quest.Category},
			{"level", r.Quest.Level},
		}
	case KindGeneric:
		fields = []Field{
			{"icon", r.Generic.Icon},
			{"type", r.Generic.EntityType},
		}
	}
	fields = append(fields,
		Field{"file", r.SourceDocument},
		Field{"string_file", r.StringSourceDocument},
	)
	return fields
}
