package domain

// Category names a per-kind record collection within a ResultSet.
type Category string

const (
	// CategoryItems holds item records.
	CategoryItems Category = "items"
	// CategoryNpcs holds NPC records.
	CategoryNpcs Category = "npcs"
	// CategoryQuests holds quest records.
	CategoryQuests Category = "quests"
	// CategoryGeneric holds generic entity records (pets, skills,
	// titles, housing).
	CategoryGeneric Category = "other"
)

// Categories lists all collections in report order.
var Categories = []Category{CategoryItems, CategoryNpcs, CategoryQuests, CategoryGeneric}

// CategoryForKind maps a record kind to its collection.
func CategoryForKind(k RecordKind) Category {
	switch k {
	case KindItem:
		return CategoryItems
	case KindNpc:
		return CategoryNpcs
	case KindQuest:
		return CategoryQuests
	default:
		return CategoryGeneric
	}
}

// collection stores records keyed by ID in insertion order. A duplicate
// ID overwrites the stored record but keeps its original position.
type collection struct {
	records map[string]*Record
	order   []string
}

func newCollection() *collection {
	return &collection{records: make(map[string]*Record)}
}

func (c *collection) put(r *Record) {
	if _, exists := c.records[r.ID]; !exists {
		c.order = append(c.order, r.ID)
	}
	c.records[r.ID] = r
}

// ResultSet owns everything one extraction run produced: the per-kind
// record collections, the taxonomy bucket assignments and the string
// table used for resolution. It is created once per run, is immutable
// once the run completes, and is the only state the caller sees.
type ResultSet struct {
	// RunID uniquely identifies the producing run.
	RunID string

	// Taxonomy holds the item bucket assignments.
	Taxonomy *Taxonomy

	// Strings is the table records were resolved against.
	Strings *StringTable

	collections map[Category]*collection
}

// NewResultSet creates an empty result set for one run.
func NewResultSet(runID string) *ResultSet {
	return &ResultSet{
		RunID:       runID,
		Taxonomy:    NewTaxonomy(),
		Strings:     NewStringTable(),
		collections: make(map[Category]*collection),
	}
}

// Put stores a record in its kind's collection, overwriting an earlier
// record with the same ID.
func (rs *ResultSet) Put(r *Record) {
	cat := CategoryForKind(r.Kind)
	c, ok := rs.collections[cat]
	if !ok {
		c = newCollection()
		rs.collections[cat] = c
	}
	c.put(r)
}

// Records returns a category's records in insertion order. An unknown
// or empty category yields an empty slice, never an error.
func (rs *ResultSet) Records(cat Category) []*Record {
	c, ok := rs.collections[cat]
	if !ok {
		return nil
	}
	out := make([]*Record, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.records[id])
	}
	return out
}

// Record returns one record by ID, or nil when absent.
func (rs *ResultSet) Record(cat Category, id string) *Record {
	c, ok := rs.collections[cat]
	if !ok {
		return nil
	}
	return c.records[id]
}

// Len returns the number of records in a category.
func (rs *ResultSet) Len(cat Category) int {
	c, ok := rs.collections[cat]
	if !ok {
		return 0
	}
	return len(c.order)
}

// TotalRecords returns the number of records across all categories.
func (rs *ResultSet) TotalRecords() int {
	total := 0
	for _, c := range rs.collections {
		total += len(c.order)
	}
	return total
}
