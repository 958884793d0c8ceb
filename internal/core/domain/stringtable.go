package domain

// StringEntry maps a symbolic code to localized text, together with the
// document it was read from.
type StringEntry struct {
	// Code is the symbolic key item/npc/quest records reference.
	Code string

	// Text is the localized text.
	Text string

	// Source is the document the entry came from. Under last-write-wins
	// the provenance moves with the overwriting entry.
	Source string
}

// StringTable is the code-to-text mapping built during the string pass.
// It is exclusively owned by one pipeline run and is never mutated after
// the string pass completes.
type StringTable struct {
	entries map[string]StringEntry
}

// NewStringTable creates an empty string table.
func NewStringTable() *StringTable {
	return &StringTable{entries: make(map[string]StringEntry)}
}

// Add inserts an entry. A later entry with the same code overwrites the
// earlier one, including its provenance.
func (t *StringTable) Add(code, text, source string) {
	t.entries[code] = StringEntry{Code: code, Text: text, Source: source}
}

// Resolve returns the stored text for code, or code itself when absent.
// Callers never receive an empty result for a non-empty code.
func (t *StringTable) Resolve(code string) string {
	if entry, ok := t.entries[code]; ok {
		return entry.Text
	}
	return code
}

// Lookup returns the entry for code and whether it exists. Used when the
// caller needs provenance as well as text.
func (t *StringTable) Lookup(code string) (StringEntry, bool) {
	entry, ok := t.entries[code]
	return entry, ok
}

// Len returns the number of distinct codes in the table.
func (t *StringTable) Len() int {
	return len(t.entries)
}
