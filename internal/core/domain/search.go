package domain

// SearchMode selects which record fields a query matches against.
type SearchMode int

const (
	// SearchByID matches the query as a case-insensitive substring of
	// the record ID.
	SearchByID SearchMode = iota

	// SearchByName matches against the resolved name or description
	// text; either matching is sufficient.
	SearchByName
)

// String returns a human-readable mode name.
func (m SearchMode) String() string {
	switch m {
	case SearchByID:
		return "by_id"
	case SearchByName:
		return "by_name"
	default:
		return "unknown"
	}
}
