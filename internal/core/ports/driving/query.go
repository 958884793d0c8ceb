package driving

import (
	"context"

	"github.com/ant-admin92/AionDataExtractor/internal/core/domain"
)

// QueryService answers ad-hoc lookups against a completed ResultSet.
type QueryService interface {
	// Search returns the records in a category matching the query under
	// the given mode, in the category's insertion order. An empty query
	// matches every record; an unknown category yields an empty result,
	// not an error.
	Search(ctx context.Context, category domain.Category, query string, mode domain.SearchMode) []*domain.Record
}
