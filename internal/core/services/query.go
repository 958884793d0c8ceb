package services

import (
	"context"
	"strings"

	"github.com/ant-admin92/AionDataExtractor/internal/core/domain"
	"github.com/ant-admin92/AionDataExtractor/internal/core/ports/driving"
	"github.com/ant-admin92/AionDataExtractor/internal/logger"
)

// Ensure QueryEngine implements the interface.
var _ driving.QueryService = (*QueryEngine)(nil)

// QueryEngine answers lookups against one completed ResultSet. The
// result set is immutable by the time the engine sees it, so reads need
// no locking.
type QueryEngine struct {
	rs *domain.ResultSet
}

// NewQueryEngine creates a query engine over a completed result set.
func NewQueryEngine(rs *domain.ResultSet) *QueryEngine {
	return &QueryEngine{rs: rs}
}

// Search returns the records in a category matching the query, in the
// category's insertion order. Matching is case-insensitive substring
// containment: SearchByID against the record ID, SearchByName against
// the resolved name or description (either suffices). An empty query
// matches everything; an unknown category yields an empty result.
func (e *QueryEngine) Search(_ context.Context, category domain.Category, query string, mode domain.SearchMode) []*domain.Record {
	needle := strings.ToLower(strings.TrimSpace(query))
	logger.Debug("search %s: %q (%s)", category, needle, mode)

	var matched []*domain.Record
	for _, rec := range e.rs.Records(category) {
		if e.matches(rec, needle, mode) {
			matched = append(matched, rec)
		}
	}

	logger.Debug("search %s: %d results", category, len(matched))
	return matched
}

func (e *QueryEngine) matches(rec *domain.Record, needle string, mode domain.SearchMode) bool {
	switch mode {
	case domain.SearchByID:
		return strings.Contains(strings.ToLower(rec.ID), needle)
	case domain.SearchByName:
		return strings.Contains(strings.ToLower(rec.NameText), needle) ||
			strings.Contains(strings.ToLower(rec.DescText), needle)
	default:
		return false
	}
}
