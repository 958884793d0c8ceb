package driven

import (
	"context"

	"github.com/ant-admin92/AionDataExtractor/internal/core/domain"
)

// ReportSink persists a completed ResultSet. Implementations include
// the fixed-layout text report writer and the SQLite exporter. Sinks
// only ever see an immutable result set after the run completes.
type ReportSink interface {
	Write(ctx context.Context, rs *domain.ResultSet) error
}
