package driving

import (
	"context"

	"github.com/ant-admin92/AionDataExtractor/internal/core/domain"
)

// Progress is one human-readable status message from a pipeline run.
// Messages arrive in order; callers must not assume anything about
// timing beyond that order.
type Progress struct {
	// Stage is the pipeline state the message was emitted from.
	Stage domain.Stage

	// Document is the file the message concerns, when it concerns one.
	Document string

	// Message is the display text.
	Message string
}

// Pipeline runs the extraction over an ordered document batch.
//
// Run starts the whole pipeline as one sequential unit of work on a
// background goroutine and returns immediately. The progress channel
// carries ordered status messages and is closed when the run ends. The
// result channel delivers the ResultSet exactly once on success and is
// closed without a value when the run aborts; there is no structured
// error and no cancellation once started. A Pipeline instance is
// single-use.
type Pipeline interface {
	Run(ctx context.Context, paths []string) (<-chan Progress, <-chan *domain.ResultSet)
}
