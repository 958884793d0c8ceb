package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/ant-admin92/AionDataExtractor/internal/core/domain"
	"github.com/ant-admin92/AionDataExtractor/internal/core/ports/driven"
	"github.com/ant-admin92/AionDataExtractor/internal/core/ports/driving"
	"github.com/ant-admin92/AionDataExtractor/internal/extractors"
	"github.com/ant-admin92/AionDataExtractor/internal/logger"
	"github.com/ant-admin92/AionDataExtractor/internal/xmldoc"
)

// Ensure ExtractionPipeline implements the interface.
var _ driving.Pipeline = (*ExtractionPipeline)(nil)

// ExtractionPipeline runs the classification, string, item and other
// passes over a document batch, in that strict order, aggregating
// everything into one ResultSet.
//
// The whole run executes sequentially on a single background goroutine;
// nothing inside it is parallelized and the StringTable and collections
// are owned by that goroutine until the completion value is delivered.
// An instance is single-use.
type ExtractionPipeline struct {
	itemExtractor driven.Extractor
	registry      driven.ExtractorRegistry

	stage   domain.Stage
	started atomic.Bool
}

// NewExtractionPipeline creates a pipeline with the default extractors.
func NewExtractionPipeline() *ExtractionPipeline {
	return &ExtractionPipeline{
		itemExtractor: extractors.NewItemExtractor(),
		registry:      extractors.NewRegistry(),
		stage:         domain.StageIdle,
	}
}

// Run starts the pipeline over the ordered document paths and returns
// immediately. The progress channel carries ordered status messages and
// closes when the run ends; the result channel delivers the ResultSet
// exactly once, or closes without a value when the run aborts. Starting
// a consumed pipeline yields a single warning and no result.
func (p *ExtractionPipeline) Run(ctx context.Context, paths []string) (<-chan driving.Progress, <-chan *domain.ResultSet) {
	events := make(chan driving.Progress, 64)
	results := make(chan *domain.ResultSet, 1)

	if !p.started.CompareAndSwap(false, true) {
		events <- driving.Progress{Stage: p.stage, Message: domain.ErrRunConsumed.Error()}
		close(events)
		close(results)
		return events, results
	}

	go p.run(ctx, paths, events, results)
	return events, results
}

// run executes the whole pipeline. It owns all mutable state for the
// duration of the run; the caller only ever sees the emitted events and
// the final immutable ResultSet.
func (p *ExtractionPipeline) run(_ context.Context, paths []string, events chan<- driving.Progress, results chan<- *domain.ResultSet) {
	defer close(events)
	defer close(results)

	rs := domain.NewResultSet(uuid.New().String())

	// 1. CLASSIFY
	batch := p.classify(paths, events)

	// 2. MANDATORY SETS - both string and item documents must exist
	if len(batch.StringDocs) == 0 {
		p.stage = domain.StageAborted
		p.emit(events, "", "warning: %s", domain.ErrNoStringDocuments)
		return
	}
	if len(batch.ItemDocs) == 0 {
		p.stage = domain.StageAborted
		p.emit(events, "", "warning: %s", domain.ErrNoItemDocuments)
		return
	}

	// 3. STRING PASS - must fully complete before any entity pass
	p.stage = domain.StageStringPass
	p.emit(events, "", "Processing string documents...")
	p.stringPass(batch.StringDocs, rs, events)

	// 4. ITEM PASS - resolves against the completed string table
	p.stage = domain.StageItemPass
	p.emit(events, "", "Processing item documents...")
	p.itemPass(batch.ItemDocs, rs, events)

	// 5. OTHER PASS - lazy sub-routing per document
	if len(batch.OtherDocs) > 0 {
		p.stage = domain.StageOtherPass
		p.emit(events, "", "Processing other documents...")
		p.otherPass(batch.OtherDocs, rs, events)
	}

	// 6. AGGREGATE
	p.stage = domain.StageAggregating
	p.emit(events, "", "Extraction complete: %d records, %d strings",
		rs.TotalRecords(), rs.Strings.Len())

	p.stage = domain.StageDone
	results <- rs
}

// classify assigns every document to a class, emitting one progress
// message per document and a per-class summary. Malformed documents are
// reported and belong to no class.
func (p *ExtractionPipeline) classify(paths []string, events chan<- driving.Progress) *domain.ClassifiedBatch {
	p.stage = domain.StageClassifying
	p.emit(events, "", "Classifying %d documents...", len(paths))

	batch := &domain.ClassifiedBatch{}
	for _, path := range paths {
		name := filepath.Base(path)

		root, err := xmldoc.ParseFile(path)
		if err != nil {
			batch.Malformed++
			p.emit(events, name, "skipping %s: %v", name, err)
			continue
		}

		class := extractors.Classify(root)
		switch class {
		case domain.StringDocument:
			batch.StringDocs = append(batch.StringDocs, path)
		case domain.ItemDocument:
			batch.ItemDocs = append(batch.ItemDocs, path)
		case domain.OtherDocument:
			batch.OtherDocs = append(batch.OtherDocs, path)
		}
		p.emit(events, name, "%s document: %s", class, name)
	}

	p.emit(events, "", "Classification complete: %d string, %d item, %d other",
		len(batch.StringDocs), len(batch.ItemDocs), len(batch.OtherDocs))
	return batch
}

// stringPass builds the string table from every string document, in
// classification order. Re-parse failures at this stage are reported
// and the document skipped; last-write-wins applies across documents.
func (p *ExtractionPipeline) stringPass(paths []string, rs *domain.ResultSet, events chan<- driving.Progress) {
	for _, path := range paths {
		name := filepath.Base(path)

		root, err := xmldoc.ParseFile(path)
		if err != nil {
			p.emit(events, name, "skipping %s: %v", name, err)
			continue
		}

		count := extractors.BuildStrings(root, name, rs.Strings)
		p.emit(events, name, "strings processed: %d (%s)", count, name)
	}
}

// itemPass extracts and categorizes items from every item document.
// Each resolved item is stored by ID (duplicates overwrite) and
// assigned to its taxonomy bucket; unmatched material items are
// assigned nowhere.
func (p *ExtractionPipeline) itemPass(paths []string, rs *domain.ResultSet, events chan<- driving.Progress) {
	for _, path := range paths {
		name := filepath.Base(path)

		root, err := xmldoc.ParseFile(path)
		if err != nil {
			p.emit(events, name, "skipping %s: %v", name, err)
			continue
		}

		records, stats := p.itemExtractor.Extract(root, name, rs.Strings)
		for i := range records {
			rec := &records[i]
			rs.Put(rec)
			if key, ok := domain.Categorize(rec); ok {
				rs.Taxonomy.Assign(key, rec.ID)
			}
		}
		p.emit(events, name, "items processed: %d (failed: %d)", stats.Processed, stats.Failed)
	}
}

// otherPass routes each remaining document to the first extractor whose
// entity shape it contains, or ignores it. Unlike the up-front
// string/item classification this routing happens per document, here.
func (p *ExtractionPipeline) otherPass(paths []string, rs *domain.ResultSet, events chan<- driving.Progress) {
	for _, path := range paths {
		name := filepath.Base(path)

		root, err := xmldoc.ParseFile(path)
		if err != nil {
			p.emit(events, name, "skipping %s: %v", name, err)
			continue
		}

		extractor, ok := p.registry.Route(root)
		if !ok {
			logger.Debug("no recognized entity shape in %s, ignoring", name)
			continue
		}

		records, stats := extractor.Extract(root, name, rs.Strings)
		for i := range records {
			rs.Put(&records[i])
		}
		p.emit(events, name, "%ss processed: %d (failed: %d)",
			extractor.Kind(), stats.Processed, stats.Failed)
	}
}

// emit sends one progress event and mirrors it to the verbose log.
func (p *ExtractionPipeline) emit(events chan<- driving.Progress, document, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	logger.Debug("%s", msg)
	events <- driving.Progress{Stage: p.stage, Document: document, Message: msg}
}
