// Package sqlite exports a completed ResultSet to a SQLite database
// file. The export is an output artifact like the text reports: it is
// written once per run and never read back by the extractor itself.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/ant-admin92/AionDataExtractor/internal/core/domain"
	"github.com/ant-admin92/AionDataExtractor/internal/core/ports/driven"
	"github.com/ant-admin92/AionDataExtractor/internal/logger"
)

const schema = `
CREATE TABLE runs (
	id   TEXT PRIMARY KEY,
	records INTEGER NOT NULL,
	strings INTEGER NOT NULL
);

CREATE TABLE records (
	category     TEXT NOT NULL,
	position     INTEGER NOT NULL,
	id           TEXT NOT NULL,
	kind         TEXT NOT NULL,
	name_code    TEXT NOT NULL,
	name_text    TEXT NOT NULL,
	desc_code    TEXT NOT NULL,
	desc_text    TEXT NOT NULL,
	source_document        TEXT NOT NULL,
	string_source_document TEXT NOT NULL,
	PRIMARY KEY (category, id)
);

CREATE TABLE record_fields (
	category TEXT NOT NULL,
	record_id TEXT NOT NULL,
	key   TEXT NOT NULL,
	value TEXT NOT NULL
);

CREATE TABLE bucket_assignments (
	root      TEXT NOT NULL,
	leaf      TEXT NOT NULL,
	position  INTEGER NOT NULL,
	record_id TEXT NOT NULL
);
`

// Ensure Exporter implements the interface.
var _ driven.ReportSink = (*Exporter)(nil)

// Exporter writes a ResultSet to a SQLite file. An existing file at the
// path is replaced; every export is a fresh snapshot of one run.
type Exporter struct {
	path string
}

// NewExporter creates an exporter targeting the given database path.
func NewExporter(path string) *Exporter {
	return &Exporter{path: path}
}

// Write exports the result set in one transaction.
func (e *Exporter) Write(ctx context.Context, rs *domain.ResultSet) error {
	if err := os.Remove(e.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("replace database: %w", err)
	}

	db, err := sql.Open("sqlite", e.path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO runs (id, records, strings) VALUES (?, ?, ?)",
		rs.RunID, rs.TotalRecords(), rs.Strings.Len()); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	if err := e.insertRecords(ctx, tx, rs); err != nil {
		return err
	}
	if err := e.insertBuckets(ctx, tx, rs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}

	logger.Debug("exported %d records to %s", rs.TotalRecords(), e.path)
	return nil
}

func (e *Exporter) insertRecords(ctx context.Context, tx *sql.Tx, rs *domain.ResultSet) error {
	recStmt, err := tx.PrepareContext(ctx, `INSERT INTO records
		(category, position, id, kind, name_code, name_text, desc_code, desc_text,
		 source_document, string_source_document)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare record insert: %w", err)
	}
	defer recStmt.Close()

	fieldStmt, err := tx.PrepareContext(ctx,
		"INSERT INTO record_fields (category, record_id, key, value) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare field insert: %w", err)
	}
	defer fieldStmt.Close()

	for _, cat := range domain.Categories {
		for pos, rec := range rs.Records(cat) {
			if _, err := recStmt.ExecContext(ctx, string(cat), pos, rec.ID,
				rec.Kind.String(), rec.NameCode, rec.NameText, rec.DescCode,
				rec.DescText, rec.SourceDocument, rec.StringSourceDocument); err != nil {
				return fmt.Errorf("insert record %s/%s: %w", cat, rec.ID, err)
			}
			for _, field := range rec.ExtraFields() {
				if _, err := fieldStmt.ExecContext(ctx, string(cat), rec.ID,
					field.Key, field.Value); err != nil {
					return fmt.Errorf("insert field %s/%s: %w", rec.ID, field.Key, err)
				}
			}
		}
	}
	return nil
}

func (e *Exporter) insertBuckets(ctx context.Context, tx *sql.Tx, rs *domain.ResultSet) error {
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO bucket_assignments (root, leaf, position, record_id) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare bucket insert: %w", err)
	}
	defer stmt.Close()

	for _, group := range domain.TaxonomyLayout {
		for _, leaf := range group.Leaves {
			key := domain.BucketKey{Root: group.Root, Leaf: leaf}
			for pos, id := range rs.Taxonomy.Bucket(key) {
				if _, err := stmt.ExecContext(ctx, string(group.Root), string(leaf), pos, id); err != nil {
					return fmt.Errorf("insert bucket %s/%s: %w", group.Root, leaf, err)
				}
			}
		}
	}
	return nil
}
