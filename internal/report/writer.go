// Package report serializes a completed ResultSet to the fixed text
// report layout the original tooling produced. The layout, including
// its Korean labels, is a compatibility contract: downstream consumers
// parse these files.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ant-admin92/AionDataExtractor/internal/core/domain"
	"github.com/ant-admin92/AionDataExtractor/internal/core/ports/driven"
	"github.com/ant-admin92/AionDataExtractor/internal/logger"
)

// Ensure Writer implements the interface.
var _ driven.ReportSink = (*Writer)(nil)

// Writer writes one <category>_info.txt per non-empty category plus
// item_subcategories.txt into an output directory.
type Writer struct {
	dir string
}

// NewWriter creates a report writer for the given output directory.
// The directory is created on the first write.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Write serializes the result set. Categories without records produce
// no file.
func (w *Writer) Write(_ context.Context, rs *domain.ResultSet) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	for _, cat := range domain.Categories {
		records := rs.Records(cat)
		if len(records) == 0 {
			continue
		}
		path := filepath.Join(w.dir, fmt.Sprintf("%s_info.txt", cat))
		if err := w.writeCategory(path, cat, records); err != nil {
			return fmt.Errorf("write %s report: %w", cat, err)
		}
		logger.Debug("wrote %s (%d records)", path, len(records))
	}

	path := filepath.Join(w.dir, "item_subcategories.txt")
	if err := w.writeSubcategories(path, rs); err != nil {
		return fmt.Errorf("write subcategory report: %w", err)
	}
	return nil
}

func (w *Writer) writeCategory(path string, cat domain.Category, records []*domain.Record) error {
	var b strings.Builder

	fmt.Fprintf(&b, "=== %s 정보 ===\n\n", strings.ToUpper(string(cat)))
	fmt.Fprintf(&b, "총 %d개 항목\n", len(records))
	b.WriteString(strings.Repeat("-", 50) + "\n\n")

	for _, rec := range records {
		writeRecord(&b, rec)
		for _, field := range rec.ExtraFields() {
			fmt.Fprintf(&b, "%s: %s\n", field.Key, field.Value)
		}
		b.WriteString(strings.Repeat("-", 30) + "\n")
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func (w *Writer) writeSubcategories(path string, rs *domain.ResultSet) error {
	var b strings.Builder

	b.WriteString("=== 아이템 상세 분류 ===\n\n")

	for _, group := range domain.TaxonomyLayout {
		fmt.Fprintf(&b, "\n=== %s ===\n", group.Root)
		for _, leaf := range group.Leaves {
			ids := rs.Taxonomy.Bucket(domain.BucketKey{Root: group.Root, Leaf: leaf})
			if len(ids) == 0 {
				continue
			}
			fmt.Fprintf(&b, "\n--- %s (%d개) ---\n", leaf, len(ids))
			for _, id := range ids {
				rec := rs.Record(domain.CategoryItems, id)
				if rec == nil {
					continue
				}
				b.WriteString("\n")
				writeRecord(&b, rec)
				b.WriteString(strings.Repeat("-", 20) + "\n")
			}
		}
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// writeRecord writes the common id/name/description block. The code
// lines appear only when the record carries codes.
func writeRecord(b *strings.Builder, rec *domain.Record) {
	fmt.Fprintf(b, "ID: %s\n", rec.ID)
	if rec.NameCode != "" {
		fmt.Fprintf(b, "이름 코드: %s\n", rec.NameCode)
		fmt.Fprintf(b, "이름: %s\n", rec.NameText)
	}
	if rec.DescCode != "" {
		fmt.Fprintf(b, "설명 코드: %s\n", rec.DescCode)
		fmt.Fprintf(b, "설명: %s\n", rec.DescText)
	}
}
