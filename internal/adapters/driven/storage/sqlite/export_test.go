package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ant-admin92/AionDataExtractor/internal/core/domain"
)

func exportFixture() *domain.ResultSet {
	rs := domain.NewResultSet("run-42")
	rs.Strings.Add("ITEM_SWORD_NAME", "Iron Sword", "strings.xml")
	rs.Put(&domain.Record{
		Kind:                 domain.KindItem,
		ID:                   "700000",
		NameCode:             "ITEM_SWORD_NAME",
		NameText:             "Iron Sword",
		DescCode:             domain.Unknown,
		DescText:             domain.Unknown,
		SourceDocument:       "items.xml",
		StringSourceDocument: "strings.xml",
		Item:                 &domain.ItemDetails{ItemType: "weapon_sword"},
	})
	rs.Put(&domain.Record{
		Kind:           domain.KindNpc,
		ID:             "203001",
		SourceDocument: "npcs.xml",
		Npc:            &domain.NpcDetails{NpcType: "guard"},
	})
	rs.Taxonomy.Assign(domain.BucketKey{Root: domain.CategoryEquipment, Leaf: domain.BucketWeapon}, "700000")
	return rs
}

func openExport(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestExporter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.db")
	require.NoError(t, NewExporter(path).Write(context.Background(), exportFixture()))

	db := openExport(t, path)

	var runID string
	var records, strings int
	err := db.QueryRow("SELECT id, records, strings FROM runs").Scan(&runID, &records, &strings)
	require.NoError(t, err)
	assert.Equal(t, "run-42", runID)
	assert.Equal(t, 2, records)
	assert.Equal(t, 1, strings)

	var nameText, source string
	err = db.QueryRow(
		"SELECT name_text, string_source_document FROM records WHERE category = 'items' AND id = '700000'",
	).Scan(&nameText, &source)
	require.NoError(t, err)
	assert.Equal(t, "Iron Sword", nameText)
	assert.Equal(t, "strings.xml", source)

	var fieldValue string
	err = db.QueryRow(
		"SELECT value FROM record_fields WHERE record_id = '700000' AND key = 'type'",
	).Scan(&fieldValue)
	require.NoError(t, err)
	assert.Equal(t, "weapon_sword", fieldValue)

	var bucketID string
	err = db.QueryRow(
		"SELECT record_id FROM bucket_assignments WHERE root = 'equipment' AND leaf = 'weapon' AND position = 0",
	).Scan(&bucketID)
	require.NoError(t, err)
	assert.Equal(t, "700000", bucketID)
}

func TestExporter_ReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.db")
	exporter := NewExporter(path)

	require.NoError(t, exporter.Write(context.Background(), exportFixture()))

	// A second export to the same path replaces the snapshot wholesale.
	second := domain.NewResultSet("run-43")
	second.Put(&domain.Record{
		Kind:           domain.KindItem,
		ID:             "1",
		SourceDocument: "items.xml",
		Item:           &domain.ItemDetails{},
	})
	require.NoError(t, NewExporter(path).Write(context.Background(), second))

	db := openExport(t, path)
	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count))
	assert.Equal(t, 1, count)

	var runID string
	require.NoError(t, db.QueryRow("SELECT id FROM runs").Scan(&runID))
	assert.Equal(t, "run-43", runID)
}
