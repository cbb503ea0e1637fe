package sqlitemigrate

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	sqlDB, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return sqlDB
}

func TestApplyMigrationsRunsEachFileOnce(t *testing.T) {
	migrationFS := fstest.MapFS{
		"0001_init.sql": &fstest.MapFile{
			Data: []byte("CREATE TABLE widgets (id TEXT PRIMARY KEY);"),
		},
		"0002_more.sql": &fstest.MapFile{
			Data: []byte("ALTER TABLE widgets ADD COLUMN name TEXT;"),
		},
	}

	sqlDB := openTestDB(t)
	if err := ApplyMigrations(sqlDB, migrationFS); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	// A second run must be a no-op rather than failing on existing tables.
	if err := ApplyMigrations(sqlDB, migrationFS); err != nil {
		t.Fatalf("reapply migrations: %v", err)
	}

	var count int
	err := sqlDB.QueryRow("SELECT COUNT(1) FROM schema_migrations").Scan(&count)
	if err != nil {
		t.Fatalf("count applied migrations: %v", err)
	}
	if count != 2 {
		t.Fatalf("applied %d migrations, want 2", count)
	}

	if _, err := sqlDB.Exec("INSERT INTO widgets (id, name) VALUES ('w1', 'gear')"); err != nil {
		t.Fatalf("schema not migrated: %v", err)
	}
}

func TestApplyMigrationsRequiresDB(t *testing.T) {
	if err := ApplyMigrations(nil, fstest.MapFS{}); err == nil {
		t.Fatal("expected error for nil db")
	}
}
