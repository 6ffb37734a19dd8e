package db_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/saadjs/lifelog/internal/db"
)

func TestApplyMigrationsIdempotent(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "lifelog.db")
	sqldb, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("first apply migrations: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("second apply migrations: %v", err)
	}

	var migrationCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM schema_migrations`).Scan(&migrationCount); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if migrationCount != 2 {
		t.Fatalf("expected 2 migration versions, got %d", migrationCount)
	}

	for _, table := range []string{"kv_documents", "app_config"} {
		var count int
		if err := sqldb.QueryRow(`SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&count); err != nil {
			t.Fatalf("check %s table: %v", table, err)
		}
		if count != 1 {
			t.Fatalf("expected %s table to exist", table)
		}
	}

	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("expected db file to exist: %v", err)
	}
}

func TestOpenAndMigrateReturnsReadyDatabase(t *testing.T) {
	t.Parallel()

	sqldb, err := db.OpenAndMigrate(filepath.Join(t.TempDir(), "lifelog.db"))
	if err != nil {
		t.Fatalf("open and migrate: %v", err)
	}
	defer sqldb.Close()

	if _, err := sqldb.Exec(`INSERT INTO kv_documents(key, value) VALUES('probe', '{}')`); err != nil {
		t.Fatalf("insert into kv_documents: %v", err)
	}
}
