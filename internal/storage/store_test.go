package storage_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/saadjs/lifelog/internal/db"
	"github.com/saadjs/lifelog/internal/storage"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	sqldb, err := db.OpenAndMigrate(filepath.Join(t.TempDir(), "lifelog.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })
	return sqldb
}

func exerciseStore(t *testing.T, s storage.Store) {
	t.Helper()

	if _, ok, err := s.Load(storage.NutritionKey); err != nil || ok {
		t.Fatalf("expected missing document, got ok=%v err=%v", ok, err)
	}

	if err := s.Save(storage.NutritionKey, []byte(`{"waterIntake":1}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save(storage.NutritionKey, []byte(`{"waterIntake":2}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if err := s.Save(storage.FitnessKey, []byte(`{}`)); err != nil {
		t.Fatalf("save fitness: %v", err)
	}

	got, ok, err := s.Load(storage.NutritionKey)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if string(got) != `{"waterIntake":2}` {
		t.Fatalf("expected overwritten document, got %s", got)
	}

	if err := s.Save("  ", []byte(`{}`)); err == nil {
		t.Fatalf("expected empty key to fail")
	}
}

func TestSQLiteStore(t *testing.T) {
	t.Parallel()
	exerciseStore(t, storage.NewSQLiteStore(newTestDB(t)))
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	exerciseStore(t, storage.NewMemoryStore())
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "lifelog.db")

	first, err := db.OpenAndMigrate(path)
	if err != nil {
		t.Fatalf("open first: %v", err)
	}
	if err := storage.NewSQLiteStore(first).Save(storage.ProductivityKey, []byte(`{"tasks":[]}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	_ = first.Close()

	second, err := db.OpenAndMigrate(path)
	if err != nil {
		t.Fatalf("open second: %v", err)
	}
	defer second.Close()
	got, ok, err := storage.NewSQLiteStore(second).Load(storage.ProductivityKey)
	if err != nil || !ok {
		t.Fatalf("load after reopen: ok=%v err=%v", ok, err)
	}
	if string(got) != `{"tasks":[]}` {
		t.Fatalf("unexpected document: %s", got)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if err := storage.SetConfig(sqldb, " AI_Endpoint ", " http://localhost:9999/llm "); err != nil {
		t.Fatalf("set config: %v", err)
	}
	value, ok, err := storage.GetConfig(sqldb, storage.ConfigAIEndpoint)
	if err != nil || !ok {
		t.Fatalf("get config: ok=%v err=%v", ok, err)
	}
	if value != "http://localhost:9999/llm" {
		t.Fatalf("expected trimmed value, got %q", value)
	}

	if _, ok, err := storage.GetConfig(sqldb, storage.ConfigLogLevel); err != nil || ok {
		t.Fatalf("expected unset key, got ok=%v err=%v", ok, err)
	}

	all, err := storage.ListConfig(sqldb)
	if err != nil {
		t.Fatalf("list config: %v", err)
	}
	if len(all) != 1 || all[storage.ConfigAIEndpoint] == "" {
		t.Fatalf("unexpected config listing: %v", all)
	}
	if !storage.IsKnownConfigKey("LOG_LEVEL") || storage.IsKnownConfigKey("barcode_provider") {
		t.Fatalf("unexpected known-key classification")
	}
}
