package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/saadjs/lifelog/internal/ai"
	"github.com/saadjs/lifelog/internal/db"
	"github.com/saadjs/lifelog/internal/storage"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigLayersFileThenEnv(t *testing.T) {
	path := writeConfigFile(t, "db: /tmp/from-file.db\nai_endpoint: http://file.local/llm\nai_timeout: 5s\nlog_level: info\n")
	t.Setenv(EnvDBPath, "")
	t.Setenv(EnvAIURL, "")
	t.Setenv(EnvAITimeout, "12s")
	t.Setenv(EnvLogLevel, "DEBUG")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DBPath != "/tmp/from-file.db" {
		t.Fatalf("expected db from file, got %q", cfg.DBPath)
	}
	if cfg.AIEndpoint != "http://file.local/llm" {
		t.Fatalf("expected endpoint from file, got %q", cfg.AIEndpoint)
	}
	if cfg.AITimeout != 12*time.Second {
		t.Fatalf("expected env timeout to win, got %s", cfg.AITimeout)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected lowercased env level, got %q", cfg.LogLevel)
	}
}

func TestLoadConfigExplicitMissingFileFails(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected missing explicit config file to fail")
	}
}

func TestLoadConfigRejectsBadTimeout(t *testing.T) {
	path := writeConfigFile(t, "ai_timeout: soon\n")
	t.Setenv(EnvAITimeout, "")
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected invalid timeout to fail")
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	if cfg.AIEndpoint != ai.DefaultBaseURL || cfg.AITimeout != DefaultAITimeout || cfg.LogLevel != "warn" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestApplyStoredOverridesConfig(t *testing.T) {
	t.Parallel()
	sqldb, err := db.OpenAndMigrate(filepath.Join(t.TempDir(), "lifelog.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()

	if err := storage.SetConfig(sqldb, storage.ConfigAIEndpoint, "http://stored.local/llm"); err != nil {
		t.Fatalf("set config: %v", err)
	}
	if err := storage.SetConfig(sqldb, storage.ConfigAITimeout, "45s"); err != nil {
		t.Fatalf("set config: %v", err)
	}

	cfg := DefaultConfig()
	if err := cfg.ApplyStored(sqldb); err != nil {
		t.Fatalf("apply stored: %v", err)
	}
	if cfg.AIEndpoint != "http://stored.local/llm" || cfg.AITimeout != 45*time.Second {
		t.Fatalf("stored values not applied: %+v", cfg)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("unset key should keep default, got %q", cfg.LogLevel)
	}
}
