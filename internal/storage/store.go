package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
)

// Namespace keys for the ledger documents.
const (
	NutritionKey    = "nutrition-storage"
	FitnessKey      = "fitness-storage"
	ProductivityKey = "productivity-storage"
)

// Store persists whole JSON documents under fixed keys.
type Store interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, value []byte) error
}

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Load(key string) ([]byte, bool, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return nil, false, err
	}
	var value string
	err = s.db.QueryRow(`SELECT value FROM kv_documents WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load document %q: %w", key, err)
	}
	return []byte(value), true, nil
}

func (s *SQLiteStore) Save(key string, value []byte) error {
	key, err := normalizeKey(key)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
INSERT INTO kv_documents(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, string(value))
	if err != nil {
		return fmt.Errorf("save document %q: %w", key, err)
	}
	return nil
}

// MemoryStore keeps documents in process memory.
type MemoryStore struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: map[string][]byte{}}
}

func (m *MemoryStore) Load(key string) ([]byte, bool, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return nil, false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.docs[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *MemoryStore) Save(key string, value []byte) error {
	key, err := normalizeKey(key)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[key] = append([]byte(nil), value...)
	return nil
}

func normalizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("document key is required")
	}
	return key, nil
}
