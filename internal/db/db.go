package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("enable wal journal: %w", err)
	}
	return db, nil
}

// OpenAndMigrate opens the database at path and brings its schema up to date.
func OpenAndMigrate(path string) (*sql.DB, error) {
	sqldb, err := Open(path)
	if err != nil {
		return nil, err
	}
	if err := ApplyMigrations(sqldb); err != nil {
		_ = sqldb.Close()
		return nil, err
	}
	return sqldb, nil
}
