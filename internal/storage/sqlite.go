// Package storage provides the durable key/value medium the note collection
// persists into. The whole collection is written as one value under one key;
// there are no partial writes and no schema versioning.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// KV is a single-table key/value store backed by SQLite.
type KV struct {
	db *sql.DB
}

// Open opens (creating if necessary) the database at path.
func Open(path string) (*KV, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	kv := &KV{db: db}
	if err := kv.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return kv, nil
}

// initSchema creates the kv table if it doesn't exist.
func (kv *KV) initSchema() error {
	schema := `
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`
	_, err := kv.db.Exec(schema)
	return err
}

// Get returns the value stored under key. ok is false when the key is absent.
func (kv *KV) Get(key string) (value []byte, ok bool, err error) {
	var s string
	err = kv.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&s)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query value: %w", err)
	}
	return []byte(s), true, nil
}

// Put replaces the value stored under key in full.
func (kv *KV) Put(key string, value []byte) error {
	_, err := kv.db.Exec(`INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)`, key, string(value))
	if err != nil {
		return fmt.Errorf("write value: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (kv *KV) Close() error {
	if kv.db != nil {
		return kv.db.Close()
	}
	return nil
}
