package blob

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const sqliteDriverName = "sqlite3"

var sqliteMigrations = []string{
	`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT NOT NULL PRIMARY KEY,
		value BLOB NOT NULL
	)`,
}

// SQLite implements Store on a kv table in a SQLite database.
type SQLite struct {
	db *sqlx.DB
}

// NewSQLite opens (or creates) the SQLite database and applies migrations.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sqlx.Open(sqliteDriverName, path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("blob: open sqlite db %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("blob: ping: %w", err)
	}
	for _, m := range sqliteMigrations {
		if _, err := db.Exec(m); err != nil {
			db.Close()
			return nil, fmt.Errorf("blob: migration: %w", err)
		}
	}
	return &SQLite{db: db}, nil
}

// Get returns the value stored under key.
func (s *SQLite) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.Get(&value, `SELECT value FROM kv WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoKey
	}
	if err != nil {
		return nil, fmt.Errorf("blob: get %s: %w", key, err)
	}
	return value, nil
}

// Put upserts the value under key.
func (s *SQLite) Put(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("blob: put %s: %w", key, err)
	}
	return nil
}

// Delete removes key from the kv table.
func (s *SQLite) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("blob: delete %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}
