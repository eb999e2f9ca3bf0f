package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"bookflow/pkg/logger"
)

// SQLiteStore persists collections in a single key-value table. Whole
// serialized collections are written per key, mirroring the browser
// storage the data model grew up with.
type SQLiteStore struct {
	db     *sql.DB
	logger logger.Logger
}

func NewSQLiteStore(path string, log logger.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite database: %w", err)
	}

	query := `
    CREATE TABLE IF NOT EXISTS kv_records (
        key   TEXT PRIMARY KEY,
        value TEXT NOT NULL
    )
    `

	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create kv_records table: %w", err)
	}

	return &SQLiteStore{db: db, logger: log}, nil
}

func (s *SQLiteStore) Get(key string) ([]byte, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv_records WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if err != sql.ErrNoRows {
			s.logger.Error("Store read failed, treating key as absent", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return nil, false
	}

	return []byte(value), true
}

func (s *SQLiteStore) Set(key string, value []byte) error {
	query := `
    INSERT INTO kv_records (key, value) VALUES (?, ?)
    ON CONFLICT(key) DO UPDATE SET value = excluded.value
    `

	if _, err := s.db.Exec(query, key, string(value)); err != nil {
		s.logger.Error("Store write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return fmt.Errorf("could not write key %s: %w", key, err)
	}

	return nil
}

func (s *SQLiteStore) Remove(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv_records WHERE key = ?`, key); err != nil {
		s.logger.Error("Store remove failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return fmt.Errorf("could not remove key %s: %w", key, err)
	}

	return nil
}

func (s *SQLiteStore) Ping() error { return s.db.Ping() }

func (s *SQLiteStore) Close() error { return s.db.Close() }
